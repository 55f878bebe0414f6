// The predefined, process-wide error kinds. Each kind is built once at
// package initialization and handed out by accessor, so importers can share
// it but never reassign it.
package jsuerror

var (
	wrongTypeArgs       = NewKind("Wrong type of arguments")
	wrongNumberArgs     = NewKind("Wrong number of arguments")
	unreachableResource = NewKind("The resource is unreachable")
	namespaceNotVoid    = NewKind("The module namespace is not void")
)

// builtinKinds keeps a stable order for listings. Unexported to avoid
// exposing slice identity to callers.
var builtinKinds = []*Kind{
	wrongTypeArgs,
	wrongNumberArgs,
	unreachableResource,
	namespaceNotVoid,
}

// WrongTypeArgs is raised when a validated argument fails a type predicate.
func WrongTypeArgs() *Kind { return wrongTypeArgs }

// WrongNumberArgs is raised when an arity check fails.
func WrongNumberArgs() *Kind { return wrongNumberArgs }

// UnreachableResource is raised when a network or addressable resource cannot
// be contacted. It is most likely a network failure, but could also be a
// wrong URL.
func UnreachableResource() *Kind { return unreachableResource }

// NamespaceNotVoid is raised when a namespace expected to be empty is not.
func NamespaceNotVoid() *Kind { return namespaceNotVoid }

// BuiltinKinds returns a copy of the predefined kinds in a stable
// order.
func BuiltinKinds() []*Kind {
	out := make([]*Kind, len(builtinKinds))
	copy(out, builtinKinds)
	return out
}

// IsBuiltin reports whether k is one of the predefined kinds.
func (k *Kind) IsBuiltin() bool {
	for _, b := range builtinKinds {
		if b == k {
			return true
		}
	}
	return false
}
