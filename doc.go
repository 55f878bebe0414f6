// doc.go: package documentation for jsu-error
//
// Package jsuerror builds user-defined error kinds that behave like native Go
// errors: every instance carries a message rendered from a template, the
// kind's name, and the stack of the code that constructed it.
//
// # Kinds and Instances
//
// A Kind is defined once, usually at package scope, and reused everywhere the
// same category of fault is raised:
//
//	var errExpected = jsuerror.NewKind("Expected {0} but got {1}")
//
//	func parse(v any) error {
//		if _, ok := v.(float64); !ok {
//			return errExpected.New("number", fmt.Sprintf("%T", v))
//		}
//		return nil
//	}
//
// Four kinds ship with the package and are shared process-wide:
// WrongTypeArgs, WrongNumberArgs, UnreachableResource and NamespaceNotVoid.
//
// # Message Templates
//
// Placeholders are numbered from zero. Argument i replaces the FIRST literal
// "{i}" only; placeholders without an argument stay in the message. An empty
// template renders as DefaultMessage.
//
//	jsuerror.Render("Expected {0} but got {1}", "number", "string")
//	// "Expected number but got string"
//
// # When Are Stacks Captured?
//
//	+-------------------------------+-------------------+
//	| Operation                     | Captures stack?   |
//	+-------------------------------+-------------------+
//	| NewKind                       | NO                |
//	| Kind.New / NewMsg             | YES (caller)      |
//	| Kind.Wrap / WrapMsg           | YES (caller)      |
//	| WrapAs / WrapAsMsg            | YES (caller)      |
//	+-------------------------------+-------------------+
//
// The first frame of Stack() is always the function that asked for the
// instance.
//
// # Discriminating by Kind
//
//	switch {
//	case errors.Is(err, jsuerror.UnreachableResource()):
//		// retry later
//	case jsuerror.IsProgrammingError(err):
//		// bug at the call site; do not retry
//	}
//
// errors.Is matches an instance against its own *Kind only. Kinds with equal
// names and templates are still distinct.
//
// # Formatting
//
//   - %v, %s → "<name>: <message>"
//   - %+v    → name, message, cause (recursively %+v) and stack
//   - %q     → quoted Error()
//
// Use Join to aggregate several instances; its %+v prints every child
// verbosely.
package jsuerror
