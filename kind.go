// kind.go: the error factory and the concrete instance type.
//
// Scope:
//   - NewKind defines a reusable, immutable Kind from a message template.
//   - Kind.New / NewMsg / Wrap / WrapMsg build instances; each captures the
//     stack of its own caller.
//   - Instances match their kind through errors.Is and nothing else.
//
// Interop:
//   - *Kind implements error so it can be passed as an errors.Is target.
//   - Instances unwrap to the cause recorded by Wrap/WrapMsg (nil otherwise).
package jsuerror

// DefaultName is the discriminator tag shared by kinds that do not opt into a
// name of their own.
const DefaultName = "JSU Error"

// Kind is a reusable template for a category of fault. It is created once,
// never mutated, and shared by pointer. Two kinds are distinct even when their
// names and templates are equal.
//
// A Kind must be created with NewKind.
type Kind struct {
	name     string
	template string
}

// KindOption customizes a Kind at definition time.
type KindOption func(*Kind)

// WithName gives the kind its own name instead of DefaultName.
// An empty name is ignored.
func WithName(name string) KindOption {
	return func(k *Kind) {
		if name != "" {
			k.name = name
		}
	}
}

// NewKind defines a new error kind. An empty template falls back to
// DefaultMessage. No stack is captured here.
func NewKind(template string, opts ...KindOption) *Kind {
	if template == "" {
		template = DefaultMessage
	}
	k := &Kind{name: DefaultName, template: template}
	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}
	return k
}

// Name returns the name shared by every instance of this kind.
func (k *Kind) Name() string { return k.name }

// Template returns the message template instances are rendered from.
func (k *Kind) Template() string { return k.template }

// Error lets a Kind act as an errors.Is target. It renders the unsubstituted
// template.
func (k *Kind) Error() string { return k.name + ": " + k.template }

// Matches reports whether err is, or wraps, an instance of k.
func (k *Kind) Matches(err error) bool { return IsKind(err, k) }

// New builds an instance whose message is the kind template with args
// substituted positionally.
func (k *Kind) New(args ...any) Error {
	return k.newInstance(1, "", nil, args)
}

// NewMsg builds an instance from a per-call template. An empty template falls
// back to the kind's own.
func (k *Kind) NewMsg(template string, args ...any) Error {
	return k.newInstance(1, template, nil, args)
}

// Wrap is New with a cause exposed through Unwrap.
func (k *Kind) Wrap(cause error, args ...any) Error {
	return k.newInstance(1, "", cause, args)
}

// WrapMsg is NewMsg with a cause exposed through Unwrap.
func (k *Kind) WrapMsg(cause error, template string, args ...any) Error {
	return k.newInstance(1, template, cause, args)
}

// newInstance renders the message and captures the stack. skip counts the
// frames between newInstance and the user call site.
func (k *Kind) newInstance(skip int, template string, cause error, args []any) *kindErr {
	if template == "" {
		template = k.template
	}
	return &kindErr{
		kind:  k,
		msg:   Render(template, args...),
		cause: cause,
		stk:   captureStackDefault(skip + 1), // +1 for newInstance itself
	}
}

// kindErr is the concrete instance type. Every field is set once in
// newInstance and never written again.
type kindErr struct {
	kind  *Kind
	msg   string
	cause error
	stk   Stack
}

func (e *kindErr) Error() string   { return e.kind.name + ": " + e.msg }
func (e *kindErr) Message() string { return e.msg }
func (e *kindErr) Name() string    { return e.kind.name }
func (e *kindErr) Kind() *Kind     { return e.kind }
func (e *kindErr) Unwrap() error   { return e.cause }

// Stack returns a copy so callers cannot rewrite the captured frames.
func (e *kindErr) Stack() Stack {
	if len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}

func (e *kindErr) StackTrace() string {
	if len(e.stk) == 0 {
		return e.Error()
	}
	return e.Error() + "\n" + e.stk.String()
}

// Is matches the instance's own kind. Instances are otherwise compared by
// identity, as errors.Is does by default.
func (e *kindErr) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && k == e.kind
}

var (
	_ Error = (*kindErr)(nil)
	_ error = (*Kind)(nil)
)
