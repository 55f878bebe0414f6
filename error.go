// Package jsuerror defines user-defined error kinds that behave like native Go
// errors. A Kind is a reusable template; each call to Kind.New produces a new
// instance carrying the rendered message, the kind's name, and the stack of
// the call site that built it.
//
// Design tenets:
//   - Interop-first: instances are plain errors and play nicely with
//     errors.Is/As and errors.Join.
//   - Immutable values: message and name are fixed at construction; kinds are
//     never mutated after they are defined.
//   - Stacks belong to the raise site, not to the definition site.
package jsuerror

// Error is the read-only contract every instance built from a Kind satisfies.
//
// There are no setters. Handlers that catch an Error always observe the
// message and name that were fixed when the instance was constructed, which
// keeps shared error values safe to read from many goroutines.
type Error interface {
	// error renders "<name>: <message>".
	error

	// Message returns the template with its placeholders substituted.
	Message() string

	// Name returns the discriminator tag inherited from the kind.
	Name() string

	// Stack returns the frames captured when the instance was constructed,
	// most recent call first.
	Stack() Stack

	// StackTrace returns Stack rendered as text, headed by Error().
	StackTrace() string

	// Kind returns the kind this instance was built from. Never nil.
	Kind() *Kind

	// Unwrap returns the cause recorded by Kind.Wrap, or nil.
	Unwrap() error
}
