// format.go: fmt.Formatter implementation for error instances.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, multi-line format:
//	             name="<name>" msg="<message>"
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
//	%q       → quoted Error().
package jsuerror

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation.
// If stk is empty, the stack section is omitted.
// If cause is non-nil, it is formatted with %+v to recurse verbosely.
func formatVerbose(w io.Writer, name, msg string, cause error, stk Stack) {
	_, _ = fmt.Fprintf(w, "name=%q msg=%q", name, msg)

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = io.WriteString(w, "\n  ")
			_, _ = io.WriteString(w, fr.String())
		}
	}
}

func (e *kindErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.kind.name, e.msg, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
