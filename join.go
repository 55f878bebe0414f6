// join.go: formatting-aware multi-error join.
//
// Join keeps the stdlib shape (Error() newline-joins the children, Unwrap()
// []error exposes them to errors.Is/As) and adds fmt.Formatter so "%+v"
// prints every child verbosely, stacks included. Validation code uses it to
// report several failed arguments at once.
package jsuerror

import (
	"fmt"
	"strings"
)

// multi mirrors errors.Join for Error()/Unwrap().
type multi struct {
	errs []error // non-nil children only
}

func (m *multi) Error() string {
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (m *multi) Unwrap() []error { return m.errs }

// Format implements fmt.Formatter.
//
//	%v, %s  → Error()
//	%q      → quoted Error()
//	%+v     → each child with %+v, separated by blank lines
func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}

// Join returns an error that wraps the given errors, ignoring nils.
//   - all nil → nil
//   - one non-nil → that error (identity preserved)
//   - otherwise → a joined error with Unwrap() []error
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}

// Append adds more errors to head with Join semantics. A joined head is
// flattened one level so repeated appends do not nest.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	if Join(more...) == nil {
		return head
	}
	combined := make([]error, 0, 1+len(more))
	if m, ok := head.(*multi); ok {
		combined = append(combined, m.errs...)
	} else {
		combined = append(combined, head)
	}
	combined = append(combined, more...)
	return Join(combined...)
}
