// template.go: positional message templating.
//
// Templates carry numbered placeholders {0}, {1}, ... Each argument replaces
// only the FIRST literal occurrence of its own placeholder, in argument order.
// Placeholders without a matching argument stay in the message as-is.
package jsuerror

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMessage is used when a kind or a call site supplies an empty template.
const DefaultMessage = "An exception occurred"

// Render substitutes args into template.
//
// Substitution is sequential: argument i is applied to the result of applying
// arguments 0..i-1, so text introduced by an earlier argument can itself be
// matched by a later placeholder.
//
//	Render("Expected {0} but got {1}", "number", "string")
//	// "Expected number but got string"
//	Render("{0} and {0}", "a")
//	// "a and {0}"
func Render(template string, args ...any) string {
	if template == "" {
		template = DefaultMessage
	}
	if len(args) == 0 {
		return template
	}
	msg := template
	for i, a := range args {
		msg = strings.Replace(msg, placeholder(i), stringify(a), 1)
	}
	return msg
}

func placeholder(i int) string {
	return "{" + strconv.Itoa(i) + "}"
}

// stringify skips fmt for plain strings. fmt.Sprint covers error and Stringer
// values, including nil receivers.
func stringify(a any) string {
	if s, ok := a.(string); ok {
		return s
	}
	return fmt.Sprint(a)
}
