// Package argcheck validates call arguments and raises the predefined
// jsuerror kinds when a precondition fails.
//
// Every check returns nil on success, so checks compose with All:
//
//	if err := argcheck.All(
//		argcheck.Count(len(args), 2),
//		argcheck.Type("name", args[0], types.IsString, "string"),
//	); err != nil {
//		return err
//	}
package argcheck

import (
	"fmt"

	jsuerror "github.com/xgx-io/jsu-error"
	"github.com/xgx-io/jsu-error/types"
)

// Message templates used on top of the predefined kinds.
const (
	countTemplate = "Wrong number of arguments: expected {0}, got {1}"
	rangeTemplate = "Wrong number of arguments: expected {0} to {1}, got {2}"
	typeTemplate  = "Wrong type of arguments: {0} must be {1}, got {2}"
	voidTemplate  = "The module namespace is not void: {0} key(s) present"
)

// Count fails with WrongNumberArgs unless got == want.
func Count(got, want int) error {
	if got == want {
		return nil
	}
	return jsuerror.WrongNumberArgs().NewMsg(countTemplate, want, got)
}

// CountRange fails with WrongNumberArgs unless min <= got <= max.
func CountRange(got, min, max int) error {
	if got >= min && got <= max {
		return nil
	}
	return jsuerror.WrongNumberArgs().NewMsg(rangeTemplate, min, max, got)
}

// Type fails with WrongTypeArgs when pred rejects v. name identifies the
// argument and want describes the accepted type in the message.
func Type(name string, v any, pred func(any) bool, want string) error {
	if pred != nil && pred(v) {
		return nil
	}
	return jsuerror.WrongTypeArgs().NewMsg(typeTemplate, name, want, describe(v))
}

// String is Type with types.IsString.
func String(name string, v any) error {
	if types.IsString(v) {
		return nil
	}
	return jsuerror.WrongTypeArgs().NewMsg(typeTemplate, name, "string", describe(v))
}

// Integer is Type with types.IsInteger.
func Integer(name string, v any) error {
	if types.IsInteger(v) {
		return nil
	}
	return jsuerror.WrongTypeArgs().NewMsg(typeTemplate, name, "integer", describe(v))
}

// Void fails with NamespaceNotVoid when ns has any key.
func Void[V any](ns map[string]V) error {
	if len(ns) == 0 {
		return nil
	}
	return jsuerror.NamespaceNotVoid().NewMsg(voidTemplate, len(ns))
}

// All joins every non-nil failure. It returns nil when all checks passed.
func All(errs ...error) error {
	return jsuerror.Join(errs...)
}

func describe(v any) string {
	if types.IsNull(v) {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
