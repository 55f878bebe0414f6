// predicates.go: kind-aware classification helpers.
//
// Scope:
//   - Answer "which kind is this?" over arbitrary error chains, including
//     errors.Join trees.
//   - Encode the recovery hints of the predefined kinds without implementing
//     any retry policy.
package jsuerror

import (
	"errors"
)

// IsKind reports whether err is, or wraps, an instance of k.
func IsKind(err error, k *Kind) bool {
	if err == nil || k == nil {
		return false
	}
	return errors.Is(err, k)
}

// KindOf returns the kind of the first instance found along err's chain, or
// nil if err carries none.
func KindOf(err error) *Kind {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return nil
}

// IsRetryable reports whether err denotes a fault a higher layer may retry.
// Only UnreachableResource qualifies; backoff belongs to callers.
func IsRetryable(err error) bool {
	return IsKind(err, unreachableResource)
}

// IsProgrammingError reports whether err signals a caller bug (wrong argument
// type or count). Such faults should not be retried.
func IsProgrammingError(err error) bool {
	return IsKind(err, wrongTypeArgs) || IsKind(err, wrongNumberArgs)
}
