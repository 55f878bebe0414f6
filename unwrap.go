// unwrap.go: traversal over single- and multi-wrapped error graphs.
//
// errors.Unwrap only follows Unwrap() error, while errors.Join produces
// Unwrap() []error. Walk handles both so Kinds can report every kind raised
// inside a joined validation failure.
//
// A plain map[error] is not a safe "seen" set: dynamic types that are not
// comparable panic as map keys. Comparable values, pointers included, are
// tracked by type and value. Maps, slices and funcs fall back to their address,
// and anything else is assumed acyclic (bounded by maxWalkDepth).
package jsuerror

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

// visitSet records nodes already expanded during a walk.
type visitSet struct {
	vals map[error]struct{}
	ptrs map[uintptr]struct{}
}

func newVisitSet() *visitSet {
	return &visitSet{
		vals: make(map[error]struct{}, 8),
		ptrs: make(map[uintptr]struct{}, 8),
	}
}

// add returns false if err was already recorded. Comparable values, pointers
// included, key on dynamic type plus value; the address set only covers maps,
// slices and funcs.
func (s *visitSet) add(err error) bool {
	rv := reflect.ValueOf(err)
	if rv.Comparable() {
		if _, dup := s.vals[err]; dup {
			return false
		}
		s.vals[err] = struct{}{}
		return true
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		id := rv.Pointer()
		if _, dup := s.ptrs[id]; dup {
			return false
		}
		s.ptrs[id] = struct{}{}
	}
	return true
}

// Walk visits each distinct node of err's unwrap graph depth-first in
// pre-order. Children of a joined error are visited left to right. If visit
// returns false, traversal stops. Nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newVisitSet()
	stack := make([]error, 0, 8)
	stack = append(stack, err)
	seen.add(err)

	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && seen.add(c) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && seen.add(c) {
				stack = append(stack, c)
			}
		}
	}
}

// Kinds returns every distinct kind found in err's unwrap graph, in the order
// Walk first meets an instance of each. It returns nil when there is none.
func Kinds(err error) []*Kind {
	var out []*Kind
	Walk(err, func(e error) bool {
		ke, ok := e.(Error)
		if !ok {
			return true
		}
		k := ke.Kind()
		for _, have := range out {
			if have == k {
				return true
			}
		}
		out = append(out, k)
		return true
	})
	return out
}

// Root returns the first leaf reached by Walk (the deepest cause along the
// first path). If err is nil, Root returns nil.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		switch u := e.(type) {
		case multiUnwrapper:
			if len(u.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if u.Unwrap() != nil {
				return true
			}
		}
		root = e
		return false
	})
	return root
}
