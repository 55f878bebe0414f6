package jsuerror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestJoin_NilHandlingAndIdentity(t *testing.T) {
	if Join() != nil || Join(nil, nil) != nil {
		t.Fatalf("Join of nils must be nil")
	}
	a := WrongTypeArgs().New()
	if got := Join(nil, a, nil); got != error(a) {
		t.Fatalf("single non-nil must be returned as-is; got %v", got)
	}
}

func TestJoin_IsAsAndString(t *testing.T) {
	a := WrongTypeArgs().New()
	b := WrongNumberArgs().New()
	j := Join(a, b)

	if !errors.Is(j, WrongTypeArgs()) || !errors.Is(j, WrongNumberArgs()) {
		t.Fatalf("errors.Is must see both kinds")
	}
	if want := a.Error() + "\n" + b.Error(); j.Error() != want {
		t.Fatalf("Error() = %q, want %q", j.Error(), want)
	}
	if got := fmt.Sprintf("%v", j); got != j.Error() {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%q", j); got != fmt.Sprintf("%q", j.Error()) {
		t.Fatalf("%%q = %s", got)
	}
}

func TestJoin_VerboseRecurses(t *testing.T) {
	j := Join(WrongTypeArgs().New(), errors.New("plain"), UnreachableResource().New())
	verbose := fmt.Sprintf("%+v", j)
	if strings.Count(verbose, "\nstack:") != 2 {
		t.Fatalf("expected two stacks in:\n%s", verbose)
	}
	if !containsInOrder(verbose, "Wrong type of arguments", "plain", "The resource is unreachable") {
		t.Fatalf("children out of order:\n%s", verbose)
	}
}

func TestAppend(t *testing.T) {
	a := WrongTypeArgs().New()
	b := WrongNumberArgs().New()
	c := NamespaceNotVoid().New()

	if got := Append(nil); got != nil {
		t.Fatalf("Append(nil) = %v", got)
	}
	if got := Append(nil, nil, a); got != error(a) {
		t.Fatalf("Append(nil, a) must return a")
	}
	if got := Append(a, nil); got != error(a) {
		t.Fatalf("Append(a, nil) must return a")
	}

	j := Append(Append(a, b), c)
	m, ok := j.(*multi)
	if !ok {
		t.Fatalf("expected *multi, got %T", j)
	}
	if len(m.errs) != 3 {
		t.Fatalf("repeated Append must stay flat; got %d children", len(m.errs))
	}
}
