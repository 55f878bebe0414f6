package jsuerror

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

func FuzzRender(f *testing.F) {
	f.Add("Expected {0} but got {1}", "number", "string")
	f.Add("{0}{0}{1}", "{1}", "x")
	f.Add("", "a", "b")
	f.Add("no placeholders", "", "")

	f.Fuzz(func(t *testing.T, tmpl, a, b string) {
		if tmpl == "" {
			if got := Render(tmpl, a, b); got != DefaultMessage {
				t.Fatalf("empty template rendered %q", got)
			}
			return
		}
		if got := Render(tmpl); got != tmpl {
			t.Fatalf("Render without args changed %q into %q", tmpl, got)
		}

		got := Render(tmpl, a, b)
		if !strings.Contains(tmpl, "{") && got != tmpl {
			t.Fatalf("template without braces must be untouched: %q -> %q", tmpl, got)
		}
		if a == "" || b == "" || strings.ContainsAny(a+b, "{}0123456789") {
			return
		}
		want := strings.Count(tmpl, "{0}") + strings.Count(tmpl, "{1}")
		if strings.Contains(tmpl, "{0}") {
			want--
		}
		if strings.Contains(tmpl, "{1}") {
			want--
		}
		if n := strings.Count(got, "{0}") + strings.Count(got, "{1}"); n != want {
			t.Fatalf("Render(%q, %q, %q) = %q left %d placeholders, want %d", tmpl, a, b, got, n, want)
		}
	})
}

func TestQuickMessageMatchesPlainTemplate(t *testing.T) {
	property := func(tmpl string) bool {
		tmpl = strings.NewReplacer("{", "", "}", "").Replace(tmpl)
		e := NewKind(tmpl).New("ignored")
		if tmpl == "" {
			return e.Message() == DefaultMessage
		}
		return e.Message() == tmpl && e.Name() == DefaultName
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("plain template property failed: %v", err)
	}
}

func TestQuickJoinKeepsKinds(t *testing.T) {
	property := func(msgA, msgB string) bool {
		a := WrongTypeArgs().NewMsg(msgA)
		b := UnreachableResource().NewMsg(msgB)
		joined := Join(a, errors.New("plain"), b)
		return errors.Is(joined, WrongTypeArgs()) &&
			errors.Is(joined, UnreachableResource()) &&
			!errors.Is(joined, NamespaceNotVoid())
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("join property failed: %v", err)
	}
}
