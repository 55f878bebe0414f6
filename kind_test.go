// kind_test.go: verification of the factory, instances and immutability.
package jsuerror

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to extract the concrete type in tests
func asInstance(t *testing.T, e Error) *kindErr {
	t.Helper()
	ke, ok := e.(*kindErr)
	require.Truef(t, ok, "expected *kindErr, got %T", e)
	return ke
}

func TestNewKind_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("template kept", func(t *testing.T) {
		k := NewKind("Wrong type of arguments")
		assert.Equal(t, "Wrong type of arguments", k.Template())
		assert.Equal(t, DefaultName, k.Name())
	})

	t.Run("empty template falls back", func(t *testing.T) {
		k := NewKind("")
		assert.Equal(t, DefaultMessage, k.Template())
		assert.Equal(t, "An exception occurred", k.New().Message())
	})

	t.Run("WithName overrides", func(t *testing.T) {
		k := NewKind("boom", WithName("Custom Error"))
		assert.Equal(t, "Custom Error", k.Name())
		assert.Equal(t, "Custom Error: boom", k.New().Error())
	})

	t.Run("empty WithName and nil option ignored", func(t *testing.T) {
		k := NewKind("boom", WithName(""), nil)
		assert.Equal(t, DefaultName, k.Name())
	})
}

func TestKind_New_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no args", "Wrong type of arguments", nil, "Wrong type of arguments"},
		{"two args", "Expected {0} but got {1}", []any{"number", "string"}, "Expected number but got string"},
		{"no template no args", "", nil, "An exception occurred"},
		{"missing arg stays literal", "Expected {0} but got {1}", []any{"number"}, "Expected number but got {1}"},
		{"non-string args", "{0} of {1}", []any{3, 4.5}, "3 of 4.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewKind(tt.template).New(tt.args...)
			assert.Equal(t, tt.want, e.Message())
			assert.Equal(t, DefaultName+": "+tt.want, e.Error())
		})
	}
}

func TestKind_NewMsg_OverridesTemplate(t *testing.T) {
	t.Parallel()

	k := NewKind("base {0}")
	assert.Equal(t, "other x", k.NewMsg("other {0}", "x").Message())
	assert.Equal(t, "base y", k.NewMsg("", "y").Message(), "empty override falls back to the kind template")
	assert.Same(t, k, k.NewMsg("other").Kind())
}

func TestKind_Wrap_RecordsCause(t *testing.T) {
	t.Parallel()

	k := NewKind("read {0}")
	e := k.Wrap(io.ErrUnexpectedEOF, "header")
	assert.Equal(t, "read header", e.Message())
	assert.ErrorIs(t, e, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, e, k)
	assert.Equal(t, io.ErrUnexpectedEOF, e.Unwrap())

	m := k.WrapMsg(io.EOF, "custom {0}", 1)
	assert.Equal(t, "custom 1", m.Message())
	assert.ErrorIs(t, m, io.EOF)

	assert.Nil(t, k.New().Unwrap())
}

func TestInstance_NameStableAcrossInstances(t *testing.T) {
	t.Parallel()

	a := UnreachableResource().New()
	b := UnreachableResource().New()
	assert.Equal(t, a.Name(), b.Name())
	assert.Equal(t, DefaultName, a.Name())
	assert.NotSame(t, asInstance(t, a), asInstance(t, b), "each call builds a new instance")
}

func TestInstance_StackIsReadOnly(t *testing.T) {
	t.Parallel()

	e := WrongTypeArgs().New()
	s := e.Stack()
	require.NotEmpty(t, s)

	orig := s[0]
	s[0].Function = "tampered"
	s[0].Line = -1

	assert.Equal(t, orig, e.Stack()[0], "mutating the returned stack must not affect the instance")
}

func TestInstance_MessageAndNameFixed(t *testing.T) {
	t.Parallel()

	k := NewKind("{0}")
	arg := []byte("abc")
	e := k.New(string(arg))
	arg[0] = 'x'

	assert.Equal(t, "abc", e.Message())
	assert.Equal(t, DefaultName, e.Name())
	assert.Equal(t, "{0}", k.Template(), "building instances never touches the kind")
}

func TestKinds_AreDistinct(t *testing.T) {
	t.Parallel()

	a := NewKind("same")
	b := NewKind("same")

	ea := a.New()
	assert.ErrorIs(t, ea, a)
	assert.NotErrorIs(t, ea, b, "kinds with equal templates are still distinct")
	assert.True(t, a.Matches(ea))
	assert.False(t, b.Matches(ea))

	wt := WrongTypeArgs().New()
	assert.False(t, errors.Is(wt, UnreachableResource()))
	assert.True(t, errors.Is(wt, WrongTypeArgs()))
}

func TestKind_ErrorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "JSU Error: Wrong number of arguments", WrongNumberArgs().Error())
}

func TestInstance_ErrorsAsInterface(t *testing.T) {
	t.Parallel()

	var target Error
	err := error(NamespaceNotVoid().New())
	require.True(t, errors.As(err, &target))
	assert.Same(t, NamespaceNotVoid(), target.Kind())
}
