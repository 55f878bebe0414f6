package argcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jsuerror "github.com/xgx-io/jsu-error"
	"github.com/xgx-io/jsu-error/types"
)

func message(t *testing.T, err error) string {
	t.Helper()
	e, ok := jsuerror.As(err)
	require.True(t, ok, "expected a jsuerror instance, got %T", err)
	return e.Message()
}

func TestCount(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Count(2, 2))

	err := Count(1, 2)
	assert.ErrorIs(t, err, jsuerror.WrongNumberArgs())
	assert.Equal(t, "Wrong number of arguments: expected 2, got 1", message(t, err))
}

func TestCountRange(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CountRange(1, 1, 3))
	assert.NoError(t, CountRange(3, 1, 3))

	err := CountRange(0, 1, 3)
	assert.ErrorIs(t, err, jsuerror.WrongNumberArgs())
	assert.Equal(t, "Wrong number of arguments: expected 1 to 3, got 0", message(t, err))
}

func TestType(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Type("flag", true, types.IsBoolean, "boolean"))

	err := Type("flag", "yes", types.IsBoolean, "boolean")
	assert.ErrorIs(t, err, jsuerror.WrongTypeArgs())
	assert.Equal(t, "Wrong type of arguments: flag must be boolean, got string", message(t, err))

	err = Type("v", 1, nil, "anything")
	assert.ErrorIs(t, err, jsuerror.WrongTypeArgs(), "a nil predicate accepts nothing")
}

func TestStringAndInteger(t *testing.T) {
	t.Parallel()

	assert.NoError(t, String("s", "x"))
	assert.NoError(t, Integer("n", 12))

	err := String("s", nil)
	assert.Equal(t, "Wrong type of arguments: s must be string, got nil", message(t, err))

	err = Integer("n", 1.5)
	assert.ErrorIs(t, err, jsuerror.WrongTypeArgs())
	assert.Equal(t, "Wrong type of arguments: n must be integer, got float64", message(t, err))
}

func TestVoid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Void[int](nil))
	assert.NoError(t, Void(map[string]string{}))

	err := Void(map[string]int{"a": 1, "b": 2})
	assert.ErrorIs(t, err, jsuerror.NamespaceNotVoid())
	assert.Equal(t, "The module namespace is not void: 2 key(s) present", message(t, err))
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.NoError(t, All(nil, Count(1, 1)))

	err := All(Count(0, 1), nil, String("s", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsuerror.WrongNumberArgs())
	assert.ErrorIs(t, err, jsuerror.WrongTypeArgs())
	assert.True(t, jsuerror.IsProgrammingError(err))
	assert.False(t, errors.Is(err, jsuerror.NamespaceNotVoid()))
}
