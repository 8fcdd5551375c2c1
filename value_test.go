package szl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTruthy(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    *Value
		want bool
	}{
		{"empty string", NewString(""), false},
		{"zero char", NewString("0"), false},
		{"nonzero string", NewString("00"), true},
		{"literal text", NewString("hello"), true},
		{"zero int", NewInt(0), false},
		{"nonzero int", NewInt(3), true},
		{"zero float", NewFloat(0), false},
		{"nonzero float", NewFloat(0.5), true},
		{"empty list", NewList(), false},
		{"nonempty list", NewList(NewInt(1)), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestValueEqual(t *testing.T) {
	a := NewString("abc")
	b := NewInt(0)
	_ = b
	require.True(t, Equal(NewString("x"), NewString("x")))
	require.False(t, Equal(NewString("x"), NewString("y")))
	require.True(t, Equal(NewInt(5), NewString("5")))
	require.True(t, Equal(a, a))
}

func TestValueRefCounting(t *testing.T) {
	child := NewString("child")
	parent := NewList(child)
	require.EqualValues(t, 1, child.RefCount())
	child.Ref()
	require.EqualValues(t, 2, child.RefCount())
	parent.Unref()
	require.EqualValues(t, 1, child.RefCount())
}

func TestStrAppendInvalidatesOtherReps(t *testing.T) {
	v := NewInt(5)
	_ = v.String() // materialise String too
	require.NoError(t, v.StrAppend("0"))
	require.Equal(t, "50", v.String())
	require.False(t, v.flags&FlagHashed != 0)
	_, err := v.Int()
	require.NoError(t, err)
	require.EqualValues(t, 50, v.i)
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	v := NewString("x")
	v.SetReadOnly()
	require.Error(t, v.StrAppend("y"))
	err := v.ListAppend(NewInt(1))
	require.Error(t, err)
	var target *Error
	require.ErrorAs(t, err, &target)
	require.Equal(t, ReadOnly, target.Code)
}

func TestListSetClearsHashed(t *testing.T) {
	v := NewList(NewInt(1), NewInt(2))
	_ = v.Hash()
	require.True(t, v.flags&FlagHashed != 0)
	require.NoError(t, v.ListSet(0, NewInt(9)))
	require.False(t, v.flags&FlagHashed != 0)
}

func TestNeedsBraces(t *testing.T) {
	require.True(t, needsBraces(""))
	require.True(t, needsBraces("a b"))
	require.True(t, needsBraces("{x}"))
	require.False(t, needsBraces("abc"))
}
