package szl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRoundTrips(t *testing.T) {
	v := NewInt(42)
	require.Equal(t, "42", v.String())

	f := NewFloat(3.5)
	require.Equal(t, "3.5", f.String())

	zero := NewFloat(2.0)
	require.Equal(t, "2", zero.String())
}

func TestIntFromString(t *testing.T) {
	v := NewString("123")
	n, err := v.Int()
	require.NoError(t, err)
	require.EqualValues(t, 123, n)

	bad := NewString("not a number")
	_, err = bad.Int()
	require.Error(t, err)
	var target *Error
	require.ErrorAs(t, err, &target)
	require.Equal(t, BadValue, target.Code)
}

func TestStringIntStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789", "-987"} {
		v := NewString(s)
		n, err := v.Int()
		require.NoError(t, err)
		require.Equal(t, s, NewInt(n).String())
	}
}

func TestListConversionStripsOuterBraces(t *testing.T) {
	v := NewString("a {b c} d")
	items, err := v.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "a", items[0].String())
	require.Equal(t, "b c", items[1].String())
	require.Equal(t, "d", items[2].String())
}

func TestListToStringRoundTrip(t *testing.T) {
	orig := "a {b c} d"
	items, err := NewString(orig).List()
	require.NoError(t, err)
	back := NewList(items...).String()
	require.Equal(t, orig, back)
}

func TestCodeSplitsOnNewlines(t *testing.T) {
	v := NewString("set a 1\nset b 2")
	stmts, err := v.Code()
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, "set a 1", stmts[0].String())
	require.Equal(t, "set b 2", stmts[1].String())
}
