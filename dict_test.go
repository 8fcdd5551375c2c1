package szl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJenkinsHashStable(t *testing.T) {
	require.Equal(t, jenkinsHash("hello"), jenkinsHash("hello"))
	require.NotEqual(t, jenkinsHash("hello"), jenkinsHash("world"))
}

func TestDictSetGet(t *testing.T) {
	d := NewDict()
	require.NoError(t, d.DictSet(NewString("k"), NewString("v")))
	v, ok := d.DictGet(NewString("k"))
	require.True(t, ok)
	require.Equal(t, "v", v.String())

	_, ok = d.DictGet(NewString("missing"))
	require.False(t, ok)
}

func TestDictSetOverwritesAndSorts(t *testing.T) {
	d := NewDict()
	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, d.DictSet(NewString(k), NewString(k+"1")))
	}
	require.NoError(t, d.DictSet(NewString("a"), NewString("a2")))
	v, ok := d.DictGet(NewString("a"))
	require.True(t, ok)
	require.Equal(t, "a2", v.String())

	n, err := d.DictLen()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	pairs, _ := d.ensureList()
	for i := 0; i+2 < len(pairs); i += 2 {
		require.LessOrEqual(t, pairs[i].Hash(), pairs[i+2].Hash())
	}
}

func TestDictKeyMarkedReadOnly(t *testing.T) {
	d := NewDict()
	key := NewString("k")
	require.NoError(t, d.DictSet(key, NewString("v")))
	pairs, _ := d.ensureList()
	require.True(t, pairs[0].ReadOnly())
}

func TestDictUnset(t *testing.T) {
	d := NewDict()
	require.NoError(t, d.DictSet(NewString("k"), NewString("v")))
	require.NoError(t, d.DictUnset(NewString("k")))
	_, ok := d.DictGet(NewString("k"))
	require.False(t, ok)
}
