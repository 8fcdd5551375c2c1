package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szl-lang/szl"
	"github.com/szl-lang/szl/builtins"
)

func newInterp(t *testing.T) *szl.Interp {
	t.Helper()
	ip := szl.New()
	require.NoError(t, builtins.Register(ip))
	return ip
}

func TestEndToEndScenarios(t *testing.T) {
	for _, tc := range []struct {
		name   string
		script string
		want   string
	}{
		{"set then read", "set a 5\nset a", "5"},
		{"arithmetic on variables", "set a 1\nset b 2\n+ $a $b", "3"},
		{"list len via last result", "list.new 1 2 3\nlist.len $_", "3"},
		{"user-defined procedure", `proc greet {n} {format {hello, {}} $n}` + "\ngreet world", "hello, world"},
		{"while with immediate break", "while {< 0 1} {break}", ""},
		{"dict round trip", "set d [dict.new k v]\ndict.get $d k", "v"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ip := newInterp(t)
			result, err := ip.Eval(tc.script)
			require.NoError(t, err)
			require.Equal(t, tc.want, result.String())
		})
	}
}

func TestUnresolvedHeadIsError(t *testing.T) {
	ip := newInterp(t)
	_, status, err := ip.EvalStatus("no.such.command 1 2")
	require.NoError(t, err)
	require.Equal(t, szl.StatusError, status)
	require.Contains(t, ip.Last().String(), "not a proc: no.such.command")
}

func TestRecursionLimit(t *testing.T) {
	ip := newInterp(t)
	ip.SetRecursionLimit(8)
	_, status, err := ip.EvalStatus("proc r {} {r}\nr")
	require.NoError(t, err)
	require.Equal(t, szl.StatusError, status)
	require.Contains(t, ip.Last().String(), "recursion limit")
}

func TestCatchTrapsError(t *testing.T) {
	ip := newInterp(t)
	result, err := ip.Eval("catch {no.such.command}")
	require.NoError(t, err)
	require.Equal(t, "1", result.String())
}

func TestIncrAndUnset(t *testing.T) {
	ip := newInterp(t)
	result, err := ip.Eval("set a 1\nincr a\nincr a 5\nset a")
	require.NoError(t, err)
	require.Equal(t, "7", result.String())

	_, err = ip.Eval("unset a\nset a")
	require.Error(t, err)
}
