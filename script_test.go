package szl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitScript(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []string
	}{
		{"two statements", "set a 5\nset a", []string{"set a 5", "set a"}},
		{"comment discarded", "# a comment\nset a 5", []string{"set a 5"}},
		{"blank lines discarded", "\n\nset a 5\n\n", []string{"set a 5"}},
		{"brace spans newline", "proc r {}\n{\nr\n}\nr", []string{"proc r {}", "{\nr\n}", "r"}},
		{"empty script", "", nil},
		{"whitespace and comment only", "   \n# nothing here\n  ", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitScript(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSplitScriptUnbalanced(t *testing.T) {
	_, err := SplitScript("set a {\n")
	require.Error(t, err)
	var target *Error
	require.ErrorAs(t, err, &target)
	require.Equal(t, UnbalancedBrace, target.Code)
}
