package szl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "set a 5", []string{"set", "a", "5"}},
		{"brace group kept verbatim", `format "hello, {}" $n`, []string{`format`, `"hello,`, `{}"`, `$n`}},
		{"nested braces", "proc greet {n} {format {hello {}} $n}", []string{"proc", "greet", "{n}", "{format {hello {}} $n}"}},
		{"bracket substitution token", "set d [dict.new k v]", []string{"set", "d", "[dict.new k v]"}},
		{"empty", "", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeUnbalanced(t *testing.T) {
	_, err := Tokenize("{abc")
	require.Error(t, err)
	var target *Error
	require.ErrorAs(t, err, &target)
	require.Equal(t, UnbalancedBrace, target.Code)

	_, err = Tokenize("[abc")
	require.ErrorAs(t, err, &target)
	require.Equal(t, UnbalancedBracket, target.Code)
}
