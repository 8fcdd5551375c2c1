package szl

import "strings"

// isSpace reports whether b is whitespace: space, tab, carriage return,
// or newline.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// scanWord consumes one item from the front of s the way the original
// word scanner does: if s starts with { or [, the word runs until its
// own matching delimiter balances back to zero (braces only close
// braces, brackets only close brackets — the other delimiter is inert
// inside such a group), and otherwise the word simply runs to the next
// whitespace. It returns the consumed word and the unconsumed
// remainder. This is the shared primitive behind both the statement
// tokeniser (which keeps a word's braces/brackets verbatim) and the
// generic string-to-list conversion (which strips one outer brace
// layer off each element afterwards).
func scanWord(s string) (word, rest string, err error) {
	if s == "" {
		return "", "", nil
	}

	var open, close byte
	var code Code
	switch s[0] {
	case '{':
		open, close, code = '{', '}', UnbalancedBrace
	case '[':
		open, close, code = '[', ']', UnbalancedBracket
	}

	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if depth == 0 && isSpace(c) {
			break
		}
		if open != 0 {
			switch c {
			case open:
				depth++
			case close:
				if depth > 0 {
					depth--
				}
			}
		}
		i++
	}
	if open != 0 && depth != 0 {
		return "", "", Errorf(code, "unbalanced %c%c in %q", open, close, s)
	}
	return s[:i], s[i:], nil
}

// Tokenize splits a single statement (already stripped of leading and
// trailing whitespace) into its ordered raw tokens: brace groups and
// bracket groups are emitted including their outer delimiters, and
// barewords are emitted verbatim. No unescaping or substitution is
// performed; token semantics are decided at evaluation time.
func Tokenize(stmt string) ([]string, error) {
	var tokens []string
	rest := stmt
	for {
		// skip inter-token whitespace
		i := 0
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		rest = rest[i:]
		if rest == "" {
			break
		}
		word, tail, err := scanWord(rest)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, word)
		rest = tail
	}
	return tokens, nil
}

// parseListElements splits s into list elements the way the generic
// string-to-list conversion does: whitespace-delimited, honouring
// {}/[] nesting, with each brace-quoted element stripped of its one
// enclosing brace layer (required so that converting a list back to a
// string and re-splitting it round-trips; see Tokenize's doc comment
// for why this differs from statement tokenisation).
func parseListElements(s string) ([]string, error) {
	raw, err := Tokenize(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	elems := make([]string, len(raw))
	for i, w := range raw {
		elems[i] = stripOneBraceLayer(w)
	}
	return elems, nil
}

func stripOneBraceLayer(w string) string {
	if len(w) >= 2 && w[0] == '{' && w[len(w)-1] == '}' {
		return w[1 : len(w)-1]
	}
	return w
}
