package token

import (
	"strings"

	"github.com/google/shlex"
)

const doubleDash = "--"

// Split splits a command line using shell quoting rules and tags each word.
// Words starting with '-' are Option tokens until a lone "--" is seen; everything
// else, and everything after "--", is an Argument token. Positions are word indexes.
func Split(s string) ([]Token, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(words))
	literal := false
	for i, w := range words {
		switch {
		case literal:
			tokens = append(tokens, New(w, Argument, i))
		case w == doubleDash:
			literal = true
			tokens = append(tokens, New(w, DoubleDash, i))
		case len(w) > 1 && strings.HasPrefix(w, "-"):
			tokens = append(tokens, New(w, Option, i))
		default:
			tokens = append(tokens, New(w, Argument, i))
		}
	}

	return tokens, nil
}

// Values returns the literal text of tokens in order.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.value
	}

	return values
}
