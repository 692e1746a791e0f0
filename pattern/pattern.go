// Package pattern compiles byte signatures with wildcard positions and
// matches them against raw memory buffers.
package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/s-hammon/p"
)

var (
	// ErrInvalidHexToken is returned when a token is neither a wildcard nor a two digit hex byte.
	ErrInvalidHexToken = errors.New("invalid hex token")

	// ErrEmptyPattern is returned when a pattern would contain no tokens.
	ErrEmptyPattern = errors.New("empty pattern")
)

// Token is a single pattern position, either an exact byte or a wildcard.
type Token struct {
	Value    byte
	Wildcard bool
}

// Exact returns a token matching only b.
func Exact(b byte) Token {
	return Token{Value: b}
}

// Any returns a wildcard token.
func Any() Token {
	return Token{Wildcard: true}
}

func (t Token) String() string {
	if t.Wildcard {
		return "xx"
	}
	return p.Format("%02X", t.Value)
}

// Pattern is an immutable, non-empty sequence of tokens.
type Pattern struct {
	tokens []Token
}

// Compile parses whitespace separated tokens such as "48 8B xx 48 89 ?".
// "xx" (any case) and "?" are wildcards, everything else must be two hex digits.
func Compile(text string) (Pattern, error) {
	var tokens []Token
	for _, tok := range strings.Fields(text) {
		if strings.EqualFold(tok, "xx") || tok == "?" {
			tokens = append(tokens, Any())
			continue
		}

		if len(tok) != 2 {
			return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidHexToken, tok)
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidHexToken, tok)
		}
		tokens = append(tokens, Exact(byte(v)))
	}

	if len(tokens) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	return Pattern{tokens: tokens}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(text string) Pattern {
	pat, err := Compile(text)
	if err != nil {
		panic(fmt.Sprintf("pattern: Compile(%q): %v", text, err))
	}
	return pat
}

// FromTokens builds a pattern from an explicit token list.
func FromTokens(tokens []Token) (Pattern, error) {
	if len(tokens) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	owned := make([]Token, len(tokens))
	copy(owned, tokens)
	return Pattern{tokens: owned}, nil
}

// Len returns the number of bytes the pattern spans.
func (pat Pattern) Len() int {
	return len(pat.tokens)
}

// IsEmpty reports whether the pattern has no tokens, which only happens for the zero value.
func (pat Pattern) IsEmpty() bool {
	return len(pat.tokens) == 0
}

// Tokens returns a copy of the pattern's tokens.
func (pat Pattern) Tokens() []Token {
	out := make([]Token, len(pat.tokens))
	copy(out, pat.tokens)
	return out
}

// Matches reports whether the pattern matches buf starting at offset.
// Offsets where the pattern would run past the end of buf never match.
func (pat Pattern) Matches(buf []byte, offset int) bool {
	if offset < 0 || len(pat.tokens) > len(buf) || offset > len(buf)-len(pat.tokens) {
		return false
	}

	for i, tok := range pat.tokens {
		if tok.Wildcard {
			continue
		}
		if buf[offset+i] != tok.Value {
			return false
		}
	}

	return true
}

func (pat Pattern) String() string {
	parts := make([]string, len(pat.tokens))
	for i, tok := range pat.tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
