package token

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/menuloop/pkg/domain"
)

// Parser turns one word of input into a typed value.
// Implementations must never fail: a word with no richer reading is
// returned as a string value.
type Parser interface {
	Parse(word string) domain.Value
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(word string) domain.Value

// Parse calls f(word).
func (f ParserFunc) Parse(word string) domain.Value { return f(word) }

// Literal is the default closed grammar:
//
//	decimal integer   42, -7, +3
//	float             1.5, -0.25, 1e3 (must contain a digit; inf/nan stay text)
//	boolean           true, false (any case)
//	quoted string     "1", 'add', `a b`  -> the unquoted text
//	anything else     the word itself
var Literal Parser = ParserFunc(parseLiteral)

// Plain never interprets the word; every token is a string value.
var Plain Parser = ParserFunc(domain.Str)

// Fields splits a line on runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Parse runs every word of the line through p.
func Parse(p Parser, line string) []domain.Value {
	words := Fields(line)
	values := make([]domain.Value, len(words))
	for i, w := range words {
		values[i] = p.Parse(w)
	}
	return values
}

func parseLiteral(word string) domain.Value {
	if word == "" {
		return domain.Str(word)
	}

	if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		return domain.Int(n)
	}

	if looksNumeric(word) {
		if f, err := strconv.ParseFloat(word, 64); err == nil {
			return domain.Float(f)
		}
	}

	switch strings.ToLower(word) {
	case "true":
		return domain.Bool(true)
	case "false":
		return domain.Bool(false)
	}

	if s, ok := unquote(word); ok {
		return domain.Str(s)
	}

	return domain.Str(word)
}

// looksNumeric rejects words such as "inf", "NaN" or "0x1p-2" that
// strconv.ParseFloat would otherwise accept.
func looksNumeric(word string) bool {
	digits := 0
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.', r == '-', r == '+', r == 'e', r == 'E', r == '_':
		default:
			return false
		}
	}
	return digits > 0
}

func unquote(word string) (string, bool) {
	if len(word) < 2 {
		return "", false
	}
	first, last := word[0], word[len(word)-1]
	if first != last {
		return "", false
	}
	switch first {
	case '"', '`':
		s, err := strconv.Unquote(word)
		if err != nil {
			return "", false
		}
		return s, true
	case '\'':
		inner := word[1 : len(word)-1]
		if strings.ContainsRune(inner, '\'') {
			return "", false
		}
		return inner, true
	}
	return "", false
}
