// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns a raw query string into a structured, executable
// query: a rune-level tokenizer feeding a strict-order parser that
// resolves book names, special tokens, and morphology suffixes against
// the fixed tables.
package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/philologus/morphquery/pkg/types"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// TokenStar is the whole-corpus scope marker "*".
	TokenStar TokenKind = iota

	// TokenBracket is a bracketed group "[...]"; Text holds the inner
	// contents. The parser decides whether it is a book-scope list or a
	// special token.
	TokenBracket

	// TokenPlus is the book-scope join marker "+".
	TokenPlus

	// TokenAmp is the term-join marker "&".
	TokenAmp

	// TokenMorph is a morphology suffix "@codes"; Text holds the codes.
	TokenMorph

	// TokenWord is a bare lexical word.
	TokenWord

	// TokenProximity is a proximity clause "W<n>"; Value holds n.
	TokenProximity

	// TokenRel is the relative-search trigger; Text holds the rest of
	// the input verbatim. Emitted only as the first significant token.
	TokenRel
)

// Token is one lexical unit with its byte offset in the input.
type Token struct {
	Kind   TokenKind
	Text   string
	Value  int
	Offset int
}

// relKeyword triggers relative search when it opens the query.
const relKeyword = "rel"

// Tokenize splits a query string into tokens. Whitespace separates
// tokens and is otherwise insignificant. Unterminated brackets, a
// proximity marker without an integer, and a morphology marker with an
// empty code string are tokenizer-level syntax errors.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	n := len(input)

	for i < n {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case unicode.IsSpace(r):
			i += size

		case r == '*':
			tokens = append(tokens, Token{Kind: TokenStar, Text: "*", Offset: i})
			i += size

		case r == '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Text: "+", Offset: i})
			i += size

		case r == '&':
			tokens = append(tokens, Token{Kind: TokenAmp, Text: "&", Offset: i})
			i += size

		case r == '[':
			end := strings.IndexByte(input[i:], ']')
			if end < 0 {
				return nil, &types.SyntaxError{
					Fragment: input[i:],
					Offset:   i,
					Reason:   "unterminated bracket",
				}
			}
			inner := input[i+1 : i+end]
			tokens = append(tokens, Token{Kind: TokenBracket, Text: inner, Offset: i})
			i += end + 1

		case r == '@':
			start := i + size
			j := start
			for j < n {
				cr, cs := utf8.DecodeRuneInString(input[j:])
				if !isWordRune(cr) {
					break
				}
				j += cs
			}
			if j == start {
				return nil, &types.SyntaxError{
					Fragment: "@",
					Offset:   i,
					Reason:   "morphology marker with empty code string",
				}
			}
			tokens = append(tokens, Token{Kind: TokenMorph, Text: input[start:j], Offset: i})
			i = j

		case isWordRune(r):
			start := i
			for i < n {
				cr, cs := utf8.DecodeRuneInString(input[i:])
				if !isWordRune(cr) {
					break
				}
				i += cs
			}
			word := input[start:i]

			tok, err := classifyWord(word, start)
			if err != nil {
				return nil, err
			}

			// The relative trigger is recognized only at the head of the
			// query; the remainder is a raw verse reference, not tokens.
			if tok.Kind == TokenWord && len(tokens) == 0 && word == relKeyword {
				return []Token{{
					Kind:   TokenRel,
					Text:   strings.TrimSpace(input[i:]),
					Offset: start,
				}}, nil
			}

			tokens = append(tokens, tok)

		default:
			return nil, &types.SyntaxError{
				Fragment: string(r),
				Offset:   i,
				Reason:   "unexpected character",
			}
		}
	}

	return tokens, nil
}

// classifyWord distinguishes proximity clauses from lexical words.
func classifyWord(word string, offset int) (Token, error) {
	if word != "W" && word != "w" && !isProximityWord(word) {
		return Token{Kind: TokenWord, Text: word, Offset: offset}, nil
	}

	digits := word[1:]
	if digits == "" {
		return Token{}, &types.SyntaxError{
			Fragment: word,
			Offset:   offset,
			Reason:   "proximity marker without a following integer",
		}
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return Token{}, &types.SyntaxError{
			Fragment: word,
			Offset:   offset,
			Reason:   "proximity distance is not an integer",
		}
	}
	return Token{Kind: TokenProximity, Text: word, Value: value, Offset: offset}, nil
}

// isProximityWord reports whether the word is W followed by digits only.
func isProximityWord(word string) bool {
	if len(word) < 2 || (word[0] != 'W' && word[0] != 'w') {
		return false
	}
	for i := 1; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}

// isWordRune reports whether r can appear inside a bare word. Unicode
// letters and combining diacritics keep polytonic Greek forms whole;
// digits admit book names like 1Cor and proximity integers.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || r == '\'' || r == '’' || r == 'ʼ'
}
