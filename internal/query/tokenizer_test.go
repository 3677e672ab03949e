// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philologus/morphquery/pkg/types"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "star scope with word",
			input: "*λόγος",
			want:  []TokenKind{TokenStar, TokenWord},
		},
		{
			name:  "word with morph suffix",
			input: "*λόγος@Nns",
			want:  []TokenKind{TokenStar, TokenWord, TokenMorph},
		},
		{
			name:  "book scope and special token",
			input: "[Matt., Mk] + [verb]@pAI3s",
			want:  []TokenKind{TokenBracket, TokenPlus, TokenBracket, TokenMorph},
		},
		{
			name:  "two terms with proximity",
			input: "*[article] & λόγος W2",
			want:  []TokenKind{TokenStar, TokenBracket, TokenAmp, TokenWord, TokenProximity},
		},
		{
			name:  "lowercase proximity marker",
			input: "α & β w3",
			want:  []TokenKind{TokenWord, TokenAmp, TokenWord, TokenProximity},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []TokenKind{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := Tokenize("[Matt, Mk] + λόγος@Nns W12")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, "Matt, Mk", tokens[0].Text)
	assert.Equal(t, "λόγος", tokens[2].Text)
	assert.Equal(t, "Nns", tokens[3].Text)
	assert.Equal(t, 12, tokens[4].Value)
}

func TestTokenizeRelative(t *testing.T) {
	tokens, err := Tokenize("rel Rom. 8:1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenRel, tokens[0].Kind)
	assert.Equal(t, "Rom. 8:1", tokens[0].Text)

	// "rel" only triggers at the head of the query.
	tokens, err = Tokenize("*rel")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenWord, tokens[1].Kind)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"unterminated bracket", "[Matt + λόγος", "unterminated bracket"},
		{"empty morph suffix", "λόγος@ Nns", "morphology marker with empty code string"},
		{"bare proximity marker", "α & β W", "proximity marker without a following integer"},
		{"unexpected character", "λόγος %", "unexpected character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			var synErr *types.SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.reason, synErr.Reason)
		})
	}
}

func TestTokenizeKeepsPolytonicFormsWhole(t *testing.T) {
	// Combining diacritics and apostrophes stay inside one word token.
	tokens, err := Tokenize("ἀλλ’ ἐγώ")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "ἀλλ’", tokens[0].Text)
	assert.Equal(t, "ἐγώ", tokens[1].Text)
}
