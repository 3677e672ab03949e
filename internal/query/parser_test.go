// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/pkg/types"
)

func parseStandard(t *testing.T, input string) *Standard {
	t.Helper()
	parsed, err := Parse(input, books.NewRegistry())
	require.NoError(t, err)
	q, ok := parsed.(*Standard)
	require.True(t, ok, "Parse(%q) = %T, want *Standard", input, parsed)
	return q
}

func TestParseSingleTerm(t *testing.T) {
	q := parseStandard(t, "*λόγος")
	assert.Empty(t, q.BookCodes)
	require.Len(t, q.Terms, 1)
	assert.Equal(t, "λόγος", q.Terms[0].Lexeme)
	assert.True(t, q.Terms[0].Constraints.IsZero())
}

func TestParseMorphSuffix(t *testing.T) {
	q := parseStandard(t, "*λόγος@Nns")
	require.Len(t, q.Terms, 1)
	assert.Equal(t, types.Morph{POS: "noun", Case: "nominative", Number: "singular"},
		q.Terms[0].Constraints)
}

func TestParseBookScope(t *testing.T) {
	q := parseStandard(t, "[Matt., Mk, Lk] + [verb]@pAI3s")
	assert.Equal(t, []string{"01", "02", "03"}, q.BookCodes)
	require.Len(t, q.Terms, 1)
	assert.Equal(t, "verb", q.Terms[0].Special)
	assert.Equal(t, types.Morph{
		POS: "verb", Tense: "present", Voice: "active",
		Mood: "indicative", Person: "3rd", Number: "singular",
	}, q.Terms[0].Constraints)
}

func TestParseSpecialTokenWithoutScope(t *testing.T) {
	// A leading bracket with no "+" is the first term, not a scope.
	q := parseStandard(t, "[article] & λόγος")
	assert.Empty(t, q.BookCodes)
	require.Len(t, q.Terms, 2)
	assert.Equal(t, "article", q.Terms[0].Special)
	assert.Equal(t, "pronoun", q.Terms[0].Constraints.POS)
	assert.Equal(t, "RA", q.Terms[0].MorphCodePrefix)
	assert.Equal(t, "λόγος", q.Terms[1].Lexeme)
}

func TestParseProximity(t *testing.T) {
	q := parseStandard(t, "*[article] & λόγος W2")
	assert.Equal(t, 2, q.Proximity)
	assert.Equal(t, 2, q.Distance())

	// Unset proximity means strict adjacency.
	q = parseStandard(t, "*[article] & λόγος")
	assert.Equal(t, 0, q.Proximity)
	assert.Equal(t, 1, q.Distance())
}

func TestParseSpecialTokenKeepsPOSOverSuffix(t *testing.T) {
	// [article] decodes its suffix but keeps the token's part of speech.
	q := parseStandard(t, "*[article]@gsf")
	require.Len(t, q.Terms, 1)
	assert.Equal(t, types.Morph{
		POS: "pronoun", Case: "genitive", Number: "singular", Gender: "feminine",
	}, q.Terms[0].Constraints)
	assert.Equal(t, "RA", q.Terms[0].MorphCodePrefix)
}

func TestParseRelative(t *testing.T) {
	parsed, err := Parse("rel Rom. 8:1", books.NewRegistry())
	require.NoError(t, err)
	rel, ok := parsed.(*Relative)
	require.True(t, ok)
	assert.Equal(t, "Rom. 8:1", rel.Reference)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty query", ""},
		{"scope without terms", "*"},
		{"empty book scope", "[] + λόγος"},
		{"zero proximity", "α & β W0"},
		{"trailing token", "*λόγος extra & junk"},
		{"pos contradiction", "*[verb]@Nns"},
		{"dangling amp", "*λόγος &"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, books.NewRegistry())
			var synErr *types.SyntaxError
			require.ErrorAs(t, err, &synErr, "Parse(%q)", tt.input)
		})
	}
}

func TestParseResolutionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown book", "[Enoch] + λόγος"},
		{"unknown special token", "*[gerund]"},
		{"unsupported morph code", "*λόγος@Nz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, books.NewRegistry())
			var resErr *types.ResolutionError
			require.ErrorAs(t, err, &resErr, "Parse(%q)", tt.input)
		})
	}
}

func TestTermFilter(t *testing.T) {
	q := parseStandard(t, "*λόγος@Nns")
	f := q.Terms[0].Filter()
	assert.Equal(t, "λόγος", f.Lexeme)
	assert.Equal(t, "noun", f.Morph.POS)
	assert.Empty(t, f.MorphCodePrefix)
}
