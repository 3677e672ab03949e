// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philologus/morphquery/pkg/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		codes string
		want  types.Morph
	}{
		{
			name:  "empty string is unconstrained",
			codes: "",
			want:  types.Morph{},
		},
		{
			name:  "noun nominative singular",
			codes: "Nns",
			want:  types.Morph{POS: "noun", Case: "nominative", Number: "singular"},
		},
		{
			name:  "full verb parsing",
			codes: "VaAI3s",
			want: types.Morph{
				POS: "verb", Tense: "aorist", Voice: "active",
				Mood: "indicative", Person: "3rd", Number: "singular",
			},
		},
		{
			name:  "verb parsing without pos prefix",
			codes: "aAI3s",
			want: types.Morph{
				Tense: "aorist", Voice: "active",
				Mood: "indicative", Person: "3rd", Number: "singular",
			},
		},
		{
			name:  "genitive singular feminine",
			codes: "gsf",
			want:  types.Morph{Case: "genitive", Number: "singular", Gender: "feminine"},
		},
		{
			name:  "doubled M is middle imperative",
			codes: "MM",
			want:  types.Morph{Voice: "middle", Mood: "imperative"},
		},
		{
			name:  "doubled p is present participle",
			codes: "pp",
			want:  types.Morph{Tense: "present", Mood: "participle"},
		},
		{
			name:  "single p is present not participle",
			codes: "p",
			want:  types.Morph{Tense: "present"},
		},
		{
			name:  "pos only from uppercase first character",
			codes: "V",
			want:  types.Morph{POS: "verb"},
		},
		{
			name:  "lowercase first character is not a pos",
			codes: "n",
			want:  types.Morph{Case: "nominative"},
		},
		{
			name:  "adjective uses J",
			codes: "Jnsm",
			want:  types.Morph{POS: "adjective", Case: "nominative", Number: "singular", Gender: "masculine"},
		},
		{
			name:  "tripled p is present participle plural",
			codes: "ppp",
			want:  types.Morph{Tense: "present", Mood: "participle", Number: "plural"},
		},
		{
			name:  "a after pos is tense then case",
			codes: "aa",
			want:  types.Morph{Tense: "aorist", Case: "accusative"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.codes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnsupportedCode(t *testing.T) {
	tests := []struct {
		name  string
		codes string
	}{
		{"unknown letter", "Nnsz"},
		{"second uppercase pos has no home", "NV"},
		{"digit outside person range", "4"},
		{"leftover duplicate case", "nn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.codes)
			require.Error(t, err)
			var resErr *types.ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.codes, resErr.Token)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Every decodable string must survive Encode(Decode(s)) -> Decode
	// unchanged in meaning.
	for _, codes := range []string{"Nns", "VaAI3s", "gsf", "MM", "pp", "ppp", "Jnsm", "D"} {
		decoded, err := Decode(codes)
		require.NoError(t, err, codes)

		encoded := Encode(decoded)
		again, err := Decode(encoded)
		require.NoError(t, err, encoded)
		assert.Equal(t, decoded, again, "round trip of %q via %q", codes, encoded)
	}
}

func TestLookupSpecial(t *testing.T) {
	tok, err := LookupSpecial("article")
	require.NoError(t, err)
	assert.Equal(t, "pronoun", tok.POS)
	assert.Equal(t, "RA", tok.MorphCodePrefix)

	tok, err = LookupSpecial("verb")
	require.NoError(t, err)
	assert.Equal(t, "verb", tok.POS)
	assert.Empty(t, tok.MorphCodePrefix)

	_, err = LookupSpecial("gerund")
	var resErr *types.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "[gerund]", resErr.Token)
}

func TestSpecialTokenNamesAllResolve(t *testing.T) {
	for _, name := range SpecialTokenNames() {
		_, err := LookupSpecial(name)
		assert.NoError(t, err, name)
	}
}
