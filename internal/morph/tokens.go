// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import "github.com/philologus/morphquery/pkg/types"

// SpecialToken is a named alias for a morphological predicate, written
// [name] in the query language. Most tokens pin the part of speech;
// [article] additionally matches on the raw code prefix because the
// source data tags articles as pronouns with codes starting RA.
type SpecialToken struct {
	Name            string
	POS             string
	MorphCodePrefix string
}

var specialTokens = map[string]SpecialToken{
	"article":     {Name: "article", POS: "pronoun", MorphCodePrefix: "RA"},
	"noun":        {Name: "noun", POS: "noun"},
	"verb":        {Name: "verb", POS: "verb"},
	"adjective":   {Name: "adjective", POS: "adjective"},
	"adverb":      {Name: "adverb", POS: "adverb"},
	"preposition": {Name: "preposition", POS: "preposition"},
	"conjunction": {Name: "conjunction", POS: "conjunction"},
	"pronoun":     {Name: "pronoun", POS: "pronoun"},
	"particle":    {Name: "particle", POS: "particle"},
}

// LookupSpecial resolves a special-token name. Unknown names are a
// ResolutionError, never a silent skip.
func LookupSpecial(name string) (SpecialToken, error) {
	tok, ok := specialTokens[name]
	if !ok {
		return SpecialToken{}, &types.ResolutionError{
			Token:  "[" + name + "]",
			Reason: "unknown special token",
		}
	}
	return tok, nil
}

// SpecialTokenNames lists the recognized token names for help output.
func SpecialTokenNames() []string {
	return []string{
		"article", "noun", "verb", "adjective", "adverb",
		"preposition", "conjunction", "pronoun", "particle",
	}
}
