// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package morph maps single-character morphology codes to decoded
// attributes and back. Code spaces overlap across categories ("p" is
// present tense and also participle mood, "M" is middle voice and also
// imperative mood); decoding resolves the overlap by walking the
// categories in a fixed order and consuming at most one character
// position per category.
package morph

import (
	"strings"

	"github.com/philologus/morphquery/pkg/types"
)

// Category names one decoded attribute dimension.
type Category string

const (
	CatPOS    Category = "pos"
	CatTense  Category = "tense"
	CatVoice  Category = "voice"
	CatMood   Category = "mood"
	CatPerson Category = "person"
	CatCase   Category = "case"
	CatNumber Category = "number"
	CatGender Category = "gender"
)

// categoryTable maps code characters to attribute values for one
// category. Codes are case-sensitive.
type categoryTable struct {
	category Category
	codes    map[byte]string
}

// codeOrder is the fixed decode order. Changing it changes which
// category claims an ambiguous character, so it is part of the query
// language contract, not an implementation detail.
var codeOrder = []categoryTable{
	{CatPOS, map[byte]string{
		'N': "noun",
		'V': "verb",
		'J': "adjective", // J, not A, so "a" stays free for accusative/aorist
		'D': "adverb",
		'C': "conjunction",
		'P': "preposition",
		'R': "pronoun",
		'T': "particle",
		'I': "interjection",
	}},
	{CatTense, map[byte]string{
		'p': "present",
		'i': "imperfect",
		'f': "future",
		'a': "aorist",
		'r': "perfect",
		'l': "pluperfect",
	}},
	{CatVoice, map[byte]string{
		'A': "active",
		'M': "middle",
		'P': "passive",
	}},
	{CatMood, map[byte]string{
		'I': "indicative",
		'S': "subjunctive",
		'O': "optative",
		'M': "imperative",
		'N': "infinitive",
		'p': "participle",
	}},
	{CatPerson, map[byte]string{
		'1': "1st",
		'2': "2nd",
		'3': "3rd",
	}},
	{CatCase, map[byte]string{
		'n': "nominative",
		'g': "genitive",
		'd': "dative",
		'a': "accusative",
		'v': "vocative",
	}},
	{CatNumber, map[byte]string{
		's': "singular",
		'p': "plural",
	}},
	{CatGender, map[byte]string{
		'm': "masculine",
		'f': "feminine",
		'u': "neuter",
	}},
}

// Decode parses a contiguous code string into morphological attributes.
//
// The part of speech is claimed only by the first character, and only
// when it is uppercase; every later category scans left to right for
// the first unconsumed character in its code set. Each character
// position is consumed by at most one category. Any character left
// unconsumed after all categories is an unsupported code and a hard
// error; nothing is silently dropped.
func Decode(codes string) (types.Morph, error) {
	var m types.Morph
	if codes == "" {
		return m, nil
	}

	used := make([]bool, len(codes))

	first := codes[0]
	if first >= 'A' && first <= 'Z' {
		if val, ok := codeOrder[0].codes[first]; ok {
			m.POS = val
			used[0] = true
		}
	}

	for _, tab := range codeOrder[1:] {
		for i := 0; i < len(codes); i++ {
			if used[i] {
				continue
			}
			val, ok := tab.codes[codes[i]]
			if !ok {
				continue
			}
			used[i] = true
			setAttr(&m, tab.category, val)
			break
		}
	}

	for i := 0; i < len(codes); i++ {
		if !used[i] {
			return types.Morph{}, &types.ResolutionError{
				Token:  codes,
				Reason: "unsupported morphology code " + strings.ToValidUTF8(string(codes[i]), "?"),
			}
		}
	}

	return m, nil
}

// Encode renders attributes back into a code string in decode order.
// Encode(Decode(s)) reproduces a canonical form of s; Decode(Encode(m))
// reproduces m exactly.
func Encode(m types.Morph) string {
	var b strings.Builder
	for _, tab := range codeOrder {
		want := attr(m, tab.category)
		if want == "" {
			continue
		}
		for c, val := range tab.codes {
			if val == want {
				b.WriteByte(c)
				break
			}
		}
	}
	return b.String()
}

func setAttr(m *types.Morph, cat Category, val string) {
	switch cat {
	case CatPOS:
		m.POS = val
	case CatTense:
		m.Tense = val
	case CatVoice:
		m.Voice = val
	case CatMood:
		m.Mood = val
	case CatPerson:
		m.Person = val
	case CatCase:
		m.Case = val
	case CatNumber:
		m.Number = val
	case CatGender:
		m.Gender = val
	}
}

func attr(m types.Morph, cat Category) string {
	switch cat {
	case CatPOS:
		return m.POS
	case CatTense:
		return m.Tense
	case CatVoice:
		return m.Voice
	case CatMood:
		return m.Mood
	case CatPerson:
		return m.Person
	case CatCase:
		return m.Case
	case CatNumber:
		return m.Number
	case CatGender:
		return m.Gender
	}
	return ""
}
