// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across morphquery stages:
// word records, morphological attributes, verse references, structured
// word filters, and the error taxonomy.
package types

import "fmt"

// Corpus names a partition of the word store.
type Corpus string

const (
	CorpusNT  Corpus = "NT"
	CorpusLXX Corpus = "LXX"
)

// ParseCorpus converts a string to a Corpus, accepting any casing.
func ParseCorpus(s string) (Corpus, error) {
	switch s {
	case "NT", "nt", "Nt":
		return CorpusNT, nil
	case "LXX", "lxx", "Lxx":
		return CorpusLXX, nil
	}
	return "", fmt.Errorf("unknown corpus %q: use NT or LXX", s)
}

// Morph holds the decoded morphological attributes of a word. The zero
// value means "unconstrained" when used as a predicate; empty fields on
// a stored record mean the attribute does not apply to that word.
type Morph struct {
	POS    string `json:"pos,omitempty" yaml:"pos,omitempty"`
	Tense  string `json:"tense,omitempty" yaml:"tense,omitempty"`
	Voice  string `json:"voice,omitempty" yaml:"voice,omitempty"`
	Mood   string `json:"mood,omitempty" yaml:"mood,omitempty"`
	Person string `json:"person,omitempty" yaml:"person,omitempty"`
	Case   string `json:"case,omitempty" yaml:"case,omitempty"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Gender string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// IsZero reports whether no attribute is set.
func (m Morph) IsZero() bool {
	return m == Morph{}
}

// VerseRef identifies a single verse within a corpus.
type VerseRef struct {
	BookCode string `json:"book_code" yaml:"book_code"`
	Chapter  int    `json:"chapter" yaml:"chapter"`
	Verse    int    `json:"verse" yaml:"verse"`
}

// String formats the reference as "06 8:1". Display names come from the
// book registry; the raw form is for logs and stable ordering keys.
func (r VerseRef) String() string {
	return fmt.Sprintf("%s %d:%d", r.BookCode, r.Chapter, r.Verse)
}

// Less orders references by (book, chapter, verse) ascending.
func (r VerseRef) Less(o VerseRef) bool {
	if r.BookCode != o.BookCode {
		return r.BookCode < o.BookCode
	}
	if r.Chapter != o.Chapter {
		return r.Chapter < o.Chapter
	}
	return r.Verse < o.Verse
}

// WordRecord is one morphologically tagged word occurrence. Records are
// unique per (book, chapter, verse, position, corpus); positions are
// contiguous and ordered within a verse.
type WordRecord struct {
	BookCode  string `json:"book_code" yaml:"book_code"`
	Chapter   int    `json:"chapter" yaml:"chapter"`
	Verse     int    `json:"verse" yaml:"verse"`
	Position  int    `json:"position" yaml:"position"`
	Corpus    Corpus `json:"corpus" yaml:"corpus"`
	Surface   string `json:"surface" yaml:"surface"`
	Lemma     string `json:"lemma" yaml:"lemma"`
	MorphCode string `json:"morph_code,omitempty" yaml:"morph_code,omitempty"`
	Morph     Morph  `json:"morph" yaml:"morph"`
}

// Ref returns the verse the record belongs to.
func (w WordRecord) Ref() VerseRef {
	return VerseRef{BookCode: w.BookCode, Chapter: w.Chapter, Verse: w.Verse}
}

// WordFilter is a structured predicate over word records. Every set
// field is an equality constraint; set fields combine with AND. It is
// the only query surface the store exposes, so no caller ever builds
// SQL text.
type WordFilter struct {
	// Corpora restricts matches to the listed corpora. Required by the
	// executor's contract but optional at the store level.
	Corpora []Corpus

	// BookCodes restricts matches to the listed books.
	BookCodes []string

	// Chapter and Verse restrict to one chapter or verse. Zero means any.
	Chapter int
	Verse   int

	// Lexeme matches records whose lemma OR surface form equals the
	// value, case-sensitive on the source script. This is the lexical
	// predicate of a literal search term.
	Lexeme string

	// Lemma and Surface match a single column exactly.
	Lemma   string
	Surface string

	// Lemmas matches records whose lemma is any of the listed values.
	Lemmas []string

	// MorphCodePrefix matches raw morphology codes by prefix (articles
	// are tagged RA in the source data).
	MorphCodePrefix string

	// Morph constrains each set decoded attribute.
	Morph Morph
}
