// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package books resolves book names and abbreviations to canonical book
// codes and parses free-text verse references. The registry is a fixed
// table built once at process start; lookups never mutate it.
package books

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/philologus/morphquery/pkg/types"
)

// Book is one registry entry.
type Book struct {
	// Code is the canonical two-digit book code used by word records.
	Code string

	// Name is the canonical display name.
	Name string

	// Abbrev is the preferred short form for references.
	Abbrev string

	// Corpus is the partition the book belongs to.
	Corpus types.Corpus

	// AltNames are additional accepted abbreviations (lowercase,
	// without trailing punctuation or internal spaces).
	AltNames []string
}

// Registry holds the book table and a normalized lookup index.
type Registry struct {
	books []Book
	index map[string]*Book
}

// NewRegistry builds the registry over the full NT and LXX book tables.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]*Book)}
	r.books = append(r.books, ntBooks...)
	r.books = append(r.books, lxxBooks...)
	for i := range r.books {
		b := &r.books[i]
		r.add(b.Name, b)
		r.add(b.Abbrev, b)
		for _, alt := range b.AltNames {
			r.add(alt, b)
		}
	}
	return r
}

func (r *Registry) add(name string, b *Book) {
	key := normalize(name)
	if key == "" {
		return
	}
	// First registration wins so NT books keep short forms like "re".
	if _, exists := r.index[key]; !exists {
		r.index[key] = b
	}
}

// normalize lowercases, strips trailing periods, and removes internal
// spaces so "1 Cor." and "1cor" resolve identically.
func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".")
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}

// Resolve maps a book name or abbreviation to its registry entry.
// Resolution is case-insensitive and trailing-punctuation-tolerant;
// names that do not resolve are a ResolutionError.
func (r *Registry) Resolve(name string) (Book, error) {
	b, ok := r.index[normalize(name)]
	if !ok {
		return Book{}, &types.ResolutionError{Token: name, Reason: "unknown book name"}
	}
	return *b, nil
}

// ByCode returns the entry for a canonical book code, preferring the
// given corpus when both corpora carry the code.
func (r *Registry) ByCode(code string, corpus types.Corpus) (Book, bool) {
	for i := range r.books {
		if r.books[i].Code == code && (corpus == "" || r.books[i].Corpus == corpus) {
			return r.books[i], true
		}
	}
	for i := range r.books {
		if r.books[i].Code == code {
			return r.books[i], true
		}
	}
	return Book{}, false
}

// All returns the full book table in canonical order.
func (r *Registry) All() []Book {
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out
}

// refPattern matches "Rom 8:1", "1 Cor 13:4" and similar forms after
// periods are removed.
var refPattern = regexp.MustCompile(`^([123]?\s*\p{L}+)\s+(\d+):(\d+)$`)

// ParseRef resolves a free-text verse reference like "Rom. 8:1" to a
// VerseRef. Malformed references and unknown books are a
// ResolutionError naming the input.
func (r *Registry) ParseRef(ref string) (types.VerseRef, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(ref, ".", ""))
	m := refPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return types.VerseRef{}, &types.ResolutionError{
			Token:  ref,
			Reason: "invalid verse reference: want <book> <chapter>:<verse>",
		}
	}

	book, err := r.Resolve(m[1])
	if err != nil {
		return types.VerseRef{}, err
	}

	chapter, _ := strconv.Atoi(m[2])
	verse, _ := strconv.Atoi(m[3])
	if chapter < 1 || verse < 1 {
		return types.VerseRef{}, &types.ResolutionError{
			Token:  ref,
			Reason: "chapter and verse must be positive",
		}
	}

	return types.VerseRef{BookCode: book.Code, Chapter: chapter, Verse: verse}, nil
}
