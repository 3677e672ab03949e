// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package executor runs parsed standard queries against a word-record
// provider: a filtered scan for single terms, a positional join within
// verses for multi-term queries.
package executor

import (
	"context"
	"sort"

	"github.com/philologus/morphquery/internal/query"
	"github.com/philologus/morphquery/pkg/types"
)

// DefaultMaxResults caps the number of verse groups returned.
const DefaultMaxResults = 500

// Provider is the read-only word-record source. The store satisfies it;
// tests use in-memory fakes.
type Provider interface {
	Words(ctx context.Context, f types.WordFilter) ([]types.WordRecord, error)
}

// Options configures one execution.
type Options struct {
	// Corpora is the corpus selection. Empty is a caller error.
	Corpora []types.Corpus

	// MaxResults caps verse groups. Zero uses DefaultMaxResults.
	MaxResults int
}

// VerseMatch is one verse-level result with the records that matched.
type VerseMatch struct {
	Ref    types.VerseRef     `json:"ref" yaml:"ref"`
	Corpus types.Corpus       `json:"corpus" yaml:"corpus"`
	Words  []types.WordRecord `json:"words" yaml:"words"`
}

// Output is the executed query result.
type Output struct {
	Matches []VerseMatch `json:"matches" yaml:"matches"`
	Limited bool         `json:"limited" yaml:"limited"`
}

// Run executes a standard query. Results are ordered by (book, chapter,
// verse, first matched position) ascending and capped at MaxResults
// verse groups with Limited set when the cap is hit.
func Run(ctx context.Context, q *query.Standard, p Provider, opts Options) (Output, error) {
	if len(opts.Corpora) == 0 {
		return Output{}, &types.ConfigurationError{Reason: "no corpus selected"}
	}
	max := opts.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}

	if len(q.Terms) == 1 {
		return runSingle(ctx, q, p, opts.Corpora, max)
	}
	return runJoin(ctx, q, p, opts.Corpora, max)
}

// runSingle is a direct filtered scan grouped into verses.
func runSingle(ctx context.Context, q *query.Standard, p Provider, corpora []types.Corpus, max int) (Output, error) {
	f := q.Terms[0].Filter()
	f.Corpora = corpora
	f.BookCodes = q.BookCodes

	records, err := p.Words(ctx, f)
	if err != nil {
		return Output{}, err
	}

	var out Output
	for _, rec := range records {
		n := len(out.Matches)
		if n > 0 && sameVerse(out.Matches[n-1], rec) {
			out.Matches[n-1].Words = append(out.Matches[n-1].Words, rec)
			continue
		}
		if n == max {
			out.Limited = true
			break
		}
		out.Matches = append(out.Matches, VerseMatch{
			Ref:    rec.Ref(),
			Corpus: rec.Corpus,
			Words:  []types.WordRecord{rec},
		})
	}
	return out, nil
}

// runJoin matches multi-term queries by chaining term occurrences
// within a verse: each subsequent term must occur after the previous
// match at a position offset of at least 1 and at most the proximity
// distance. A verse qualifies once; all records from qualifying chains
// are reported.
func runJoin(ctx context.Context, q *query.Standard, p Provider, corpora []types.Corpus, max int) (Output, error) {
	first := q.Terms[0].Filter()
	first.Corpora = corpora
	first.BookCodes = q.BookCodes

	anchors, err := p.Words(ctx, first)
	if err != nil {
		return Output{}, err
	}

	distance := q.Distance()
	verses := newVerseCache(p)

	var out Output
	for _, anchor := range anchors {
		n := len(out.Matches)
		inCurrent := n > 0 && sameVerse(out.Matches[n-1], anchor)

		verse, err := verses.load(ctx, anchor)
		if err != nil {
			return Output{}, err
		}

		chain, ok := matchChain(anchor, q.Terms[1:], verse, distance)
		if !ok {
			continue
		}

		if inCurrent {
			out.Matches[n-1].Words = mergeWords(out.Matches[n-1].Words, chain)
			continue
		}
		if n == max {
			out.Limited = true
			break
		}
		out.Matches = append(out.Matches, VerseMatch{
			Ref:    anchor.Ref(),
			Corpus: anchor.Corpus,
			Words:  chain,
		})
	}
	return out, nil
}

// matchChain searches for a monotonic position sequence satisfying the
// remaining terms, each within (last, last+distance] of the previous
// match. Candidates are tried in position order with backtracking, so a
// chain is found whenever one exists.
func matchChain(anchor types.WordRecord, rest []query.Term, verse []types.WordRecord, distance int) ([]types.WordRecord, bool) {
	chain := []types.WordRecord{anchor}
	if extendChain(&chain, rest, verse, anchor.Position, distance) {
		return chain, true
	}
	return nil, false
}

func extendChain(chain *[]types.WordRecord, rest []query.Term, verse []types.WordRecord, last, distance int) bool {
	if len(rest) == 0 {
		return true
	}
	for _, rec := range verse {
		if rec.Position <= last || rec.Position > last+distance {
			continue
		}
		if !Matches(rest[0], rec) {
			continue
		}
		*chain = append(*chain, rec)
		if extendChain(chain, rest[1:], verse, rec.Position, distance) {
			return true
		}
		*chain = (*chain)[:len(*chain)-1]
	}
	return false
}

// Matches reports whether a record satisfies all of the term's lexical
// and morphological predicates. The lexical predicate is lemma equality
// OR surface-form equality, case-sensitive on the source script, so
// every inflected form of a lemma matches.
func Matches(t query.Term, rec types.WordRecord) bool {
	if t.Lexeme != "" && rec.Lemma != t.Lexeme && rec.Surface != t.Lexeme {
		return false
	}
	if t.MorphCodePrefix != "" && !hasPrefix(rec.MorphCode, t.MorphCodePrefix) {
		return false
	}
	c := t.Constraints
	m := rec.Morph
	switch {
	case c.POS != "" && m.POS != c.POS,
		c.Tense != "" && m.Tense != c.Tense,
		c.Voice != "" && m.Voice != c.Voice,
		c.Mood != "" && m.Mood != c.Mood,
		c.Person != "" && m.Person != c.Person,
		c.Case != "" && m.Case != c.Case,
		c.Number != "" && m.Number != c.Number,
		c.Gender != "" && m.Gender != c.Gender:
		return false
	}
	return true
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func sameVerse(m VerseMatch, rec types.WordRecord) bool {
	return m.Ref == rec.Ref() && m.Corpus == rec.Corpus
}

// mergeWords unions two record lists, keeping position order and
// dropping duplicates from overlapping chains.
func mergeWords(existing, extra []types.WordRecord) []types.WordRecord {
	seen := make(map[int]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Position] = true
	}
	for _, rec := range extra {
		if !seen[rec.Position] {
			existing = append(existing, rec)
			seen[rec.Position] = true
		}
	}
	sort.Slice(existing, func(i, j int) bool {
		return existing[i].Position < existing[j].Position
	})
	return existing
}

// verseCache memoizes full-verse loads so overlapping anchors in one
// verse hit the provider once.
type verseCache struct {
	p     Provider
	key   string
	words []types.WordRecord
}

func newVerseCache(p Provider) *verseCache {
	return &verseCache{p: p}
}

func (c *verseCache) load(ctx context.Context, anchor types.WordRecord) ([]types.WordRecord, error) {
	key := string(anchor.Corpus) + "/" + anchor.Ref().String()
	if key == c.key {
		return c.words, nil
	}
	words, err := c.p.Words(ctx, types.WordFilter{
		Corpora:   []types.Corpus{anchor.Corpus},
		BookCodes: []string{anchor.BookCode},
		Chapter:   anchor.Chapter,
		Verse:     anchor.Verse,
	})
	if err != nil {
		return nil, err
	}
	c.key = key
	c.words = words
	return words, nil
}
