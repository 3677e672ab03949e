// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relative ranks corpus verses by weighted lemma overlap with a
// source verse. The caller owns the inclusion set: re-scoring is a pure
// function of (source verse, inclusion set, corpus selection), so the
// engine keeps no state between calls.
package relative

import (
	"context"
	"sort"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/pkg/types"
)

// DefaultMaxResults caps the ranked verse list.
const DefaultMaxResults = 100

// Provider is the read-only word-record source.
type Provider interface {
	Words(ctx context.Context, f types.WordFilter) ([]types.WordRecord, error)
}

// Engine scores verses against a source verse's vocabulary.
type Engine struct {
	provider Provider
	registry *books.Registry
	weights  map[string]int
	fallback int
	max      int
}

// NewEngine builds an engine with the given salience weights. A nil
// weight map uses the stock partition; fallback weighs parts of speech
// the map does not classify.
func NewEngine(p Provider, reg *books.Registry, cfg types.RelativeConfig) *Engine {
	weights := cfg.Weights
	if weights == nil {
		weights = types.DefaultRelativeWeights()
	}
	fallback := cfg.DefaultWeight
	if fallback <= 0 {
		fallback = 1
	}
	max := cfg.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	return &Engine{provider: p, registry: reg, weights: weights, fallback: fallback, max: max}
}

// LemmaEntry is one deduplicated source-verse lemma with its weight and
// inclusion flag.
type LemmaEntry struct {
	Lemma    string `json:"lemma" yaml:"lemma"`
	POS      string `json:"pos" yaml:"pos"`
	Weight   int    `json:"weight" yaml:"weight"`
	Included bool   `json:"included" yaml:"included"`
}

// ScoredVerse is one ranked candidate.
type ScoredVerse struct {
	Ref           types.VerseRef `json:"ref" yaml:"ref"`
	Corpus        types.Corpus   `json:"corpus" yaml:"corpus"`
	Score         int            `json:"score" yaml:"score"`
	MatchCount    int            `json:"match_count" yaml:"match_count"`
	MatchedLemmas []string       `json:"matched_lemmas" yaml:"matched_lemmas"`
}

// Result is a complete relative-search response.
type Result struct {
	Source  types.VerseRef `json:"source" yaml:"source"`
	Corpus  types.Corpus   `json:"corpus" yaml:"corpus"`
	Lemmas  []LemmaEntry   `json:"lemmas" yaml:"lemmas"`
	Results []ScoredVerse  `json:"results" yaml:"results"`
	Limited bool           `json:"limited" yaml:"limited"`
}

// Search resolves the reference, extracts and weights the source
// verse's lemmas, and ranks all other verses in the selected corpora by
// weighted lemma overlap.
//
// included is the caller's inclusion set: nil means all lemmas (the
// initial search); an empty non-nil set is a ConfigurationError; any
// other set is respected exactly, with no implicit re-inclusion.
func (e *Engine) Search(ctx context.Context, reference string, corpora []types.Corpus, included []string) (Result, error) {
	if len(corpora) == 0 {
		return Result{}, &types.ConfigurationError{Reason: "no corpus selected"}
	}
	if included != nil && len(included) == 0 {
		return Result{}, &types.ConfigurationError{Reason: "relative-search inclusion set is empty"}
	}

	ref, err := e.registry.ParseRef(reference)
	if err != nil {
		return Result{}, err
	}

	sourceWords, err := e.provider.Words(ctx, types.WordFilter{
		BookCodes: []string{ref.BookCode},
		Chapter:   ref.Chapter,
		Verse:     ref.Verse,
	})
	if err != nil {
		return Result{}, err
	}
	if len(sourceWords) == 0 {
		return Result{}, &types.ResolutionError{Token: reference, Reason: "verse not found"}
	}

	result := Result{Source: ref, Corpus: sourceWords[0].Corpus}
	result.Lemmas = e.dedupe(sourceWords, included)

	includedLemmas := make(map[string]int)
	for _, entry := range result.Lemmas {
		if entry.Included {
			includedLemmas[entry.Lemma] = entry.Weight
		}
	}
	if len(includedLemmas) == 0 {
		return Result{}, &types.ConfigurationError{
			Reason: "inclusion set matches no lemma of the source verse",
		}
	}

	scored, limited, err := e.score(ctx, ref, corpora, includedLemmas)
	if err != nil {
		return Result{}, err
	}
	result.Results = scored
	result.Limited = limited
	return result, nil
}

// dedupe collapses the verse's words to one entry per lemma, keeping
// the first-seen part of speech for the weight lookup. Entries are
// ordered by weight descending, then lemma, for stable display.
func (e *Engine) dedupe(words []types.WordRecord, included []string) []LemmaEntry {
	includeAll := included == nil
	wanted := make(map[string]bool, len(included))
	for _, l := range included {
		wanted[l] = true
	}

	seen := make(map[string]bool)
	var entries []LemmaEntry
	for _, w := range words {
		if w.Lemma == "" || seen[w.Lemma] {
			continue
		}
		seen[w.Lemma] = true
		entries = append(entries, LemmaEntry{
			Lemma:    w.Lemma,
			POS:      w.Morph.POS,
			Weight:   e.weight(w.Morph.POS),
			Included: includeAll || wanted[w.Lemma],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Lemma < entries[j].Lemma
	})
	return entries
}

func (e *Engine) weight(pos string) int {
	if w, ok := e.weights[pos]; ok {
		return w
	}
	return e.fallback
}

// score sums included-lemma weights per candidate verse: presence only,
// repeats within a candidate do not count twice. The source verse is
// excluded. Rank is score descending, ties by reference ascending.
func (e *Engine) score(ctx context.Context, source types.VerseRef, corpora []types.Corpus, included map[string]int) ([]ScoredVerse, bool, error) {
	lemmas := make([]string, 0, len(included))
	for l := range included {
		lemmas = append(lemmas, l)
	}
	sort.Strings(lemmas)

	records, err := e.provider.Words(ctx, types.WordFilter{
		Corpora: corpora,
		Lemmas:  lemmas,
	})
	if err != nil {
		return nil, false, err
	}

	type key struct {
		ref    types.VerseRef
		corpus types.Corpus
	}
	matched := make(map[key]map[string]bool)
	var order []key
	for _, rec := range records {
		k := key{rec.Ref(), rec.Corpus}
		if k.ref == source {
			continue
		}
		set, ok := matched[k]
		if !ok {
			set = make(map[string]bool)
			matched[k] = set
			order = append(order, k)
		}
		set[rec.Lemma] = true
	}

	scored := make([]ScoredVerse, 0, len(order))
	for _, k := range order {
		var sv ScoredVerse
		sv.Ref = k.ref
		sv.Corpus = k.corpus
		for _, lemma := range lemmas {
			if matched[k][lemma] {
				sv.Score += included[lemma]
				sv.MatchCount++
				sv.MatchedLemmas = append(sv.MatchedLemmas, lemma)
			}
		}
		scored = append(scored, sv)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Ref != scored[j].Ref {
			return scored[i].Ref.Less(scored[j].Ref)
		}
		return scored[i].Corpus < scored[j].Corpus
	})

	limited := false
	if len(scored) > e.max {
		scored = scored[:e.max]
		limited = true
	}
	return scored, limited, nil
}
