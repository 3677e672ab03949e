// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/philologus/morphquery/pkg/types"
)

// Parsed is a parsed query: either a Standard search or a Relative
// search trigger. Tagged variants instead of one struct with optional
// fields, so callers switch on the concrete type.
type Parsed interface {
	parsedQuery()
}

// Standard is a lexical/morphological search over the word store.
type Standard struct {
	// BookCodes restricts the search to the listed books. Empty means
	// the whole selected corpus (the "*" scope or no scope clause).
	BookCodes []string

	// Terms is the ordered term sequence, length >= 1.
	Terms []Term

	// Proximity is the maximum word-position distance between
	// consecutive terms. Zero means unset: strict adjacency.
	Proximity int
}

func (*Standard) parsedQuery() {}

// Distance returns the effective proximity bound, defaulting to 1.
func (q *Standard) Distance() int {
	if q.Proximity > 0 {
		return q.Proximity
	}
	return 1
}

// Relative is a relative-search trigger carrying the raw verse
// reference text for the relative engine to resolve.
type Relative struct {
	Reference string
}

func (*Relative) parsedQuery() {}

// Term is one search term: a literal lexeme or a special token, plus
// decoded morphological constraints. Immutable once parsed.
type Term struct {
	// Lexeme is the literal form, matched against lemma or surface.
	// Empty for special-token terms.
	Lexeme string

	// Special is the special-token name, empty for literal terms.
	Special string

	// Constraints are the decoded morphological equality constraints.
	Constraints types.Morph

	// MorphCodePrefix constrains the raw code by prefix ([article]).
	MorphCodePrefix string
}

// Filter renders the term as a structured word-store predicate.
func (t Term) Filter() types.WordFilter {
	return types.WordFilter{
		Lexeme:          t.Lexeme,
		Morph:           t.Constraints,
		MorphCodePrefix: t.MorphCodePrefix,
	}
}

// String renders the term back in query syntax, for diagnostics.
func (t Term) String() string {
	var b strings.Builder
	if t.Special != "" {
		b.WriteString("[" + t.Special + "]")
	} else {
		b.WriteString(t.Lexeme)
	}
	return b.String()
}
