// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relative

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/pkg/types"
)

// FormatTable writes the source lemma list and the ranked verses as a
// human-readable table to w.
func FormatTable(r Result, reg *books.Registry, w io.Writer) {
	fmt.Fprintf(w, "Source: %s\n\n", displayRef(reg, r.Source, r.Corpus))

	fmt.Fprintf(w, "%-20s  %-12s  %-6s  %s\n", "Lemma", "POS", "Weight", "Included")
	fmt.Fprintln(w, strings.Repeat("-", 52))
	for _, l := range r.Lemmas {
		included := ""
		if l.Included {
			included = "yes"
		}
		fmt.Fprintf(w, "%-20s  %-12s  %-6d  %s\n", l.Lemma, l.POS, l.Weight, included)
	}

	if len(r.Results) == 0 {
		fmt.Fprintln(w, "\nNo similar verses found.")
		return
	}

	fmt.Fprintf(w, "\n%-4s  %-16s  %-6s  %-5s  %-7s  %s\n",
		"Rank", "Reference", "Corpus", "Score", "Matches", "Lemmas")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for i, sv := range r.Results {
		lemmas := strings.Join(sv.MatchedLemmas, " ")
		if len(lemmas) > 40 {
			lemmas = lemmas[:37] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-6s  %-5d  %-7d  %s\n",
			i+1, displayRef(reg, sv.Ref, sv.Corpus), sv.Corpus, sv.Score, sv.MatchCount, lemmas)
	}

	fmt.Fprintf(w, "\n%d verses", len(r.Results))
	if r.Limited {
		fmt.Fprintf(w, " (truncated at %d)", len(r.Results))
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func displayRef(reg *books.Registry, ref types.VerseRef, corpus types.Corpus) string {
	if book, ok := reg.ByCode(ref.BookCode, corpus); ok {
		return fmt.Sprintf("%s %d:%d", book.Abbrev, ref.Chapter, ref.Verse)
	}
	return ref.String()
}
