// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package executor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/philologus/morphquery/internal/books"
)

// FormatTable writes matches as a human-readable table to w.
func FormatTable(out Output, reg *books.Registry, w io.Writer) {
	if len(out.Matches) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-6s  %-5s  %s\n",
		"Rank", "Reference", "Corpus", "Words", "Matched")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, m := range out.Matches {
		ref := displayRef(reg, m)
		var forms []string
		for _, rec := range m.Words {
			forms = append(forms, rec.Surface)
		}
		matched := strings.Join(forms, " ")
		if len(matched) > 48 {
			matched = matched[:45] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-6s  %-5d  %s\n",
			i+1, ref, m.Corpus, len(m.Words), matched)
	}

	fmt.Fprintf(w, "\n%d verses", len(out.Matches))
	if out.Limited {
		fmt.Fprintf(w, " (truncated at %d)", len(out.Matches))
	}
	fmt.Fprintln(w)
}

// FormatJSON writes matches as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func displayRef(reg *books.Registry, m VerseMatch) string {
	if book, ok := reg.ByCode(m.Ref.BookCode, m.Corpus); ok {
		return fmt.Sprintf("%s %d:%d", book.Abbrev, m.Ref.Chapter, m.Ref.Verse)
	}
	return m.Ref.String()
}
