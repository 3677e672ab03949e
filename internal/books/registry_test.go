// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"errors"
	"testing"

	"github.com/philologus/morphquery/pkg/types"
)

// --- Resolve ---

func TestResolve(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"canonical name", "Romans", "06"},
		{"abbreviation", "Rom", "06"},
		{"trailing period", "Rom.", "06"},
		{"case insensitive", "rOmAnS", "06"},
		{"alt name", "ro", "06"},
		{"numbered book no space", "1Cor", "07"},
		{"numbered book with space", "1 Cor", "07"},
		{"numbered book spaced and dotted", "1 Cor.", "07"},
		{"nt wins short form over lxx", "Re", "27"},
		{"lxx book", "Gen", "40"},
		{"lxx alt name", "Dt", "44"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := reg.Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.input, err)
			}
			if b.Code != tt.wantCode {
				t.Errorf("Resolve(%q).Code = %s, want %s", tt.input, b.Code, tt.wantCode)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("Enoch")
	var resErr *types.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve(Enoch) error = %v, want ResolutionError", err)
	}
	if resErr.Token != "Enoch" {
		t.Errorf("Token = %q, want Enoch", resErr.Token)
	}
}

// --- ByCode ---

func TestByCode(t *testing.T) {
	reg := NewRegistry()

	b, ok := reg.ByCode("06", types.CorpusNT)
	if !ok || b.Name != "Romans" {
		t.Errorf("ByCode(06, NT) = %+v, %v", b, ok)
	}

	b, ok = reg.ByCode("40", types.CorpusLXX)
	if !ok || b.Name != "Genesis" {
		t.Errorf("ByCode(40, LXX) = %+v, %v", b, ok)
	}

	// Wrong corpus still falls back to the only book carrying the code.
	b, ok = reg.ByCode("40", types.CorpusNT)
	if !ok || b.Name != "Genesis" {
		t.Errorf("ByCode(40, NT) fallback = %+v, %v", b, ok)
	}

	if _, ok := reg.ByCode("99", types.CorpusNT); ok {
		t.Error("ByCode(99) = ok, want miss")
	}
}

// --- ParseRef ---

func TestParseRef(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name  string
		input string
		want  types.VerseRef
	}{
		{"dotted abbreviation", "Rom. 8:1", types.VerseRef{BookCode: "06", Chapter: 8, Verse: 1}},
		{"plain", "John 3:16", types.VerseRef{BookCode: "04", Chapter: 3, Verse: 16}},
		{"numbered book", "1 Cor 13:4", types.VerseRef{BookCode: "07", Chapter: 13, Verse: 4}},
		{"lxx", "Gen 1:1", types.VerseRef{BookCode: "40", Chapter: 1, Verse: 1}},
		{"surrounding whitespace", "  Rev 22:21  ", types.VerseRef{BookCode: "27", Chapter: 22, Verse: 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.ParseRef(tt.input)
			if err != nil {
				t.Fatalf("ParseRef(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRef(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRefErrors(t *testing.T) {
	reg := NewRegistry()

	for _, input := range []string{
		"",
		"Rom",
		"Rom 8",
		"Rom 8:",
		"8:1",
		"Enoch 1:1",
		"Rom 0:1",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := reg.ParseRef(input)
			var resErr *types.ResolutionError
			if !errors.As(err, &resErr) {
				t.Errorf("ParseRef(%q) error = %v, want ResolutionError", input, err)
			}
		})
	}
}

// --- registry invariants ---

func TestAllBooksResolveByOwnNames(t *testing.T) {
	reg := NewRegistry()

	for _, b := range reg.All() {
		for _, name := range append([]string{b.Name, b.Abbrev}, b.AltNames...) {
			got, err := reg.Resolve(name)
			if err != nil {
				t.Errorf("Resolve(%q): %v", name, err)
				continue
			}
			// First registration wins, so a shared short form may map to
			// another book; the canonical name must map to itself.
			if name == b.Name && got.Code != b.Code {
				t.Errorf("Resolve(%q) = %s, want %s", name, got.Code, b.Code)
			}
		}
	}
}
