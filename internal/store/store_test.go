// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleLines is a fragment in the MorphGNT column layout: John 1:1
// under the NT numbering, with the reference repeated so positions
// increment, then a new verse to reset them.
const sampleLines = `040101 P- -------- Ἐν Ἐν ἐν ἐν
040101 N- ----DSF- ἀρχῇ ἀρχῇ ἀρχῇ ἀρχή
040101 V- 3IAI-S-- ἦν ἦν ἦν εἰμί
040101 RA ----NSM- ὁ ὁ ὁ ὁ
040101 N- ----NSM- λόγος λόγος λόγος λόγος
040102 RA ----NSM- οὗτος οὗτος οὗτος οὗτος
`

func ingestSample(t *testing.T, s *Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "john.txt")
	if err := os.WriteFile(path, []byte(sampleLines), 0o644); err != nil {
		t.Fatal(err)
	}
	summary, err := s.Ingest(context.Background(), types.CorpusNT, []string{path},
		books.NewRegistry(), &strings.Builder{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Words != 6 {
		t.Fatalf("ingested %d words, want 6", summary.Words)
	}
}

// --- parseLine ---

func TestParseLine(t *testing.T) {
	rec, ok := parseLine("010101 N- ----NSF- Βίβλος Βίβλος βίβλος βίβλος")
	if !ok {
		t.Fatal("parseLine returned !ok")
	}
	if rec.BookCode != "01" || rec.Chapter != 1 || rec.Verse != 1 {
		t.Errorf("ref = %s %d:%d, want 01 1:1", rec.BookCode, rec.Chapter, rec.Verse)
	}
	if rec.Surface != "Βίβλος" {
		t.Errorf("Surface = %q", rec.Surface)
	}
	if rec.Lemma != "βίβλος" {
		t.Errorf("Lemma = %q, want the last column", rec.Lemma)
	}
	if rec.MorphCode != "N-----NSF-" {
		t.Errorf("MorphCode = %q", rec.MorphCode)
	}
	want := types.Morph{POS: "noun", Case: "nominative", Number: "singular", Gender: "feminine"}
	if rec.Morph != want {
		t.Errorf("Morph = %+v, want %+v", rec.Morph, want)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	for _, line := range []string{
		"too few fields",
		"0101 N- ----NSF- a b c d",
		"01xx01 N- ----NSF- a b c d",
		"010100 N- ----NSF- a b c d",
	} {
		if _, ok := parseLine(line); ok {
			t.Errorf("parseLine(%q) = ok, want reject", line)
		}
	}
}

func TestDecodeTagging(t *testing.T) {
	tests := []struct {
		posCode string
		parsing string
		want    types.Morph
	}{
		{
			"V", "3IAI-S--",
			types.Morph{POS: "verb", Person: "3rd", Tense: "imperfect", Voice: "active",
				Mood: "indicative", Number: "singular"},
		},
		{
			"RA", "----NSM-",
			types.Morph{POS: "pronoun", Case: "nominative", Number: "singular", Gender: "masculine"},
		},
		{
			"C", "--------",
			types.Morph{POS: "conjunction"},
		},
		{
			"V", "-PAPNSM-",
			types.Morph{POS: "verb", Tense: "present", Voice: "active", Mood: "participle",
				Case: "nominative", Number: "singular", Gender: "masculine"},
		},
	}
	for _, tt := range tests {
		if got := decodeTagging(tt.posCode, tt.parsing); got != tt.want {
			t.Errorf("decodeTagging(%q, %q) = %+v, want %+v", tt.posCode, tt.parsing, got, tt.want)
		}
	}
}

// --- ingest and query ---

func TestIngestAssignsPositionsPerVerse(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)

	ctx := context.Background()
	recs, err := s.Words(ctx, types.WordFilter{BookCodes: []string{"04"}, Chapter: 1, Verse: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 5 {
		t.Fatalf("got %d records, want 5", len(recs))
	}
	for i, rec := range recs {
		if rec.Position != i+1 {
			t.Errorf("record %d has position %d", i, rec.Position)
		}
	}

	// The next verse restarts at position 1.
	recs, err = s.Words(ctx, types.WordFilter{BookCodes: []string{"04"}, Chapter: 1, Verse: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Position != 1 {
		t.Errorf("verse 2 = %+v, want one record at position 1", recs)
	}
}

func TestIngestIsIdempotent(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)
	ingestSample(t, s)

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalWords != 6 {
		t.Errorf("TotalWords = %d after re-ingest, want 6", stats.TotalWords)
	}
}

func TestWordsFilters(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter types.WordFilter
		want   int
	}{
		{"lemma equality", types.WordFilter{Lemma: "λόγος"}, 1},
		{"lexeme matches lemma", types.WordFilter{Lexeme: "εἰμί"}, 1},
		{"lexeme matches surface", types.WordFilter{Lexeme: "ἦν"}, 1},
		{"surface only", types.WordFilter{Surface: "ἀρχῇ"}, 1},
		{"lemma set", types.WordFilter{Lemmas: []string{"λόγος", "ἀρχή"}}, 2},
		{"morph code prefix", types.WordFilter{MorphCodePrefix: "RA"}, 2},
		{"pos", types.WordFilter{Morph: types.Morph{POS: "noun"}}, 2},
		{"pos and case", types.WordFilter{Morph: types.Morph{POS: "noun", Case: "nominative"}}, 1},
		{"corpus match", types.WordFilter{Corpora: []types.Corpus{types.CorpusNT}}, 6},
		{"corpus miss", types.WordFilter{Corpora: []types.Corpus{types.CorpusLXX}}, 0},
		{"book miss", types.WordFilter{BookCodes: []string{"01"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.Words(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(recs) != tt.want {
				t.Errorf("got %d records, want %d", len(recs), tt.want)
			}
		})
	}
}

func TestWordsOrdering(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)

	recs, err := s.Words(context.Background(), types.WordFilter{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.Ref() == cur.Ref() {
			if prev.Position >= cur.Position {
				t.Errorf("positions out of order at %d: %d then %d", i, prev.Position, cur.Position)
			}
		} else if !prev.Ref().Less(cur.Ref()) {
			t.Errorf("verses out of order at %d: %v then %v", i, prev.Ref(), cur.Ref())
		}
	}
}

// --- verse text, books, stats ---

func TestVerseText(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)
	ctx := context.Background()

	text, err := s.VerseText(ctx, types.VerseRef{BookCode: "04", Chapter: 1, Verse: 1}, types.CorpusNT)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Ἐν ἀρχῇ ἦν ὁ λόγος" {
		t.Errorf("VerseText = %q", text)
	}

	text, err = s.VerseText(ctx, types.VerseRef{BookCode: "04", Chapter: 99, Verse: 1}, types.CorpusNT)
	if err != nil {
		t.Fatal(err)
	}
	if text != "" {
		t.Errorf("missing verse text = %q, want empty", text)
	}
}

func TestBooksAndStats(t *testing.T) {
	s := testStore(t)
	ingestSample(t, s)
	ctx := context.Background()

	list, err := s.Books(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 27 {
		t.Fatalf("got %d books, want the 27 NT entries", len(list))
	}
	if list[0].Code != "01" || list[0].Corpus != types.CorpusNT {
		t.Errorf("first book = %+v", list[0])
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalWords != 6 || stats.TotalBooks != 27 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.UniqueLemmas != 6 {
		t.Errorf("UniqueLemmas = %d, want 6", stats.UniqueLemmas)
	}
}
