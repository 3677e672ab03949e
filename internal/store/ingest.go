// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/pkg/types"
)

// IngestSummary holds counts from one ingestion run.
type IngestSummary struct {
	Files   int
	Words   int
	Skipped int
}

// Ingest reads MorphGNT-format files into the store under the given
// corpus and registers the corpus's books. Each line is
//
//	BBCCVV POS PARSING TEXT WORD NORMALIZED LEMMA
//
// for example "010101 N- ----NSF- Βίβλος Βίβλος βίβλος βίβλος".
// Word positions are assigned per verse in file order. Progress is
// written to w; short or blank lines are counted and skipped.
func (s *Store) Ingest(ctx context.Context, corpus types.Corpus, paths []string, reg *books.Registry, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	if err := s.insertBooks(ctx, corpus, reg); err != nil {
		return summary, err
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		n, skipped, err := s.ingestFile(ctx, corpus, path)
		if err != nil {
			return summary, fmt.Errorf("ingesting %s: %w", path, err)
		}
		summary.Files++
		summary.Words += n
		summary.Skipped += skipped
		fmt.Fprintf(w, "ingested %s (%d words)\n", path, n)
	}

	fmt.Fprintf(w, "\nfiles: %d, words: %d, skipped lines: %d\n",
		summary.Files, summary.Words, summary.Skipped)
	return summary, nil
}

func (s *Store) insertBooks(ctx context.Context, corpus types.Corpus, reg *books.Registry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, b := range reg.All() {
		if b.Corpus != corpus {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO books (book_code, book_name, book_abbrev, corpus)
			 VALUES (?, ?, ?, ?)`,
			b.Code, b.Name, b.Abbrev, string(corpus))
		if err != nil {
			return fmt.Errorf("inserting book %s: %w", b.Code, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ingestFile(ctx context.Context, corpus types.Corpus, path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO words (
			book_code, chapter, verse, word_position, word, lemma, morph_code,
			pos, person, tense, voice, mood, case_value, number, gender, corpus
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var (
		inserted, skipped int
		currentVerse      types.VerseRef
		position          int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}

		// Positions restart at 1 whenever the verse changes; the file
		// order is the source word order.
		if rec.Ref() != currentVerse {
			currentVerse = rec.Ref()
			position = 1
		} else {
			position++
		}

		_, err := stmt.ExecContext(ctx,
			rec.BookCode, rec.Chapter, rec.Verse, position,
			rec.Surface, rec.Lemma, rec.MorphCode,
			nullable(rec.Morph.POS), nullable(rec.Morph.Person),
			nullable(rec.Morph.Tense), nullable(rec.Morph.Voice), nullable(rec.Morph.Mood),
			nullable(rec.Morph.Case), nullable(rec.Morph.Number), nullable(rec.Morph.Gender),
			string(corpus))
		if err != nil {
			return inserted, skipped, fmt.Errorf("inserting word at %s: %w", rec.Ref(), err)
		}
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return inserted, skipped, err
	}

	return inserted, skipped, tx.Commit()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// parseLine splits one MorphGNT line into a word record. The reference
// column packs book, chapter, and verse as two digits each; the lemma
// is the last column.
func parseLine(line string) (types.WordRecord, bool) {
	parts := strings.Fields(line)
	if len(parts) < 7 {
		return types.WordRecord{}, false
	}

	ref := parts[0]
	if len(ref) < 6 {
		return types.WordRecord{}, false
	}
	chapter, err1 := strconv.Atoi(ref[2:4])
	verse, err2 := strconv.Atoi(ref[4:6])
	if err1 != nil || err2 != nil || chapter < 1 || verse < 1 {
		return types.WordRecord{}, false
	}

	posCode := parts[1]
	parsing := parts[2]

	rec := types.WordRecord{
		BookCode:  ref[:2],
		Chapter:   chapter,
		Verse:     verse,
		Surface:   parts[3],
		Lemma:     parts[6],
		MorphCode: posCode + parsing,
		Morph:     decodeTagging(posCode, parsing),
	}
	return rec, true
}

// MorphGNT part-of-speech initials. Articles carry RA and are stored as
// pronouns; the raw RA prefix is what [article] queries match on.
var taggingPOS = map[byte]string{
	'N': "noun",
	'V': "verb",
	'A': "adjective",
	'R': "pronoun",
	'C': "conjunction",
	'D': "adverb",
	'P': "preposition",
	'T': "article",
	'I': "interjection",
	'X': "particle",
}

var (
	taggingPerson = map[byte]string{'1': "1st", '2': "2nd", '3': "3rd"}
	taggingTense  = map[byte]string{'P': "present", 'I': "imperfect", 'F': "future", 'A': "aorist", 'X': "perfect", 'Y': "pluperfect"}
	taggingVoice  = map[byte]string{'A': "active", 'M': "middle", 'P': "passive"}
	taggingMood   = map[byte]string{'I': "indicative", 'D': "imperative", 'S': "subjunctive", 'O': "optative", 'N': "infinitive", 'P': "participle"}
	taggingCase   = map[byte]string{'N': "nominative", 'G': "genitive", 'D': "dative", 'A': "accusative", 'V': "vocative"}
	taggingNumber = map[byte]string{'S': "singular", 'P': "plural"}
	taggingGender = map[byte]string{'M': "masculine", 'F': "feminine", 'N': "neuter"}
)

// decodeTagging expands the positional MorphGNT tagging (one column per
// attribute, "-" for not applicable) into decoded attributes. This is
// the source-data encoding, distinct from the compact query-language
// codes in internal/morph.
func decodeTagging(posCode, parsing string) types.Morph {
	var m types.Morph
	if len(posCode) > 0 {
		m.POS = taggingPOS[posCode[0]]
	}
	at := func(i int) byte {
		if i < len(parsing) {
			return parsing[i]
		}
		return '-'
	}
	m.Person = taggingPerson[at(0)]
	m.Tense = taggingTense[at(1)]
	m.Voice = taggingVoice[at(2)]
	m.Mood = taggingMood[at(3)]
	m.Case = taggingCase[at(4)]
	m.Number = taggingNumber[at(5)]
	m.Gender = taggingGender[at(6)]
	return m
}
