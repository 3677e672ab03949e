// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists morphologically tagged word records in SQLite
// and answers structured word-filter queries. It is the only component
// that touches SQL; everything above it works with WordFilter values.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/philologus/morphquery/pkg/types"
)

// Store manages the word-record SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DBPath and ensures the
// schema exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = "morphquery.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS books (
			book_code TEXT NOT NULL,
			book_name TEXT NOT NULL,
			book_abbrev TEXT NOT NULL,
			corpus TEXT NOT NULL,
			PRIMARY KEY (book_code, corpus)
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			book_code TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			verse INTEGER NOT NULL,
			word_position INTEGER NOT NULL,
			word TEXT NOT NULL,
			lemma TEXT NOT NULL,
			morph_code TEXT,
			pos TEXT,
			person TEXT,
			tense TEXT,
			voice TEXT,
			mood TEXT,
			case_value TEXT,
			number TEXT,
			gender TEXT,
			corpus TEXT NOT NULL,
			UNIQUE(book_code, chapter, verse, word_position, corpus)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_ref ON words(book_code, chapter, verse)`,
		`CREATE INDEX IF NOT EXISTS idx_words_lemma ON words(lemma)`,
		`CREATE INDEX IF NOT EXISTS idx_words_pos ON words(pos)`,
		`CREATE INDEX IF NOT EXISTS idx_words_corpus ON words(corpus)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// wordColumns is the scan order shared by every word query.
const wordColumns = `book_code, chapter, verse, word_position, corpus,
	word, lemma, morph_code, pos, tense, voice, mood, person, case_value, number, gender`

// Words returns the records matching the filter, ordered by
// (book, chapter, verse, position). Every set filter field becomes a
// bound-parameter equality condition; no SQL text comes from callers.
func (s *Store) Words(ctx context.Context, f types.WordFilter) ([]types.WordRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT ` + wordColumns + ` FROM words WHERE 1=1`)

	if len(f.Corpora) > 0 {
		qb.WriteString(` AND corpus IN (` + placeholders(len(f.Corpora)) + `)`)
		for _, c := range f.Corpora {
			args = append(args, string(c))
		}
	}
	if len(f.BookCodes) > 0 {
		qb.WriteString(` AND book_code IN (` + placeholders(len(f.BookCodes)) + `)`)
		for _, b := range f.BookCodes {
			args = append(args, b)
		}
	}
	if f.Chapter > 0 {
		qb.WriteString(` AND chapter = ?`)
		args = append(args, f.Chapter)
	}
	if f.Verse > 0 {
		qb.WriteString(` AND verse = ?`)
		args = append(args, f.Verse)
	}
	if f.Lexeme != "" {
		qb.WriteString(` AND (lemma = ? OR word = ?)`)
		args = append(args, f.Lexeme, f.Lexeme)
	}
	if f.Lemma != "" {
		qb.WriteString(` AND lemma = ?`)
		args = append(args, f.Lemma)
	}
	if f.Surface != "" {
		qb.WriteString(` AND word = ?`)
		args = append(args, f.Surface)
	}
	if len(f.Lemmas) > 0 {
		qb.WriteString(` AND lemma IN (` + placeholders(len(f.Lemmas)) + `)`)
		for _, l := range f.Lemmas {
			args = append(args, l)
		}
	}
	if f.MorphCodePrefix != "" {
		qb.WriteString(` AND morph_code LIKE ?`)
		args = append(args, f.MorphCodePrefix+"%")
	}

	for _, c := range morphConditions(f.Morph) {
		qb.WriteString(` AND ` + c.col + ` = ?`)
		args = append(args, c.val)
	}

	qb.WriteString(` ORDER BY book_code, chapter, verse, word_position`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var records []types.WordRecord
	for rows.Next() {
		rec, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type morphCondition struct {
	col, val string
}

// morphConditions lists set Morph attributes with their columns, in a
// fixed order so generated SQL is deterministic.
func morphConditions(m types.Morph) []morphCondition {
	var conds []morphCondition
	for _, c := range []morphCondition{
		{"pos", m.POS},
		{"tense", m.Tense},
		{"voice", m.Voice},
		{"mood", m.Mood},
		{"person", m.Person},
		{"case_value", m.Case},
		{"number", m.Number},
		{"gender", m.Gender},
	} {
		if c.val != "" {
			conds = append(conds, c)
		}
	}
	return conds
}

func scanWord(rows *sql.Rows) (types.WordRecord, error) {
	var (
		rec    types.WordRecord
		corpus string
		code   sql.NullString
		m      [8]sql.NullString
	)
	if err := rows.Scan(
		&rec.BookCode, &rec.Chapter, &rec.Verse, &rec.Position, &corpus,
		&rec.Surface, &rec.Lemma, &code,
		&m[0], &m[1], &m[2], &m[3], &m[4], &m[5], &m[6], &m[7],
	); err != nil {
		return types.WordRecord{}, fmt.Errorf("scanning word row: %w", err)
	}
	rec.Corpus = types.Corpus(corpus)
	rec.MorphCode = code.String
	rec.Morph = types.Morph{
		POS: m[0].String, Tense: m[1].String, Voice: m[2].String, Mood: m[3].String,
		Person: m[4].String, Case: m[5].String, Number: m[6].String, Gender: m[7].String,
	}
	return rec, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// VerseText returns the verse's surface forms joined by spaces, or the
// empty string when the verse does not exist.
func (s *Store) VerseText(ctx context.Context, ref types.VerseRef, corpus types.Corpus) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words
		 WHERE book_code = ? AND chapter = ? AND verse = ? AND corpus = ?
		 ORDER BY word_position`,
		ref.BookCode, ref.Chapter, ref.Verse, string(corpus))
	if err != nil {
		return "", fmt.Errorf("querying verse text: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return "", err
		}
		words = append(words, w)
	}
	return strings.Join(words, " "), rows.Err()
}

// BookInfo is one row of the books table.
type BookInfo struct {
	Code   string       `json:"book_code" yaml:"book_code"`
	Name   string       `json:"book_name" yaml:"book_name"`
	Abbrev string       `json:"book_abbrev" yaml:"book_abbrev"`
	Corpus types.Corpus `json:"corpus" yaml:"corpus"`
}

// Books lists the books present in the store, ordered by corpus and code.
func (s *Store) Books(ctx context.Context) ([]BookInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT book_code, book_name, book_abbrev, corpus FROM books ORDER BY corpus, book_code`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var out []BookInfo
	for rows.Next() {
		var b BookInfo
		var corpus string
		if err := rows.Scan(&b.Code, &b.Name, &b.Abbrev, &corpus); err != nil {
			return nil, err
		}
		b.Corpus = types.Corpus(corpus)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Stats summarizes the store contents.
type Stats struct {
	TotalWords   int `json:"total_words" yaml:"total_words"`
	UniqueLemmas int `json:"unique_lemmas" yaml:"unique_lemmas"`
	TotalBooks   int `json:"total_books" yaml:"total_books"`
}

// Stats counts words, distinct lemmas, and books.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	for _, q := range []struct {
		sql  string
		dest *int
	}{
		{`SELECT count(*) FROM words`, &st.TotalWords},
		{`SELECT count(DISTINCT lemma) FROM words`, &st.UniqueLemmas},
		{`SELECT count(*) FROM books`, &st.TotalBooks},
	} {
		if err := s.db.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
	}
	return st, nil
}
