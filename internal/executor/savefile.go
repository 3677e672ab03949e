// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package executor

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/philologus/morphquery/pkg/types"
)

// SaveFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without touching
// the store again.
type SaveFile struct {
	Query   string         `yaml:"query"`
	Corpora []types.Corpus `yaml:"corpora"`
	Matches []VerseMatch   `yaml:"matches"`
	Summary SaveSummary    `yaml:"summary"`
}

// SaveSummary stores result statistics and a timestamp.
type SaveSummary struct {
	Total     int       `yaml:"total"`
	Limited   bool      `yaml:"limited"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSaveFile saves the query string and its results to a YAML file.
func WriteSaveFile(path, queryString string, corpora []types.Corpus, out Output) error {
	sf := SaveFile{
		Query:   queryString,
		Corpora: corpora,
		Matches: out.Matches,
		Summary: SaveSummary{
			Total:     len(out.Matches),
			Limited:   out.Limited,
			Timestamp: time.Now(),
		},
	}
	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling save file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSaveFile loads a previously saved search from disk.
func ReadSaveFile(path string) (*SaveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file: %w", err)
	}
	var sf SaveFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing save file: %w", err)
	}
	return &sf, nil
}
