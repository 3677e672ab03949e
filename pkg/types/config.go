// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StoreConfig holds settings for the word store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "morphquery.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// SearchConfig holds settings for standard query execution.
type SearchConfig struct {
	// MaxResults caps the number of verse groups returned (default 500).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RelativeConfig holds settings for relative search.
type RelativeConfig struct {
	// MaxResults caps the number of ranked verses returned (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Weights maps a part of speech to its salience weight. Unlisted
	// parts of speech weigh DefaultWeight. Swapping the partition does
	// not change the scoring algorithm.
	Weights map[string]int `json:"weights,omitempty" yaml:"weights,omitempty"`

	// DefaultWeight is the weight for unclassified parts of speech
	// (default 1).
	DefaultWeight int `json:"default_weight" yaml:"default_weight"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Store    StoreConfig    `json:"store" yaml:"store"`
	Search   SearchConfig   `json:"search" yaml:"search"`
	Relative RelativeConfig `json:"relative" yaml:"relative"`
}

// DefaultRelativeWeights returns the stock salience partition: content
// words (verbs, adverbs, adjectives, nouns) weigh high, function words
// weigh low.
func DefaultRelativeWeights() map[string]int {
	return map[string]int{
		"verb":         3,
		"noun":         3,
		"adjective":    3,
		"adverb":       3,
		"pronoun":      1,
		"article":      1,
		"preposition":  1,
		"particle":     1,
		"conjunction":  1,
		"interjection": 1,
	}
}
