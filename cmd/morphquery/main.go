// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the morphquery CLI: a query
// engine for morphologically annotated Greek text. Subcommands cover
// the two search paths (search, relative), store management (ingest),
// and introspection (books, stats, syntax).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/internal/store"
	"github.com/philologus/morphquery/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// registry is the fixed book table, built once at startup.
var registry = books.NewRegistry()

// rootCmd is the base command for the morphquery CLI.
var rootCmd = &cobra.Command{
	Use:   "morphquery",
	Short: "Morphological query engine for the Greek NT and LXX",
	Long: `morphquery searches morphologically tagged Greek text with a compact
query language: lexical terms, morphology-code suffixes, special tokens,
book scoping, and proximity joins. It also ranks verses by weighted
vocabulary overlap with a reference verse (relative search).

Query examples:
  *λόγος@Nns                  λόγος as nominative singular noun, whole corpus
  [Matt.] + [verb]@aAI3s      aorist active indicative 3rd singular verbs in Matthew
  *[article] & [noun]@Nsg W2  article with a genitive singular noun within 2 words
  rel Rom. 8:1                verses sharing vocabulary with Romans 8:1`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./morphquery.yaml or ~/.config/morphquery/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (default: morphquery.db)")
	rootCmd.PersistentFlags().String("corpus", "NT", "corpus selection, comma-separated (NT, LXX)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("morphquery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "morphquery"))
		}
	}

	viper.SetEnvPrefix("MORPHQUERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore opens the word store from the --db flag, config file, or
// default path, in that order.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.db_path")
	}
	return store.Open(types.StoreConfig{DBPath: path})
}

// corporaFromFlags parses the --corpus selection. An empty selection is
// rejected here so no command touches the store without one.
func corporaFromFlags(cmd *cobra.Command) ([]types.Corpus, error) {
	raw, _ := cmd.Flags().GetString("corpus")
	var corpora []types.Corpus
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := types.ParseCorpus(part)
		if err != nil {
			return nil, err
		}
		corpora = append(corpora, c)
	}
	if len(corpora) == 0 {
		return nil, &types.ConfigurationError{Reason: "no corpus selected"}
	}
	return corpora, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
