// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philologus/morphquery/pkg/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Load MorphGNT-format files into the word store",
	Long: `Ingest reads morphologically tagged text files in the MorphGNT column
format (reference, part of speech, parsing code, text, word, normalized
word, lemma) and loads them into the word store under one corpus.
Word positions are assigned per verse in file order; re-ingesting a
file replaces its words.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("corpus")
	corpus, err := types.ParseCorpus(raw)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := st.Ingest(context.Background(), corpus, args, registry, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Words == 0 {
		return fmt.Errorf("no words ingested from %d file(s)", summary.Files)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
