// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philologus/morphquery/internal/executor"
	"github.com/philologus/morphquery/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a query against the word store",
	Long: `Search parses and executes a query. Terms are lemmas or surface forms,
optionally constrained by a morphology-code suffix (@codes) or replaced
by a special token like [article] or [verb]. Multiple terms join with &
and must appear in order, adjacent by default or within W<n> words.
Scope with * (whole corpus) or [Book, Book] + (listed books).

A query opening with "rel" runs a relative search instead; see
"morphquery relative --help".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	queryString := strings.Join(args, " ")

	corpora, err := corporaFromFlags(cmd)
	if err != nil {
		return err
	}

	parsed, err := query.Parse(queryString, registry)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	switch q := parsed.(type) {
	case *query.Relative:
		return runRelativeSearch(cmd, st, q.Reference, corpora, nil, jsonOutput)

	case *query.Standard:
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = viper.GetInt("search.max_results")
		}
		out, err := executor.Run(context.Background(), q, st, executor.Options{
			Corpora:    corpora,
			MaxResults: limit,
		})
		if err != nil {
			return err
		}

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			if err := executor.WriteSaveFile(outPath, queryString, corpora, out); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Saved results to", outPath)
		}

		if jsonOutput {
			return executor.FormatJSON(out, os.Stdout)
		}
		executor.FormatTable(out, registry, os.Stdout)
		return nil
	}

	return fmt.Errorf("unsupported query form")
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Int("limit", 0, "maximum verse groups (0 = default 500)")
	searchCmd.Flags().String("out", "", "save query and results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
