// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philologus/morphquery/internal/relative"
	"github.com/philologus/morphquery/pkg/types"
)

var relativeCmd = &cobra.Command{
	Use:   "relative <verse reference>",
	Short: "Rank verses by shared vocabulary with a source verse",
	Long: `Relative resolves a verse reference like "Rom. 8:1", extracts its
vocabulary, weights each lemma by part of speech (content words high,
function words low), and ranks every other verse in the selected
corpora by the summed weight of shared lemmas.

Re-score with --include to restrict the comparison to an explicit
lemma set; the full desired set must be given on every call.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRelative,
}

func runRelative(cmd *cobra.Command, args []string) error {
	reference := strings.Join(args, " ")

	corpora, err := corporaFromFlags(cmd)
	if err != nil {
		return err
	}

	var included []string
	if raw, _ := cmd.Flags().GetString("include"); cmd.Flags().Changed("include") {
		included = []string{}
		for _, l := range strings.Split(raw, ",") {
			if l = strings.TrimSpace(l); l != "" {
				included = append(included, l)
			}
		}
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return runRelativeSearch(cmd, st, reference, corpora, included, jsonOutput)
}

// runRelativeSearch executes a relative search and prints it. Shared by
// the relative command and rel-form queries from the search command.
func runRelativeSearch(cmd *cobra.Command, p relative.Provider, reference string, corpora []types.Corpus, included []string, jsonOutput bool) error {
	cfg := relativeConfig(cmd)
	engine := relative.NewEngine(p, registry, cfg)

	result, err := engine.Search(context.Background(), reference, corpora, included)
	if err != nil {
		return err
	}

	if jsonOutput {
		return relative.FormatJSON(result, os.Stdout)
	}
	relative.FormatTable(result, registry, os.Stdout)
	return nil
}

// relativeConfig reads the relative-search settings: flags first, then
// the config file for the swappable weight partition.
func relativeConfig(cmd *cobra.Command) types.RelativeConfig {
	cfg := types.RelativeConfig{}
	if limit, err := cmd.Flags().GetInt("limit"); err == nil {
		cfg.MaxResults = limit
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = viper.GetInt("relative.max_results")
	}
	if weights := viper.GetStringMap("relative.weights"); len(weights) > 0 {
		cfg.Weights = make(map[string]int, len(weights))
		for pos := range weights {
			cfg.Weights[pos] = viper.GetInt("relative.weights." + pos)
		}
	}
	cfg.DefaultWeight = viper.GetInt("relative.default_weight")
	return cfg
}

func init() {
	relativeCmd.Flags().Bool("json", false, "output results as JSON")
	relativeCmd.Flags().Int("limit", 0, "maximum ranked verses (0 = default 100)")
	relativeCmd.Flags().String("include", "", "comma-separated lemma inclusion set for re-scoring")

	rootCmd.AddCommand(relativeCmd)
}
