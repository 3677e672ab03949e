// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the books present in the word store",
	RunE:  runBooks,
}

func runBooks(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := st.Books(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list) == 0 {
		fmt.Println("No books in store. Run ingest first.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-20s  %-8s  %s\n", "Code", "Name", "Abbrev", "Corpus")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 46))
	for _, b := range list {
		fmt.Fprintf(os.Stdout, "%-6s  %-20s  %-8s  %s\n", b.Code, b.Name, b.Abbrev, b.Corpus)
	}
	return nil
}

func init() {
	booksCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(booksCmd)
}
