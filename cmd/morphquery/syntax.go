// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philologus/morphquery/internal/morph"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax",
	Short: "Show the query language reference",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(syntaxHelp())
	},
}

func syntaxHelp() string {
	var b strings.Builder
	b.WriteString(`Query forms
  *<term>                    search the whole selected corpus
  [Book, Book] + <term>      search only the listed books
  <term> & <term>            terms in order, adjacent words
  <term> & <term> W<n>       terms in order, within n words
  rel <book> <ch>:<vs>       relative search from a source verse

Terms
  λόγος                      lemma or surface form, exact match
  λόγος@Nns                  with morphology constraints
  [verb]@aAI3s               special token with constraints

Special tokens
  ` + strings.Join(morph.SpecialTokenNames(), ", ") + `

Morphology codes (decoded in this order)
  part of speech  N=noun V=verb J=adjective D=adverb C=conjunction
                  P=preposition R=pronoun T=particle I=interjection
  tense           p=present i=imperfect f=future a=aorist r=perfect l=pluperfect
  voice           A=active M=middle P=passive
  mood            I=indicative S=subjunctive O=optative M=imperative
                  N=infinitive p=participle
  person          1 2 3
  case            n=nominative g=genitive d=dative a=accusative v=vocative
  number          s=singular p=plural
  gender          m=masculine f=feminine u=neuter

Examples
  *λόγος@Nns
  *εἰμί@VaAI3s
  [Matt., Mk, Lk] + [verb]@pAI3s
  *[article] & λόγος@Nsg W2
  rel Rom. 8:1
`)
	return b.String()
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
}
