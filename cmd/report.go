/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/stmt"
	"github.com/spf13/cobra"
)

type summary struct {
	counts       map[string]int
	modeSwitches int
	blocks       int
	total        int
}

func summarize(stmts stmt.Statements) summary {
	s := summary{counts: map[string]int{}, total: len(stmts)}
	for i, st := range stmts {
		s.counts[st.Mnemonic()]++
		switch st.(type) {
		case stmt.ScopeMarker, stmt.TypeMarker, stmt.OperatorMarker:
			// the first three statements seed the machine and are not switches
			if i >= 3 {
				s.modeSwitches++
			}
		case stmt.BlockEnd:
			s.blocks++
		}
	}
	return s
}

func report(stmts stmt.Statements) {
	s := summarize(stmts)
	mnemonics := make([]string, 0, len(s.counts))
	for m := range s.counts {
		mnemonics = append(mnemonics, m)
	}
	sort.Strings(mnemonics)

	fmt.Printf("# Statement report\n\n")
	for _, m := range mnemonics {
		fmt.Printf("* `%s`: %d\n", m, s.counts[m])
	}
	fmt.Printf("\n%d statements, %d mode switches, %d blocks\n", s.total, s.modeSwitches, s.blocks)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the statements generated for a program",
	Long:  `Translates the source and reports how many statements of each kind were emitted, along with the number of mode switches after the initial seed markers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmts, err := newParser().ParseFile(reportSource)
		if err != nil {
			color.Red("%s", err)
			return err
		}
		report(stmts)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var reportSource string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportSource, "source", "s", "", "Source file to report on (defaults to stdin)")
}
