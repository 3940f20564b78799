/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/parser"
	"github.com/spf13/cobra"
)

var (
	Strict  bool
	NoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "stmtgen",
	Short: "Translate scripts into statement listings",
	Long: `stmtgen scans a small typed scripting language and translates it into the
statement listing executed by its virtual machine. Set DEBUG=1 to trace mode
switches during translation, DEBUG=2 to trace every dispatched token.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if NoColor {
			color.NoColor = true
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newParser() *parser.Parser {
	if Strict {
		return parser.New(parser.Strict())
	}
	return parser.New()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&Strict, "strict", false, "Reject keywords that have no registered handler")
	rootCmd.PersistentFlags().BoolVar(&NoColor, "no-color", false, "Disable colored output")
}
