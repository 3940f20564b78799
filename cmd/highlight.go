/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/highlight"
	"github.com/redneckbeard/stmtgen/stmt"
	"github.com/spf13/cobra"
)

var (
	highlightSource string
	showListing     bool
	style           string
)

func writeHighlighted(w io.Writer, text string, listing bool) error {
	switch {
	case color.NoColor && listing:
		return highlight.Highlight(w, highlight.Listing, text, "noop", style)
	case color.NoColor:
		return highlight.Highlight(w, highlight.Source, text, "noop", style)
	case listing:
		return highlight.WriteListing(w, text, style)
	default:
		return highlight.WriteSource(w, text, style)
	}
}

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Syntax highlight a program or its listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showListing {
			stmts, err := newParser().ParseFile(highlightSource)
			if err != nil {
				color.Red("%s", err)
				return err
			}
			return writeHighlighted(os.Stdout, stmt.Format(stmts), true)
		}
		b, err := readSource(highlightSource)
		if err != nil {
			color.Red("%s", err)
			return err
		}
		return writeHighlighted(os.Stdout, string(b), false)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func readSource(filename string) ([]byte, error) {
	if filename == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.Flags().StringVarP(&highlightSource, "source", "s", "", "Source file to highlight (defaults to stdin)")
	highlightCmd.Flags().BoolVarP(&showListing, "listing", "l", false, "Highlight the translated listing instead of the source")
	highlightCmd.Flags().StringVar(&style, "style", highlight.DefaultStyle, "Chroma style used for highlighting")
}
