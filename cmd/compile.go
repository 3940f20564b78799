/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/stmt"
	"github.com/spf13/cobra"
)

var Target, Source string

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Translate source into a statement listing",
	Long:  `Scan and translate the source program, writing one statement per line. Translation stops at the first error and nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmts, err := newParser().ParseFile(Source)
		if err != nil {
			color.Red("%s", err)
			return err
		}
		listing := stmt.Format(stmts)
		if Target == "" {
			fmt.Print(listing)
			return nil
		}
		return os.WriteFile(Target, []byte(listing), 0644)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&Target, "target", "t", "", "Destination for the resulting listing (defaults to stdout)")
	compileCmd.Flags().StringVarP(&Source, "source", "s", "", "Source file to translate (defaults to stdin)")
}
