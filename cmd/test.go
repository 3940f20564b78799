/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/parser"
	"github.com/spf13/cobra"
)

var TestDir, TestFile, TestCase string

func runTest(p *parser.Parser, c parser.Case) bool {
	fmt.Printf("Running test '%s': ", c.Name)
	if c.Input == "" {
		color.Red("FAIL\n    ")
		color.Red("No source detected")
		return false
	}
	if listing, err := c.Check(p); err != nil {
		color.Red(`FAIL

%s
Translation:
------------
%s`, err, listing)
		return false
	}
	color.Green("PASS")
	return true
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "runs stmtgen golden tests",
	Long: `Runs the golden translation suite. Every .txtar archive in the test
	directory holds an 'input' program and either the 'want' listing or the
	'error' translation is expected to fail with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cases []parser.Case
		if TestFile != "" {
			c, err := parser.LoadCase(filepath.Join(TestDir, TestFile))
			if err != nil {
				color.Red("%s", err)
				return err
			}
			cases = append(cases, c)
		} else {
			loaded, err := parser.LoadCases(TestDir)
			if err != nil {
				color.Red("%s", err)
				return err
			}
			cases = loaded
		}

		p := newParser()
		var passes, fails int
		found := false
		for _, c := range cases {
			if TestCase != "" && c.Name != TestCase {
				continue
			}
			found = true
			if runTest(p, c) {
				passes++
			} else {
				fails++
			}
		}
		if TestCase != "" && !found {
			err := fmt.Errorf("could not find test: %s", TestCase)
			color.Red("%s", err)
			return err
		}
		summary := fmt.Sprintf("\n%d passing tests, %d failures\n", passes, fails)
		if fails > 0 {
			color.Red(summary)
			return fmt.Errorf("%d golden tests failed", fails)
		}
		color.Green(summary)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().StringVarP(&TestDir, "dir", "d", filepath.Join("parser", "testdata"), "Directory where golden tests are located")
	testCmd.Flags().StringVarP(&TestFile, "file", "f", "", "Single file relative to test directory from which the test is loaded (default loads all files)")
	testCmd.Flags().StringVarP(&TestCase, "case", "c", "", "Runs only the golden test with the given name")
}
