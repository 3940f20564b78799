/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/redneckbeard/stmtgen/vm"
	"github.com/spf13/cobra"
)

var File string

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Translates and executes the input",
	Long: `'stmtgen exec' translates the provided program and immediately runs the
	resulting listing, printing every variable left in each scope.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if File == "" {
			color.Green("Input your program and execute with Ctrl-D.")
		}
		stmts, err := newParser().ParseFile(File)
		if err != nil {
			color.Red("%s", err)
			return err
		}
		machine := vm.New()
		if err := machine.Run(stmts); err != nil {
			color.Red(`Execution failed for listing:
------
%s------
Error: %s`, stmts, err)
			return err
		}
		color.Green(strings.Repeat("-", 20))
		fmt.Print(machine.Dump())
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().StringVarP(&File, "file", "f", "", "Program to execute (defaults to stdin)")
}
