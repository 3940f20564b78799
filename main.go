package main

import "github.com/redneckbeard/stmtgen/cmd"

func main() {
	cmd.Execute()
}
