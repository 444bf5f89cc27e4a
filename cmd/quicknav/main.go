package main

import (
	"os"

	"github.com/grovetools/quicknav/cli"
	"github.com/grovetools/quicknav/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"quicknav",
		"Quick navigation pickers for terminal editors",
	)

	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(cmd.NewGotoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
