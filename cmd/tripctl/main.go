package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benvon/smart-trip/cmd/tripctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "tripctl",
		Short: "CLI for the Smart Trip task generator",
		Long:  "Generate trip preparation tasks and inspect city knowledge from the command line",
	}

	rootCmd.AddCommand(commands.NewGenerateCmd())
	rootCmd.AddCommand(commands.NewKnowledgeCmd())
	rootCmd.AddCommand(commands.NewCitiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
