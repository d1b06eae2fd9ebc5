package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benvon/smart-trip/internal/knowledge"
)

// NewKnowledgeCmd creates the knowledge command
func NewKnowledgeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "knowledge <city>",
		Short: "Show the knowledge table for a city",
		Long:  "Print the curated restaurants, attractions, and tips for a supported city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := knowledge.Load()
			if err != nil {
				return fmt.Errorf("failed to load knowledge tables: %w", err)
			}

			ck := library.City(args[0])
			if ck == nil {
				return fmt.Errorf("no knowledge table for %q", args[0])
			}

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(ck)
			}

			fmt.Printf("%s, %s\n\n", ck.City, ck.Country)
			fmt.Println("Restaurants:")
			for _, r := range ck.Restaurants {
				fmt.Printf("  - %s (%s): %s\n", r.Name, r.Area, r.Note)
			}
			fmt.Println("\nAttractions:")
			for _, a := range ck.Attractions {
				fmt.Printf("  - %s: %s\n", a.Name, a.Note)
			}
			fmt.Println("\nTips:")
			for _, tip := range ck.Tips {
				fmt.Printf("  - %s\n", tip)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")

	return cmd
}
