package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/benvon/smart-trip/internal/knowledge"
)

// NewCitiesCmd creates the cities command
func NewCitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported cities",
		Long:  "List the cities that have knowledge tables and city intelligence",
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := knowledge.Load()
			if err != nil {
				return fmt.Errorf("failed to load knowledge tables: %w", err)
			}

			names := library.Cities()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	return cmd
}
