package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benvon/smart-trip/internal/cache"
	"github.com/benvon/smart-trip/internal/cities"
	"github.com/benvon/smart-trip/internal/config"
	"github.com/benvon/smart-trip/internal/engine"
	"github.com/benvon/smart-trip/internal/external"
	"github.com/benvon/smart-trip/internal/knowledge"
	"github.com/benvon/smart-trip/internal/logger"
	"github.com/benvon/smart-trip/internal/models"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		profilePath string
		days        int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate trip preparation tasks from a profile file",
		Long:  "Read a trip profile JSON file and print the prioritized task list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			raw, err := os.ReadFile(profilePath)
			if err != nil {
				return fmt.Errorf("failed to read profile: %w", err)
			}
			var profile models.TripProfile
			if err := json.Unmarshal(raw, &profile); err != nil {
				return fmt.Errorf("failed to parse profile: %w", err)
			}

			zapLogger, err := logger.NewDevelopmentLogger(false)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			client := external.NewClient(cache.NewMemoryStore(), external.Endpoints{
				Weather:   cfg.WeatherAPIURL,
				Holidays:  cfg.HolidaysAPIURL,
				Countries: cfg.CountriesAPIURL,
			}, zapLogger)
			library, err := knowledge.Load()
			if err != nil {
				return fmt.Errorf("failed to load knowledge tables: %w", err)
			}
			generator := engine.NewGenerator(client, cities.NewRegistry(zapLogger), library, zapLogger)

			tasks := generator.Generate(context.Background(), &profile, days)

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(tasks)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks generated")
				return nil
			}
			fmt.Printf("Tasks for %s (%d days until trip):\n\n", displayCity(&profile), days)
			for i, task := range tasks {
				marker := " "
				if task.Urgent {
					marker = "!"
				}
				fmt.Printf("%2d. [%s] %s (%s)\n", i+1, marker, task.Title, task.Priority)
				if task.Subtitle != "" {
					fmt.Printf("       %s\n", task.Subtitle)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to the trip profile JSON file (required)")
	cmd.Flags().IntVarP(&days, "days", "d", 30, "Days until the trip starts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks as JSON")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func displayCity(profile *models.TripProfile) string {
	if profile.DestinationCity != "" {
		return profile.DestinationCity
	}
	return "your destination"
}
