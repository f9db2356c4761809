package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"portfolio-gallery/pkg/services"
)

// newExportCmd creates a new command for exporting the normalized items
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export normalized gallery data",
		Long:  `Export all normalized items in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mustInitService()

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			exportData(cmd.Context(), format)
		},
	}
}

// exportData exports the items in the specified format
func exportData(ctx context.Context, format string) {
	items, err := services.GetItems(orBackground(ctx))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load items")
	}

	var data []byte
	switch format {
	case "json":
		data, err = json.MarshalIndent(items, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(items)
	default:
		fmt.Printf("Unsupported export format: %s\n", format)
		fmt.Println("Supported formats: json, yaml")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
