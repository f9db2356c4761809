package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/services"
)

// newListItemsCmd creates a new command for listing items
func newListItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-items",
		Short: "List all items",
		Long:  `List all normalized items with their category and media type.`,
		Run: func(cmd *cobra.Command, args []string) {
			mustInitService()
			listItems(cmd.Context())
		},
	}
}

// listItems displays every item in document order
func listItems(ctx context.Context) {
	items, err := services.GetItems(orBackground(ctx))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load items")
	}

	fmt.Println("Items:")
	fmt.Println("======")

	for i, item := range items {
		fmt.Printf("%d. %s [%s, %s]\n", i+1, item.Name, item.Category, item.Type)
		fmt.Printf("   Link: %s\n", item.Link)
	}

	fmt.Printf("\nTotal: %d items\n", len(items))
}
