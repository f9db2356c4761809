package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/services"
	"portfolio-gallery/pkg/widget"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all categories",
		Long:  `List all categories in navigation order with the number of items in each.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustInitService()
			listCategories(cmd.Context(), cfg)
		},
	}
}

// listCategories displays the category navigation
func listCategories(ctx context.Context, cfg *config.Config) {
	items, err := services.GetItems(orBackground(ctx))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load items")
	}
	categories := widget.Categories(items, cfg.Locale, cfg.Strings)

	fmt.Println("Categories:")
	fmt.Println("===========")

	for _, category := range categories {
		fmt.Printf("%s\n", category.Name)
		fmt.Printf("  Items: %d\n", category.Count)
		fmt.Println()
	}

	// The "all" entry is not a category of its own
	fmt.Printf("Total: %d categories\n", len(categories)-1)
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
