package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/services"
	"portfolio-gallery/pkg/widget"
)

// newShowCategoryCmd creates a new command for showing the cards of a category
func newShowCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-category [name]",
		Short: "Show the cards of a category",
		Long:  `Render the gallery for one category and print its cards. Without a name every item is shown.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustInitService()
			category := cfg.Strings.All
			if len(args) > 0 {
				category = args[0]
			}
			showCategory(cmd.Context(), cfg, category)
		},
	}
}

// showCategory renders the widget for a category and prints the result
func showCategory(ctx context.Context, cfg *config.Config, category string) {
	gallery := widget.New(widget.Options{
		Strings:       cfg.Strings,
		Locale:        cfg.Locale,
		FallbackImage: cfg.FallbackImage,
	})
	if err := gallery.Mount(orBackground(ctx), services.Default()); err != nil {
		fmt.Printf("%s: %s\n", gallery.Document().Status, gallery.Document().Error)
		os.Exit(1)
	}
	if err := gallery.Dispatch(widget.SelectCategory(category)); err != nil {
		log.Fatal().Err(err).Msg("failed to select category")
	}

	doc := gallery.Document()
	if current := gallery.State().Current; current != category {
		fmt.Printf("Category %q not found, showing %s\n", category, current)
	}

	fmt.Printf("Category: %s\n", gallery.State().Current)
	fmt.Printf("Cards: %d\n", len(doc.Cards))
	fmt.Println("================")
	if doc.Status != "" {
		fmt.Println(doc.Status)
	}

	for i, card := range doc.Cards {
		fmt.Printf("%d. %s\n", i+1, card.Title)
		fmt.Printf("   %s\n", card.Desc)
		fmt.Printf("   %s: %s\n", card.Preview.Type, card.Preview.Src)
		fmt.Println()
	}
}
