package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/services"
)

// newValidateCmd creates a new command for checking the data document
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the data document",
		Long:  `Fetch the data document and report how many records were kept and why the others were dropped.`,
		Run: func(cmd *cobra.Command, args []string) {
			mustInitService()
			validate(cmd.Context())
		},
	}
}

// validate prints the normalizer report
func validate(ctx context.Context) {
	_, report, err := services.Default().Validate(orBackground(ctx))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records: %d\n", report.Total)
	fmt.Printf("Kept: %d\n", report.Kept)
	for _, reason := range []services.DropReason{services.DropEmptyLink, services.DropScript, services.DropDenied} {
		fmt.Printf("Dropped (%s): %d\n", reason, report.Dropped[reason])
	}
}
