package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/ui"
)

var (
	searchSkip  int
	searchLimit int
)

// searchCmd searches element names by keyword
var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search element names by keyword",
	Long: `Search taxonomy element names by case-insensitive substring match,
paginated with --skip/--limit.`,
	Example: `  # Find all asset-related elements
  $ gaapctl search Asset

  # Page through a large result set
  $ gaapctl search Revenue --skip 100`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchSkip, "skip", 0, "Offset into the match list")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 100, "Page size")
	searchCmd.SilenceUsage = true
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	result, err := apiClient.SearchElements(ctx, keyword, searchSkip, searchLimit)
	if err != nil {
		ui.PrintError("search failed: %v", err)
		return fmt.Errorf("search operation failed")
	}

	if result.Total == 0 {
		ui.PrintWarning("no elements match '%s'", keyword)
		return nil
	}

	ui.PrintBold("Elements matching '%s': %d-%d of %d", keyword, result.Skip+1, result.Skip+len(result.Elements), result.Total)
	fmt.Print(ui.RenderElementList(result.Elements, result.Skip))

	return nil
}
