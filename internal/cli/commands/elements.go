package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/ui"
)

var (
	elementsSkip  int
	elementsLimit int
)

// elementsCmd lists taxonomy element names
var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List taxonomy element names",
	Long: `List the element names declared by the taxonomy schema, sorted
lexicographically and paginated with --skip/--limit.`,
	Example: `  # First page (100 names)
  $ gaapctl elements

  # Next page
  $ gaapctl elements --skip 100

  # Larger pages
  $ gaapctl elements --limit 500`,
	RunE: runElements,
}

func init() {
	elementsCmd.Flags().IntVar(&elementsSkip, "skip", 0, "Offset into the sorted name list")
	elementsCmd.Flags().IntVar(&elementsLimit, "limit", 100, "Page size")
	elementsCmd.SilenceUsage = true
}

func runElements(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	list, err := apiClient.ListElements(ctx, elementsSkip, elementsLimit)
	if err != nil {
		ui.PrintError("failed to list elements: %v", err)
		return fmt.Errorf("list operation failed")
	}

	ui.PrintBold("Taxonomy elements %d-%d of %d", list.Skip+1, list.Skip+len(list.Elements), list.Total)
	fmt.Print(ui.RenderElementList(list.Elements, list.Skip))

	return nil
}
