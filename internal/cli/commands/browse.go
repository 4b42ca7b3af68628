package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/tui"
	"github.com/tiw/gaap-web-service/internal/cli/ui"
)

// browseCmd opens the interactive taxonomy browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the taxonomy interactively",
	Long: `Open a full-screen interactive browser over the taxonomy. Type a
keyword and press Enter to search; press Enter on an empty input or Esc to
quit.`,
	Example: `  # Browse against the configured server
  $ gaapctl browse

  # Browse against a specific server
  $ gaapctl browse -s http://localhost:8080`,
	RunE: runBrowse,
}

func init() {
	browseCmd.SilenceUsage = true
}

func runBrowse(cmd *cobra.Command, args []string) error {
	apiClient, err := newAPIClient()
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	program := tui.NewBrowseProgram(apiClient)
	if err := program.Run(); err != nil {
		ui.PrintError("browser exited with error: %v", err)
		return fmt.Errorf("browse failed")
	}

	return nil
}
