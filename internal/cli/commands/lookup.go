package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/ui"
)

// lookupCmd resolves one element's label and references
var lookupCmd = &cobra.Command{
	Use:   "lookup [element-name]",
	Short: "Resolve one element's label and references",
	Long: `Resolve the human-readable label and the accounting-standard
references of one taxonomy element. Prompts for the element name when it
is not given as an argument.`,
	Example: `  # Look up an element by name
  $ gaapctl lookup Assets

  # Prompt for the name interactively
  $ gaapctl lookup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.SilenceUsage = true
}

func runLookup(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		prompt := &survey.Input{
			Message: "Element name:",
			Help:    "A taxonomy element name, e.g. Assets or RevenueFromContractWithCustomer",
		}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	info, err := apiClient.GetElement(ctx, name)
	if err != nil {
		ui.PrintError("failed to resolve element '%s': %v", name, err)
		return fmt.Errorf("lookup failed")
	}

	fmt.Println()
	fmt.Print(ui.RenderElementInfo(info))

	return nil
}
