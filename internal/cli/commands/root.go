package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/ui"
)

const version = "0.1.0"

// serverAddr is the API server address shared by the client commands
var serverAddr string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "gaapctl",
	Short:   "US GAAP taxonomy CLI",
	Version: version,
	Long: `A command-line tool for the US GAAP taxonomy resolution service.
Looks up element labels and accounting-standard references through the API
server, searches the taxonomy, and runs the batch report-metrics analysis
directly over a local taxonomy release.`,
	Example: `  # List the first page of taxonomy elements
  $ gaapctl elements

  # Look up one element (prompts for the name when omitted)
  $ gaapctl lookup Assets

  # Search elements by keyword
  $ gaapctl search Revenue

  # Browse the taxonomy interactively
  $ gaapctl browse

  # Run the batch report-metrics analysis over a local release
  $ gaapctl analyze --taxonomy-dir ./us-gaap-2025`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "", "API server address (defaults to ~/.gaapctl/config.json)")

	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(analyzeCmd)

	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("gaapctl version %s\n", version)
}
