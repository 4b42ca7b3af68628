package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/tiw/gaap-web-service/internal/cli/ui"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
	"github.com/tiw/gaap-web-service/internal/infrastructure/taxonomy"
	"github.com/tiw/gaap-web-service/internal/usecase"
)

var (
	analyzeTaxonomyDir string
	analyzeVersion     string
	analyzeOutput      string
)

// analyzeCmd runs the batch report-metrics analysis over a local release
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Correlate taxonomy elements with financial-report types",
	Long: `Run the batch analysis joining each report type's presentation
linkbases with the label linkbase. Produces per-report-type statistics,
cross-report common-metric sets and detailed per-section breakdowns for the
main report types (10-K, 10-Q, 13-F, 8-K), written as a JSON bundle.

Runs directly over a local taxonomy release; the API server is not used.`,
	Example: `  # Analyze a local US-GAAP release
  $ gaapctl analyze --taxonomy-dir ./us-gaap-2025

  # Choose release year and output file
  $ gaapctl analyze --taxonomy-dir /data/us-gaap-2025 --version 2025 -o analysis.json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTaxonomyDir, "taxonomy-dir", "", "Path to the unpacked taxonomy release (required)")
	analyzeCmd.Flags().StringVar(&analyzeVersion, "version", "2025", "Taxonomy release year")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "report_metrics_analysis.json", "Output JSON file")
	_ = analyzeCmd.MarkFlagRequired("taxonomy-dir")
	analyzeCmd.SilenceUsage = true
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(analyzeTaxonomyDir); err != nil {
		ui.PrintError("taxonomy directory not found: %s", analyzeTaxonomyDir)
		return fmt.Errorf("invalid taxonomy directory")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := taxonomy.NewStore(analyzeTaxonomyDir, analyzeVersion, logger)
	analysis := usecase.NewAnalysisUsecase(store, logger)

	ui.PrintInfo("Analyzing report types against taxonomy release %s...", analyzeVersion)

	result, err := analysis.Run(context.Background())
	if err != nil {
		ui.PrintError("analysis failed: %v", err)
		return fmt.Errorf("analysis failed")
	}

	data, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		ui.PrintError("failed to encode analysis result: %v", err)
		return fmt.Errorf("encoding failed")
	}
	if err := os.WriteFile(analyzeOutput, data, 0644); err != nil {
		ui.PrintError("failed to write %s: %v", analyzeOutput, err)
		return fmt.Errorf("write failed")
	}

	printAnalysisSummary(result)
	ui.PrintSuccess("detailed analysis saved to %s", analyzeOutput)

	return nil
}

// printAnalysisSummary renders the console summary of a finished run
func printAnalysisSummary(result *entity.AnalysisResult) {
	fmt.Println()
	ui.PrintBold("Report type / GAAP metric analysis")
	fmt.Printf("  Analysis date:    %s\n", result.AnalysisDate)
	fmt.Printf("  Taxonomy version: %s\n", result.TaxonomyVersion)

	reportTypes := make([]string, 0, len(result.Summary))
	for reportType := range result.Summary {
		reportTypes = append(reportTypes, reportType)
	}
	sort.Strings(reportTypes)

	fmt.Println()
	ui.PrintBold("Report type summary")
	for _, reportType := range reportTypes {
		info := result.Summary[reportType]

		sections := make([]string, 0, len(info.Sections))
		for section := range info.Sections {
			sections = append(sections, section)
		}
		sort.Strings(sections)

		fmt.Println()
		fmt.Print(ui.RenderKeyValues([][2]string{
			{reportType, info.Description},
			{"Frequency", info.Frequency},
			{"Total metrics", fmt.Sprintf("%d", info.TotalMetrics)},
			{"Unique metrics", fmt.Sprintf("%d", info.UniqueMetrics)},
			{"Sections", strings.Join(sections, ", ")},
		}))
	}

	if len(result.CommonMetricsAnalysis) == 0 {
		return
	}

	fmt.Println()
	ui.PrintBold("Common metric analysis")
	analysisKeys := make([]string, 0, len(result.CommonMetricsAnalysis))
	for key := range result.CommonMetricsAnalysis {
		analysisKeys = append(analysisKeys, key)
	}
	sort.Strings(analysisKeys)

	for _, key := range analysisKeys {
		info := result.CommonMetricsAnalysis[key]

		sample := info.Metrics
		if len(sample) > 5 {
			sample = sample[:5]
		}

		content := ui.RenderKeyValues([][2]string{
			{"Count", fmt.Sprintf("%d", info.Count)},
			{"Description", info.Description},
			{"Sample", strings.Join(sample, ", ")},
		})
		ui.PrintSummaryBox(key, strings.TrimRight(content, "\n"))
	}
}
