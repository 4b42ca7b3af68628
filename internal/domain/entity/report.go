package entity

// ReportMetric is one derived join row tying a taxonomy element to the
// financial-report type whose presentation linkbase referenced it.
// Rows are recomputed on every analysis run and never persisted.
type ReportMetric struct {
	MetricName string  `json:"metric_name"`
	Label      *string `json:"label"`
	Role       string  `json:"role"`
	ReportType string  `json:"report_type"`
	Frequency  string  `json:"frequency"`
	Required   bool    `json:"required"`
}

// ReportSummary aggregates one report type's metric rows
type ReportSummary struct {
	TotalMetrics  int            `json:"total_metrics"`
	UniqueMetrics int            `json:"unique_metrics"`
	Frequency     string         `json:"frequency"`
	Sections      map[string]int `json:"sections"`
	Description   string         `json:"description"`
}

// CommonMetricSet names one cross-report intersection of metric names
type CommonMetricSet struct {
	Count       int      `json:"count"`
	Metrics     []string `json:"metrics"`
	Description string   `json:"description"`
}

// SectionMetric is one row of a detailed per-section report
type SectionMetric struct {
	MetricName string  `json:"metric_name"`
	Label      *string `json:"label"`
	Role       string  `json:"role"`
}

// DetailedReport groups one report type's metrics by section
type DetailedReport struct {
	ReportType   string                     `json:"report_type"`
	Description  string                     `json:"description"`
	Frequency    string                     `json:"frequency"`
	TotalMetrics int                        `json:"total_metrics"`
	Sections     map[string][]SectionMetric `json:"sections"`
}

// AnalysisResult is the full batch analysis bundle
type AnalysisResult struct {
	AnalysisDate          string                     `json:"analysis_date"`
	TaxonomyVersion       string                     `json:"taxonomy_version"`
	Summary               map[string]ReportSummary   `json:"summary"`
	CommonMetricsAnalysis map[string]CommonMetricSet `json:"common_metrics_analysis"`
	DetailedMetrics       map[string]DetailedReport  `json:"detailed_metrics"`
}
