package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/tiw/gaap-web-service/internal/domain"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// Names of the cross-report intersections in the analysis bundle
const (
	Common10K10QKey     = "10-K_10-Q_common"
	CommonAllReportsKey = "all_reports_common"
)

// commonMetricsSampleSize caps the sample list emitted for the 10-K/10-Q
// intersection; the full count is always reported.
const commonMetricsSampleSize = 10

// AnalysisUsecase correlates taxonomy elements with financial-report types
type AnalysisUsecase interface {
	// Run performs the full batch analysis over every role code in the
	// static report table.
	Run(ctx context.Context) (*entity.AnalysisResult, error)
}

type analysisUsecase struct {
	repo   domain.TaxonomyRepository
	logger *slog.Logger
}

// NewAnalysisUsecase creates a new analysis usecase
func NewAnalysisUsecase(repo domain.TaxonomyRepository, logger *slog.Logger) AnalysisUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &analysisUsecase{repo: repo, logger: logger}
}

// Run analyzes every configured role code and assembles the result bundle.
// Detailed breakdowns are emitted for the main report types only.
func (u *analysisUsecase) Run(ctx context.Context) (*entity.AnalysisResult, error) {
	reportMetrics := u.analyzeReportMetrics(ctx)

	result := &entity.AnalysisResult{
		AnalysisDate:          time.Now().Format("2006-01-02"),
		TaxonomyVersion:       u.repo.Version(),
		Summary:               u.reportSummary(reportMetrics),
		CommonMetricsAnalysis: u.commonMetrics(reportMetrics),
		DetailedMetrics:       make(map[string]entity.DetailedReport),
	}

	for _, reportType := range domain.MainReportTypes {
		if _, ok := reportMetrics[reportType]; ok {
			result.DetailedMetrics[reportType] = u.detailedReport(reportType, reportMetrics)
		}
	}

	return result, nil
}

// analyzeReportMetrics joins every role code's presentation metrics with
// their labels, grouped by report type. Role codes follow the static table
// order; duplicate metric names across role codes of the same report type
// are retained as separate rows.
func (u *analysisUsecase) analyzeReportMetrics(ctx context.Context) map[string][]entity.ReportMetric {
	reportMetrics := make(map[string][]entity.ReportMetric)

	for _, roleCode := range domain.RoleOrder {
		info, ok := domain.RoleTable[roleCode]
		if !ok {
			continue
		}

		u.logger.Info("analyzing report role",
			"role", roleCode,
			"report_type", info.ReportType,
			"section", info.Section,
		)

		metrics := u.repo.PresentationMetrics(ctx, roleCode)
		frequency, ok := domain.FrequencyByReportType[info.ReportType]
		if !ok {
			frequency = "Annual"
		}

		for _, metricName := range metrics {
			metric := entity.ReportMetric{
				MetricName: metricName,
				Role:       roleCode,
				ReportType: info.ReportType,
				Frequency:  frequency,
				Required:   true,
			}
			if label, ok := u.repo.Label(ctx, metricName); ok {
				metric.Label = &label
			}
			reportMetrics[info.ReportType] = append(reportMetrics[info.ReportType], metric)
		}
	}

	return reportMetrics
}

// reportSummary aggregates per-report-type statistics. Section counts are
// derived by looking up each row's role code in the static table, with
// "Unknown" for roles no longer present there; they always sum to the
// type's total row count.
func (u *analysisUsecase) reportSummary(reportMetrics map[string][]entity.ReportMetric) map[string]entity.ReportSummary {
	summary := make(map[string]entity.ReportSummary, len(reportMetrics))

	for reportType, metrics := range reportMetrics {
		unique := make(map[string]struct{})
		sections := make(map[string]int)

		for _, m := range metrics {
			unique[m.MetricName] = struct{}{}
			section := "Unknown"
			if info, ok := domain.RoleTable[m.Role]; ok {
				section = info.Section
			}
			sections[section]++
		}

		summary[reportType] = entity.ReportSummary{
			TotalMetrics:  len(metrics),
			UniqueMetrics: len(unique),
			Frequency:     domain.ReportFrequency(reportType),
			Sections:      sections,
			Description:   domain.ReportDescription(reportType),
		}
	}

	return summary
}

// commonMetrics computes the named cross-report intersections: the 10-K/10-Q
// overlap when both types are present, and the intersection across all
// report types when more than one exists.
func (u *analysisUsecase) commonMetrics(reportMetrics map[string][]entity.ReportMetric) map[string]entity.CommonMetricSet {
	nameSets := make(map[string]map[string]struct{}, len(reportMetrics))
	for reportType, metrics := range reportMetrics {
		names := make(map[string]struct{}, len(metrics))
		for _, m := range metrics {
			names[m.MetricName] = struct{}{}
		}
		nameSets[reportType] = names
	}

	analysis := make(map[string]entity.CommonMetricSet)

	if annual, ok := nameSets["10-K"]; ok {
		if quarterly, ok := nameSets["10-Q"]; ok {
			common := sortedIntersection(annual, quarterly)
			sample := common
			if len(sample) > commonMetricsSampleSize {
				sample = sample[:commonMetricsSampleSize]
			}
			analysis[Common10K10QKey] = entity.CommonMetricSet{
				Count:       len(common),
				Metrics:     sample,
				Description: "Core financial metrics required by both annual and quarterly reports",
			}
		}
	}

	if len(nameSets) > 1 {
		core := intersectAll(nameSets)
		analysis[CommonAllReportsKey] = entity.CommonMetricSet{
			Count:       len(core),
			Metrics:     core,
			Description: "Baseline metrics required by every report type",
		}
	}

	return analysis
}

// detailedReport groups one report type's metric rows by section
func (u *analysisUsecase) detailedReport(reportType string, reportMetrics map[string][]entity.ReportMetric) entity.DetailedReport {
	metrics := reportMetrics[reportType]
	sections := make(map[string][]entity.SectionMetric)

	for _, m := range metrics {
		section := "Unknown"
		if info, ok := domain.RoleTable[m.Role]; ok {
			section = info.Section
		}
		sections[section] = append(sections[section], entity.SectionMetric{
			MetricName: m.MetricName,
			Label:      m.Label,
			Role:       m.Role,
		})
	}

	return entity.DetailedReport{
		ReportType:   reportType,
		Description:  domain.ReportDescription(reportType),
		Frequency:    domain.ReportFrequency(reportType),
		TotalMetrics: len(metrics),
		Sections:     sections,
	}
}

// sortedIntersection returns the sorted intersection of two name sets
func sortedIntersection(a, b map[string]struct{}) []string {
	out := []string{}
	for name := range a {
		if _, ok := b[name]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// intersectAll returns the sorted intersection across every name set
func intersectAll(sets map[string]map[string]struct{}) []string {
	var smallest map[string]struct{}
	for _, s := range sets {
		if smallest == nil || len(s) < len(smallest) {
			smallest = s
		}
	}

	out := []string{}
	for name := range smallest {
		inAll := true
		for _, s := range sets {
			if _, ok := s[name]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
