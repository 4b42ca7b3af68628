package domain

// RoleInfo describes the report type and section a presentation role code
// belongs to.
type RoleInfo struct {
	ReportType  string
	Section     string
	Description string
}

// RoleOrder fixes the iteration order of RoleTable. Go maps iterate in
// random order; the analyzer walks this slice so batch output is
// deterministic run to run.
var RoleOrder = []string{
	"bc", "ci", "cf", "equity", "ap", "debt", "inv", "ppe", "eps",
	"inctax", "lea", "rd", "se",
	"bsoff", "ni", "ocpfs",
	"schedoi-hold", "schedoi-sumhold", "schedoi-otsh", "schedoi-shorthold",
	"schedoi-iiaa", "schedoi-oocw", "schedoi-fednote",
	"disops", "reorg", "dise",
	"fs-ins", "fs-mort",
	"fs-bd", "fs-bt", "fs-fhlb",
	"invco",
	"oi", "regop",
	"hco",
	"crcgen", "cecl", "fifvd", "dr", "guar", "pay",
}

// RoleTable maps presentation role codes to their report type and section.
// A role code queried by the analyzer but absent here yields zero metrics
// for that code, not an error.
var RoleTable = map[string]RoleInfo{
	// 10-K (annual report)
	"bc":     {ReportType: "10-K", Section: "Balance Sheet", Description: "Statement of financial position"},
	"ci":     {ReportType: "10-K", Section: "Income Statement", Description: "Statement of comprehensive income"},
	"cf":     {ReportType: "10-K", Section: "Cash Flow", Description: "Statement of cash flows"},
	"equity": {ReportType: "10-K", Section: "Equity Statement", Description: "Statement of changes in equity"},
	"ap":     {ReportType: "10-K", Section: "Accounting Policies", Description: "Accounting policies"},
	"debt":   {ReportType: "10-K", Section: "Debt Disclosure", Description: "Debt disclosure"},
	"inv":    {ReportType: "10-K", Section: "Investment Disclosure", Description: "Investment disclosure"},
	"ppe":    {ReportType: "10-K", Section: "Property Plant Equipment", Description: "Property, plant and equipment"},
	"eps":    {ReportType: "10-K", Section: "Earnings Per Share", Description: "Earnings per share"},
	"inctax": {ReportType: "10-K", Section: "Income Tax", Description: "Income taxes"},
	"lea":    {ReportType: "10-K", Section: "Lease", Description: "Leases"},
	"rd":     {ReportType: "10-K", Section: "Research Development", Description: "Research and development expense"},
	"se":     {ReportType: "10-K", Section: "Subsequent Events", Description: "Subsequent events"},

	// 10-Q (quarterly report) - condensed core statements
	"bsoff": {ReportType: "10-Q", Section: "Balance Sheet Summary", Description: "Condensed balance sheet"},
	"ni":    {ReportType: "10-Q", Section: "Net Income Summary", Description: "Net income summary"},
	"ocpfs": {ReportType: "10-Q", Section: "Operating Cash Flow Summary", Description: "Operating cash flow summary"},

	// 13-F (institutional holdings report)
	"schedoi-hold":      {ReportType: "13-F", Section: "Schedule of Investments Holdings", Description: "Schedule of investment holdings"},
	"schedoi-sumhold":   {ReportType: "13-F", Section: "Summary Holdings", Description: "Summary of holdings"},
	"schedoi-otsh":      {ReportType: "13-F", Section: "Other Securities Held", Description: "Other securities held"},
	"schedoi-shorthold": {ReportType: "13-F", Section: "Short Holdings", Description: "Short positions"},
	"schedoi-iiaa":      {ReportType: "13-F", Section: "Investment Adviser Activities", Description: "Investment adviser activities"},
	"schedoi-oocw":      {ReportType: "13-F", Section: "Other Options Contracts Written", Description: "Options contracts written"},
	"schedoi-fednote":   {ReportType: "13-F", Section: "Federal Note", Description: "Federal notes"},

	// 8-K (material events report)
	"disops": {ReportType: "8-K", Section: "Discontinued Operations", Description: "Discontinued operations"},
	"reorg":  {ReportType: "8-K", Section: "Reorganization", Description: "Reorganizations"},
	"dise":   {ReportType: "8-K", Section: "Disposal Events", Description: "Disposal events"},

	// Insurance statutory reporting
	"fs-ins":  {ReportType: "Insurance-SAP", Section: "Insurance Financial Statements", Description: "Insurance financial statements"},
	"fs-mort": {ReportType: "Insurance-SAP", Section: "Mortgage Insurance", Description: "Mortgage insurance"},

	// Bank regulatory reporting
	"fs-bd":   {ReportType: "Bank-Call Report", Section: "Bank Financial Data", Description: "Bank financial data"},
	"fs-bt":   {ReportType: "Bank-Call Report", Section: "Bank Trading", Description: "Bank trading activities"},
	"fs-fhlb": {ReportType: "Bank-Call Report", Section: "Federal Home Loan Bank", Description: "Federal Home Loan Bank"},

	// Investment companies
	"invco": {ReportType: "Investment Company", Section: "Investment Company", Description: "Investment company disclosures"},

	// Energy industry
	"oi":    {ReportType: "Energy-Industry", Section: "Oil and Gas", Description: "Oil and gas activities"},
	"regop": {ReportType: "Energy-Industry", Section: "Regulated Operations", Description: "Regulated operations"},

	// Healthcare
	"hco": {ReportType: "Healthcare", Section: "Healthcare Operations", Description: "Healthcare operations"},

	// Other specialized disclosures
	"crcgen": {ReportType: "Credit Risk", Section: "Credit Risk General", Description: "General credit risk disclosures"},
	"cecl":   {ReportType: "Credit Risk", Section: "Credit Loss", Description: "Current expected credit losses"},
	"fifvd":  {ReportType: "Fair Value", Section: "Fair Value Disclosure", Description: "Fair value measurement disclosures"},
	"dr":     {ReportType: "Derivative", Section: "Derivative Risk", Description: "Derivative instruments and risk"},
	"guar":   {ReportType: "Guarantee", Section: "Guarantees", Description: "Guarantee obligations"},
	"pay":    {ReportType: "Payment", Section: "Payment Systems", Description: "Payment processing disclosures"},
}

// FrequencyByReportType maps a report type to its filing frequency label
var FrequencyByReportType = map[string]string{
	"10-K":               "Annual",
	"10-Q":               "Quarterly",
	"8-K":                "Event-based",
	"13-F":               "Quarterly",
	"Insurance-SAP":      "Annual/Quarterly",
	"Bank-Call Report":   "Quarterly",
	"Investment Company": "Annual/Semi-annual",
	"Energy-Industry":    "Annual",
	"Healthcare":         "Annual",
	"Credit Risk":        "Annual",
	"Fair Value":         "Annual",
	"Derivative":         "Annual",
	"Guarantee":          "Annual",
	"Payment":            "Annual",
}

// MainReportTypes lists the report types that get a detailed breakdown in
// the analysis bundle; other types are summarized only.
var MainReportTypes = []string{"10-K", "10-Q", "13-F", "8-K"}

var reportDescriptions = map[string]string{
	"10-K":               "Annual report with complete financial statements and full disclosures",
	"10-Q":               "Quarterly report updating the core financial statements",
	"8-K":                "Current report disclosing material corporate events",
	"13-F":               "Quarterly holdings report filed by large institutional investors",
	"Insurance-SAP":      "Statutory accounting report specific to the insurance industry",
	"Bank-Call Report":   "Regulatory financial report banks file with their supervisors",
	"Investment Company": "Specialized report for mutual funds and investment companies",
	"Energy-Industry":    "Industry disclosures for oil, gas and other energy companies",
	"Healthcare":         "Industry disclosures for healthcare operations",
	"Credit Risk":        "Credit risk management disclosures for financial institutions",
	"Fair Value":         "Detailed fair value measurement disclosures",
	"Derivative":         "Risk and usage disclosures for derivative instruments",
	"Guarantee":          "Guarantee obligation and contingent liability disclosures",
	"Payment":            "Payment processing and financial services disclosures",
}

// ReportDescription returns the prose description of a report type
func ReportDescription(reportType string) string {
	if d, ok := reportDescriptions[reportType]; ok {
		return d
	}
	return reportType + " related financial disclosures"
}

// ReportFrequency returns the filing frequency of a report type,
// defaulting to Annual for role table entries and Unknown elsewhere.
func ReportFrequency(reportType string) string {
	if f, ok := FrequencyByReportType[reportType]; ok {
		return f
	}
	return "Unknown"
}
