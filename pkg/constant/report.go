package constant

// Output kinds accepted by the report engine.
const (
	OutputDocument  = "document"
	OutputWorkbook  = "workbook"
	OutputFlatTable = "flat-table"
)

// Report domains known to the engine. An unknown domain is normalized to
// DomainFinancial so a request always renders something.
const (
	DomainFinancial = "financial"
	DomainStock     = "stock"
	DomainHousing   = "housing"
	DomainTransport = "transport"
	DomainWorkflow  = "workflow"
	DomainDashboard = "dashboard"
	DomainAudit     = "audit"
)

// Section kinds.
const (
	SectionTable = "table"
	SectionChart = "chart"
	SectionText  = "text"
	SectionImage = "image"
)

// Period granularities.
const (
	PeriodDaily     = "daily"
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
	PeriodCustom    = "custom"
)

// Magnitude thresholds for amount formatting.
const (
	AmountBillionThreshold = 1_000_000_000
	AmountMillionThreshold = 1_000_000
)

// Formatting defaults and placeholders.
const (
	DefaultLocale     = "fr-FR"
	DefaultCurrency   = "XOF"
	DefaultTimezone   = "Africa/Niamey"
	EmptyPlaceholder  = "-"
	InstitutionName   = "Centre Régional des Œuvres Universitaires"
	InstitutionAbbrev = "CROU"
)

// Domains returns every registered report domain.
func Domains() []string {
	return []string{
		DomainFinancial,
		DomainStock,
		DomainHousing,
		DomainTransport,
		DomainWorkflow,
		DomainDashboard,
		DomainAudit,
	}
}

// IsKnownDomain reports whether domain is one of the registered domains.
func IsKnownDomain(domain string) bool {
	for _, d := range Domains() {
		if d == domain {
			return true
		}
	}

	return false
}

// NormalizeDomain maps an unknown domain to DomainFinancial. Both rendering
// backends and the template registry share this fallback so the policy stays
// symmetric across output kinds.
func NormalizeDomain(domain string) string {
	if IsKnownDomain(domain) {
		return domain
	}

	return DomainFinancial
}

// MimeType returns the MIME type matching an output kind.
func MimeType(outputKind string) string {
	switch outputKind {
	case OutputDocument:
		return "application/pdf"
	case OutputWorkbook:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case OutputFlatTable:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// FileExtension returns the filename extension matching an output kind.
func FileExtension(outputKind string) string {
	switch outputKind {
	case OutputDocument:
		return "pdf"
	case OutputWorkbook:
		return "xlsx"
	case OutputFlatTable:
		return "csv"
	default:
		return "bin"
	}
}
