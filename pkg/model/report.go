package model

import (
	"time"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// ReportPeriod describes the reporting window, either by named granularity
// or by explicit bounds when Granularity is "custom".
type ReportPeriod struct {
	Granularity string     `json:"granularity" validate:"omitempty,oneof=daily weekly monthly quarterly yearly custom"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
}

// IsCustom reports whether the period uses explicit bounds.
func (p ReportPeriod) IsCustom() bool {
	return p.Granularity == constant.PeriodCustom
}

// ReportOptions carries locale and feature flags for one generation call.
// There is no process-wide locale state; these values are threaded into
// every formatter call.
type ReportOptions struct {
	Locale         string `json:"locale,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Currency       string `json:"currency,omitempty"`
	IncludeCharts  bool   `json:"includeCharts"`
	IncludeSummary bool   `json:"includeSummary"`
	IncludeDetails bool   `json:"includeDetails"`
}

// ReportConfig is the immutable request descriptor for one report. The
// engine never retains it beyond a single generation call.
type ReportConfig struct {
	OutputKind string         `json:"outputKind" validate:"required,oneof=document workbook flat-table"`
	Domain     string         `json:"domain" validate:"required"`
	TenantID   string         `json:"tenantId" validate:"required"`
	Period     ReportPeriod   `json:"period"`
	Filters    map[string]any `json:"filters,omitempty"`
	Options    ReportOptions  `json:"options"`
}

// Tenant describes the institution unit a report belongs to.
type Tenant struct {
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Region string `json:"region,omitempty"`
}

// ReportMetric is one headline figure in the report summary.
type ReportMetric struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Unit  string `json:"unit,omitempty"`
	Trend string `json:"trend,omitempty"`
}

// ReportSummary aggregates headline figures across all sections.
type ReportSummary struct {
	TotalRecords  int            `json:"totalRecords"`
	TotalAmount   *float64       `json:"totalAmount,omitempty"`
	AverageAmount *float64       `json:"averageAmount,omitempty"`
	GrowthRate    *float64       `json:"growthRate,omitempty"`
	Metrics       []ReportMetric `json:"metrics,omitempty"`
}

// ReportColumn declares how one table column is extracted and formatted.
type ReportColumn struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Type   string  `json:"type"`
	Format string  `json:"format,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Align  string  `json:"align,omitempty"`
}

// ReportSection is one self-contained rendering unit. Kind selects the
// payload interpretation: table sections use Data plus Columns, chart
// sections use Chart, text sections use Text, image sections use Data as a
// source reference.
type ReportSection struct {
	Title   string         `json:"title"`
	Kind    string         `json:"kind"`
	Data    any            `json:"data,omitempty"`
	Columns []ReportColumn `json:"columns,omitempty"`
	Chart   *ChartConfig   `json:"chart,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Rows coerces the section payload into a row list. Table payloads arrive
// either as []map[string]any or as []any of maps after JSON decoding.
func (s ReportSection) Rows() []map[string]any {
	switch data := s.Data.(type) {
	case []map[string]any:
		return data
	case []any:
		rows := make([]map[string]any, 0, len(data))

		for _, item := range data {
			if row, ok := item.(map[string]any); ok {
				rows = append(rows, row)
			}
		}

		return rows
	default:
		return nil
	}
}

// ReportData is the fully assembled content for one report instance.
// Sections render in order; ordering must be preserved.
type ReportData struct {
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	PeriodLabel string          `json:"periodLabel"`
	GeneratedAt time.Time       `json:"generatedAt"`
	GeneratedBy string          `json:"generatedBy"`
	Tenant      Tenant          `json:"tenant"`
	Summary     *ReportSummary  `json:"summary,omitempty"`
	Sections    []ReportSection `json:"sections"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// RecordCount returns the total number of rows across table sections.
func (d ReportData) RecordCount() int {
	total := 0

	for _, section := range d.Sections {
		if section.Kind == constant.SectionTable {
			total += len(section.Rows())
		}
	}

	return total
}

// ResultMetadata carries observability figures for one generation call.
type ResultMetadata struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Duration    time.Duration `json:"duration"`
	RecordCount int           `json:"recordCount"`
}

// ReportResult is the output envelope. It is constructed once per
// generation call and never mutated after return.
type ReportResult struct {
	Success  bool           `json:"success"`
	Data     []byte         `json:"-"`
	Filename string         `json:"filename,omitempty"`
	MimeType string         `json:"mimeType,omitempty"`
	Size     int            `json:"size"`
	Error    string         `json:"error,omitempty"`
	Metadata ResultMetadata `json:"metadata"`
}
