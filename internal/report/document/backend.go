// Package document renders reports as paginated PDF documents: it compiles
// the domain's layout template against a formatted view of the report data
// and hands the resulting HTML to the headless renderer.
package document

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/roufai-ne/crou-management-system-sub010/internal/report/templates"
	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/format"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/pdf"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/pongo"
)

// Renderer is the document backend's view of the headless render process.
type Renderer interface {
	Render(ctx context.Context, html string, opts pdf.PageOptions) ([]byte, error)
}

// Backend is the paginated-document rendering backend.
type Backend struct {
	registry *templates.Registry
	compiler *pongo.TemplateRenderer
	renderer Renderer
	logger   *zap.SugaredLogger
}

// NewBackend wires the document backend.
func NewBackend(registry *templates.Registry, renderer Renderer, logger *zap.SugaredLogger) *Backend {
	return &Backend{
		registry: registry,
		compiler: pongo.NewTemplateRenderer(),
		renderer: renderer,
		logger:   logger,
	}
}

// Generate compiles the domain template against the report data and
// paginates it. Any compile or render failure surfaces as one normalized
// generation error.
func (b *Backend) Generate(ctx context.Context, cfg model.ReportConfig, data model.ReportData, f *format.Formatter) ([]byte, error) {
	source := b.registry.Get(cfg.Domain)

	html, err := b.compiler.Render(source, buildContext(cfg, data, f))
	if err != nil {
		b.logger.Errorw("template compile failed", "domain", cfg.Domain, "error", err)
		return nil, errors.Wrapf(cn.ErrDocumentGeneration, "document generation failed: %s", err.Error())
	}

	opts := pdf.A4Portrait()
	opts.HeaderHTML = templates.PrintHeaderHTML(data.Tenant.Name)
	opts.FooterHTML = templates.PrintFooterHTML()

	buf, err := b.renderer.Render(ctx, html, opts)
	if err != nil {
		b.logger.Errorw("document render failed", "domain", cfg.Domain, "error", err)
		return nil, errors.Wrapf(cn.ErrDocumentGeneration, "document generation failed: %s", err.Error())
	}

	return buf, nil
}

// buildContext precomputes the render view. Every displayed value is
// formatted here, through the formatter, before the template sees it.
func buildContext(cfg model.ReportConfig, data model.ReportData, f *format.Formatter) map[string]any {
	ctx := map[string]any{
		"institution":  cn.InstitutionName,
		"abbrev":       cn.InstitutionAbbrev,
		"title":        data.Title,
		"subtitle":     data.Subtitle,
		"period_label": data.PeriodLabel,
		"generated_at": f.FormatDateTime(data.GeneratedAt),
		"generated_by": data.GeneratedBy,
		"tenant": map[string]any{
			"name":   data.Tenant.Name,
			"type":   data.Tenant.Type,
			"region": data.Tenant.Region,
		},
		"sections": buildSections(cfg, data, f),
		// Aggregate tags in the template render amounts through this
		// request's formatter.
		pongo.AmountFormatterKey: func(v float64) string {
			return f.FormatCurrency(v, format.DefaultCurrencyOptions())
		},
	}

	if cfg.Options.IncludeSummary && data.Summary != nil {
		ctx["summary"] = buildSummary(*data.Summary, f)
	}

	return ctx
}

func buildSummary(summary model.ReportSummary, f *format.Formatter) map[string]any {
	view := map[string]any{
		"total_records": f.FormatNumber(summary.TotalRecords, 0),
	}

	if summary.TotalAmount != nil {
		view["total_amount"] = f.FormatCurrency(*summary.TotalAmount, format.DefaultCurrencyOptions())
	}

	if summary.AverageAmount != nil {
		view["average_amount"] = f.FormatCurrency(*summary.AverageAmount, format.DefaultCurrencyOptions())
	}

	if summary.GrowthRate != nil {
		view["growth_rate"] = f.FormatPercentage(*summary.GrowthRate, 1)
	}

	metrics := make([]map[string]any, 0, len(summary.Metrics))
	for _, metric := range summary.Metrics {
		metrics = append(metrics, map[string]any{
			"name":  metric.Name,
			"value": f.FormatValue(metric.Value, "text", ""),
			"unit":  metric.Unit,
			"trend": f.FormatTrend(metric.Trend),
		})
	}

	view["metrics"] = metrics

	return view
}

func buildSections(cfg model.ReportConfig, data model.ReportData, f *format.Formatter) []map[string]any {
	sections := make([]map[string]any, 0, len(data.Sections))

	for _, section := range data.Sections {
		switch section.Kind {
		case cn.SectionChart:
			if !cfg.Options.IncludeCharts || section.Chart == nil {
				continue
			}

			sections = append(sections, buildChartSection(section, f))
		case cn.SectionTable:
			sections = append(sections, buildTableSection(section, f))
		case cn.SectionImage:
			source, _ := section.Data.(string)
			sections = append(sections, map[string]any{
				"kind":   cn.SectionImage,
				"title":  section.Title,
				"source": source,
			})
		default:
			sections = append(sections, map[string]any{
				"kind":  cn.SectionText,
				"title": section.Title,
				"text":  section.Text,
			})
		}
	}

	return sections
}

func buildTableSection(section model.ReportSection, f *format.Formatter) map[string]any {
	columns := make([]map[string]any, 0, len(section.Columns))
	for _, column := range section.Columns {
		columns = append(columns, map[string]any{
			"title": column.Title,
			"class": alignClass(column.Align),
		})
	}

	rows := make([][]map[string]any, 0, len(section.Rows()))

	for _, row := range section.Rows() {
		cells := make([]map[string]any, 0, len(section.Columns))

		for _, column := range section.Columns {
			value := f.FormatCell(row, column)

			class := alignClass(column.Align)
			if column.Type == format.ColumnStockStatus && value == format.StockAlert {
				class = "alert"
			}

			cells = append(cells, map[string]any{
				"value": value,
				"class": class,
			})
		}

		rows = append(rows, cells)
	}

	view := map[string]any{
		"kind":    cn.SectionTable,
		"title":   section.Title,
		"columns": columns,
		"rows":    rows,
		// Raw rows feed the template's aggregate footer.
		"raw_rows": section.Rows(),
		"colspan":  len(section.Columns),
	}

	if key := amountColumnKey(section.Columns); key != "" {
		view["total_key"] = key
	}

	return view
}

// amountColumnKey returns the key of the first monetary column, the one the
// template footer totals.
func amountColumnKey(columns []model.ReportColumn) string {
	for _, column := range columns {
		if column.Type == "currency" || column.Type == "amount" {
			return column.Key
		}
	}

	return ""
}

// buildChartSection lays the chart out as horizontal bars; the template
// scales each bar against the section maximum. One bar per label and
// dataset.
func buildChartSection(section model.ReportSection, f *format.Formatter) map[string]any {
	chart := *section.Chart

	max := chart.MaxValue()
	if max <= 0 {
		// All-zero datasets still render, as empty tracks.
		max = 1
	}

	bars := make([]map[string]any, 0, len(chart.Labels)*len(chart.Datasets))

	for i, label := range chart.Labels {
		for _, ds := range chart.Datasets {
			if i >= len(ds.Values) {
				continue
			}

			barLabel := label
			if len(chart.Datasets) > 1 {
				barLabel = label + " · " + ds.Label
			}

			bars = append(bars, map[string]any{
				"label":   barLabel,
				"value":   ds.Values[i],
				"display": f.FormatNumber(ds.Values[i], 0),
			})
		}
	}

	return map[string]any{
		"kind":  cn.SectionChart,
		"title": section.Title,
		"bars":  bars,
		"max":   max,
	}
}

func alignClass(align string) string {
	switch align {
	case "right":
		return "num"
	case "center":
		return "center"
	default:
		return ""
	}
}
