// Package workbook renders reports as spreadsheet workbooks built purely
// in memory. Numeric aggregation rows embed native SUM formulas over the
// data-row range rather than precomputed totals, so the recipient's
// spreadsheet tool recomputes on edit.
package workbook

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/roufai-ne/crou-management-system-sub010/internal/report/templates"
	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/format"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

const (
	colorHeaderBg = "1F4E79"
	colorHeaderFg = "FFFFFF"
	colorAlertBg  = "FFC7CE"
	colorAlertFg  = "9C0006"

	defaultColWidth = 18.0
)

// Backend is the spreadsheet rendering backend. It holds no external
// resource; each call operates on its own workbook instance, so concurrent
// calls need no coordination.
type Backend struct {
	logger *zap.SugaredLogger
}

// NewBackend creates the workbook backend.
func NewBackend(logger *zap.SugaredLogger) *Backend {
	return &Backend{logger: logger}
}

// styleSet holds the style IDs registered on one workbook instance.
type styleSet struct {
	title    int
	label    int
	section  int
	header   int
	cell     int
	cellNum  int
	alert    int
	totalLbl int
	totalNum int
}

// Generate builds the workbook and serializes it to a buffer. Any write or
// serialization failure surfaces as one normalized generation error.
func (b *Backend) Generate(_ context.Context, cfg model.ReportConfig, data model.ReportData, f *format.Formatter) ([]byte, error) {
	buf, err := b.build(cfg, data, f)
	if err != nil {
		b.logger.Errorw("workbook build failed", "domain", cfg.Domain, "error", err)
		return nil, errors.Wrapf(cn.ErrWorkbookGeneration, "workbook generation failed: %s", err.Error())
	}

	return buf, nil
}

func (b *Backend) build(cfg model.ReportConfig, data model.ReportData, f *format.Formatter) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := templates.DomainLabel(cfg.Domain)

	idx, err := wb.NewSheet(sheet)
	if err != nil {
		return nil, err
	}

	wb.SetActiveSheet(idx)

	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	// Pin document properties to the report timestamp so byte-identical
	// input yields byte-identical output.
	stamp := data.GeneratedAt.UTC().Format(time.RFC3339)
	if err := wb.SetDocProps(&excelize.DocProperties{
		Creator:        data.GeneratedBy,
		Created:        stamp,
		Modified:       stamp,
		Title:          data.Title,
		ContentStatus:  "final",
		Category:       cn.NormalizeDomain(cfg.Domain),
		LastModifiedBy: data.GeneratedBy,
	}); err != nil {
		return nil, err
	}

	styles, err := registerStyles(wb, f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{wb: wb, sheet: sheet, styles: styles, fmt: f, row: 1}

	if err := w.writeInstitutionHeader(data); err != nil {
		return nil, err
	}

	if cfg.Options.IncludeSummary && data.Summary != nil {
		if err := w.writeSummary(*data.Summary); err != nil {
			return nil, err
		}
	}

	sections := visibleSections(cfg, data.Sections)

	widest := 0

	for _, section := range sections {
		cols, err := w.writeSection(section)
		if err != nil {
			return nil, err
		}

		if cols > widest {
			widest = cols
		}
	}

	if err := w.applyColumnWidths(sections, widest); err != nil {
		return nil, err
	}

	out, err := wb.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func registerStyles(wb *excelize.File, f *format.Formatter) (styleSet, error) {
	var s styleSet

	var err error

	thin := []excelize.Border{
		{Type: "left", Color: "BFBFBF", Style: 1},
		{Type: "right", Color: "BFBFBF", Style: 1},
		{Type: "top", Color: "BFBFBF", Style: 1},
		{Type: "bottom", Color: "BFBFBF", Style: 1},
	}

	if s.title, err = wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 15},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return s, err
	}

	if s.label, err = wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: "555555"},
	}); err != nil {
		return s, err
	}

	if s.section, err = wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: colorHeaderBg},
	}); err != nil {
		return s, err
	}

	if s.header, err = wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10, Color: colorHeaderFg},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorHeaderBg}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin,
	}); err != nil {
		return s, err
	}

	if s.cell, err = wb.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thin,
	}); err != nil {
		return s, err
	}

	numFmt := f.ExcelCurrencyFormat()
	if s.cellNum, err = wb.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thin,
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}

	if s.alert, err = wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10, Bold: true, Color: colorAlertFg},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorAlertBg}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	}); err != nil {
		return s, err
	}

	if s.totalLbl, err = wb.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thin,
	}); err != nil {
		return s, err
	}

	if s.totalNum, err = wb.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 10},
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thin,
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}

	return s, nil
}

// sheetWriter tracks the cursor row while laying out one sheet.
type sheetWriter struct {
	wb     *excelize.File
	sheet  string
	styles styleSet
	fmt    *format.Formatter
	row    int
}

func (w *sheetWriter) cell(col int) (string, error) {
	return excelize.CoordinatesToCellName(col, w.row)
}

func (w *sheetWriter) set(col int, value any, style int) error {
	name, err := w.cell(col)
	if err != nil {
		return err
	}

	if err := w.wb.SetCellValue(w.sheet, name, value); err != nil {
		return err
	}

	if style > 0 {
		return w.wb.SetCellStyle(w.sheet, name, name, style)
	}

	return nil
}

func (w *sheetWriter) writeInstitutionHeader(data model.ReportData) error {
	if err := w.set(1, cn.InstitutionName+" — "+cn.InstitutionAbbrev, w.styles.title); err != nil {
		return err
	}

	w.row++

	tenant := data.Tenant.Name
	if data.Tenant.Region != "" {
		tenant += " · " + data.Tenant.Region
	}

	if err := w.set(1, tenant, w.styles.label); err != nil {
		return err
	}

	w.row++

	title := data.Title
	if data.Subtitle != "" {
		title += " — " + data.Subtitle
	}

	if err := w.set(1, title, w.styles.section); err != nil {
		return err
	}

	w.row++

	info := fmt.Sprintf("Période : %s · Généré par %s le %s",
		data.PeriodLabel, data.GeneratedBy, w.fmt.FormatDateTime(data.GeneratedAt))
	if err := w.set(1, info, w.styles.label); err != nil {
		return err
	}

	w.row += 2

	return nil
}

func (w *sheetWriter) writeSummary(summary model.ReportSummary) error {
	if err := w.set(1, "Synthèse", w.styles.section); err != nil {
		return err
	}

	w.row++

	lines := []struct {
		label string
		value string
	}{
		{"Enregistrements", w.fmt.FormatNumber(summary.TotalRecords, 0)},
	}

	if summary.TotalAmount != nil {
		lines = append(lines, struct{ label, value string }{
			"Montant total", w.fmt.FormatCurrency(*summary.TotalAmount, format.DefaultCurrencyOptions()),
		})
	}

	if summary.AverageAmount != nil {
		lines = append(lines, struct{ label, value string }{
			"Montant moyen", w.fmt.FormatCurrency(*summary.AverageAmount, format.DefaultCurrencyOptions()),
		})
	}

	if summary.GrowthRate != nil {
		lines = append(lines, struct{ label, value string }{
			"Évolution", w.fmt.FormatPercentage(*summary.GrowthRate, 1),
		})
	}

	for _, metric := range summary.Metrics {
		value := w.fmt.FormatValue(metric.Value, "text", "")
		if metric.Unit != "" {
			value += " " + metric.Unit
		}

		lines = append(lines, struct{ label, value string }{metric.Name, value})
	}

	for _, line := range lines {
		if err := w.set(1, line.label, w.styles.totalLbl); err != nil {
			return err
		}

		if err := w.set(2, line.value, w.styles.cell); err != nil {
			return err
		}

		w.row++
	}

	w.row++

	return nil
}

// writeSection lays out one section and returns its column count.
func (w *sheetWriter) writeSection(section model.ReportSection) (int, error) {
	columns, rows := tabularView(section)
	if columns == nil && section.Kind != cn.SectionText && section.Kind != cn.SectionImage {
		return 0, nil
	}

	if err := w.set(1, section.Title, w.styles.section); err != nil {
		return 0, err
	}

	w.row++

	if section.Kind == cn.SectionText {
		if err := w.set(1, section.Text, w.styles.cell); err != nil {
			return 0, err
		}

		w.row += 2

		return 1, nil
	}

	// Spreadsheets carry no embedded illustrations; the title plus a note
	// tells the reader what was elided.
	if section.Kind == cn.SectionImage {
		if err := w.set(1, "Illustration non reproduite dans le classeur", w.styles.label); err != nil {
			return 0, err
		}

		w.row += 2

		return 1, nil
	}

	for i, column := range columns {
		if err := w.set(i+1, column.Title, w.styles.header); err != nil {
			return 0, err
		}
	}

	w.row++

	firstDataRow := w.row

	for _, row := range rows {
		for i, column := range columns {
			if err := w.writeDataCell(i+1, row, column); err != nil {
				return 0, err
			}
		}

		w.row++
	}

	lastDataRow := w.row - 1

	if len(rows) > 0 && hasNumericColumn(columns) {
		if err := w.writeTotalRow(columns, firstDataRow, lastDataRow); err != nil {
			return 0, err
		}
	}

	w.row++

	return len(columns), nil
}

// writeDataCell writes one cell. Numeric columns carry the raw value with
// the locale number format so embedded formulas recompute correctly;
// everything else goes through the formatter as display text.
func (w *sheetWriter) writeDataCell(col int, row map[string]any, column model.ReportColumn) error {
	if isNumericType(column.Type) {
		if value, ok := format.Numeric(row[column.Key]); ok {
			return w.set(col, value, w.styles.cellNum)
		}
	}

	display := w.fmt.FormatCell(row, column)

	style := w.styles.cell
	if column.Type == format.ColumnStockStatus && display == format.StockAlert {
		style = w.styles.alert
	}

	return w.set(col, display, style)
}

// writeTotalRow writes the aggregate row: a label in the first column and
// a native SUM formula over exactly the data-row range for every numeric
// column.
func (w *sheetWriter) writeTotalRow(columns []model.ReportColumn, firstDataRow, lastDataRow int) error {
	if err := w.set(1, "Total", w.styles.totalLbl); err != nil {
		return err
	}

	for i, column := range columns {
		if i == 0 || !isNumericType(column.Type) {
			continue
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		cellName, err := w.cell(i + 1)
		if err != nil {
			return err
		}

		formula := fmt.Sprintf("SUM(%s%d:%s%d)", colName, firstDataRow, colName, lastDataRow)
		if err := w.wb.SetCellFormula(w.sheet, cellName, formula); err != nil {
			return err
		}

		if err := w.wb.SetCellStyle(w.sheet, cellName, cellName, w.styles.totalNum); err != nil {
			return err
		}
	}

	w.row++

	return nil
}

func (w *sheetWriter) applyColumnWidths(sections []model.ReportSection, widest int) error {
	widths := make(map[int]float64)

	for _, section := range sections {
		columns, _ := tabularView(section)
		for i, column := range columns {
			width := column.Width
			if width <= 0 {
				width = defaultColWidth
			}

			if width > widths[i+1] {
				widths[i+1] = width
			}
		}
	}

	for col := 1; col <= widest; col++ {
		width, ok := widths[col]
		if !ok {
			width = defaultColWidth
		}

		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}

		if err := w.wb.SetColWidth(w.sheet, name, name, width); err != nil {
			return err
		}
	}

	return nil
}

// visibleSections drops chart sections when the request excludes charts,
// matching the document backend's reading of the option.
func visibleSections(cfg model.ReportConfig, sections []model.ReportSection) []model.ReportSection {
	out := make([]model.ReportSection, 0, len(sections))

	for _, section := range sections {
		if section.Kind == cn.SectionChart && !cfg.Options.IncludeCharts {
			continue
		}

		out = append(out, section)
	}

	return out
}

// tabularView returns the columns and rows of a section's tabular
// representation. Chart sections degrade to their dataset table.
func tabularView(section model.ReportSection) ([]model.ReportColumn, []map[string]any) {
	switch section.Kind {
	case cn.SectionTable:
		return section.Columns, section.Rows()
	case cn.SectionChart:
		if section.Chart == nil {
			return nil, nil
		}

		columns := []model.ReportColumn{{Key: "label", Title: "Libellé", Type: "text"}}
		for _, ds := range section.Chart.Datasets {
			columns = append(columns, model.ReportColumn{Key: ds.Label, Title: ds.Label, Type: "number"})
		}

		return columns, section.Chart.Table()
	default:
		return nil, nil
	}
}

func isNumericType(colType string) bool {
	switch colType {
	case "currency", "amount", "number":
		return true
	default:
		return false
	}
}

func hasNumericColumn(columns []model.ReportColumn) bool {
	for i, column := range columns {
		if i > 0 && isNumericType(column.Type) {
			return true
		}
	}

	return false
}
