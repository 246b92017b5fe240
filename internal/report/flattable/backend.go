// Package flattable renders reports as CSV: every table section flattened
// in order, all cells through the formatter. Chart sections degrade to
// their dataset table when the request includes charts, like the workbook
// backend.
package flattable

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/format"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

// Backend is the flat-table rendering backend. It holds no external
// resource and is safe for concurrent use.
type Backend struct {
	logger *zap.SugaredLogger
}

// NewBackend creates the flat-table backend.
func NewBackend(logger *zap.SugaredLogger) *Backend {
	return &Backend{logger: logger}
}

// Generate writes every tabular section to one CSV buffer. Sections are
// separated by a blank record; each starts with its title, then the
// column header row, then one record per row.
func (b *Backend) Generate(_ context.Context, cfg model.ReportConfig, data model.ReportData, f *format.Formatter) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	writeRecord := func(record []string) error {
		return w.Write(record)
	}

	if err := writeRecord([]string{data.Title, data.PeriodLabel, data.Tenant.Name}); err != nil {
		return nil, wrapErr(err)
	}

	for _, section := range data.Sections {
		if section.Kind == cn.SectionChart && !cfg.Options.IncludeCharts {
			continue
		}

		columns, rows := tabularView(section)
		if columns == nil {
			continue
		}

		if err := writeRecord(nil); err != nil {
			return nil, wrapErr(err)
		}

		if err := writeRecord([]string{section.Title}); err != nil {
			return nil, wrapErr(err)
		}

		header := make([]string, len(columns))
		for i, column := range columns {
			header[i] = column.Title
		}

		if err := writeRecord(header); err != nil {
			return nil, wrapErr(err)
		}

		for _, row := range rows {
			record := make([]string, len(columns))
			for i, column := range columns {
				record[i] = f.FormatCell(row, column)
			}

			if err := writeRecord(record); err != nil {
				return nil, wrapErr(err)
			}
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		b.logger.Errorw("flat-table write failed", "domain", cfg.Domain, "error", err)
		return nil, wrapErr(err)
	}

	return buf.Bytes(), nil
}

func wrapErr(err error) error {
	return errors.Wrapf(cn.ErrFlatTableGeneration, "flat-table generation failed: %s", err.Error())
}

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
