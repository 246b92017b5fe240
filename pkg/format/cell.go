package format

import (
	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

// Column type computed from other row fields rather than extracted by key.
const ColumnStockStatus = "stock-status"

// Row keys the stock-status column reads.
const (
	stockQuantityKey  = "quantity"
	stockThresholdKey = "threshold"
)

// FormatCell extracts and formats one table cell. A row missing the
// column's key renders as the placeholder, never an error, and the row is
// kept. This is the one path every backend uses for table cells.
func (f *Formatter) FormatCell(row map[string]any, column model.ReportColumn) string {
	if column.Type == ColumnStockStatus {
		return f.StockStatus(row[stockQuantityKey], row[stockThresholdKey])
	}

	value, ok := row[column.Key]
	if !ok || value == nil {
		return constant.EmptyPlaceholder
	}

	return f.FormatValue(value, column.Type, column.Format)
}
