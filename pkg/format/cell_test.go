package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

func TestFormatCell(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name   string
		row    map[string]any
		column model.ReportColumn
		expect string
	}{
		{
			name:   "currency_cell",
			row:    map[string]any{"montant": 1500000},
			column: model.ReportColumn{Key: "montant", Type: "currency"},
			expect: "1 500 000 FCFA",
		},
		{
			name:   "missing_key_renders_placeholder",
			row:    map[string]any{"autre": 1},
			column: model.ReportColumn{Key: "montant", Type: "currency"},
			expect: "-",
		},
		{
			name:   "nil_value_renders_placeholder",
			row:    map[string]any{"montant": nil},
			column: model.ReportColumn{Key: "montant", Type: "currency"},
			expect: "-",
		},
		{
			name:   "stock_status_below_threshold",
			row:    map[string]any{"quantity": 4, "threshold": 10},
			column: model.ReportColumn{Key: "etat", Type: ColumnStockStatus},
			expect: StockAlert,
		},
		{
			name:   "stock_status_at_threshold",
			row:    map[string]any{"quantity": 10, "threshold": 10},
			column: model.ReportColumn{Key: "etat", Type: ColumnStockStatus},
			expect: StockNormal,
		},
		{
			name:   "stock_status_missing_inputs",
			row:    map[string]any{},
			column: model.ReportColumn{Key: "etat", Type: ColumnStockStatus},
			expect: "-",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatCell(test.row, test.column))
		})
	}
}

func TestNumericCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		expect float64
		ok     bool
	}{
		{"int", 42, 42, true},
		{"float", 12.5, 12.5, true},
		{"numeric_string", "1500.25", 1500.25, true},
		{"text", "quarante", 0, false},
		{"nil", nil, 0, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Numeric(test.value)
			assert.Equal(t, test.ok, ok)
			assert.InDelta(t, test.expect, got, 0.0001)
		})
	}
}

func TestExcelCurrencyFormat(t *testing.T) {
	t.Parallel()

	fr := newFrench(t)
	en := newEnglishUSD(t)

	assert.Equal(t, `#,##0" FCFA"`, fr.ExcelCurrencyFormat())
	assert.Equal(t, `"$"#,##0`, en.ExcelCurrencyFormat())
}
