package format

// Numeric exposes the formatter's total numeric coercion for backends that
// must write raw values, such as cells sitting under spreadsheet formulas.
func Numeric(value any) (float64, bool) {
	return toFloat(value)
}

// ExcelCurrencyFormat returns the spreadsheet number format matching the
// formatter's currency presentation, so raw numeric cells display the same
// way formatted text cells would.
func (f *Formatter) ExcelCurrencyFormat() string {
	if f.prefix {
		return `"` + f.symbol + `"#,##0`
	}

	return `#,##0" ` + f.symbol + `"`
}
