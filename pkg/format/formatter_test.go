package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrench(t *testing.T) *Formatter {
	t.Helper()

	return New(Config{Locale: "fr-FR", Currency: "XOF", Timezone: "UTC"})
}

func newEnglishUSD(t *testing.T) *Formatter {
	t.Helper()

	return New(Config{Locale: "en-US", Currency: "USD", Timezone: "UTC"})
}

func TestFormatCurrencyFrench(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name   string
		value  any
		opts   CurrencyOptions
		expect string
	}{
		{"grouped_no_decimals", 1500000, DefaultCurrencyOptions(), "1 500 000 FCFA"},
		{"with_decimals", 1500000, CurrencyOptions{ShowSymbol: true, ShowDecimals: true}, "1 500 000,00 FCFA"},
		{"no_symbol", 2500, CurrencyOptions{ShowSymbol: false}, "2 500"},
		{"negative", -7500, DefaultCurrencyOptions(), "-7 500 FCFA"},
		{"small", 999, DefaultCurrencyOptions(), "999 FCFA"},
		{"string_input", "12500", DefaultCurrencyOptions(), "12 500 FCFA"},
		{"unparsable", "douze", DefaultCurrencyOptions(), "-"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatCurrency(test.value, test.opts))
		})
	}
}

func TestFormatCurrencyPrefixSymbol(t *testing.T) {
	t.Parallel()

	f := newEnglishUSD(t)

	assert.Equal(t, "$1,500", f.FormatCurrency(1500, DefaultCurrencyOptions()))
	assert.Equal(t, "$1,500.50", f.FormatCurrency(1500.5, CurrencyOptions{ShowSymbol: true, ShowDecimals: true}))
}

func TestFormatAmountMagnitude(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"below_million", 999999, "999 999 FCFA"},
		{"million_boundary", 1000000, "1M FCFA"},
		{"million_fraction", 1500000, "1,5M FCFA"},
		{"hundreds_of_millions", 950000000, "950M FCFA"},
		{"billion_boundary", 1000000000, "1B FCFA"},
		{"billion_fraction", 2500000000, "2,5B FCFA"},
		{"negative_million", -1500000, "-1,5M FCFA"},
		{"plain", 4250, "4 250 FCFA"},
		{"unparsable", struct{}{}, "-"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatAmount(test.value))
		})
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		f     *Formatter
		value float64
	}{
		{"french_grouped", newFrench(t), 1500000},
		{"french_small", newFrench(t), 999},
		{"french_negative", newFrench(t), -42500},
		{"english_prefix", newEnglishUSD(t), 1500000},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rendered := test.f.FormatCurrency(test.value, DefaultCurrencyOptions())
			parsed, ok := test.f.ParseAmount(rendered)

			require.True(t, ok, "rendered %q did not parse back", rendered)
			assert.InDelta(t, test.value, parsed, 0.001)
		})
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	_, ok := f.ParseAmount("n/a")
	assert.False(t, ok)
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	fr := newFrench(t)
	en := newEnglishUSD(t)

	assert.Equal(t, "12,3 %", fr.FormatPercentage(12.345, 1))
	assert.Equal(t, "12.3%", en.FormatPercentage(12.345, 1))
	assert.Equal(t, "-", fr.FormatPercentage("abc", 1))
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name    string
		current any
		target  any
		expect  string
	}{
		{"half", 50, 100, "50 %"},
		{"overshoot_clamped", 150, 100, "100 %"},
		{"zero_target", 10, 0, "-"},
		{"unparsable", "x", 100, "-"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatProgress(test.current, test.target))
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	fr := newFrench(t)
	en := newEnglishUSD(t)
	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "15/03/2026", fr.FormatDate(ts))
	assert.Equal(t, "2026-03-15", en.FormatDate(ts))
	assert.Equal(t, "15/03/2026", fr.FormatDate("2026-03-15"))
	assert.Equal(t, "pas une date", fr.FormatDate("pas une date"))
}

func TestFormatDateTimeTimezone(t *testing.T) {
	t.Parallel()

	f := New(Config{Locale: "fr-FR", Currency: "XOF", Timezone: "Africa/Niamey"})
	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	// Niamey is UTC+1 year round.
	assert.Equal(t, "15/03/2026 à 11:30", f.FormatDateTime(ts))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"minutes_only", 45, "45 min"},
		{"hours", 90, "1h 30min"},
		{"days_french_unit", 26 * time.Hour, "1j 2h"},
		{"duration_type", 2*time.Hour + 5*time.Minute, "2h 05min"},
		{"unparsable", "soon", "soon"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatDuration(test.value))
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	assert.Equal(t, "500 o", f.FormatFileSize(500))
	assert.Equal(t, "2 Ko", f.FormatFileSize(2048))
	assert.Equal(t, "1,5 Mo", f.FormatFileSize(1.5*1024*1024))
	assert.Equal(t, "-", f.FormatFileSize("big"))
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"local_eight_digits", "90123456", "90 12 34 56"},
		{"international", "+227 90 12 34 56", "+227 90 12 34 56"},
		{"international_compact", "22790123456", "+227 90 12 34 56"},
		{"unrecognized", "12345", "12345"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatPhone(test.value))
		})
	}
}

func TestFormatStatusLookup(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	assert.Equal(t, "En attente", f.FormatStatus("pending"))
	assert.Equal(t, "Validé", f.FormatStatus("VALIDATED"))
	assert.Equal(t, "archived", f.FormatStatus("archived"))
	assert.Equal(t, "Haute", f.FormatPriority("high"))
	assert.Equal(t, "Chauffeur", f.FormatRole("driver"))
	assert.Equal(t, "▲", f.FormatTrend("up"))
}

func TestFormatBool(t *testing.T) {
	t.Parallel()

	fr := newFrench(t)
	en := newEnglishUSD(t)

	assert.Equal(t, "Oui", fr.FormatBool(true))
	assert.Equal(t, "Non", fr.FormatBool(false))
	assert.Equal(t, "Yes", en.FormatBool(true))
	assert.Equal(t, "Oui", fr.FormatBool("true"))
	assert.Equal(t, "peut-être", fr.FormatBool("peut-être"))
}

func TestStockStatus(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name      string
		quantity  any
		threshold any
		expect    string
	}{
		{"below_threshold", 5, 10, StockAlert},
		{"at_threshold", 10, 10, StockNormal},
		{"above_threshold", 15, 10, StockNormal},
		{"string_inputs", "3", "10", StockAlert},
		{"missing_quantity", nil, 10, "-"},
		{"missing_threshold", 5, nil, "-"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.StockStatus(test.quantity, test.threshold))
		})
	}
}

func TestFormatValueDispatch(t *testing.T) {
	t.Parallel()

	f := newFrench(t)

	tests := []struct {
		name      string
		value     any
		valueType string
		hint      string
		expect    string
	}{
		{"currency", 1500000, "currency", "", "1 500 000 FCFA"},
		{"currency_decimals", 1500, "currency", "decimals", "1 500,00 FCFA"},
		{"amount_scaled", 2500000000, "amount", "", "2,5B FCFA"},
		{"number_with_hint", 1234.567, "number", "2", "1 234,57"},
		{"percentage", 33.3333, "percentage", "", "33,3 %"},
		{"status", "paid", "status", "", "Payé"},
		{"boolean", true, "boolean", "", "Oui"},
		{"nil_value", nil, "currency", "", "-"},
		{"unknown_type_literal", "tel quel", "mystery", "", "tel quel"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expect, f.FormatValue(test.value, test.valueType, test.hint))
		})
	}
}

func TestFormatValueNeverPanics(t *testing.T) {
	t.Parallel()

	f := newFrench(t)
	types := []string{"currency", "amount", "number", "percentage", "date", "datetime", "duration", "filesize", "phone", "status", "priority", "role", "boolean", ""}
	values := []any{nil, "", "garbage", struct{}{}, []int{1, 2}, map[string]any{"a": 1}, -0.0, 1e18}

	for _, valueType := range types {
		for _, value := range values {
			valueType, value := valueType, value
			assert.NotPanics(t, func() {
				_ = f.FormatValue(value, valueType, "")
			}, "type=%s value=%v", valueType, value)
		}
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	f := New(Config{})
	cfg := f.Config()

	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "XOF", cfg.Currency)
	assert.Equal(t, "Africa/Niamey", cfg.Timezone)

	unknown := New(Config{Locale: "zz-ZZ", Currency: "XXX", Timezone: "Mars/Olympus"})
	assert.Equal(t, "1 000 XXX", unknown.FormatCurrency(1000, DefaultCurrencyOptions()))
}
