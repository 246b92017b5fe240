package format

import (
	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// Config is the explicit formatter configuration for one generation call.
// It replaces any process-wide locale state so concurrent generations for
// different tenants or locales never interfere.
type Config struct {
	Locale   string
	Currency string
	Timezone string
}

// withDefaults fills missing fields with the institutional defaults.
func (c Config) withDefaults() Config {
	if c.Locale == "" {
		c.Locale = constant.DefaultLocale
	}

	if c.Currency == "" {
		c.Currency = constant.DefaultCurrency
	}

	if c.Timezone == "" {
		c.Timezone = constant.DefaultTimezone
	}

	return c
}

// CurrencyOptions controls symbol and decimal visibility for currency
// formatting.
type CurrencyOptions struct {
	ShowSymbol   bool
	ShowDecimals bool
}

// DefaultCurrencyOptions shows the symbol without decimals, the usual
// presentation for FCFA amounts.
func DefaultCurrencyOptions() CurrencyOptions {
	return CurrencyOptions{ShowSymbol: true, ShowDecimals: false}
}
