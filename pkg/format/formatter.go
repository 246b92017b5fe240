// Package format converts typed report values into locale-correct display
// strings. Every function is total: malformed input resolves to a defined
// placeholder or the literal input, never an error, so a single bad record
// cannot abort a whole report.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// Stock presentation statuses for below-threshold highlighting.
const (
	StockAlert  = "ALERTE"
	StockNormal = "NORMAL"
)

var localeMatcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

var currencySymbols = map[string]string{
	"XOF": "FCFA",
	"XAF": "FCFA",
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"NGN": "₦",
	"MAD": "DH",
}

// Currencies whose symbol is written before the amount.
var prefixCurrencies = map[string]bool{
	"USD": true,
	"GBP": true,
}

// Formatter renders typed values as display strings for one locale,
// currency and timezone. It is stateless per instance and safe for
// concurrent use.
type Formatter struct {
	cfg        Config
	french     bool
	groupSep   string
	decimalSep string
	symbol     string
	prefix     bool
	location   *time.Location
}

// New builds a Formatter from the given configuration, applying the
// institutional defaults for any missing field.
func New(cfg Config) *Formatter {
	cfg = cfg.withDefaults()

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.French
	}

	matched, _, _ := localeMatcher.Match(tag)
	base, _ := matched.Base()
	french := base.String() == "fr"

	f := &Formatter{
		cfg:        cfg,
		french:     french,
		groupSep:   ",",
		decimalSep: ".",
	}

	if french {
		f.groupSep = " "
		f.decimalSep = ","
	}

	code := strings.ToUpper(cfg.Currency)
	if symbol, ok := currencySymbols[code]; ok {
		f.symbol = symbol
	} else {
		f.symbol = code
	}

	f.prefix = prefixCurrencies[code]

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	f.location = loc

	return f
}

// Config returns the resolved configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// FormatValue dispatches by the column's declared type to the matching
// formatter. This is the single chokepoint every backend calls for every
// displayed cell. A nil value renders as the placeholder.
func (f *Formatter) FormatValue(value any, valueType, formatHint string) string {
	if value == nil {
		return constant.EmptyPlaceholder
	}

	switch strings.ToLower(valueType) {
	case "currency":
		opts := DefaultCurrencyOptions()
		if formatHint == "decimals" {
			opts.ShowDecimals = true
		}

		return f.FormatCurrency(value, opts)
	case "amount":
		return f.FormatAmount(value)
	case "number":
		decimals := 0
		if d, err := strconv.Atoi(formatHint); err == nil {
			decimals = d
		}

		return f.FormatNumber(value, decimals)
	case "percentage", "percent":
		decimals := 1
		if d, err := strconv.Atoi(formatHint); err == nil {
			decimals = d
		}

		return f.FormatPercentage(value, decimals)
	case "date":
		return f.FormatDate(value)
	case "datetime":
		return f.FormatDateTime(value)
	case "duration":
		return f.FormatDuration(value)
	case "filesize":
		return f.FormatFileSize(value)
	case "phone":
		return f.FormatPhone(value)
	case "status":
		return f.FormatStatus(fmt.Sprintf("%v", value))
	case "priority":
		return f.FormatPriority(fmt.Sprintf("%v", value))
	case "role":
		return f.FormatRole(fmt.Sprintf("%v", value))
	case "boolean", "bool":
		return f.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// FormatCurrency renders a monetary amount with the configured currency
// symbol. Decimal visibility follows the options; malformed input renders
// as the placeholder.
func (f *Formatter) FormatCurrency(value any, opts CurrencyOptions) string {
	amount, ok := toFloat(value)
	if !ok {
		return constant.EmptyPlaceholder
	}

	decimals := 0
	if opts.ShowDecimals {
		decimals = 2
	}

	number := f.formatFloat(amount, decimals)
	if !opts.ShowSymbol {
		return number
	}

	if f.prefix {
		return f.symbol + number
	}

	return number + " " + f.symbol
}

// FormatAmount renders a magnitude-aware amount: billions-scale at and
// above 1e9, millions-scale at and above 1e6, plain grouping otherwise.
// The symbol is always shown.
func (f *Formatter) FormatAmount(value any) string {
	amount, ok := toFloat(value)
	if !ok {
		return constant.EmptyPlaceholder
	}

	abs := math.Abs(amount)

	var scaled string

	switch {
	case abs >= constant.AmountBillionThreshold:
		scaled = f.trimZeros(f.formatFloat(amount/constant.AmountBillionThreshold, 1)) + "B"
	case abs >= constant.AmountMillionThreshold:
		scaled = f.trimZeros(f.formatFloat(amount/constant.AmountMillionThreshold, 1)) + "M"
	default:
		scaled = f.formatFloat(amount, 0)
	}

	if f.prefix {
		return f.symbol + scaled
	}

	return scaled + " " + f.symbol
}

// FormatNumber renders a grouped number with a fixed decimal count.
func (f *Formatter) FormatNumber(value any, decimals int) string {
	n, ok := toFloat(value)
	if !ok {
		return constant.EmptyPlaceholder
	}

	return f.formatFloat(n, decimals)
}

// FormatPercentage renders a ratio already expressed in percent points.
func (f *Formatter) FormatPercentage(value any, decimals int) string {
	n, ok := toFloat(value)
	if !ok {
		return constant.EmptyPlaceholder
	}

	if f.french {
		return f.formatFloat(n, decimals) + " %"
	}

	return f.formatFloat(n, decimals) + "%"
}

// FormatProgress computes and renders the progress of current toward
// target as a percentage, clamped to [0, 100]. A zero or unparsable
// target renders as the placeholder.
func (f *Formatter) FormatProgress(current, target any) string {
	cur, okCur := toFloat(current)
	tgt, okTgt := toFloat(target)

	if !okCur || !okTgt || tgt == 0 {
		return constant.EmptyPlaceholder
	}

	percent := cur / tgt * 100
	percent = math.Max(0, math.Min(100, percent))

	return f.FormatPercentage(percent, 0)
}

// FormatDate renders a calendar date in the configured timezone. Strings
// are parsed against the common wire layouts; an unparsable date renders
// as the literal input.
func (f *Formatter) FormatDate(value any) string {
	t, ok := toTime(value)
	if !ok {
		return literalOrPlaceholder(value)
	}

	t = t.In(f.location)

	if f.french {
		return t.Format("02/01/2006")
	}

	return t.Format("2006-01-02")
}

// FormatDateTime renders a timestamp in the configured timezone.
func (f *Formatter) FormatDateTime(value any) string {
	t, ok := toTime(value)
	if !ok {
		return literalOrPlaceholder(value)
	}

	t = t.In(f.location)

	if f.french {
		return t.Format("02/01/2006 à 15:04")
	}

	return t.Format("2006-01-02 15:04")
}

// FormatDuration renders a duration given as a time.Duration or as a
// numeric minute count.
func (f *Formatter) FormatDuration(value any) string {
	var d time.Duration

	switch v := value.(type) {
	case time.Duration:
		d = v
	default:
		minutes, ok := toFloat(value)
		if !ok {
			return literalOrPlaceholder(value)
		}

		d = time.Duration(minutes * float64(time.Minute))
	}

	if d < 0 {
		d = -d
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	dayUnit := "d"
	if f.french {
		dayUnit = "j"
	}

	switch {
	case days > 0:
		return fmt.Sprintf("%d%s %dh", days, dayUnit, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %02dmin", hours, minutes)
	default:
		return fmt.Sprintf("%d min", minutes)
	}
}

// FormatFileSize renders a byte count using French units (o, Ko, Mo, Go)
// or their English equivalents.
func (f *Formatter) FormatFileSize(value any) string {
	size, ok := toFloat(value)
	if !ok {
		return constant.EmptyPlaceholder
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	if f.french {
		units = []string{"o", "Ko", "Mo", "Go", "To"}
	}

	idx := 0
	for size >= 1024 && idx < len(units)-1 {
		size /= 1024
		idx++
	}

	if idx == 0 {
		return fmt.Sprintf("%d %s", int64(size), units[idx])
	}

	return f.trimZeros(f.formatFloat(size, 1)) + " " + units[idx]
}

// FormatPhone renders a phone number with +227-style grouping. Eight-digit
// local numbers are grouped in pairs; anything unrecognized renders as the
// literal input.
func (f *Formatter) FormatPhone(value any) string {
	raw := strings.TrimSpace(fmt.Sprintf("%v", value))
	if raw == "" {
		return constant.EmptyPlaceholder
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)

	switch {
	case len(digits) == 8:
		return groupPairs(digits)
	case len(digits) == 11 && strings.HasPrefix(digits, "227"):
		return "+227 " + groupPairs(digits[3:])
	default:
		return raw
	}
}

// FormatStatus localizes a status key, passing unknown keys through.
func (f *Formatter) FormatStatus(status string) string {
	return lookup(statusLabels, status)
}

// FormatPriority localizes a priority key, passing unknown keys through.
func (f *Formatter) FormatPriority(priority string) string {
	return lookup(priorityLabels, priority)
}

// FormatRole localizes a role key, passing unknown keys through.
func (f *Formatter) FormatRole(role string) string {
	return lookup(roleLabels, role)
}

// FormatTrend renders a trend direction as a glyph.
func (f *Formatter) FormatTrend(trend string) string {
	return lookup(trendGlyphs, trend)
}

// FormatBool renders a boolean as Oui/Non or Yes/No.
func (f *Formatter) FormatBool(value any) string {
	b, ok := value.(bool)
	if !ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(fmt.Sprintf("%v", value)))
		if err != nil {
			return literalOrPlaceholder(value)
		}

		b = parsed
	}

	if f.french {
		if b {
			return "Oui"
		}

		return "Non"
	}

	if b {
		return "Yes"
	}

	return "No"
}

// StockStatus applies the below-threshold highlighting rule: a quantity
// strictly below the threshold is in alert, at or above it is normal.
func (f *Formatter) StockStatus(quantity, threshold any) string {
	qty, okQty := toFloat(quantity)
	thr, okThr := toFloat(threshold)

	if !okQty || !okThr {
		return constant.EmptyPlaceholder
	}

	if qty < thr {
		return StockAlert
	}

	return StockNormal
}

// ParseAmount recovers the numeric value of a string produced by
// FormatCurrency or FormatNumber. It is the round-trip inverse used by
// verification tooling and tests.
func (f *Formatter) ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, f.symbol)
	s = strings.TrimSuffix(s, f.symbol)
	s = strings.TrimSpace(s)

	s = strings.ReplaceAll(s, f.groupSep, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, f.decimalSep, ".")

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	value, _ := dec.Float64()

	return value, true
}

// formatFloat renders a float with locale separators and a fixed decimal
// count, rounding half up through decimal to avoid binary float drift.
func (f *Formatter) formatFloat(value float64, decimals int) string {
	dec := decimal.NewFromFloat(value).Round(int32(decimals))
	plain := dec.StringFixed(int32(decimals))

	negative := strings.HasPrefix(plain, "-")
	plain = strings.TrimPrefix(plain, "-")

	intPart := plain
	fracPart := ""

	if i := strings.IndexByte(plain, '.'); i >= 0 {
		intPart = plain[:i]
		fracPart = plain[i+1:]
	}

	grouped := groupDigits(intPart, f.groupSep)

	out := grouped
	if fracPart != "" {
		out += f.decimalSep + fracPart
	}

	if negative {
		out = "-" + out
	}

	return out
}

// trimZeros drops a useless fractional part ("2,0" -> "2").
func (f *Formatter) trimZeros(s string) string {
	if i := strings.Index(s, f.decimalSep); i >= 0 {
		trimmed := strings.TrimRight(s, "0")
		trimmed = strings.TrimSuffix(trimmed, f.decimalSep)

		return trimmed
	}

	return s
}

func lookup(table map[string]string, key string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if label, ok := table[normalized]; ok {
		return label
	}

	return key
}

func groupDigits(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder

	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

func groupPairs(digits string) string {
	var parts []string

	for i := 0; i < len(digits); i += 2 {
		end := i + 2
		if end > len(digits) {
			end = len(digits)
		}

		parts = append(parts, digits[i:end])
	}

	return strings.Join(parts, " ")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}

		return *v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}

		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, true
	case string:
		dec, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}

		f, _ := dec.Float64()

		return f, true
	default:
		return 0, false
	}
}

func literalOrPlaceholder(value any) string {
	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	if s == "" || value == nil {
		return constant.EmptyPlaceholder
	}

	return s
}
