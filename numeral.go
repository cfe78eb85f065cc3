package ledgerfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultNumeralValue is the sentinel preference value meaning "follow the
// language default".
const DefaultNumeralValue = 0

// NumeralSymbolType is one selectable decimal-separator or
// digit-grouping-symbol variant.
type NumeralSymbolType struct {
	Type   int
	Name   string
	Symbol string
}

// AllDecimalSeparators lists the selectable decimal separators in option
// order.
var AllDecimalSeparators = []NumeralSymbolType{
	{Type: 1, Name: "dot", Symbol: "."},
	{Type: 2, Name: "comma", Symbol: ","},
}

// AllDigitGroupingSymbols lists the selectable digit grouping symbols in
// option order.
var AllDigitGroupingSymbols = []NumeralSymbolType{
	{Type: 1, Name: "comma", Symbol: ","},
	{Type: 2, Name: "dot", Symbol: "."},
	{Type: 3, Name: "space", Symbol: " "},
	{Type: 4, Name: "apostrophe", Symbol: "'"},
}

// DigitGroupingType selects the digit grouping policy.
type DigitGroupingType int

const (
	DigitGroupingDefault            DigitGroupingType = 0
	DigitGroupingNone               DigitGroupingType = 1
	DigitGroupingThousandsSeparator DigitGroupingType = 2
)

// DigitGroupingTypeInfo describes one grouping policy for settings pickers.
type DigitGroupingTypeInfo struct {
	Type    DigitGroupingType
	Name    string
	Enabled bool
}

var AllDigitGroupingTypes = []DigitGroupingTypeInfo{
	{Type: DigitGroupingNone, Name: "none", Enabled: false},
	{Type: DigitGroupingThousandsSeparator, Name: "thousandsSeparator", Enabled: true},
}

// Hardcoded system defaults, used as the last tier of preference resolution.
var (
	DefaultDecimalSeparator    = AllDecimalSeparators[0]
	DefaultDigitGroupingSymbol = AllDigitGroupingSymbols[0]
	DefaultDigitGroupingType   = AllDigitGroupingTypes[1]
)

var (
	allDecimalSeparatorsByName    = symbolTypesByName(AllDecimalSeparators)
	allDigitGroupingSymbolsByName = symbolTypesByName(AllDigitGroupingSymbols)
)

func symbolTypesByName(all []NumeralSymbolType) map[string]NumeralSymbolType {
	byName := make(map[string]NumeralSymbolType, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}
	return byName
}

// NumberFormatOptions carries the resolved symbols used to render or parse a
// numeral. The zero value renders with the system defaults.
type NumberFormatOptions struct {
	DecimalSeparator    string
	DigitGroupingSymbol string
	DigitGrouping       DigitGroupingType
}

func (o NumberFormatOptions) decimalSeparator() string {
	if o.DecimalSeparator == "" {
		return DefaultDecimalSeparator.Symbol
	}
	return o.DecimalSeparator
}

func (o NumberFormatOptions) digitGroupingSymbol() string {
	if o.DigitGroupingSymbol == "" {
		return DefaultDigitGroupingSymbol.Symbol
	}
	return o.DigitGroupingSymbol
}

func (o NumberFormatOptions) digitGroupingEnabled() bool {
	if o.DigitGrouping == DigitGroupingDefault {
		return DefaultDigitGroupingType.Enabled
	}
	return o.DigitGrouping == DigitGroupingThousandsSeparator
}

// AppendDigitGroupingSymbol re-renders a plain numeric string ('-', digits,
// optional '.' fraction) with the configured grouping symbol and decimal
// separator.
func AppendDigitGroupingSymbol(value string, o NumberFormatOptions) string {
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}

	integer := value
	fraction := ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		integer, fraction = value[:idx], value[idx+1:]
	}

	out := groupDigits(integer, o)
	if fraction != "" {
		out += o.decimalSeparator() + fraction
	}
	if negative {
		out = "-" + out
	}
	return out
}

func groupDigits(digits string, o NumberFormatOptions) string {
	if !o.digitGroupingEnabled() || len(digits) <= 3 {
		return digits
	}

	symbol := o.digitGroupingSymbol()
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(symbol)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatAmount renders an amount in minor units with two implied decimal
// places, e.g. 12345 -> "123.45".
func FormatAmount(minorUnits int64, o NumberFormatOptions) string {
	negative := minorUnits < 0
	if negative {
		minorUnits = -minorUnits
	}

	s := strconv.FormatInt(minorUnits, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	out := groupDigits(s[:len(s)-2], o) + o.decimalSeparator() + s[len(s)-2:]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatAmountValue formats a raw minor-units string, carrying a trailing "+"
// incomplete marker through unchanged.
func FormatAmountValue(value string, o NumberFormatOptions) (string, error) {
	incomplete := strings.HasSuffix(value, "+")
	if incomplete {
		value = value[:len(value)-1]
	}

	minorUnits, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	out := FormatAmount(minorUnits, o)
	if incomplete {
		out += "+"
	}
	return out, nil
}

// ParseAmount is the inverse of FormatAmount: it strips grouping symbols,
// normalizes the decimal separator and returns integer minor units. Malformed
// input yields ErrInvalidAmount.
func ParseAmount(value string, o NumberFormatOptions) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	if o.digitGroupingEnabled() {
		value = strings.ReplaceAll(value, o.digitGroupingSymbol(), "")
	}
	if sep := o.decimalSeparator(); sep != "." {
		value = strings.Replace(value, sep, ".", 1)
	}

	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}

	integer := value
	fraction := ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		integer, fraction = value[:idx], value[idx+1:]
	}

	if integer == "" || !isDigits(integer) || len(fraction) > 2 || (fraction != "" && !isDigits(fraction)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	for len(fraction) < 2 {
		fraction += "0"
	}

	minorUnits, err := strconv.ParseInt(integer+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if negative {
		minorUnits = -minorUnits
	}
	return minorUnits, nil
}

func isDigits(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return value != ""
}

// FormatExchangeRateAmount renders a rate value with the configured symbols,
// trimming trailing fraction zeros.
func FormatExchangeRateAmount(rate float64, o NumberFormatOptions) string {
	return AppendDigitGroupingSymbol(strconv.FormatFloat(rate, 'f', -1, 64), o)
}

// AdaptiveDisplayAmountRate renders the ratio between two amounts in
// potentially different currencies, scaled so the smaller side stays at 1.
// When either amount is zero or both are equal, the ratio falls back to the
// exchange rates alone.
func AdaptiveDisplayAmountRate(amount1, amount2 int64, fromRate, toRate float64, o NumberFormatOptions) (string, bool) {
	value1 := math.Abs(float64(amount1))
	value2 := math.Abs(float64(amount2))

	if amount1 == 0 || amount2 == 0 || amount1 == amount2 {
		if fromRate <= 0 || toRate <= 0 {
			return "", false
		}
		value1 = 1
		value2 = toRate / fromRate
	}

	if value1 > value2 {
		value1, value2 = value1/value2, 1
	} else {
		value1, value2 = 1, value2/value1
	}

	left := FormatExchangeRateAmount(roundDisplayRate(value1), o)
	right := FormatExchangeRateAmount(roundDisplayRate(value2), o)
	return left + " : " + right, true
}

func roundDisplayRate(value float64) float64 {
	return math.Round(value*10000) / 10000
}
