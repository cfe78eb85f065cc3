package ledgerfmt

import (
	"golang.org/x/text/currency"
)

// CurrencyDisplaySymbol selects which textual representation of a currency
// accompanies an amount.
type CurrencyDisplaySymbol int

const (
	CurrencySymbolNone CurrencyDisplaySymbol = iota
	CurrencySymbolSign
	CurrencySymbolCode
	CurrencySymbolUnit
	CurrencySymbolName
)

// CurrencyDisplayLocation selects which side of the amount the symbol sits on.
type CurrencyDisplayLocation int

const (
	CurrencyDisplayBeforeAmount CurrencyDisplayLocation = iota
	CurrencyDisplayAfterAmount
)

// CurrencyDisplayType describes one way of attaching a currency to an amount.
// Name is the translation key suffix under currency.display, and the value a
// language may declare in default.currencyDisplayType.
type CurrencyDisplayType struct {
	Type      int
	Name      string
	Symbol    CurrencyDisplaySymbol
	Location  CurrencyDisplayLocation
	Separator string
}

var AllCurrencyDisplayTypes = []CurrencyDisplayType{
	{Type: 1, Name: "none", Symbol: CurrencySymbolNone},
	{Type: 2, Name: "symbolBeforeAmount", Symbol: CurrencySymbolSign, Location: CurrencyDisplayBeforeAmount},
	{Type: 3, Name: "symbolAfterAmount", Symbol: CurrencySymbolSign, Location: CurrencyDisplayAfterAmount},
	{Type: 4, Name: "codeBeforeAmount", Symbol: CurrencySymbolCode, Location: CurrencyDisplayBeforeAmount, Separator: " "},
	{Type: 5, Name: "codeAfterAmount", Symbol: CurrencySymbolCode, Location: CurrencyDisplayAfterAmount, Separator: " "},
	{Type: 6, Name: "unitBeforeAmount", Symbol: CurrencySymbolUnit, Location: CurrencyDisplayBeforeAmount, Separator: " "},
	{Type: 7, Name: "unitAfterAmount", Symbol: CurrencySymbolUnit, Location: CurrencyDisplayAfterAmount, Separator: " "},
	{Type: 8, Name: "nameBeforeAmount", Symbol: CurrencySymbolName, Location: CurrencyDisplayBeforeAmount, Separator: " "},
	{Type: 9, Name: "nameAfterAmount", Symbol: CurrencySymbolName, Location: CurrencyDisplayAfterAmount, Separator: " "},
}

// DefaultCurrencyDisplayType is the system fallback: "$123.45".
var DefaultCurrencyDisplayType = AllCurrencyDisplayTypes[1]

var allCurrencyDisplayTypesByName = func() map[string]CurrencyDisplayType {
	byName := make(map[string]CurrencyDisplayType, len(AllCurrencyDisplayTypes))
	for _, displayType := range AllCurrencyDisplayTypes {
		byName[displayType.Name] = displayType
	}
	return byName
}()

// DefaultCurrency is the hardcoded last-tier currency fallback.
const DefaultCurrency = "USD"

// ParentAccountCurrencyPlaceholder marks an account whose balance is the sum
// of sub accounts in mixed currencies; it has no currency of its own.
const ParentAccountCurrencyPlaceholder = "---"

// CurrencyInfo carries the non-localized attributes of one supported
// currency. Symbol may be empty when the currency has no conventional sign.
type CurrencyInfo struct {
	Code   string
	Symbol string
	Unit   string
}

// AllCurrencies is the builtin currency table, keyed by ISO 4217 code.
// Localized names come from the active language's currency.name.* entries.
var AllCurrencies = map[string]CurrencyInfo{
	"AUD": {Code: "AUD", Symbol: "A$", Unit: "Dollar"},
	"BRL": {Code: "BRL", Symbol: "R$", Unit: "Real"},
	"CAD": {Code: "CAD", Symbol: "C$", Unit: "Dollar"},
	"CHF": {Code: "CHF", Symbol: "Fr.", Unit: "Franc"},
	"CNY": {Code: "CNY", Symbol: "¥", Unit: "Yuan"},
	"CZK": {Code: "CZK", Symbol: "Kč", Unit: "Koruna"},
	"DKK": {Code: "DKK", Symbol: "kr.", Unit: "Krone"},
	"EUR": {Code: "EUR", Symbol: "€", Unit: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Unit: "Pound"},
	"HKD": {Code: "HKD", Symbol: "HK$", Unit: "Dollar"},
	"IDR": {Code: "IDR", Symbol: "Rp", Unit: "Rupiah"},
	"INR": {Code: "INR", Symbol: "₹", Unit: "Rupee"},
	"JPY": {Code: "JPY", Symbol: "¥", Unit: "Yen"},
	"KRW": {Code: "KRW", Symbol: "₩", Unit: "Won"},
	"MXN": {Code: "MXN", Symbol: "Mex$", Unit: "Peso"},
	"MYR": {Code: "MYR", Symbol: "RM", Unit: "Ringgit"},
	"NOK": {Code: "NOK", Symbol: "kr", Unit: "Krone"},
	"NZD": {Code: "NZD", Symbol: "NZ$", Unit: "Dollar"},
	"PLN": {Code: "PLN", Symbol: "zł", Unit: "Złoty"},
	"RUB": {Code: "RUB", Symbol: "₽", Unit: "Ruble"},
	"SEK": {Code: "SEK", Symbol: "kr", Unit: "Krona"},
	"SGD": {Code: "SGD", Symbol: "S$", Unit: "Dollar"},
	"THB": {Code: "THB", Symbol: "฿", Unit: "Baht"},
	"TRY": {Code: "TRY", Symbol: "₺", Unit: "Lira"},
	"TWD": {Code: "TWD", Symbol: "NT$", Unit: "Dollar"},
	"USD": {Code: "USD", Symbol: "$", Unit: "Dollar"},
	"VND": {Code: "VND", Symbol: "₫", Unit: "Dong"},
	"ZAR": {Code: "ZAR", Symbol: "R", Unit: "Rand"},
}

// CurrencyInfoByCode looks up a currency in the builtin table, validating
// unknown codes against ISO 4217 so server-side additions still render with
// their code as symbol.
func CurrencyInfoByCode(code string) (CurrencyInfo, bool) {
	if info, ok := AllCurrencies[code]; ok {
		return info, true
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return CurrencyInfo{}, false
	}
	return CurrencyInfo{Code: unit.String(), Symbol: unit.String()}, true
}

// AmountPrependAppendText splits the decoration a display type adds around an
// amount into prefix and suffix strings. symbolText is the already-resolved
// sign, code, unit or name text.
func AmountPrependAppendText(displayType CurrencyDisplayType, symbolText string) (string, string) {
	if displayType.Symbol == CurrencySymbolNone || symbolText == "" {
		return "", ""
	}

	if displayType.Location == CurrencyDisplayBeforeAmount {
		return symbolText + displayType.Separator, ""
	}
	return "", displayType.Separator + symbolText
}

// AppendCurrencySymbol decorates a formatted amount with symbolText per the
// display type.
func AppendCurrencySymbol(formattedAmount string, displayType CurrencyDisplayType, symbolText string) string {
	prefix, suffix := AmountPrependAppendText(displayType, symbolText)
	return prefix + formattedAmount + suffix
}
