package ledgerfmt

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ExchangeRate is one currency's rate relative to the response's base
// currency. Rate strings stay strings on the wire; parsed values live here.
type ExchangeRate struct {
	Currency string
	Rate     float64
}

// ExchangeRates is a parsed exchange rate response.
type ExchangeRates struct {
	BaseCurrency string
	UpdateTime   int64
	Rates        map[string]float64
}

// ParseExchangeRates decodes the server's latest-rates JSON payload. Entries
// with unparseable rate strings are skipped rather than failing the whole
// response.
func ParseExchangeRates(data []byte) (*ExchangeRates, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("exchange rates: malformed response")
	}

	rates := &ExchangeRates{
		BaseCurrency: root.Get("baseCurrency").String(),
		UpdateTime:   root.Get("updateTime").Int(),
		Rates:        make(map[string]float64),
	}
	if rates.BaseCurrency == "" {
		return nil, fmt.Errorf("exchange rates: missing base currency")
	}

	root.Get("exchangeRates").ForEach(func(_, item gjson.Result) bool {
		code := item.Get("currency").String()
		rate, err := strconv.ParseFloat(item.Get("rate").String(), 64)
		if code == "" || err != nil || rate <= 0 {
			return true
		}
		rates.Rates[code] = rate
		return true
	})

	rates.Rates[rates.BaseCurrency] = 1
	return rates, nil
}

// All returns the parsed rates, base currency included, sorted by currency
// code.
func (r *ExchangeRates) All() []ExchangeRate {
	out := make([]ExchangeRate, 0, len(r.Rates))
	for code, rate := range r.Rates {
		out = append(out, ExchangeRate{Currency: code, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// Rate returns the value of one unit of fromCurrency in toCurrency.
func (r *ExchangeRates) Rate(fromCurrency, toCurrency string) (float64, bool) {
	fromRate, ok1 := r.Rates[fromCurrency]
	toRate, ok2 := r.Rates[toCurrency]
	if !ok1 || !ok2 || fromRate <= 0 {
		return 0, false
	}
	return toRate / fromRate, true
}

// ExchangedAmount converts an amount in minor units between currencies,
// rounding down.
func (r *ExchangeRates) ExchangedAmount(amount int64, fromCurrency, toCurrency string) (int64, bool) {
	if fromCurrency == toCurrency {
		return amount, true
	}

	rate, ok := r.Rate(fromCurrency, toCurrency)
	if !ok {
		return 0, false
	}
	return int64(math.Floor(float64(amount) * rate)), true
}

// CurrencySortingType selects the order of the multi-currency rate list.
type CurrencySortingType int

const (
	CurrencySortByName CurrencySortingType = iota
	CurrencySortByCode
	CurrencySortByExchangeRate
)

// CurrencySortingTypeInfo describes one sorting mode for settings pickers.
type CurrencySortingTypeInfo struct {
	Type CurrencySortingType
	Name string
}

var AllCurrencySortingTypes = []CurrencySortingTypeInfo{
	{Type: CurrencySortByName, Name: "Currency Name"},
	{Type: CurrencySortByCode, Name: "Currency Code"},
	{Type: CurrencySortByExchangeRate, Name: "Exchange Rate"},
}

// DisplayExchangeRate is one row of the localized rate list. Rate carries the
// formatted rate for display, RateValue the numeric value used for sorting.
type DisplayExchangeRate struct {
	Currency    string
	DisplayName string
	Symbol      string
	Rate        string
	RateValue   float64
}

// SortDisplayExchangeRates orders rate rows in place by the chosen attribute,
// falling back to the currency code so the order is total.
func SortDisplayExchangeRates(rates []DisplayExchangeRate, sortingType CurrencySortingType) {
	sort.SliceStable(rates, func(i, j int) bool {
		if sortingType == CurrencySortByExchangeRate {
			if rates[i].RateValue != rates[j].RateValue {
				return rates[i].RateValue < rates[j].RateValue
			}
			return rates[i].Currency < rates[j].Currency
		}

		var left, right string
		if sortingType == CurrencySortByCode {
			left, right = rates[i].Currency, rates[j].Currency
		} else {
			left, right = rates[i].DisplayName, rates[j].DisplayName
		}

		if left != right {
			return strings.ToLower(left) < strings.ToLower(right)
		}
		return rates[i].Currency < rates[j].Currency
	})
}

// BalanceAccumulator totals amounts across accounts, converting into a target
// currency. Amounts with no known rate make the total incomplete, which
// Total marks with a trailing "+".
type BalanceAccumulator struct {
	rates      *ExchangeRates
	currency   string
	total      int64
	incomplete bool
}

// NewBalanceAccumulator sums into currency using rates. rates may be nil, in
// which case only amounts already in currency contribute.
func NewBalanceAccumulator(rates *ExchangeRates, currency string) *BalanceAccumulator {
	return &BalanceAccumulator{rates: rates, currency: currency}
}

func (a *BalanceAccumulator) Add(amount int64, fromCurrency string) {
	a.accumulate(amount, fromCurrency)
}

func (a *BalanceAccumulator) Subtract(amount int64, fromCurrency string) {
	a.accumulate(-amount, fromCurrency)
}

func (a *BalanceAccumulator) accumulate(amount int64, fromCurrency string) {
	if fromCurrency == a.currency {
		a.total += amount
		return
	}

	if a.rates != nil {
		if exchanged, ok := a.rates.ExchangedAmount(amount, fromCurrency, a.currency); ok {
			a.total += exchanged
			return
		}
	}
	a.incomplete = true
}

// Total returns the accumulated minor units as a raw numeral string, with a
// trailing "+" when any amount could not be converted.
func (a *BalanceAccumulator) Total() string {
	out := strconv.FormatInt(a.total, 10)
	if a.incomplete {
		out += "+"
	}
	return out
}
