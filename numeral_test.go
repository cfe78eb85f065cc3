package ledgerfmt

import (
	"errors"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minorUnits int64
		options    NumberFormatOptions
		want       string
	}{
		{minorUnits: 0, want: "0.00"},
		{minorUnits: 5, want: "0.05"},
		{minorUnits: 100, want: "1.00"},
		{minorUnits: 12345, want: "123.45"},
		{minorUnits: -12345, want: "-123.45"},
		{minorUnits: 123456789, want: "1,234,567.89"},
		{minorUnits: 123456789, options: NumberFormatOptions{DecimalSeparator: ",", DigitGroupingSymbol: "."}, want: "1.234.567,89"},
		{minorUnits: 123456789, options: NumberFormatOptions{DigitGrouping: DigitGroupingNone}, want: "1234567.89"},
		{minorUnits: 123456789, options: NumberFormatOptions{DigitGroupingSymbol: " "}, want: "1 234 567.89"},
	}

	for _, tc := range tests {
		if got := FormatAmount(tc.minorUnits, tc.options); got != tc.want {
			t.Fatalf("FormatAmount(%d, %+v) = %q, want %q", tc.minorUnits, tc.options, got, tc.want)
		}
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	allOptions := []NumberFormatOptions{
		{},
		{DecimalSeparator: ",", DigitGroupingSymbol: "."},
		{DigitGrouping: DigitGroupingNone},
		{DigitGroupingSymbol: "'"},
	}
	amounts := []int64{0, 1, -1, 5, 99, 100, -100, 12345, -12345, 987654321, -987654321}

	for _, options := range allOptions {
		for _, amount := range amounts {
			formatted := FormatAmount(amount, options)
			parsed, err := ParseAmount(formatted, options)
			if err != nil {
				t.Fatalf("ParseAmount(%q, %+v): %v", formatted, options, err)
			}
			if parsed != amount {
				t.Fatalf("round trip %d -> %q -> %d with %+v", amount, formatted, parsed, options)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		value   string
		options NumberFormatOptions
		want    int64
		wantErr bool
	}{
		{value: "123.45", want: 12345},
		{value: "123.4", want: 12340},
		{value: "123", want: 12300},
		{value: "-0.05", want: -5},
		{value: "1,234.56", want: 123456},
		{value: "1.234,56", options: NumberFormatOptions{DecimalSeparator: ",", DigitGroupingSymbol: "."}, want: 123456},
		{value: "", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "1.234", wantErr: true},
		{value: "--1", wantErr: true},
		{value: "1.2.3", wantErr: true},
		{value: ".5", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseAmount(tc.value, tc.options)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.value, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestFormatAmountValueIncompleteMarker(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "12345", want: "123.45"},
		{value: "12345+", want: "123.45+"},
		{value: "-100+", want: "-1.00+"},
		{value: "0+", want: "0.00+"},
		{value: "abc", wantErr: true},
		{value: "+", wantErr: true},
	}

	for _, tc := range tests {
		got, err := FormatAmountValue(tc.value, NumberFormatOptions{})
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("FormatAmountValue(%q) error = %v, want ErrInvalidAmount", tc.value, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FormatAmountValue(%q): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("FormatAmountValue(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestAppendDigitGroupingSymbol(t *testing.T) {
	tests := []struct {
		value   string
		options NumberFormatOptions
		want    string
	}{
		{value: "1234567.89", want: "1,234,567.89"},
		{value: "-1234567.89", want: "-1,234,567.89"},
		{value: "123", want: "123"},
		{value: "1234", want: "1,234"},
		{value: "1234567.89", options: NumberFormatOptions{DigitGrouping: DigitGroupingNone}, want: "1234567.89"},
		{value: "1234.5", options: NumberFormatOptions{DecimalSeparator: ",", DigitGroupingSymbol: "."}, want: "1.234,5"},
	}

	for _, tc := range tests {
		if got := AppendDigitGroupingSymbol(tc.value, tc.options); got != tc.want {
			t.Fatalf("AppendDigitGroupingSymbol(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatExchangeRateAmount(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 1, want: "1"},
		{rate: 0.85, want: "0.85"},
		{rate: 1234.5, want: "1,234.5"},
	}

	for _, tc := range tests {
		if got := FormatExchangeRateAmount(tc.rate, NumberFormatOptions{}); got != tc.want {
			t.Fatalf("FormatExchangeRateAmount(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestAdaptiveDisplayAmountRate(t *testing.T) {
	tests := []struct {
		name     string
		amount1  int64
		amount2  int64
		fromRate float64
		toRate   float64
		want     string
		ok       bool
	}{
		{name: "amounts drive ratio", amount1: 100, amount2: 200, fromRate: 1, toRate: 1, want: "1 : 2", ok: true},
		{name: "larger first", amount1: 300, amount2: 100, fromRate: 1, toRate: 1, want: "3 : 1", ok: true},
		{name: "zero falls back to rates", amount1: 0, amount2: 0, fromRate: 1, toRate: 2, want: "1 : 2", ok: true},
		{name: "equal falls back to rates", amount1: 500, amount2: 500, fromRate: 2, toRate: 1, want: "2 : 1", ok: true},
		{name: "missing rates", amount1: 0, amount2: 0, fromRate: 0, toRate: 1, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AdaptiveDisplayAmountRate(tc.amount1, tc.amount2, tc.fromRate, tc.toRate, NumberFormatOptions{})
			if ok != tc.ok || got != tc.want {
				t.Fatalf("AdaptiveDisplayAmountRate = %q,%v want %q,%v", got, ok, tc.want, tc.ok)
			}
		})
	}
}
