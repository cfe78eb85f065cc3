package ledgerfmt

import "testing"

func TestCurrencyInfoByCode(t *testing.T) {
	info, ok := CurrencyInfoByCode("USD")
	if !ok || info.Symbol != "$" || info.Unit != "Dollar" {
		t.Fatalf("USD = %+v, %v", info, ok)
	}

	// valid ISO code outside the builtin table renders with its code
	info, ok = CurrencyInfoByCode("BHD")
	if !ok || info.Symbol != "BHD" {
		t.Fatalf("BHD = %+v, %v", info, ok)
	}

	if _, ok := CurrencyInfoByCode("ZZZ"); ok {
		t.Fatal("expected ZZZ to be rejected")
	}
	if _, ok := CurrencyInfoByCode(""); ok {
		t.Fatal("expected empty code to be rejected")
	}
}

func TestAmountPrependAppendText(t *testing.T) {
	tests := []struct {
		name       string
		display    CurrencyDisplayType
		symbolText string
		wantPrefix string
		wantSuffix string
	}{
		{name: "none", display: AllCurrencyDisplayTypes[0], symbolText: "$", wantPrefix: "", wantSuffix: ""},
		{name: "symbol before", display: AllCurrencyDisplayTypes[1], symbolText: "$", wantPrefix: "$", wantSuffix: ""},
		{name: "symbol after", display: AllCurrencyDisplayTypes[2], symbolText: "$", wantPrefix: "", wantSuffix: "$"},
		{name: "code before", display: AllCurrencyDisplayTypes[3], symbolText: "USD", wantPrefix: "USD ", wantSuffix: ""},
		{name: "code after", display: AllCurrencyDisplayTypes[4], symbolText: "USD", wantPrefix: "", wantSuffix: " USD"},
		{name: "empty symbol", display: AllCurrencyDisplayTypes[1], symbolText: "", wantPrefix: "", wantSuffix: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prefix, suffix := AmountPrependAppendText(tc.display, tc.symbolText)
			if prefix != tc.wantPrefix || suffix != tc.wantSuffix {
				t.Fatalf("AmountPrependAppendText = %q,%q want %q,%q", prefix, suffix, tc.wantPrefix, tc.wantSuffix)
			}
		})
	}
}

func TestAppendCurrencySymbol(t *testing.T) {
	tests := []struct {
		display    CurrencyDisplayType
		symbolText string
		want       string
	}{
		{display: DefaultCurrencyDisplayType, symbolText: "$", want: "$123.45"},
		{display: AllCurrencyDisplayTypes[2], symbolText: "€", want: "123.45€"},
		{display: AllCurrencyDisplayTypes[4], symbolText: "USD", want: "123.45 USD"},
		{display: AllCurrencyDisplayTypes[0], symbolText: "$", want: "123.45"},
	}

	for _, tc := range tests {
		if got := AppendCurrencySymbol("123.45", tc.display, tc.symbolText); got != tc.want {
			t.Fatalf("AppendCurrencySymbol(%s) = %q, want %q", tc.display.Name, got, tc.want)
		}
	}
}

func TestAllCurrencyDisplayTypesWellFormed(t *testing.T) {
	seen := make(map[int]bool, len(AllCurrencyDisplayTypes))
	for i, displayType := range AllCurrencyDisplayTypes {
		if displayType.Type != i+1 {
			t.Fatalf("display type %d has Type %d", i, displayType.Type)
		}
		if seen[displayType.Type] {
			t.Fatalf("duplicate display type %d", displayType.Type)
		}
		seen[displayType.Type] = true

		if displayType.Symbol == CurrencySymbolSign && displayType.Separator != "" {
			t.Fatalf("sign display %q should attach without separator", displayType.Name)
		}
		if displayType.Symbol != CurrencySymbolNone && displayType.Symbol != CurrencySymbolSign && displayType.Separator != " " {
			t.Fatalf("text display %q should use a space separator", displayType.Name)
		}
	}
}
