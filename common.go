package ledgerfmt

import (
	"sort"
	"strings"
)

// RotateSlice returns items reordered to begin at start, wrapping around.
// Out-of-range start values return the slice unchanged.
func RotateSlice[T any](items []T, start int) []T {
	if start <= 0 || start >= len(items) {
		return items
	}

	out := make([]T, 0, len(items))
	out = append(out, items[start:]...)
	out = append(out, items[:start]...)
	return out
}

// ItemByKey returns the first item whose key matches value.
func ItemByKey[T any, K comparable](items []T, key func(T) K, value K) (T, bool) {
	for _, item := range items {
		if key(item) == value {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// NameByKey returns name(item) for the first item whose key matches value, or
// fallback when nothing matches.
func NameByKey[T any, K comparable](items []T, key func(T) K, value K, name func(T) string, fallback string) string {
	if item, ok := ItemByKey(items, key, value); ok {
		return name(item)
	}
	return fallback
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LimitText truncates value so it fits maxLength display cells, appending
// "..." when cut. Runes outside the ASCII and half-width katakana ranges
// count as two cells.
func LimitText(value string, maxLength int) string {
	length := 0
	for _, r := range value {
		if (r >= 0x0001 && r <= 0x007e) || (r >= 0xff60 && r <= 0xff9f) {
			length++
		} else {
			length += 2
		}
	}

	if length <= maxLength || maxLength <= 3 {
		return value
	}

	runes := []rune(value)
	if len(runes) <= maxLength-3 {
		return value
	}
	return string(runes[:maxLength-3]) + "..."
}

// TextBefore returns the part of fullText before the first occurrence of text,
// fullText when text is empty, and "" when text is absent.
func TextBefore(fullText, text string) string {
	if text == "" {
		return fullText
	}

	if idx := strings.Index(fullText, text); idx >= 0 {
		return fullText[:idx]
	}
	return ""
}

// TextAfter returns the part of fullText after the first occurrence of text,
// fullText when text is empty, and "" when text is absent.
func TextAfter(fullText, text string) string {
	if text == "" {
		return fullText
	}

	if idx := strings.Index(fullText, text); idx >= 0 {
		return fullText[idx+len(text):]
	}
	return ""
}

// IsYearMonth reports whether value has the "YYYY-MM" shape with non-zero
// year and month components.
func IsYearMonth(value string) bool {
	_, _, ok := parseYearMonth(value)
	return ok
}

// YearMonthEquals reports whether two "YYYY-MM" values denote the same month.
func YearMonthEquals(value1, value2 string) bool {
	year1, month1, ok1 := parseYearMonth(value1)
	year2, month2, ok2 := parseYearMonth(value2)
	return ok1 && ok2 && year1 == year2 && month1 == month2
}

func parseYearMonth(value string) (int, int, bool) {
	items := strings.Split(value, "-")
	if len(items) != 2 {
		return 0, 0, false
	}

	year := parseDecimal(items[0])
	month := parseDecimal(items[1])
	if year <= 0 || month <= 0 {
		return 0, 0, false
	}
	return year, month, true
}

func parseDecimal(value string) int {
	if value == "" {
		return 0
	}

	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
