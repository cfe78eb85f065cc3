package ledgerfmt

import (
	"reflect"
	"testing"
)

func TestRotateSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		start int
		want  []int
	}{
		{start: 0, want: []int{0, 1, 2, 3, 4}},
		{start: 2, want: []int{2, 3, 4, 0, 1}},
		{start: 4, want: []int{4, 0, 1, 2, 3}},
		{start: -1, want: []int{0, 1, 2, 3, 4}},
		{start: 5, want: []int{0, 1, 2, 3, 4}},
	}

	for _, tc := range tests {
		if got := RotateSlice(items, tc.start); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("RotateSlice(start=%d) = %v, want %v", tc.start, got, tc.want)
		}
	}
}

func TestItemByKey(t *testing.T) {
	weekDay, ok := ItemByKey(AllWeekDays, func(w WeekDay) int { return w.Type }, 3)
	if !ok || weekDay.Name != "wednesday" {
		t.Fatalf("ItemByKey(3) = %+v, %v", weekDay, ok)
	}

	if _, ok := ItemByKey(AllWeekDays, func(w WeekDay) int { return w.Type }, 9); ok {
		t.Fatal("expected no match for type 9")
	}
}

func TestNameByKey(t *testing.T) {
	got := NameByKey(AllWeekDays, func(w WeekDay) int { return w.Type }, 5, func(w WeekDay) string { return w.Name }, "unknown")
	if got != "friday" {
		t.Fatalf("NameByKey(5) = %q", got)
	}

	got = NameByKey(AllWeekDays, func(w WeekDay) int { return w.Type }, 9, func(w WeekDay) string { return w.Name }, "unknown")
	if got != "unknown" {
		t.Fatalf("NameByKey(9) = %q", got)
	}
}

func TestLimitText(t *testing.T) {
	tests := []struct {
		value     string
		maxLength int
		want      string
	}{
		{value: "short", maxLength: 10, want: "short"},
		{value: "abcdefghij", maxLength: 10, want: "abcdefghij"},
		{value: "abcdefghij", maxLength: 8, want: "abcde..."},
		{value: "你好世界", maxLength: 8, want: "你好世界"},
		{value: "你好世界你好", maxLength: 6, want: "你好世..."},
		{value: "abcdefghij", maxLength: 3, want: "abcdefghij"},
	}

	for _, tc := range tests {
		if got := LimitText(tc.value, tc.maxLength); got != tc.want {
			t.Fatalf("LimitText(%q, %d) = %q, want %q", tc.value, tc.maxLength, got, tc.want)
		}
	}
}

func TestTextBeforeAfter(t *testing.T) {
	tests := []struct {
		fullText   string
		text       string
		wantBefore string
		wantAfter  string
	}{
		{fullText: "zh-Hans-CN", text: "-", wantBefore: "zh", wantAfter: "Hans-CN"},
		{fullText: "value", text: "", wantBefore: "value", wantAfter: "value"},
		{fullText: "value", text: "x", wantBefore: "", wantAfter: ""},
		{fullText: "a=b", text: "=", wantBefore: "a", wantAfter: "b"},
	}

	for _, tc := range tests {
		if got := TextBefore(tc.fullText, tc.text); got != tc.wantBefore {
			t.Fatalf("TextBefore(%q, %q) = %q, want %q", tc.fullText, tc.text, got, tc.wantBefore)
		}
		if got := TextAfter(tc.fullText, tc.text); got != tc.wantAfter {
			t.Fatalf("TextAfter(%q, %q) = %q, want %q", tc.fullText, tc.text, got, tc.wantAfter)
		}
	}
}

func TestIsYearMonth(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "2024-03", want: true},
		{value: "2024-3", want: true},
		{value: "2024", want: false},
		{value: "2024-03-15", want: false},
		{value: "abcd-03", want: false},
		{value: "2024-00", want: false},
		{value: "", want: false},
	}

	for _, tc := range tests {
		if got := IsYearMonth(tc.value); got != tc.want {
			t.Fatalf("IsYearMonth(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestYearMonthEquals(t *testing.T) {
	if !YearMonthEquals("2024-03", "2024-3") {
		t.Fatal("expected 2024-03 to equal 2024-3")
	}
	if YearMonthEquals("2024-03", "2024-04") {
		t.Fatal("expected different months to differ")
	}
	if YearMonthEquals("bad", "2024-04") {
		t.Fatal("expected malformed input to differ")
	}
}
