package ledgerfmt

import (
	"testing"
	"time"
)

func testCalendarNames() *CalendarNames {
	names := &CalendarNames{AM: "AM", PM: "PM"}
	for i := range names.LongMonths {
		names.LongMonths[i] = testMonthLongNames[i]
		names.ShortMonths[i] = testMonthLongNames[i][:3]
	}
	for i := range names.LongWeekdays {
		names.LongWeekdays[i] = testWeekdayLongNames[i]
		names.ShortWeekdays[i] = testWeekdayLongNames[i][:3]
		names.MinWeekdays[i] = testWeekdayLongNames[i][:2]
	}
	return names
}

func TestFormatTokens(t *testing.T) {
	names := testCalendarNames()
	at := time.Date(2024, 3, 5, 9, 7, 4, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{layout: "YYYY-MM-DD HH:mm:ss", want: "2024-03-05 09:07:04"},
		{layout: "D/M/YY", want: "5/3/24"},
		{layout: "dddd, MMMM D", want: "Tuesday, March 5"},
		{layout: "ddd dd", want: "Tue Tu"},
		{layout: "MMM D, YYYY", want: "Mar 5, 2024"},
		{layout: "hh:mm A", want: "09:07 AM"},
		{layout: "H:m:s", want: "9:7:4"},
		{layout: "plain text", want: "plain text"},
	}

	for _, tc := range tests {
		if got := FormatTokens(at, tc.layout, names); got != tc.want {
			t.Fatalf("FormatTokens(%q) = %q, want %q", tc.layout, got, tc.want)
		}
	}
}

func TestFormatTokensMeridiem(t *testing.T) {
	names := testCalendarNames()

	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "12:00 AM"},
		{hour: 11, want: "11:00 AM"},
		{hour: 12, want: "12:00 PM"},
		{hour: 14, want: "02:00 PM"},
		{hour: 23, want: "11:00 PM"},
	}

	for _, tc := range tests {
		at := time.Date(2024, 3, 5, tc.hour, 0, 0, 0, time.UTC)
		if got := FormatTokens(at, "hh:mm A", names); got != tc.want {
			t.Fatalf("hour %d = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestIsPM(t *testing.T) {
	if IsPM(11) {
		t.Fatal("11 should be AM")
	}
	if !IsPM(12) {
		t.Fatal("12 should be PM")
	}
}

func TestParseUnixTime(t *testing.T) {
	unixTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Unix()

	if got := ParseUnixTime(unixTime, 0).Hour(); got != 12 {
		t.Fatalf("UTC hour = %d, want 12", got)
	}
	if got := ParseUnixTime(unixTime, 480).Hour(); got != 20 {
		t.Fatalf("UTC+8 hour = %d, want 20", got)
	}
	if got := ParseUnixTime(unixTime, -300).Hour(); got != 7 {
		t.Fatalf("UTC-5 hour = %d, want 7", got)
	}
}

func TestParseUnixTimeWithDisplayOffset(t *testing.T) {
	unixTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Unix()

	// captured in UTC+8, displayed through a UTC viewer: fields keep the
	// original wall clock
	got := ParseUnixTimeWithDisplayOffset(unixTime, 480, 0)
	if got.Hour() != 20 {
		t.Fatalf("display hour = %d, want 20", got.Hour())
	}

	// same offsets mean no shift
	got = ParseUnixTimeWithDisplayOffset(unixTime, 480, 480)
	if got.Hour() != 20 {
		t.Fatalf("display hour = %d, want 20", got.Hour())
	}
}

func TestIsDateRangeMatchFullYears(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "one full year",
			start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  true,
		},
		{
			name:  "two full years",
			start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  true,
		},
		{
			name:  "end one second early",
			start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 58, 0, time.UTC),
			want:  false,
		},
		{
			name:  "start mid year",
			start: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  false,
		},
		{
			name:  "reversed",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDateRangeMatchFullYears(tc.start, tc.end); got != tc.want {
				t.Fatalf("IsDateRangeMatchFullYears = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsDateRangeMatchFullMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "one full month",
			start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
			want:  true,
		},
		{
			name:  "leap february",
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			want:  true,
		},
		{
			name:  "two months",
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
			want:  true,
		},
		{
			name:  "partial month",
			start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 30, 23, 59, 59, 0, time.UTC),
			want:  false,
		},
		{
			name:  "reversed",
			start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDateRangeMatchFullMonths(tc.start, tc.end); got != tc.want {
				t.Fatalf("IsDateRangeMatchFullMonths = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRecentMonthRanges(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)
	ranges := RecentMonthRanges(now, 3)

	if len(ranges) != 3 {
		t.Fatalf("len = %d, want 3", len(ranges))
	}

	want := []struct {
		year  int
		month int
	}{
		{year: 2024, month: 3},
		{year: 2024, month: 2},
		{year: 2024, month: 1},
	}
	for i, w := range want {
		if ranges[i].Year != w.year || ranges[i].Month != w.month {
			t.Fatalf("ranges[%d] = %d-%d, want %d-%d", i, ranges[i].Year, ranges[i].Month, w.year, w.month)
		}
	}

	wantMin := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Unix()
	wantMax := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC).Unix()
	if ranges[0].MinTime != wantMin || ranges[0].MaxTime != wantMax {
		t.Fatalf("ranges[0] boundaries = %d..%d, want %d..%d", ranges[0].MinTime, ranges[0].MaxTime, wantMin, wantMax)
	}

	// crossing the year boundary
	ranges = RecentMonthRanges(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 2)
	if ranges[1].Year != 2023 || ranges[1].Month != 12 {
		t.Fatalf("ranges[1] = %d-%d, want 2023-12", ranges[1].Year, ranges[1].Month)
	}
}

func TestFormatTimezoneOffset(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{offset: 0, want: "+00:00"},
		{offset: 60, want: "+01:00"},
		{offset: 330, want: "+05:30"},
		{offset: -300, want: "-05:00"},
		{offset: -570, want: "-09:30"},
	}

	for _, tc := range tests {
		if got := FormatTimezoneOffset(tc.offset); got != tc.want {
			t.Fatalf("FormatTimezoneOffset(%d) = %q, want %q", tc.offset, got, tc.want)
		}
	}
}

func TestTimeDifferenceHoursAndMinutes(t *testing.T) {
	hours, minutes := TimeDifferenceHoursAndMinutes(330)
	if hours != 5 || minutes != 30 {
		t.Fatalf("330 = %dh%dm", hours, minutes)
	}
	hours, minutes = TimeDifferenceHoursAndMinutes(-120)
	if hours != 2 || minutes != 0 {
		t.Fatalf("-120 = %dh%dm", hours, minutes)
	}
}
