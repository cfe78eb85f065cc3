package ledgerfmt

import (
	"strconv"
	"strings"
	"time"
)

// WeekDay is a canonical weekday descriptor. The fixed order is Sunday=0
// through Saturday=6; display rotation happens on top of this order.
type WeekDay struct {
	Type int
	Name string
}

var AllWeekDays = []WeekDay{
	{Type: 0, Name: "sunday"},
	{Type: 1, Name: "monday"},
	{Type: 2, Name: "tuesday"},
	{Type: 3, Name: "wednesday"},
	{Type: 4, Name: "thursday"},
	{Type: 5, Name: "friday"},
	{Type: 6, Name: "saturday"},
}

var allWeekDaysByName = func() map[string]WeekDay {
	byName := make(map[string]WeekDay, len(AllWeekDays))
	for _, weekDay := range AllWeekDays {
		byName[weekDay.Name] = weekDay
	}
	return byName
}()

// DefaultFirstDayOfWeek is the system fallback when neither the user nor the
// language declares one.
const DefaultFirstDayOfWeek = 0

// FirstDayOfWeekDefault is the UserPreferences sentinel meaning "follow the
// language default". Zero is a valid weekday, so the sentinel is negative.
const FirstDayOfWeekDefault = -1

var AllMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Meridiem indicator names used for translation lookup.
var AllMeridiemIndicators = []string{"am", "pm"}

// IsPM reports whether an hour-of-day falls in the second half of the day.
func IsPM(hour int) bool {
	return hour > 11
}

// DefaultFormatValue is the format preference sentinel meaning "follow the
// language default".
const DefaultFormatValue = 0

// DateFormatType describes one supported date format variant. Key is both the
// translation key suffix under format.longDate/format.shortDate and the value
// a language declares in its default.longDateFormat/default.shortDateFormat
// entry.
type DateFormatType struct {
	Type             int
	Key              string
	IsMonthAfterYear bool
}

// TimeFormatType describes one supported time format variant.
type TimeFormatType struct {
	Type                     int
	Key                      string
	Is24HourFormat           bool
	IsMeridiemIndicatorFirst bool
}

var AllLongDateFormats = []DateFormatType{
	{Type: 1, Key: "yyyy_mm_dd", IsMonthAfterYear: true},
	{Type: 2, Key: "mm_dd_yyyy", IsMonthAfterYear: false},
	{Type: 3, Key: "dd_mm_yyyy", IsMonthAfterYear: false},
}

var AllShortDateFormats = []DateFormatType{
	{Type: 1, Key: "yyyy_mm_dd", IsMonthAfterYear: true},
	{Type: 2, Key: "mm_dd_yyyy", IsMonthAfterYear: false},
	{Type: 3, Key: "dd_mm_yyyy", IsMonthAfterYear: false},
}

var AllLongTimeFormats = []TimeFormatType{
	{Type: 1, Key: "hh_mm_ss", Is24HourFormat: true},
	{Type: 2, Key: "a_hh_mm_ss", IsMeridiemIndicatorFirst: true},
	{Type: 3, Key: "hh_mm_ss_a"},
}

var AllShortTimeFormats = []TimeFormatType{
	{Type: 1, Key: "hh_mm", Is24HourFormat: true},
	{Type: 2, Key: "a_hh_mm", IsMeridiemIndicatorFirst: true},
	{Type: 3, Key: "hh_mm_a"},
}

var (
	DefaultLongDateFormat  = AllLongDateFormats[0]
	DefaultShortDateFormat = AllShortDateFormats[0]
	DefaultLongTimeFormat  = AllLongTimeFormats[0]
	DefaultShortTimeFormat = AllShortTimeFormats[0]
)

// dateFormatTypeFor applies the three-tier fallback: explicit preference value,
// the variant the language declares as its default, then the system default.
func dateFormatTypeFor(all []DateFormatType, localeDefaultKey string, systemDefault DateFormatType, value int) DateFormatType {
	if value > DefaultFormatValue && value <= len(all) {
		return all[value-1]
	}
	for _, formatType := range all {
		if formatType.Key == localeDefaultKey {
			return formatType
		}
	}
	return systemDefault
}

func timeFormatTypeFor(all []TimeFormatType, localeDefaultKey string, systemDefault TimeFormatType, value int) TimeFormatType {
	if value > DefaultFormatValue && value <= len(all) {
		return all[value-1]
	}
	for _, formatType := range all {
		if formatType.Key == localeDefaultKey {
			return formatType
		}
	}
	return systemDefault
}

// CalendarNames carries the localized month, weekday and meridiem names the
// token renderer substitutes. Rebuilt on every language switch.
type CalendarNames struct {
	LongMonths    [12]string
	ShortMonths   [12]string
	LongWeekdays  [7]string
	ShortWeekdays [7]string
	MinWeekdays   [7]string
	AM            string
	PM            string
}

// Layout tokens, longest first so prefix matching stays unambiguous.
var layoutTokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"dddd", "ddd", "dd", "DD", "D",
	"HH", "H", "hh", "h",
	"mm", "m", "ss", "s",
	"A",
}

// FormatTokens renders t using a moment-style token layout (YYYY, MM, DD,
// HH:mm:ss, A, ...). Characters outside the token set are copied verbatim, so
// the output is byte-stable for a fixed input.
func FormatTokens(t time.Time, layout string, names *CalendarNames) string {
	var b strings.Builder

	for i := 0; i < len(layout); {
		matched := ""
		for _, token := range layoutTokens {
			if strings.HasPrefix(layout[i:], token) {
				matched = token
				break
			}
		}

		if matched == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}

		b.WriteString(renderToken(t, matched, names))
		i += len(matched)
	}

	return b.String()
}

func renderToken(t time.Time, token string, names *CalendarNames) string {
	switch token {
	case "YYYY":
		return zeroPad(t.Year(), 4)
	case "YY":
		return zeroPad(t.Year()%100, 2)
	case "MMMM":
		return names.LongMonths[int(t.Month())-1]
	case "MMM":
		return names.ShortMonths[int(t.Month())-1]
	case "MM":
		return zeroPad(int(t.Month()), 2)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return zeroPad(t.Day(), 2)
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return names.LongWeekdays[int(t.Weekday())]
	case "ddd":
		return names.ShortWeekdays[int(t.Weekday())]
	case "dd":
		return names.MinWeekdays[int(t.Weekday())]
	case "HH":
		return zeroPad(t.Hour(), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return zeroPad(hour12(t.Hour()), 2)
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "mm":
		return zeroPad(t.Minute(), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return zeroPad(t.Second(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "A":
		if IsPM(t.Hour()) {
			return names.PM
		}
		return names.AM
	}
	return token
}

func hour12(hour int) int {
	hour %= 12
	if hour == 0 {
		return 12
	}
	return hour
}

func zeroPad(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// ParseUnixTime interprets a unix timestamp at the given UTC offset in
// minutes.
func ParseUnixTime(unixTime int64, utcOffsetMinutes int) time.Time {
	return time.Unix(unixTime, 0).In(time.FixedZone("", utcOffsetMinutes*60))
}

// ParseUnixTimeWithDisplayOffset shifts a timestamp captured in utcOffset so
// its calendar fields read correctly when displayed in currentUtcOffset. Used
// to show a transaction's original timezone alongside the viewer's local time.
func ParseUnixTimeWithDisplayOffset(unixTime int64, utcOffsetMinutes, currentUtcOffsetMinutes int) time.Time {
	unixTime -= int64(currentUtcOffsetMinutes-utcOffsetMinutes) * 60
	return ParseUnixTime(unixTime, currentUtcOffsetMinutes)
}

// FormatUnixTime renders a unix timestamp with a token layout at the given
// UTC offset.
func FormatUnixTime(unixTime int64, layout string, names *CalendarNames, utcOffsetMinutes int) string {
	return FormatTokens(ParseUnixTime(unixTime, utcOffsetMinutes), layout, names)
}

// IsDateRangeMatchFullYears reports whether [start, end] covers one or more
// whole calendar years in the timestamps' location: start is exactly Jan-1
// 00:00:00 and end is exactly Dec-31 23:59:59 of the same or a later year.
func IsDateRangeMatchFullYears(start, end time.Time) bool {
	if end.Year() < start.Year() {
		return false
	}

	startOfYear := time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, start.Location())
	endOfYear := time.Date(end.Year(), time.December, 31, 23, 59, 59, 0, end.Location())
	return start.Unix() == startOfYear.Unix() && end.Unix() == endOfYear.Unix()
}

// IsDateRangeMatchFullMonths is the month-boundary analogue of
// IsDateRangeMatchFullYears.
func IsDateRangeMatchFullMonths(start, end time.Time) bool {
	if end.Year() < start.Year() ||
		(end.Year() == start.Year() && end.Month() < start.Month()) {
		return false
	}

	startOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	endOfMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).
		AddDate(0, 1, 0).Add(-time.Second)
	return start.Unix() == startOfMonth.Unix() && end.Unix() == endOfMonth.Unix()
}

// RecentMonthRange is one trailing-calendar-month preset.
type RecentMonthRange struct {
	MinTime int64
	MaxTime int64
	Year    int
	Month   int
}

// RecentMonthRanges returns the current month and the monthCount-1 months
// before it, most recent first, with boundaries in now's location.
func RecentMonthRanges(now time.Time, monthCount int) []RecentMonthRange {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	ranges := make([]RecentMonthRange, 0, monthCount)
	for i := 0; i < monthCount; i++ {
		minTime := firstOfMonth.AddDate(0, -i, 0)
		maxTime := minTime.AddDate(0, 1, 0).Add(-time.Second)
		ranges = append(ranges, RecentMonthRange{
			MinTime: minTime.Unix(),
			MaxTime: maxTime.Unix(),
			Year:    minTime.Year(),
			Month:   int(minTime.Month()),
		})
	}
	return ranges
}

// DateRangeType enumerates the preset date range selections.
type DateRangeType int

const (
	DateRangeAll DateRangeType = iota
	DateRangeToday
	DateRangeYesterday
	DateRangeLastSevenDays
	DateRangeLastThirtyDays
	DateRangeThisWeek
	DateRangeLastWeek
	DateRangeThisMonth
	DateRangeLastMonth
	DateRangeThisYear
	DateRangeLastYear
	DateRangeCustom
)

// DateRangeScene is a bitmask of UI scenes a preset is offered in.
type DateRangeScene uint8

const (
	DateRangeSceneNormal DateRangeScene = 1 << iota
	DateRangeSceneTrendAnalysis
)

// DateRangeInfo declares one preset range; Name is its translation key.
type DateRangeInfo struct {
	Type   DateRangeType
	Name   string
	Scenes DateRangeScene
}

var AllDateRanges = []DateRangeInfo{
	{Type: DateRangeAll, Name: "All", Scenes: DateRangeSceneNormal | DateRangeSceneTrendAnalysis},
	{Type: DateRangeToday, Name: "Today", Scenes: DateRangeSceneNormal},
	{Type: DateRangeYesterday, Name: "Yesterday", Scenes: DateRangeSceneNormal},
	{Type: DateRangeLastSevenDays, Name: "Recent 7 days", Scenes: DateRangeSceneNormal},
	{Type: DateRangeLastThirtyDays, Name: "Recent 30 days", Scenes: DateRangeSceneNormal},
	{Type: DateRangeThisWeek, Name: "This week", Scenes: DateRangeSceneNormal},
	{Type: DateRangeLastWeek, Name: "Last week", Scenes: DateRangeSceneNormal},
	{Type: DateRangeThisMonth, Name: "This month", Scenes: DateRangeSceneNormal},
	{Type: DateRangeLastMonth, Name: "Last month", Scenes: DateRangeSceneNormal},
	{Type: DateRangeThisYear, Name: "This year", Scenes: DateRangeSceneNormal | DateRangeSceneTrendAnalysis},
	{Type: DateRangeLastYear, Name: "Last year", Scenes: DateRangeSceneNormal | DateRangeSceneTrendAnalysis},
	{Type: DateRangeCustom, Name: "Custom Date", Scenes: DateRangeSceneNormal | DateRangeSceneTrendAnalysis},
}

// DateRange is a resolved time interval. MinTime and MaxTime are both zero
// when Type is DateRangeAll, meaning unbounded.
type DateRange struct {
	Type        DateRangeType
	MinTime     int64
	MaxTime     int64
	Year        int
	Month       int
	IsPreset    bool
	DisplayName string
}

// TimezoneOffsetMinutes returns the UTC offset of loc at the given instant.
func TimezoneOffsetMinutes(loc *time.Location, at time.Time) int {
	_, offsetSeconds := at.In(loc).Zone()
	return offsetSeconds / 60
}

// FormatTimezoneOffset renders an offset in minutes as ±HH:MM.
func FormatTimezoneOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return sign + zeroPad(offsetMinutes/60, 2) + ":" + zeroPad(offsetMinutes%60, 2)
}

// TimeDifferenceHoursAndMinutes splits an offset difference in minutes into
// absolute hour and minute components.
func TimeDifferenceHoursAndMinutes(offsetMinutes int) (int, int) {
	if offsetMinutes < 0 {
		offsetMinutes = -offsetMinutes
	}
	return offsetMinutes / 60, offsetMinutes % 60
}
