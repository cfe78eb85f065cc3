package ledgerfmt

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// TypeAndDisplayName is a generic settings picker entry.
type TypeAndDisplayName struct {
	Type        int
	DisplayName string
}

// LanguageOption is one entry of the language picker. DisplayName combines
// the language's own-language name with its English name when they differ.
type LanguageOption struct {
	Tag         string
	Name        string
	DisplayName string
}

// GetAllLanguageOptions lists the registered languages sorted by tag. With
// includeSystemDefault a head entry with an empty tag stands for following
// the browser language.
func (c *Context) GetAllLanguageOptions(includeSystemDefault bool) []LanguageOption {
	options := make([]LanguageOption, 0, c.languages.Len()+1)
	if includeSystemDefault {
		name := c.Translate("System Default")
		options = append(options, LanguageOption{Name: name, DisplayName: name})
	}
	for _, tag := range c.languages.Tags() {
		info, _ := c.languages.ByTag(tag)

		displayName := info.Name
		if info.DisplayName != "" && info.DisplayName != info.Name {
			displayName = info.Name + " (" + info.DisplayName + ")"
		}
		options = append(options, LanguageOption{
			Tag:         info.Tag,
			Name:        info.Name,
			DisplayName: displayName,
		})
	}
	return options
}

// DateTimeFormatOption is one entry of a date or time format picker, carrying
// the token layout it selects and a rendering of the current time in it.
type DateTimeFormatOption struct {
	Type        int
	Layout      string
	DisplayName string
}

type formatTypeKey struct {
	value int
	key   string
}

var formatLayoutFallbacks = map[string]map[string]string{
	"longDate":  fallbackLongDateLayouts,
	"shortDate": fallbackShortDateLayouts,
	"longTime":  fallbackLongTimeLayouts,
	"shortTime": fallbackShortTimeLayouts,
}

func (c *Context) dateTimeFormatOptions(group string, defaultLayout string, types []formatTypeKey) []DateTimeFormatOption {
	now := c.now().Unix()

	options := make([]DateTimeFormatOption, 0, len(types)+1)
	options = append(options, DateTimeFormatOption{
		Type:        DefaultFormatValue,
		Layout:      defaultLayout,
		DisplayName: c.Translate("Language Default") + " (" + c.formatUnixTime(now, defaultLayout) + ")",
	})

	for _, t := range types {
		layout := c.layout(group, t.key, formatLayoutFallbacks[group])
		options = append(options, DateTimeFormatOption{
			Type:        t.value,
			Layout:      layout,
			DisplayName: c.formatUnixTime(now, layout),
		})
	}
	return options
}

func dateFormatKeys(all []DateFormatType) []formatTypeKey {
	keys := make([]formatTypeKey, len(all))
	for i, t := range all {
		keys[i] = formatTypeKey{t.Type, t.Key}
	}
	return keys
}

func timeFormatKeys(all []TimeFormatType) []formatTypeKey {
	keys := make([]formatTypeKey, len(all))
	for i, t := range all {
		keys[i] = formatTypeKey{t.Type, t.Key}
	}
	return keys
}

// GetAllLongDateFormats lists the long date format picker entries, headed by
// the language default.
func (c *Context) GetAllLongDateFormats() []DateTimeFormatOption {
	return c.dateTimeFormatOptions("longDate", c.LongDateLayout(UserPreferences{}), dateFormatKeys(AllLongDateFormats))
}

// GetAllShortDateFormats lists the short date format picker entries.
func (c *Context) GetAllShortDateFormats() []DateTimeFormatOption {
	return c.dateTimeFormatOptions("shortDate", c.ShortDateLayout(UserPreferences{}), dateFormatKeys(AllShortDateFormats))
}

// GetAllLongTimeFormats lists the long time format picker entries.
func (c *Context) GetAllLongTimeFormats() []DateTimeFormatOption {
	return c.dateTimeFormatOptions("longTime", c.LongTimeLayout(UserPreferences{}), timeFormatKeys(AllLongTimeFormats))
}

// GetAllShortTimeFormats lists the short time format picker entries.
func (c *Context) GetAllShortTimeFormats() []DateTimeFormatOption {
	return c.dateTimeFormatOptions("shortTime", c.ShortTimeLayout(UserPreferences{}), timeFormatKeys(AllShortTimeFormats))
}

// NumeralSeparatorOption is one entry of the decimal separator or digit
// grouping symbol picker.
type NumeralSeparatorOption struct {
	Type        int
	Symbol      string
	DisplayName string
}

func (c *Context) numeralSeparatorOptions(all []NumeralSymbolType, localeDefault NumeralSymbolType) []NumeralSeparatorOption {
	options := make([]NumeralSeparatorOption, 0, len(all)+1)
	options = append(options, NumeralSeparatorOption{
		Type:        DefaultNumeralValue,
		Symbol:      localeDefault.Symbol,
		DisplayName: c.Translate("Language Default") + " (" + localeDefault.Symbol + ")",
	})

	for _, t := range all {
		options = append(options, NumeralSeparatorOption{
			Type:        t.Type,
			Symbol:      t.Symbol,
			DisplayName: c.Translate("numeral."+t.Name) + " (" + t.Symbol + ")",
		})
	}
	return options
}

// GetAllDecimalSeparators lists the decimal separator picker entries, headed
// by the language default.
func (c *Context) GetAllDecimalSeparators() []NumeralSeparatorOption {
	return c.numeralSeparatorOptions(AllDecimalSeparators, c.CurrentDecimalSeparator(UserPreferences{}))
}

// GetAllDigitGroupingSymbols lists the digit grouping symbol picker entries.
func (c *Context) GetAllDigitGroupingSymbols() []NumeralSeparatorOption {
	return c.numeralSeparatorOptions(AllDigitGroupingSymbols, c.CurrentDigitGroupingSymbol(UserPreferences{}))
}

// DigitGroupingOption is one entry of the digit grouping policy picker.
type DigitGroupingOption struct {
	Type        int
	Enabled     bool
	DisplayName string
}

// GetAllDigitGroupingTypes lists the grouping policy picker entries, headed
// by the language default.
func (c *Context) GetAllDigitGroupingTypes() []DigitGroupingOption {
	localeDefault := c.CurrentDigitGroupingType(UserPreferences{})

	options := make([]DigitGroupingOption, 0, len(AllDigitGroupingTypes)+1)
	options = append(options, DigitGroupingOption{
		Type:        int(DigitGroupingDefault),
		Enabled:     localeDefault.Enabled,
		DisplayName: c.Translate("Language Default") + " (" + c.Translate("numeral."+localeDefault.Name) + ")",
	})

	for _, t := range AllDigitGroupingTypes {
		options = append(options, DigitGroupingOption{
			Type:        int(t.Type),
			Enabled:     t.Enabled,
			DisplayName: c.Translate("numeral." + t.Name),
		})
	}
	return options
}

// GetAllCurrencyDisplayTypes lists the currency display picker entries, each
// annotated with a sample rendering of 123.45 in the default currency.
func (c *Context) GetAllCurrencyDisplayTypes(prefs UserPreferences) []TypeAndDisplayName {
	const sampleValue = "12345"
	defaultCurrency := c.CurrentDefaultCurrency(prefs)
	numberOptions := c.NumberFormatOptions(prefs)

	sample := func(displayType CurrencyDisplayType) string {
		formatted, err := FormatAmountValue(sampleValue, numberOptions)
		if err != nil {
			return sampleValue
		}
		return AppendCurrencySymbol(formatted, displayType, c.currencySymbolText(displayType, defaultCurrency, true))
	}

	localeDefault := c.CurrentCurrencyDisplayType(UserPreferences{})

	options := make([]TypeAndDisplayName, 0, len(AllCurrencyDisplayTypes)+1)
	options = append(options, TypeAndDisplayName{
		Type:        0,
		DisplayName: c.Translate("Language Default") + " (" + sample(localeDefault) + ")",
	})

	for _, displayType := range AllCurrencyDisplayTypes {
		displayName := c.Translate("currency.display." + displayType.Name)
		if displayType.Symbol != CurrencySymbolNone {
			displayName += " (" + sample(displayType) + ")"
		}
		options = append(options, TypeAndDisplayName{
			Type:        displayType.Type,
			DisplayName: displayName,
		})
	}
	return options
}

// GetAllCurrencySortingTypes lists the rate list sorting picker entries.
func (c *Context) GetAllCurrencySortingTypes() []TypeAndDisplayName {
	options := make([]TypeAndDisplayName, 0, len(AllCurrencySortingTypes))
	for _, sortingType := range AllCurrencySortingTypes {
		options = append(options, TypeAndDisplayName{
			Type:        int(sortingType.Type),
			DisplayName: c.Translate(sortingType.Name),
		})
	}
	return options
}

// CurrencyOption is one entry of the currency picker.
type CurrencyOption struct {
	Currency    string
	DisplayName string
}

// GetAllCurrencies lists the supported currencies sorted by localized name.
func (c *Context) GetAllCurrencies() []CurrencyOption {
	options := make([]CurrencyOption, 0, len(AllCurrencies))
	for _, code := range sortedKeys(AllCurrencies) {
		options = append(options, CurrencyOption{
			Currency:    code,
			DisplayName: c.CurrencyName(code, false),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].DisplayName < options[j].DisplayName
	})
	return options
}

// GetAllWeekDays lists the weekdays rotated to start at firstDayOfWeek, with
// localized long names.
func (c *Context) GetAllWeekDays(firstDayOfWeek int) []TypeAndDisplayName {
	if firstDayOfWeek < 0 || firstDayOfWeek > 6 {
		firstDayOfWeek = DefaultFirstDayOfWeek
	}

	options := make([]TypeAndDisplayName, 0, len(AllWeekDays))
	for _, weekDay := range RotateSlice(AllWeekDays, firstDayOfWeek) {
		options = append(options, TypeAndDisplayName{
			Type:        weekDay.Type,
			DisplayName: c.Translate("datetime." + weekDay.Name + ".long"),
		})
	}
	return options
}

// JoinMultiText joins already-localized fragments with the language's list
// separator.
func (c *Context) JoinMultiText(texts []string) string {
	if len(texts) == 0 {
		return ""
	}
	return strings.Join(texts, c.miscLayout("multiTextJoinSeparator", ", "))
}

// GetMultiWeekdayLongNames joins localized weekday names for the given
// weekday types, emitted in week order starting at firstDayOfWeek; duplicate
// and unknown types are dropped.
func (c *Context) GetMultiWeekdayLongNames(weekDayTypes []int, firstDayOfWeek int) string {
	if firstDayOfWeek < 0 || firstDayOfWeek > 6 {
		firstDayOfWeek = DefaultFirstDayOfWeek
	}

	selected := make(map[int]bool, len(weekDayTypes))
	for _, weekDayType := range weekDayTypes {
		selected[weekDayType] = true
	}

	names := make([]string, 0, len(selected))
	for _, weekDay := range RotateSlice(AllWeekDays, firstDayOfWeek) {
		if selected[weekDay.Type] {
			names = append(names, c.Translate("datetime."+weekDay.Name+".long"))
		}
	}
	return c.JoinMultiText(names)
}

func (c *Context) monthdayOrdinal(monthDay int) string {
	ordinal := strconv.Itoa(monthDay)
	if value, ok := c.lookup("datetime.monthDayOrdinal." + ordinal); ok {
		ordinal = value
	}
	return ordinal
}

// GetMonthdayShortName renders a day-of-month with its localized ordinal,
// e.g. "1st".
func (c *Context) GetMonthdayShortName(monthDay int) string {
	ordinal := c.monthdayOrdinal(monthDay)
	if _, ok := c.lookup("format.misc.monthDay"); ok {
		return c.TranslateWithParams("format.misc.monthDay", map[string]string{"ordinal": ordinal})
	}
	return ordinal
}

// GetMultiMonthdayShortNames renders a day-of-month selection. A single day
// uses the singular monthDay phrasing; several days wrap each ordinal
// individually and embed the joined list in the plural monthDays phrasing.
func (c *Context) GetMultiMonthdayShortNames(monthDays []int) string {
	if len(monthDays) == 0 {
		return ""
	}
	if len(monthDays) == 1 {
		return c.GetMonthdayShortName(monthDays[0])
	}

	names := make([]string, 0, len(monthDays))
	for _, monthDay := range monthDays {
		ordinal := c.monthdayOrdinal(monthDay)
		if _, ok := c.lookup("format.misc.eachMonthDayInMonthDays"); ok {
			ordinal = c.TranslateWithParams("format.misc.eachMonthDayInMonthDays", map[string]string{"ordinal": ordinal})
		}
		names = append(names, ordinal)
	}

	joined := c.JoinMultiText(names)
	if _, ok := c.lookup("format.misc.monthDays"); ok {
		return c.TranslateWithParams("format.misc.monthDays", map[string]string{"multiMonthDays": joined})
	}
	return joined
}

// GetDisplayExchangeRates builds the localized exchange rate list, sorted by
// the chosen attribute.
func (c *Context) GetDisplayExchangeRates(rates *ExchangeRates, prefs UserPreferences, sortingType CurrencySortingType) []DisplayExchangeRate {
	if rates == nil {
		return nil
	}

	numberOptions := c.NumberFormatOptions(prefs)
	rows := make([]DisplayExchangeRate, 0, len(rates.Rates))
	for _, rate := range rates.All() {
		info, _ := CurrencyInfoByCode(rate.Currency)
		rows = append(rows, DisplayExchangeRate{
			Currency:    rate.Currency,
			DisplayName: c.CurrencyName(rate.Currency, false),
			Symbol:      info.Symbol,
			Rate:        FormatExchangeRateAmount(rate.Rate, numberOptions),
			RateValue:   rate.Rate,
		})
	}
	SortDisplayExchangeRates(rows, sortingType)
	return rows
}

// GetAllDateRanges lists the preset date ranges available in a scene.
func (c *Context) GetAllDateRanges(scene DateRangeScene, includeCustom bool) []TypeAndDisplayName {
	options := make([]TypeAndDisplayName, 0, len(AllDateRanges))
	for _, dateRange := range AllDateRanges {
		if dateRange.Scenes&scene == 0 {
			continue
		}
		if dateRange.Type == DateRangeCustom && !includeCustom {
			continue
		}
		options = append(options, TypeAndDisplayName{
			Type:        int(dateRange.Type),
			DisplayName: c.Translate(dateRange.Name),
		})
	}
	return options
}

// GetAllRecentMonthDateRanges lists the last twelve calendar months as
// selectable ranges, most recent first, optionally bracketed by "All" and
// "Custom Date" entries.
func (c *Context) GetAllRecentMonthDateRanges(prefs UserPreferences, includeAll, includeCustom bool) []DateRange {
	ranges := make([]DateRange, 0, 14)

	if includeAll {
		ranges = append(ranges, DateRange{
			Type:        DateRangeAll,
			DisplayName: c.Translate("All"),
		})
	}

	c.mu.RLock()
	now := c.now().In(c.timezone)
	c.mu.RUnlock()

	layout := c.longYearMonthLayout(prefs)
	for _, recent := range RecentMonthRanges(now, 12) {
		ranges = append(ranges, DateRange{
			Type:        DateRangeCustom,
			MinTime:     recent.MinTime,
			MaxTime:     recent.MaxTime,
			Year:        recent.Year,
			Month:       recent.Month,
			IsPreset:    true,
			DisplayName: c.formatUnixTime(recent.MinTime, layout),
		})
	}

	if includeCustom {
		ranges = append(ranges, DateRange{
			Type:        DateRangeCustom,
			DisplayName: c.Translate("Custom Date"),
		})
	}
	return ranges
}

// derived layouts for partial dates, keyed like the full date formats.
var (
	fallbackShortYearLayouts = map[string]string{
		"yyyy_mm_dd": "YYYY",
		"mm_dd_yyyy": "YYYY",
		"dd_mm_yyyy": "YYYY",
	}
	fallbackShortYearMonthLayouts = map[string]string{
		"yyyy_mm_dd": "YYYY-MM",
		"mm_dd_yyyy": "MM/YYYY",
		"dd_mm_yyyy": "MM/YYYY",
	}
	fallbackShortMonthDayLayouts = map[string]string{
		"yyyy_mm_dd": "MM-DD",
		"mm_dd_yyyy": "MM/DD",
		"dd_mm_yyyy": "DD/MM",
	}
	fallbackLongYearMonthLayouts = map[string]string{
		"yyyy_mm_dd": "YYYY MMMM",
		"mm_dd_yyyy": "MMMM YYYY",
		"dd_mm_yyyy": "MMMM YYYY",
	}
)

func (c *Context) shortYearLayout(prefs UserPreferences) string {
	return c.layout("shortYear", c.CurrentShortDateFormat(prefs).Key, fallbackShortYearLayouts)
}

func (c *Context) shortYearMonthLayout(prefs UserPreferences) string {
	return c.layout("shortYearMonth", c.CurrentShortDateFormat(prefs).Key, fallbackShortYearMonthLayouts)
}

func (c *Context) shortMonthDayLayout(prefs UserPreferences) string {
	return c.layout("shortMonthDay", c.CurrentShortDateFormat(prefs).Key, fallbackShortMonthDayLayouts)
}

func (c *Context) longYearMonthLayout(prefs UserPreferences) string {
	return c.layout("longYearMonth", c.CurrentLongDateFormat(prefs).Key, fallbackLongYearMonthLayouts)
}

// GetDateRangeDisplayName names a resolved range: the preset's own name when
// it has one, otherwise year, month or date renderings depending on whether
// the range lands exactly on calendar boundaries. Same-year custom ranges
// compress the end date to month and day.
func (c *Context) GetDateRangeDisplayName(prefs UserPreferences, dateType DateRangeType, startTime, endTime int64) string {
	if dateType == DateRangeAll {
		return c.Translate(AllDateRanges[0].Name)
	}

	for _, dateRange := range AllDateRanges {
		if dateRange.Type == dateType && dateRange.Type != DateRangeCustom {
			return c.Translate(dateRange.Name)
		}
	}

	c.mu.RLock()
	loc := c.timezone
	c.mu.RUnlock()
	start := time.Unix(startTime, 0).In(loc)
	end := time.Unix(endTime, 0).In(loc)

	if IsDateRangeMatchFullYears(start, end) {
		return c.formatRangeEndpoints(startTime, endTime, c.shortYearLayout(prefs))
	}
	if IsDateRangeMatchFullMonths(start, end) {
		return c.formatRangeEndpoints(startTime, endTime, c.shortYearMonthLayout(prefs))
	}

	displayStart := c.formatUnixTime(startTime, c.ShortDateLayout(prefs))
	displayEnd := c.formatUnixTime(endTime, c.ShortDateLayout(prefs))
	if displayStart == displayEnd {
		return displayStart
	}
	if start.Year() == end.Year() {
		return displayStart + " ~ " + c.formatUnixTime(endTime, c.shortMonthDayLayout(prefs))
	}
	return displayStart + " ~ " + displayEnd
}

func (c *Context) formatRangeEndpoints(startTime, endTime int64, layout string) string {
	displayStart := c.formatUnixTime(startTime, layout)
	displayEnd := c.formatUnixTime(endTime, layout)
	if displayStart == displayEnd {
		return displayStart
	}
	return displayStart + " ~ " + displayEnd
}

// FormatYearQuarter renders a year and quarter, e.g. "2024 Q3". Quarters
// outside 1-4 yield "".
func (c *Context) FormatYearQuarter(year, quarter int) string {
	if quarter < 1 || quarter > 4 {
		return ""
	}

	key := "format.yearQuarter.q" + strconv.Itoa(quarter)
	if _, ok := c.lookup(key); ok {
		return c.TranslateWithParams(key, map[string]string{
			"year":    strconv.Itoa(year),
			"quarter": strconv.Itoa(quarter),
		})
	}
	return strconv.Itoa(year) + " Q" + strconv.Itoa(quarter)
}

// GetEnableDisableOptions returns the boolean toggle picker entries.
func (c *Context) GetEnableDisableOptions() []TypeAndDisplayName {
	return []TypeAndDisplayName{
		{Type: 1, DisplayName: c.Translate("Enable")},
		{Type: 0, DisplayName: c.Translate("Disable")},
	}
}

// GetTimezoneDifferenceDisplayText describes how far a UTC offset sits from
// the display timezone, e.g. "3 hours ahead".
func (c *Context) GetTimezoneDifferenceDisplayText(utcOffsetMinutes int) string {
	currentOffset := c.TimezoneOffset()
	hours, minutes := TimeDifferenceHoursAndMinutes(utcOffsetMinutes - currentOffset)
	params := map[string]string{
		"hours":   strconv.Itoa(hours),
		"minutes": strconv.Itoa(minutes),
	}

	switch {
	case utcOffsetMinutes > currentOffset && minutes != 0:
		return c.TranslateWithParams("format.misc.hoursMinutesAheadOfDefaultTimezone", params)
	case utcOffsetMinutes > currentOffset:
		return c.TranslateWithParams("format.misc.hoursAheadOfDefaultTimezone", params)
	case utcOffsetMinutes < currentOffset && minutes != 0:
		return c.TranslateWithParams("format.misc.hoursMinutesBehindDefaultTimezone", params)
	case utcOffsetMinutes < currentOffset:
		return c.TranslateWithParams("format.misc.hoursBehindDefaultTimezone", params)
	}
	return c.Translate("Same time as default timezone")
}

// TimezoneOption is one entry of the timezone picker.
type TimezoneOption struct {
	Name                     string
	UtcOffset                string
	UtcOffsetMinutes         int
	DisplayName              string
	DisplayNameWithUtcOffset string
}

// builtin timezone picker entries; display names come from timezone.* keys.
var allTimezoneEntries = []struct {
	Name        string
	DisplayName string
}{
	{"Pacific/Honolulu", "Honolulu"},
	{"America/Anchorage", "Anchorage"},
	{"America/Los_Angeles", "Los Angeles"},
	{"America/Denver", "Denver"},
	{"America/Chicago", "Chicago"},
	{"America/New_York", "New York"},
	{"America/Sao_Paulo", "Sao Paulo"},
	{"Atlantic/Azores", "Azores"},
	{"UTC", "Coordinated Universal Time"},
	{"Europe/London", "London"},
	{"Europe/Paris", "Paris"},
	{"Europe/Berlin", "Berlin"},
	{"Europe/Madrid", "Madrid"},
	{"Europe/Rome", "Rome"},
	{"Europe/Warsaw", "Warsaw"},
	{"Europe/Athens", "Athens"},
	{"Europe/Helsinki", "Helsinki"},
	{"Europe/Istanbul", "Istanbul"},
	{"Europe/Moscow", "Moscow"},
	{"Asia/Dubai", "Dubai"},
	{"Asia/Karachi", "Karachi"},
	{"Asia/Kolkata", "Kolkata"},
	{"Asia/Dhaka", "Dhaka"},
	{"Asia/Bangkok", "Bangkok"},
	{"Asia/Jakarta", "Jakarta"},
	{"Asia/Singapore", "Singapore"},
	{"Asia/Hong_Kong", "Hong Kong"},
	{"Asia/Shanghai", "Shanghai"},
	{"Asia/Taipei", "Taipei"},
	{"Asia/Seoul", "Seoul"},
	{"Asia/Tokyo", "Tokyo"},
	{"Australia/Perth", "Perth"},
	{"Australia/Sydney", "Sydney"},
	{"Pacific/Auckland", "Auckland"},
}

// GetAllTimezones lists the timezone picker entries sorted by UTC offset.
// When includeSystemDefault is set, a trailing entry with an empty name
// represents the host timezone.
func (c *Context) GetAllTimezones(includeSystemDefault bool) []TimezoneOption {
	now := c.now()

	options := make([]TimezoneOption, 0, len(allTimezoneEntries)+1)
	for _, entry := range allTimezoneEntries {
		loc, err := time.LoadLocation(entry.Name)
		if err != nil {
			continue
		}

		offsetMinutes := TimezoneOffsetMinutes(loc, now)
		offset := FormatTimezoneOffset(offsetMinutes)
		displayName := c.Translate("timezone." + entry.DisplayName)
		if displayName == "timezone."+entry.DisplayName {
			displayName = entry.DisplayName
		}

		options = append(options, TimezoneOption{
			Name:                     entry.Name,
			UtcOffset:                offset,
			UtcOffsetMinutes:         offsetMinutes,
			DisplayName:              displayName,
			DisplayNameWithUtcOffset: "(UTC" + offset + ") " + displayName,
		})
	}

	if includeSystemDefault {
		offsetMinutes := TimezoneOffsetMinutes(time.Local, now)
		offset := FormatTimezoneOffset(offsetMinutes)
		displayName := c.Translate("System Default")

		options = append(options, TimezoneOption{
			UtcOffset:                offset,
			UtcOffsetMinutes:         offsetMinutes,
			DisplayName:              displayName,
			DisplayNameWithUtcOffset: "(UTC" + offset + ") " + displayName,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].UtcOffsetMinutes != options[j].UtcOffsetMinutes {
			return options[i].UtcOffsetMinutes < options[j].UtcOffsetMinutes
		}
		return options[i].DisplayName < options[j].DisplayName
	})
	return options
}
