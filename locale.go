package ledgerfmt

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// placeholderPattern matches {name} parameter slots in translation templates.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_.]+)\}`)

// TranslateFunc overrides translation lookup for a key. Returning false falls
// back to the builtin catalog chain.
type TranslateFunc func(key string) (string, bool)

// LocaleDefaults reports the preference defaults a freshly activated language
// declares, so callers can seed unset user settings.
type LocaleDefaults struct {
	DefaultCurrency string
	FirstDayOfWeek  int
}

// UserPreferences carries the user's explicit formatting choices. Zero values
// mean "follow the language default", with one exception: FirstDayOfWeek zero
// is Sunday, and FirstDayOfWeekDefault marks the unset state there.
// Resolution falls through to the hardcoded system default.
type UserPreferences struct {
	DefaultCurrency     string
	DecimalSeparator    int
	DigitGroupingSymbol int
	DigitGrouping       int
	CurrencyDisplayType int
	LongDateFormat      int
	ShortDateFormat     int
	LongTimeFormat      int
	ShortTimeFormat     int
	FirstDayOfWeek      int
}

// Context owns the active language and everything derived from it: the
// translation lookup, calendar names, timezone and preference resolution.
// All methods are safe for concurrent use.
type Context struct {
	mu sync.RWMutex

	languages       *Languages
	defaultLanguage string
	browserLanguage string

	active *LanguageInfo
	names  *CalendarNames

	timezone  *time.Location
	now       func() time.Time
	translate TranslateFunc

	logger            zerolog.Logger
	onLanguageChanged func(tag string)
}

// Option mutates Context during construction.
type Option func(*Context) error

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) error {
		c.logger = logger
		return nil
	}
}

// WithBrowserLanguage sets the environment-reported language used when no
// stored user language resolves.
func WithBrowserLanguage(tag string) Option {
	return func(c *Context) error {
		c.browserLanguage = tag
		return nil
	}
}

// WithLanguageChangedHook registers a callback fired after every effective
// language change, with the newly active tag.
func WithLanguageChangedHook(hook func(tag string)) Option {
	return func(c *Context) error {
		c.onLanguageChanged = hook
		return nil
	}
}

// WithTimezone sets the display timezone by IANA name.
func WithTimezone(name string) Option {
	return func(c *Context) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
		}
		c.timezone = loc
		return nil
	}
}

// WithTranslator installs a lookup override consulted before the language
// catalogs, e.g. for runtime-patched translations.
func WithTranslator(translate TranslateFunc) Option {
	return func(c *Context) error {
		c.translate = translate
		return nil
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Context) error {
		c.now = now
		return nil
	}
}

// New builds a Context over the language registry. defaultLanguage must be a
// registered tag; it becomes the active language until SetLanguage switches
// it.
func New(languages *Languages, defaultLanguage string, opts ...Option) (*Context, error) {
	if languages == nil || languages.Len() == 0 {
		return nil, ErrNoLanguages
	}

	info, ok := languages.ByTag(defaultLanguage)
	if !ok {
		return nil, fmt.Errorf("%w: default language %q not registered", ErrNoLanguages, defaultLanguage)
	}

	c := &Context{
		languages:       languages,
		defaultLanguage: info.Tag,
		timezone:        time.Local,
		now:             time.Now,
		logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.activate(info)
	return c, nil
}

// InitLocale applies the stored user language and timezone in one call,
// mirroring application startup. An empty lastUserLanguage falls back to the
// browser language, then the default. An empty timezoneName keeps the host
// timezone.
func (c *Context) InitLocale(lastUserLanguage, timezoneName string) (*LocaleDefaults, error) {
	if timezoneName != "" {
		if err := c.SetTimeZone(timezoneName); err != nil {
			return nil, err
		}
	}
	return c.SetLanguage(lastUserLanguage, true)
}

// SetLanguage switches the active language. Unresolvable tags fall back to
// the browser language and then the default. When the resolved language is
// already active and force is false, nothing happens and the returned
// defaults are nil.
func (c *Context) SetLanguage(tag string, force bool) (*LocaleDefaults, error) {
	info := c.resolve(tag)
	if info == nil {
		if tag != "" {
			c.logger.Warn().Str("language", tag).Msg("unsupported language, falling back")
		}
		if info = c.resolve(c.browserLanguage); info == nil {
			info, _ = c.languages.ByTag(c.defaultLanguage)
		}
	}

	c.mu.Lock()
	if c.active != nil && c.active.Tag == info.Tag && !force {
		c.mu.Unlock()
		return nil, nil
	}
	c.mu.Unlock()

	c.activate(info)
	c.logger.Info().Str("language", info.Tag).Msg("language changed")

	defaults := c.localeDefaults()
	if c.onLanguageChanged != nil {
		c.onLanguageChanged(info.Tag)
	}
	return defaults, nil
}

// ResolveEffectiveLanguage reports which registered language a tag would
// activate, without switching: the tag itself when it resolves, otherwise
// the browser language, otherwise the default language.
func (c *Context) ResolveEffectiveLanguage(tag string) string {
	if info := c.resolve(tag); info != nil {
		return info.Tag
	}
	if info := c.resolve(c.browserLanguage); info != nil {
		return info.Tag
	}
	return c.defaultLanguage
}

// CurrentLanguageTag returns the active language tag.
func (c *Context) CurrentLanguageTag() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active.Tag
}

// CurrentLanguageInfo returns the active language entry.
func (c *Context) CurrentLanguageInfo() *LanguageInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SetTimeZone changes the display timezone by IANA name.
func (c *Context) SetTimeZone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}

	c.mu.Lock()
	c.timezone = loc
	c.mu.Unlock()

	c.logger.Info().Str("timezone", name).Msg("timezone changed")
	return nil
}

// TimezoneOffset returns the display timezone's current UTC offset in
// minutes.
func (c *Context) TimezoneOffset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return TimezoneOffsetMinutes(c.timezone, c.now())
}

// resolve maps an arbitrary language tag onto a registered language: exact
// tag, declared alias, canonicalized tag, parent chain, then bare primary
// subtag. Returns nil when nothing matches.
func (c *Context) resolve(tag string) *LanguageInfo {
	tag = normalizeLanguageTag(tag)
	if tag == "" {
		return nil
	}

	if info, ok := c.languages.ByTag(tag); ok {
		return info
	}
	if info, ok := c.languages.ByAlias(tag); ok {
		return info
	}

	if parsed, err := language.Parse(tag); err == nil {
		if info, ok := c.languages.ByTag(parsed.String()); ok {
			return info
		}
		for parent := parsed.Parent(); parent != language.Und; parent = parent.Parent() {
			if info, ok := c.languages.ByTag(parent.String()); ok {
				return info
			}
		}
	}

	for current := tag; current != ""; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if info, ok := c.languages.ByTag(current); ok {
			return info
		}
	}

	if info, ok := c.languages.ByPrefix(TextBefore(tag+"-", "-")); ok {
		return info
	}
	return nil
}

func normalizeLanguageTag(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
}

func (c *Context) activate(info *LanguageInfo) {
	c.mu.Lock()
	c.active = info
	c.mu.Unlock()
	c.rebuildCalendarNames()
}

func (c *Context) rebuildCalendarNames() {
	names := &CalendarNames{}
	meridiems := []*string{&names.AM, &names.PM}
	for i, indicator := range AllMeridiemIndicators {
		*meridiems[i] = c.Translate("datetime." + indicator + ".content")
	}
	for i, month := range AllMonths {
		names.LongMonths[i] = c.Translate("datetime." + month + ".long")
		names.ShortMonths[i] = c.Translate("datetime." + month + ".short")
	}
	for _, weekDay := range AllWeekDays {
		names.LongWeekdays[weekDay.Type] = c.Translate("datetime." + weekDay.Name + ".long")
		names.ShortWeekdays[weekDay.Type] = c.Translate("datetime." + weekDay.Name + ".short")
		names.MinWeekdays[weekDay.Type] = c.Translate("datetime." + weekDay.Name + ".min")
	}

	c.mu.Lock()
	c.names = names
	c.mu.Unlock()
}

// CalendarNames returns the localized calendar names for the active language.
func (c *Context) CalendarNames() *CalendarNames {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.names
}

// lookup finds a translation template in the active language, falling back to
// the default language. The second return reports whether a template exists
// at all.
func (c *Context) lookup(key string) (string, bool) {
	if c.translate != nil {
		if value, ok := c.translate(key); ok {
			return value, true
		}
	}

	c.mu.RLock()
	active := c.active
	c.mu.RUnlock()

	if value, ok := active.Content[key]; ok {
		return value, true
	}
	if fallback, ok := c.languages.ByTag(c.defaultLanguage); ok && fallback != active {
		if value, ok := fallback.Content[key]; ok {
			return value, true
		}
	}
	return "", false
}

// Translate resolves key in the active language, falling back to the default
// language and finally to the key itself.
func (c *Context) Translate(key string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	return key
}

// TranslateWithParams resolves key and substitutes {name} placeholders from
// params. Unknown placeholders stay in place.
func (c *Context) TranslateWithParams(key string, params map[string]string) string {
	template := c.Translate(key)
	if len(params) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := params[name]; ok {
			return value
		}
		return match
	})
}

// TranslateIf returns the translation of key when condition holds, otherwise
// the key untranslated.
func (c *Context) TranslateIf(key string, condition bool) string {
	if condition {
		return c.Translate(key)
	}
	return key
}

// localeDefault reads one default.* declaration from the active language.
func (c *Context) localeDefault(name string) string {
	value, _ := c.lookup("default." + name)
	return value
}

func (c *Context) localeDefaults() *LocaleDefaults {
	return &LocaleDefaults{
		DefaultCurrency: c.CurrentDefaultCurrency(UserPreferences{}),
		FirstDayOfWeek:  c.CurrentFirstDayOfWeek(UserPreferences{FirstDayOfWeek: FirstDayOfWeekDefault}),
	}
}

// CurrentDefaultCurrency resolves the default currency: user preference,
// language declaration, then the system default.
func (c *Context) CurrentDefaultCurrency(prefs UserPreferences) string {
	if prefs.DefaultCurrency != "" {
		return prefs.DefaultCurrency
	}
	if declared := c.localeDefault("currency"); declared != "" {
		return declared
	}
	return DefaultCurrency
}

// CurrentFirstDayOfWeek resolves the first day of week: user preference,
// language declaration, then Sunday.
func (c *Context) CurrentFirstDayOfWeek(prefs UserPreferences) int {
	if prefs.FirstDayOfWeek >= 0 && prefs.FirstDayOfWeek <= 6 {
		return prefs.FirstDayOfWeek
	}
	if declared, ok := allWeekDaysByName[c.localeDefault("firstDayOfWeek")]; ok {
		return declared.Type
	}
	return DefaultFirstDayOfWeek
}

// CurrentDecimalSeparator resolves the decimal separator preference.
func (c *Context) CurrentDecimalSeparator(prefs UserPreferences) NumeralSymbolType {
	if prefs.DecimalSeparator > DefaultNumeralValue && prefs.DecimalSeparator <= len(AllDecimalSeparators) {
		return AllDecimalSeparators[prefs.DecimalSeparator-1]
	}
	if declared, ok := allDecimalSeparatorsByName[c.localeDefault("decimalSeparator")]; ok {
		return declared
	}
	return DefaultDecimalSeparator
}

// CurrentDigitGroupingSymbol resolves the digit grouping symbol preference.
func (c *Context) CurrentDigitGroupingSymbol(prefs UserPreferences) NumeralSymbolType {
	if prefs.DigitGroupingSymbol > DefaultNumeralValue && prefs.DigitGroupingSymbol <= len(AllDigitGroupingSymbols) {
		return AllDigitGroupingSymbols[prefs.DigitGroupingSymbol-1]
	}
	if declared, ok := allDigitGroupingSymbolsByName[c.localeDefault("digitGroupingSymbol")]; ok {
		return declared
	}
	return DefaultDigitGroupingSymbol
}

// CurrentDigitGroupingType resolves the digit grouping policy preference.
func (c *Context) CurrentDigitGroupingType(prefs UserPreferences) DigitGroupingTypeInfo {
	if grouping, ok := ItemByKey(AllDigitGroupingTypes, func(t DigitGroupingTypeInfo) DigitGroupingType { return t.Type }, DigitGroupingType(prefs.DigitGrouping)); ok {
		return grouping
	}
	if declared, ok := ItemByKey(AllDigitGroupingTypes, func(t DigitGroupingTypeInfo) string { return t.Name }, c.localeDefault("digitGrouping")); ok {
		return declared
	}
	return DefaultDigitGroupingType
}

// CurrentCurrencyDisplayType resolves the currency display preference.
func (c *Context) CurrentCurrencyDisplayType(prefs UserPreferences) CurrencyDisplayType {
	if prefs.CurrencyDisplayType > 0 && prefs.CurrencyDisplayType <= len(AllCurrencyDisplayTypes) {
		return AllCurrencyDisplayTypes[prefs.CurrencyDisplayType-1]
	}
	if declared, ok := allCurrencyDisplayTypesByName[c.localeDefault("currencyDisplayType")]; ok {
		return declared
	}
	return DefaultCurrencyDisplayType
}

// CurrentLongDateFormat resolves the long date format preference.
func (c *Context) CurrentLongDateFormat(prefs UserPreferences) DateFormatType {
	return dateFormatTypeFor(AllLongDateFormats, c.localeDefault("longDateFormat"), DefaultLongDateFormat, prefs.LongDateFormat)
}

// CurrentShortDateFormat resolves the short date format preference.
func (c *Context) CurrentShortDateFormat(prefs UserPreferences) DateFormatType {
	return dateFormatTypeFor(AllShortDateFormats, c.localeDefault("shortDateFormat"), DefaultShortDateFormat, prefs.ShortDateFormat)
}

// CurrentLongTimeFormat resolves the long time format preference.
func (c *Context) CurrentLongTimeFormat(prefs UserPreferences) TimeFormatType {
	return timeFormatTypeFor(AllLongTimeFormats, c.localeDefault("longTimeFormat"), DefaultLongTimeFormat, prefs.LongTimeFormat)
}

// CurrentShortTimeFormat resolves the short time format preference.
func (c *Context) CurrentShortTimeFormat(prefs UserPreferences) TimeFormatType {
	return timeFormatTypeFor(AllShortTimeFormats, c.localeDefault("shortTimeFormat"), DefaultShortTimeFormat, prefs.ShortTimeFormat)
}

// NumberFormatOptions builds the numeral rendering options implied by the
// resolved preferences.
func (c *Context) NumberFormatOptions(prefs UserPreferences) NumberFormatOptions {
	grouping := DigitGroupingNone
	if c.CurrentDigitGroupingType(prefs).Enabled {
		grouping = DigitGroupingThousandsSeparator
	}
	return NumberFormatOptions{
		DecimalSeparator:    c.CurrentDecimalSeparator(prefs).Symbol,
		DigitGroupingSymbol: c.CurrentDigitGroupingSymbol(prefs).Symbol,
		DigitGrouping:       grouping,
	}
}

// builtin token layouts used when a language ships no format.* entry.
var (
	fallbackLongDateLayouts = map[string]string{
		"yyyy_mm_dd": "YYYY MMMM D",
		"mm_dd_yyyy": "MMMM D YYYY",
		"dd_mm_yyyy": "D MMMM YYYY",
	}
	fallbackShortDateLayouts = map[string]string{
		"yyyy_mm_dd": "YYYY-MM-DD",
		"mm_dd_yyyy": "MM/DD/YYYY",
		"dd_mm_yyyy": "DD/MM/YYYY",
	}
	fallbackLongTimeLayouts = map[string]string{
		"hh_mm_ss":   "HH:mm:ss",
		"a_hh_mm_ss": "A hh:mm:ss",
		"hh_mm_ss_a": "hh:mm:ss A",
	}
	fallbackShortTimeLayouts = map[string]string{
		"hh_mm":   "HH:mm",
		"a_hh_mm": "A hh:mm",
		"hh_mm_a": "hh:mm A",
	}
)

func (c *Context) layout(group, key string, fallbacks map[string]string) string {
	if value, ok := c.lookup("format." + group + "." + key); ok {
		return value
	}
	return fallbacks[key]
}

// LongDateLayout returns the active token layout for long dates.
func (c *Context) LongDateLayout(prefs UserPreferences) string {
	return c.layout("longDate", c.CurrentLongDateFormat(prefs).Key, fallbackLongDateLayouts)
}

// ShortDateLayout returns the active token layout for short dates.
func (c *Context) ShortDateLayout(prefs UserPreferences) string {
	return c.layout("shortDate", c.CurrentShortDateFormat(prefs).Key, fallbackShortDateLayouts)
}

// LongTimeLayout returns the active token layout for long times.
func (c *Context) LongTimeLayout(prefs UserPreferences) string {
	return c.layout("longTime", c.CurrentLongTimeFormat(prefs).Key, fallbackLongTimeLayouts)
}

// ShortTimeLayout returns the active token layout for short times.
func (c *Context) ShortTimeLayout(prefs UserPreferences) string {
	return c.layout("shortTime", c.CurrentShortTimeFormat(prefs).Key, fallbackShortTimeLayouts)
}

func (c *Context) miscLayout(name, fallback string) string {
	if value, ok := c.lookup("format.misc." + name); ok {
		return value
	}
	return fallback
}

func (c *Context) formatUnixTime(unixTime int64, layout string) string {
	c.mu.RLock()
	loc := c.timezone
	names := c.names
	c.mu.RUnlock()
	return FormatTokens(time.Unix(unixTime, 0).In(loc), layout, names)
}

// FormatLongDateTime renders a unix timestamp as long date plus long time.
func (c *Context) FormatLongDateTime(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.LongDateLayout(prefs)+" "+c.LongTimeLayout(prefs))
}

// FormatShortDateTime renders a unix timestamp as short date plus short time.
func (c *Context) FormatShortDateTime(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.ShortDateLayout(prefs)+" "+c.ShortTimeLayout(prefs))
}

// FormatLongDate renders only the long date part.
func (c *Context) FormatLongDate(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.LongDateLayout(prefs))
}

// FormatShortDate renders only the short date part.
func (c *Context) FormatShortDate(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.ShortDateLayout(prefs))
}

// FormatLongTime renders only the long time part.
func (c *Context) FormatLongTime(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.LongTimeLayout(prefs))
}

// FormatShortTime renders only the short time part.
func (c *Context) FormatShortTime(prefs UserPreferences, unixTime int64) string {
	return c.formatUnixTime(unixTime, c.ShortTimeLayout(prefs))
}

// FormatLongDateTimeInTimezone renders a timestamp captured at utcOffset so
// its original wall-clock fields show through the display timezone.
func (c *Context) FormatLongDateTimeInTimezone(prefs UserPreferences, unixTime int64, utcOffsetMinutes int) string {
	t := ParseUnixTimeWithDisplayOffset(unixTime, utcOffsetMinutes, c.TimezoneOffset())
	c.mu.RLock()
	names := c.names
	c.mu.RUnlock()
	return FormatTokens(t, c.LongDateLayout(prefs)+" "+c.LongTimeLayout(prefs), names)
}

// CurrencyName returns the localized display name of a currency. Plural
// entries fall back to the singular one, then to the code itself.
func (c *Context) CurrencyName(code string, isPlural bool) string {
	if isPlural {
		if value, ok := c.lookup("currency.name." + code + ".plural"); ok {
			return value
		}
	}
	if value, ok := c.lookup("currency.name." + code + ".normal"); ok {
		return value
	}
	return code
}

// CurrencyUnitName returns the localized unit word of a currency, e.g.
// "Dollars". Falls back to the builtin unit, then the code.
func (c *Context) CurrencyUnitName(code string, isPlural bool) string {
	if isPlural {
		if value, ok := c.lookup("currency.unit." + code + ".plural"); ok {
			return value
		}
	}
	if value, ok := c.lookup("currency.unit." + code + ".normal"); ok {
		return value
	}
	if info, ok := AllCurrencies[code]; ok && info.Unit != "" {
		return info.Unit
	}
	return code
}

// currencySymbolText resolves the text a display type attaches to an amount.
func (c *Context) currencySymbolText(displayType CurrencyDisplayType, code string, isPlural bool) string {
	switch displayType.Symbol {
	case CurrencySymbolSign:
		if info, ok := CurrencyInfoByCode(code); ok && info.Symbol != "" {
			return info.Symbol
		}
		return code
	case CurrencySymbolCode:
		return code
	case CurrencySymbolUnit:
		return c.CurrencyUnitName(code, isPlural)
	case CurrencySymbolName:
		return c.CurrencyName(code, isPlural)
	}
	return ""
}

// FormatAmountWithCurrency formats a raw minor-units amount string and
// decorates it per the resolved currency display type. Unparseable values are
// returned unchanged. An empty currency code uses the resolved default; the
// parent-account placeholder renders undecorated.
func (c *Context) FormatAmountWithCurrency(value, currencyCode string, prefs UserPreferences) string {
	// 100 minor units is exactly one major unit, the only singular case.
	isPlural := value != "100" && value != "-100"

	formatted, err := FormatAmountValue(value, c.NumberFormatOptions(prefs))
	if err != nil {
		return value
	}

	if currencyCode == ParentAccountCurrencyPlaceholder {
		return formatted
	}
	if currencyCode == "" {
		currencyCode = c.CurrentDefaultCurrency(prefs)
	}

	displayType := c.CurrentCurrencyDisplayType(prefs)
	return AppendCurrencySymbol(formatted, displayType, c.currencySymbolText(displayType, currencyCode, isPlural))
}
