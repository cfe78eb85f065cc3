package ledgerfmt

import "regexp"

// Server error codes with dedicated localization handling.
const (
	apiNotFoundErrorCode = 100001
	validatorErrorCode   = 200000
)

// AppError is the error envelope of a failed server response.
type AppError struct {
	ErrorCode    int
	ErrorMessage string
	Path         string
}

// LocalizedErrorParameter is one extracted template parameter. Localized
// parameters are themselves translated under parameter.* before
// substitution.
type LocalizedErrorParameter struct {
	Key       string
	Localized bool
	Value     string
}

// LocalizedError is a server error mapped onto a translation key plus its
// extracted parameters.
type LocalizedError struct {
	MessageKey string
	Parameters []LocalizedErrorParameter
}

type errorParameter struct {
	field     string
	localized bool
}

type parameterizedError struct {
	pattern    *regexp.Regexp
	localeKey  string
	parameters []errorParameter
}

// parameterizedErrors maps validator messages onto translation templates.
// Order matters: the first pattern whose captures line up with the declared
// parameters wins.
var parameterizedErrors = []parameterizedError{
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is invalid$`),
		localeKey:  "parameter invalid",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is required$`),
		localeKey:  "parameter required",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" must be less than (\d+) characters$`),
		localeKey:  "parameter too long",
		parameters: []errorParameter{{field: "parameter", localized: true}, {field: "length"}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" must be more than (\d+) characters$`),
		localeKey:  "parameter too short",
		parameters: []errorParameter{{field: "parameter", localized: true}, {field: "length"}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" must be less than (\d+)$`),
		localeKey:  "parameter too large",
		parameters: []errorParameter{{field: "parameter", localized: true}, {field: "number"}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" must be more than (\d+)$`),
		localeKey:  "parameter too small",
		parameters: []errorParameter{{field: "parameter", localized: true}, {field: "number"}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" length is not equal to (\d+)$`),
		localeKey:  "parameter length not equal",
		parameters: []errorParameter{{field: "parameter", localized: true}, {field: "length"}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" cannot be blank$`),
		localeKey:  "parameter cannot be blank",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is invalid username format$`),
		localeKey:  "parameter invalid username format",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is invalid email format$`),
		localeKey:  "parameter invalid email format",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is invalid currency$`),
		localeKey:  "parameter invalid currency",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
	{
		pattern:    regexp.MustCompile(`^parameter "(\w+)" is invalid color$`),
		localeKey:  "parameter invalid color",
		parameters: []errorParameter{{field: "parameter", localized: true}},
	},
}

// specifiedNotFoundErrors overrides the message for not-found responses from
// known endpoints.
var specifiedNotFoundErrors = map[string]string{
	"/api/register.json": "User registration is disabled",
}

// LocalizeError maps a server error onto its translation key. Validator
// messages are matched against the parameterized templates in declaration
// order; everything else becomes an error.* key.
func LocalizeError(appError AppError) LocalizedError {
	if appError.ErrorCode == apiNotFoundErrorCode {
		if message, ok := specifiedNotFoundErrors[appError.Path]; ok {
			return LocalizedError{MessageKey: message}
		}
	}

	if appError.ErrorCode != validatorErrorCode {
		return LocalizedError{MessageKey: "error." + appError.ErrorMessage}
	}

	for _, template := range parameterizedErrors {
		matches := template.pattern.FindStringSubmatch(appError.ErrorMessage)
		if matches == nil || len(matches) != len(template.parameters)+1 {
			continue
		}

		parameters := make([]LocalizedErrorParameter, len(template.parameters))
		for i, parameter := range template.parameters {
			parameters[i] = LocalizedErrorParameter{
				Key:       parameter.field,
				Localized: parameter.localized,
				Value:     matches[i+1],
			}
		}
		return LocalizedError{
			MessageKey: "parameterizedError." + template.localeKey,
			Parameters: parameters,
		}
	}

	return LocalizedError{MessageKey: "error." + appError.ErrorMessage}
}

// TranslateError renders a server error in the active language, translating
// localized parameters under their parameter.* keys first.
func (c *Context) TranslateError(appError AppError) string {
	localized := LocalizeError(appError)

	var params map[string]string
	if len(localized.Parameters) > 0 {
		params = make(map[string]string, len(localized.Parameters))
		for _, parameter := range localized.Parameters {
			if parameter.Localized {
				params[parameter.Key] = c.Translate("parameter." + parameter.Value)
			} else {
				params[parameter.Key] = parameter.Value
			}
		}
	}
	return c.TranslateWithParams(localized.MessageKey, params)
}
