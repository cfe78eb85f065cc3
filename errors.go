package ledgerfmt

import "errors"

// ErrInvalidAmount indicates a numeral string that cannot be parsed back into
// minor units.
var ErrInvalidAmount = errors.New("ledgerfmt: invalid amount")

// ErrNoLanguages indicates an empty or missing language table.
var ErrNoLanguages = errors.New("ledgerfmt: no languages configured")

// ErrUnknownTimezone indicates a timezone name the host cannot load.
var ErrUnknownTimezone = errors.New("ledgerfmt: unknown timezone")
