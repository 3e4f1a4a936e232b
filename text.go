package ethcal

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseDate parses Ethiopian date text in the form YYYY-MM-DD.
//
// The year may have any number of digits, month and day one or two. Input is
// NFKC folded first so full-width digits and hyphens are accepted, and surrounding
// whitespace is ignored. Text with the wrong shape returns a *FormatError, a well
// formed date that does not exist returns the *ValidationError of Validate.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(norm.NFKC.String(s)), "-")
	if len(parts) != 3 {
		return Date{}, &FormatError{Input: s}
	}
	var fields [3]int
	for i, part := range parts {
		// month and day are capped at two digits, otherwise "23-04-2016" would be
		// well formed and fail validation instead of being rejected as a format
		if !isDigits(part) || (i > 0 && len(part) > 2) {
			return Date{}, &FormatError{Input: s}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			// only overflow gets here
			return Date{}, &FormatError{Input: s}
		}
		fields[i] = n
	}
	d := Date{Year: fields[0], Month: fields[1], Day: fields[2]}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// FormatDate renders year, month and day as YYYY-MM-DD with at least four year digits.
// The values are not validated.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	return FormatDate(d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler, invalid dates are refused.
func (d Date) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDate.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
