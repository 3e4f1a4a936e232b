// Package ethcalcmd holds the flag names and helpers shared by the ethcal commands.
package ethcalcmd

import (
	"fmt"
	"time"

	"buf.build/go/app/appcmd"
	"github.com/SebastiaanKlippert/go-ethcal"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
)

const (
	// DateFlagName is the flag name for the date to convert.
	DateFlagName = "date"
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// LocationFlagName is the flag name for the time zone dates are interpreted in.
	LocationFlagName = "location"
	// TimeFlagName is the flag name for keeping the time of day.
	TimeFlagName = "time"
)

// DefaultFormat is the default value of the format flag.
const DefaultFormat = string(cliio.FormatText)

// DefaultLocation is the default value of the location flag.
const DefaultLocation = "Local"

// ParseFormat parses the format flag, unknown formats are invalid arguments.
func ParseFormat(value string) (cliio.Format, error) {
	format, err := cliio.ParseFormat(value)
	if err != nil {
		return "", appcmd.NewInvalidArgumentError(err.Error())
	}
	return format, nil
}

// LoadLocation resolves the location flag ("Local", "UTC" or an IANA name).
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, appcmd.NewInvalidArgumentErrorf("--%s: %v", LocationFlagName, err)
	}
	return loc, nil
}

// NewConverter returns a converter in loc whose clock is read once per command.
func NewConverter(loc *time.Location) *ethcal.Converter {
	return ethcal.NewConverter(
		ethcal.WithClock(ethcal.StableClock(ethcal.SystemClock)),
		ethcal.WithLocation(loc),
	)
}

// ParseGregorian parses a Gregorian YYYY-MM-DD date (midnight in loc) or an RFC 3339 timestamp.
// It reports whether the input carried a time of day.
func ParseGregorian(value string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, appcmd.NewInvalidArgumentErrorf("--%s: invalid Gregorian date %q (expected YYYY-MM-DD or RFC 3339)", DateFlagName, value)
}

// EthiopianResult builds the result of a conversion to the Ethiopian calendar.
func EthiopianResult(input string, gregorian time.Time, ts ethcal.Timestamp, withTime bool) cliio.Result {
	result := cliio.Result{
		Input:     input,
		Ethiopian: ts.Date.String(),
		Gregorian: gregorian.Format("2006-01-02"),
	}
	if withTime {
		result.Ethiopian = ts.String()
		result.Gregorian = gregorian.Format(time.RFC3339Nano)
	}
	result.Output = result.Ethiopian
	return result
}

// ConversionError wraps a conversion error with the input it failed on.
func ConversionError(input string, err error) error {
	return fmt.Errorf("convert %q: %w", input, err)
}
