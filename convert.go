package ethcal

import "time"

// version of the library as reported by Version
const version = "1.0.0"

// Converter holds the clock and location used by the conversion entry points.
// The zero value is not usable, create one with NewConverter.
type Converter struct {
	clock Clock
	loc   *time.Location
}

// ConverterOption configures a Converter
type ConverterOption func(*Converter)

// WithClock sets the clock read by CurrentDate and CurrentTimestamp (default SystemClock).
// Wrap it in StableClock to have all calls observe the same instant.
func WithClock(clock Clock) ConverterOption {
	return func(c *Converter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the location of the Gregorian times returned by FromDate
// and the location "now" is read in (default UTC).
func WithLocation(loc *time.Location) ConverterOption {
	return func(c *Converter) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// NewConverter returns a Converter, by default on the system clock in UTC.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		clock: SystemClock,
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DateOnly converts the date of t to Ethiopian date text YYYY-MM-DD, the time is dropped.
func (c *Converter) DateOnly(t time.Time) (string, error) {
	return ToEthiopianDateText(t)
}

// Timestamp converts the date of t to the Ethiopian calendar and keeps the time of day.
func (c *Converter) Timestamp(t time.Time) (Timestamp, error) {
	return ToEthiopianTimestamp(t)
}

// FromDate converts Ethiopian date text to midnight of the Gregorian day in the converter's location.
func (c *Converter) FromDate(s string) (time.Time, error) {
	return FromEthiopianDateText(s, c.loc)
}

// CurrentDate returns today's Ethiopian date text
func (c *Converter) CurrentDate() (string, error) {
	return c.DateOnly(c.Now())
}

// CurrentTimestamp returns the current time with its date in the Ethiopian calendar
func (c *Converter) CurrentTimestamp() (Timestamp, error) {
	return c.Timestamp(c.Now())
}

// Now reads the converter's clock in its location
func (c *Converter) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

var defaultConverter = NewConverter()

// ToEthiopianDate converts the date of t to Ethiopian date text YYYY-MM-DD.
func ToEthiopianDate(t time.Time) (string, error) {
	return defaultConverter.DateOnly(t)
}

// GregorianToEthiopianDate is ToEthiopianDate
func GregorianToEthiopianDate(t time.Time) (string, error) {
	return ToEthiopianDate(t)
}

// ToEthiopianDatetime converts the date of t to the Ethiopian calendar and keeps the time of day.
func ToEthiopianDatetime(t time.Time) (Timestamp, error) {
	return defaultConverter.Timestamp(t)
}

// GregorianToEthiopianTimestamp is ToEthiopianDatetime
func GregorianToEthiopianTimestamp(t time.Time) (Timestamp, error) {
	return ToEthiopianDatetime(t)
}

// FromEthiopianDate converts Ethiopian date text to midnight UTC of the Gregorian day.
func FromEthiopianDate(s string) (time.Time, error) {
	return defaultConverter.FromDate(s)
}

// EthiopianToGregorianDate is FromEthiopianDate
func EthiopianToGregorianDate(s string) (time.Time, error) {
	return FromEthiopianDate(s)
}

// CurrentEthiopianDate returns today's Ethiopian date (UTC) as text.
// Every call reads the system clock, use a Converter with a StableClock
// when several calls must agree.
func CurrentEthiopianDate() (string, error) {
	return defaultConverter.CurrentDate()
}

// EthiopianToday is CurrentEthiopianDate
func EthiopianToday() (string, error) {
	return CurrentEthiopianDate()
}

// CurrentEthiopianDatetime returns the current UTC time with its date in the Ethiopian calendar.
func CurrentEthiopianDatetime() (Timestamp, error) {
	return defaultConverter.CurrentTimestamp()
}

// EthiopianNow is CurrentEthiopianDatetime
func EthiopianNow() (Timestamp, error) {
	return CurrentEthiopianDatetime()
}

// Version returns the library version
func Version() string {
	return version
}

// LibraryVersion is Version
func LibraryVersion() string {
	return Version()
}
