// Package ethcal converts dates between the proleptic Gregorian calendar and the Ethiopian calendar.
//
// The Ethiopian calendar has 12 months of 30 days followed by Pagumē, a 13th month of
// 5 days, or 6 days in leap years (year%4 == 3). Both calendars are mapped onto Julian
// day numbers (see package jd), which is the only form dates pass through between them.
//
// All functions are pure and safe for concurrent use.
package ethcal

import (
	"time"

	"github.com/SebastiaanKlippert/go-ethcal/jd"
)

// Epoch is the Julian day number of Ethiopian 0001-01-01.
// It is the only constant both conversion directions share.
const Epoch = 1724220

// MaxYear is the last Ethiopian year accepted. It keeps every Julian day number
// and Gregorian year within a 32-bit int.
const MaxYear = 999999

const (
	daysPerYear  = 365
	daysPerEra   = 4*daysPerYear + 1 // three common years and one leap year
	daysPerMonth = 30
	months       = 13

	// Eras are counted from a virtual year 0 so the leap year (year%4 == 3) closes every era.
	eraOrigin = Epoch - daysPerYear

	// MaxYear is a leap year, so its last day closes an era
	maxJDN = eraOrigin + (MaxYear/4+1)*daysPerEra - 1
)

// Date is a date in the Ethiopian calendar
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsLeapYear reports if Pagumē has 6 days in year.
func IsLeapYear(year int) bool {
	return year%4 == 3
}

// DaysInMonth returns the number of days in month of year, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	switch {
	case month < 1 || month > months:
		return 0
	case month < months:
		return daysPerMonth
	case IsLeapYear(year):
		return 6
	default:
		return 5
	}
}

// Validate checks year, month and day against the Ethiopian calendar and returns
// a *ValidationError for the first field that is out of range.
func Validate(year, month, day int) error {
	if year < 1 {
		return &ValidationError{Field: FieldYear, Value: year, Min: 1}
	}
	if year > MaxYear {
		return &ValidationError{Field: FieldYear, Value: year, Min: 1, Max: MaxYear}
	}
	if month < 1 || month > months {
		return &ValidationError{Field: FieldMonth, Value: month, Min: 1, Max: months}
	}
	if day < 1 {
		return &ValidationError{Field: FieldDay, Value: day, Min: 1, Month: month}
	}
	if maxDay := DaysInMonth(year, month); day > maxDay {
		verr := &ValidationError{Field: FieldDay, Value: day, Min: 1, Max: maxDay, Month: month}
		if month == months {
			verr.Year = year
		}
		return verr
	}
	return nil
}

// Validate checks the date, see Validate
func (d Date) Validate() error {
	return Validate(d.Year, d.Month, d.Day)
}

// IsValid reports whether the date exists in the Ethiopian calendar
func (d Date) IsValid() bool {
	return d.Validate() == nil
}

// JDN returns the Julian day number of the date.
// Invalid dates return a *ValidationError.
func (d Date) JDN() (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	era := d.Year / 4
	yearOfEra := d.Year % 4
	dayOfYear := (d.Month-1)*daysPerMonth + d.Day - 1
	return eraOrigin + era*daysPerEra + yearOfEra*daysPerYear + dayOfYear, nil
}

// FromJDN returns the Ethiopian date for a Julian day number.
// Day numbers before Epoch or after the last day of MaxYear return a *RangeError.
func FromJDN(jdn int) (Date, error) {
	if jdn < Epoch || jdn > maxJDN {
		return Date{}, &RangeError{JDN: jdn}
	}
	days := jdn - eraOrigin
	era := days / daysPerEra
	yearOfEra := (days % daysPerEra) / daysPerYear
	dayOfYear := (days % daysPerEra) % daysPerYear
	// the last day of an era is day 366 of its leap year, not the start of a fifth year
	if yearOfEra == 4 {
		yearOfEra = 3
		dayOfYear = daysPerYear
	}

	d := Date{Year: 4*era + yearOfEra}
	if dayOfYear < 12*daysPerMonth {
		d.Month = dayOfYear/daysPerMonth + 1
		d.Day = dayOfYear%daysPerMonth + 1
		return d, nil
	}
	d.Month = months
	d.Day = dayOfYear - 12*daysPerMonth + 1
	if maxDay := DaysInMonth(d.Year, months); d.Day > maxDay {
		d.Day = maxDay
	}
	return d, nil
}

// FromTime returns the Ethiopian date of the calendar day of t in its own location.
func FromTime(t time.Time) (Date, error) {
	return FromJDN(jd.FromTime(t))
}

// Gregorian returns midnight of the matching Gregorian day in loc (UTC when nil).
func (d Date) Gregorian(loc *time.Location) (time.Time, error) {
	n, err := d.JDN()
	if err != nil {
		return time.Time{}, err
	}
	return jd.ToTime(n, loc), nil
}
