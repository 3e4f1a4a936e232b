// Package jd converts between proleptic Gregorian dates and Julian day numbers.
//
// All arithmetic is integer arithmetic with floor division, so the functions are
// exact for every date, including dates before the common era.
package jd

import "time"

// YMD2J converts a proleptic Gregorian year, month and day to a Julian day number.
// The triple is not validated, an invalid date such as 2023-02-30 yields the
// number the formula produces for it (here the same as 2023-03-02).
// jd.YMD2J(2006, 1, 2) == 2453738 //=> true
func YMD2J(year, month, day int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// J2YMD converts a Julian day number to a year, month and day
// y, m, d := jd.J2YMD(2453738);
// y==2006 && m==1 && d==2 //=> true
func J2YMD(jdn int) (int, int, int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day := e - floorDiv(153*m+2, 5) + 1
	month := m + 3 - 12*floorDiv(m, 10)
	year := 100*b + d - 4800 + floorDiv(m, 10)
	return year, month, day
}

// FromTime returns the Julian day number of the calendar date of t in its own location.
// The clock time is ignored.
func FromTime(t time.Time) int {
	y, m, d := t.Date()
	return YMD2J(y, int(m), d)
}

// ToTime returns midnight of the Gregorian date for jdn in loc, UTC when loc is nil.
func ToTime(jdn int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := J2YMD(jdn)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// floorDiv divides rounding towards negative infinity, Go's / truncates towards zero
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
