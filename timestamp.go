package ethcal

import (
	"fmt"
	"time"
)

// TimeOfDay is the clock part of a timestamp. Conversions never look at it.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the clock part of t in its own location
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

func (c TimeOfDay) String() string {
	if c.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", c.Hour, c.Minute, c.Second, c.Nanosecond)
}

// Timestamp is an Ethiopian calendar date with a time of day.
// Location is the location of the Gregorian time it was converted from, it is
// only kept so Gregorian can rebuild that exact time.
type Timestamp struct {
	Date      Date
	TimeOfDay TimeOfDay
	Location  *time.Location
}

// String returns the timestamp as YYYY-MM-DD HH:MM:SS with a nanosecond fraction when set
func (ts Timestamp) String() string {
	return ts.Date.String() + " " + ts.TimeOfDay.String()
}

// Gregorian converts the timestamp back to a Gregorian time with the same time of day.
func (ts Timestamp) Gregorian() (time.Time, error) {
	day, err := ts.Date.Gregorian(ts.Location)
	if err != nil {
		return time.Time{}, err
	}
	c := ts.TimeOfDay
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, c.Second, c.Nanosecond, day.Location()), nil
}

// ToEthiopianTimestamp converts the date of t to the Ethiopian calendar and keeps
// its time of day and location unchanged.
func ToEthiopianTimestamp(t time.Time) (Timestamp, error) {
	d, err := FromTime(t)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Date: d, TimeOfDay: TimeOfDayOf(t), Location: t.Location()}, nil
}

// ToEthiopianDateText converts the date of t and returns it as YYYY-MM-DD, the time is dropped.
func ToEthiopianDateText(t time.Time) (string, error) {
	d, err := FromTime(t)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// FromEthiopianDateText parses Ethiopian date text and returns midnight of the
// matching Gregorian day in loc, UTC when loc is nil.
func FromEthiopianDateText(s string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Gregorian(loc)
}
