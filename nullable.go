package ethcal

import "time"

// This file contains the variants of the entry points for absent values: a nil
// input gives a nil result and no error, so callers holding nullable columns or
// optional fields do not have to branch around every conversion.

// ToEthiopianDatePtr is ToEthiopianDate for an optional time
func ToEthiopianDatePtr(t *time.Time) (*string, error) {
	if t == nil {
		return nil, nil
	}
	s, err := ToEthiopianDate(*t)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GregorianToEthiopianDatePtr is ToEthiopianDatePtr
func GregorianToEthiopianDatePtr(t *time.Time) (*string, error) {
	return ToEthiopianDatePtr(t)
}

// ToEthiopianDatetimePtr is ToEthiopianDatetime for an optional time
func ToEthiopianDatetimePtr(t *time.Time) (*Timestamp, error) {
	if t == nil {
		return nil, nil
	}
	ts, err := ToEthiopianDatetime(*t)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// GregorianToEthiopianTimestampPtr is ToEthiopianDatetimePtr
func GregorianToEthiopianTimestampPtr(t *time.Time) (*Timestamp, error) {
	return ToEthiopianDatetimePtr(t)
}

// FromEthiopianDatePtr is FromEthiopianDate for optional text
func FromEthiopianDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := FromEthiopianDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// EthiopianToGregorianDatePtr is FromEthiopianDatePtr
func EthiopianToGregorianDatePtr(s *string) (*time.Time, error) {
	return FromEthiopianDatePtr(s)
}

// StringValue always returns a string, "" for nil
func StringValue(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// TimeValue always returns a time.Time, the zero time for nil
func TimeValue(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Time{}
}
