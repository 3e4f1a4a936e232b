package ethcal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrEOF           = fmt.Errorf("EOF")                    // Returned when on end of input (after the last record)
	ErrBOF           = fmt.Errorf("BOF")                    // Returned when the record pointer is attempted to be moved before the first record
	ErrInvalidRecord = fmt.Errorf("Invalid record pos")     // Returned when an invalid record number is used (<0 or >=NumRecords)
	ErrGregorian     = fmt.Errorf("invalid Gregorian date") // Matched by record errors for unparseable Gregorian input
)

// Direction selects which calendar the input of a Reader is in
type Direction int

const (
	ToEthiopian   Direction = iota // Input is Gregorian, YYYY-MM-DD or an RFC 3339 timestamp
	FromEthiopian                  // Input is Ethiopian date text YYYY-MM-DD
)

func (d Direction) String() string {
	switch d {
	case ToEthiopian:
		return "to-ethiopian"
	case FromEthiopian:
		return "from-ethiopian"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Reader converts a list of dates, one per line, and gives access to the results
// through a record pointer. Blank lines are skipped.
// A Reader is not safe for concurrent use.
type Reader struct {
	lines []inputLine
	dec   Decoder
	dir   Direction
	conv  *Converter

	recpointer int // internal record pointer, can be moved using Skip() and GoTo()
}

type inputLine struct {
	num int
	raw []byte
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithDecoder sets the Decoder applied to every line (default UTF8Decoder)
func WithDecoder(dec Decoder) ReaderOption {
	return func(r *Reader) {
		if dec != nil {
			r.dec = dec
		}
	}
}

// WithDirection sets the calendar of the input (default ToEthiopian)
func WithDirection(dir Direction) ReaderOption {
	return func(r *Reader) {
		r.dir = dir
	}
}

// WithConverter sets the Converter used, its location applies to FromEthiopian results
func WithConverter(conv *Converter) ReaderOption {
	return func(r *Reader) {
		if conv != nil {
			r.conv = conv
		}
	}
}

// Record is the conversion result of one input line.
// A failed conversion is kept in Err, it does not stop the reader.
type Record struct {
	Line      int    // 1-based line number in the input
	Input     string // The decoded input line
	Output    string // The converted value as text, empty when Err is set
	Ethiopian Timestamp
	Gregorian time.Time
	Err       error
}

// Opens a file with one date per line.
// The file is read completely and closed before returning.
func OpenFile(filename string, opts ...ReaderOption) (*Reader, error) {
	f, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}
	r, err := OpenStream(f, opts...)
	if cerr := f.Close(); err == nil && cerr != nil {
		return nil, fmt.Errorf("Error closing %s: %s", filename, cerr)
	}
	return r, err
}

// Reads all lines from in, conversion happens when a record is requested
func OpenStream(in io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		dec:  new(UTF8Decoder),
		dir:  ToEthiopian,
		conv: defaultConverter,
	}
	for _, opt := range opts {
		opt(r)
	}

	scanner := bufio.NewScanner(in)
	num := 0
	for scanner.Scan() {
		num++
		raw := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		// the scanner reuses its buffer
		r.lines = append(r.lines, inputLine{num: num, raw: append([]byte(nil), raw...)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Returns the number of records
func (r *Reader) NumRecords() int {
	return len(r.lines)
}

// Sets internal record pointer to record recno (zero based).
// Returns ErrEOF if at EOF and positions the pointer at lastRec+1.
func (r *Reader) GoTo(recno int) error {
	if recno < 0 {
		return ErrInvalidRecord
	}
	if recno > len(r.lines)-1 {
		r.recpointer = len(r.lines)
		return ErrEOF
	}
	r.recpointer = recno
	return nil
}

// Adds offset to the internal record pointer.
// Returns ErrEOF if at EOF and positions the pointer at lastRec+1.
// Returns ErrBOF is recpointer would be become negative and positions the pointer at 0.
func (r *Reader) Skip(offset int) error {
	newval := r.recpointer + offset
	if newval > len(r.lines)-1 {
		r.recpointer = len(r.lines)
		return ErrEOF
	}
	if newval < 0 {
		r.recpointer = 0
		return ErrBOF
	}
	r.recpointer = newval
	return nil
}

// Returns if the internal recordpointer is at EoF
func (r *Reader) EOF() bool {
	return r.recpointer > len(r.lines)-1
}

// Returns if the internal recordpointer is at BoF (first record)
func (r *Reader) BOF() bool {
	return r.recpointer == 0
}

// Converts the record the internal record pointer is pointing to
func (r *Reader) Record() (*Record, error) {
	return r.RecordAt(r.recpointer)
}

// Converts record number nrec
func (r *Reader) RecordAt(nrec int) (*Record, error) {
	if nrec < 0 {
		return nil, ErrInvalidRecord
	}
	if nrec > len(r.lines)-1 {
		return nil, ErrEOF
	}
	return r.convert(r.lines[nrec]), nil
}

// Converts the record at the record pointer and moves the pointer to the next record.
// Returns ErrEOF after the last record.
func (r *Reader) Next() (*Record, error) {
	rec, err := r.Record()
	if err != nil {
		return nil, err
	}
	r.recpointer++
	return rec, nil
}

// Converts all records, independent of the record pointer
func (r *Reader) Records() []*Record {
	recs := make([]*Record, len(r.lines))
	for i, l := range r.lines {
		recs[i] = r.convert(l)
	}
	return recs
}

func (r *Reader) convert(l inputLine) *Record {
	rec := &Record{Line: l.num}

	data, err := r.dec.Decode(l.raw)
	if err != nil {
		rec.Input = string(l.raw)
		rec.Err = fmt.Errorf("line %d: %w", l.num, err)
		return rec
	}
	rec.Input = strings.TrimSpace(string(data))

	switch r.dir {
	case FromEthiopian:
		t, err := r.conv.FromDate(rec.Input)
		if err != nil {
			rec.Err = err
			return rec
		}
		ts, err := r.conv.Timestamp(t)
		if err != nil {
			rec.Err = err
			return rec
		}
		rec.Gregorian = t
		rec.Ethiopian = ts
		rec.Output = t.Format("2006-01-02")
	default:
		t, withTime, err := parseGregorian(rec.Input)
		if err != nil {
			rec.Err = err
			return rec
		}
		ts, err := r.conv.Timestamp(t)
		if err != nil {
			rec.Err = err
			return rec
		}
		rec.Gregorian = t
		rec.Ethiopian = ts
		if withTime {
			rec.Output = ts.String()
		} else {
			rec.Output = ts.Date.String()
		}
	}
	return rec
}

// parseGregorian accepts an RFC 3339 timestamp or a YYYY-MM-DD date (midnight UTC)
// and reports if a time of day was given.
func parseGregorian(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: %q (expected YYYY-MM-DD or RFC 3339)", ErrGregorian, s)
}
