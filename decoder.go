package ethcal

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Charset decoding of raw date input is done in this file, so input from files in
// legacy encodings can be parsed without converting them first.

// Decoder turns raw input bytes into UTF-8
type Decoder interface {
	Decode(in []byte) ([]byte, error)
}

// UTF8Decoder assumes the input is UTF-8 and passes it through
type UTF8Decoder struct{}

func (d *UTF8Decoder) Decode(in []byte) ([]byte, error) {
	if !utf8.Valid(in) {
		return nil, fmt.Errorf("input is not valid UTF-8")
	}
	return in, nil
}

// CharmapDecoder translates input in a legacy character encoding to UTF-8.
// Input that already is valid UTF-8 is passed through unchanged.
type CharmapDecoder struct {
	Encoding encoding.Encoding
}

func (d *CharmapDecoder) Decode(in []byte) ([]byte, error) {
	if utf8.Valid(in) {
		return in, nil
	}
	enc := d.Encoding
	if enc == nil {
		enc = charmap.Windows1252
	}
	r := transform.NewReader(bytes.NewReader(in), enc.NewDecoder())
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// NewDecoder returns the Decoder for a charset name as used by HTML and MIME
// (for example "utf-8", "windows-1252" or "iso-8859-1").
func NewDecoder(name string) (Decoder, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == encoding.Nop || enc == encoding.Replacement {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	if canonical, err := htmlindex.Name(enc); err == nil && canonical == "utf-8" {
		return new(UTF8Decoder), nil
	}
	return &CharmapDecoder{Encoding: enc}, nil
}

// ParseDateBytes decodes in with dec (UTF-8 when nil) and parses the result with ParseDate.
func ParseDateBytes(in []byte, dec Decoder) (Date, error) {
	if dec == nil {
		dec = new(UTF8Decoder)
	}
	data, err := dec.Decode(in)
	if err != nil {
		return Date{}, &FormatError{Input: string(in)}
	}
	return ParseDate(string(data))
}
