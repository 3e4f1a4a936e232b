package ethcal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestUTF8Decoder_Decode(t *testing.T) {
	dec := new(UTF8Decoder)
	in := []byte("２０１６－０４－２３")
	b, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("error in decode: %s", err)
	}
	if bytes.Equal(in, b) == false {
		t.Errorf("Want %s, have %s", string(in), string(b))
	}
	if _, err := dec.Decode([]byte{0xff, 0xfe}); err == nil {
		t.Error("Want error for invalid UTF-8")
	}
}

func TestCharmapDecoder_Decode(t *testing.T) {
	dec := &CharmapDecoder{Encoding: charmap.Windows1250}
	in := []byte{0xC4, 0xF5}
	b, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("error in decode: %s", err)
	}
	want := "Äő"
	if string(b) != want {
		t.Errorf("Want %s, have %s", want, string(b))
	}
}

func TestNewDecoder(t *testing.T) {
	t.Parallel()
	dec, err := NewDecoder("UTF-8")
	require.NoError(t, err)
	require.IsType(t, new(UTF8Decoder), dec)

	dec, err = NewDecoder("windows-1250")
	require.NoError(t, err)
	b, err := dec.Decode([]byte{0xC4, 0xF5})
	require.NoError(t, err)
	require.Equal(t, "Äő", string(b))

	_, err = NewDecoder("no-such-charset")
	require.Error(t, err)
}

func TestParseDateBytes(t *testing.T) {
	t.Parallel()
	// a non-breaking space (0xA0 in windows-1252) around the date
	in := append(append([]byte{0xA0}, "2016-04-23"...), 0xA0)
	dec, err := NewDecoder("windows-1252")
	require.NoError(t, err)
	d, err := ParseDateBytes(in, dec)
	require.NoError(t, err)
	require.Equal(t, Date{2016, 4, 23}, d)

	_, err = ParseDateBytes(in, nil)
	require.ErrorIs(t, err, ErrFormat)

	d, err = ParseDateBytes([]byte("2015-13-06"), nil)
	require.NoError(t, err)
	require.Equal(t, Date{2015, 13, 6}, d)
}
