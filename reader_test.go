package ethcal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReaderToEthiopian(t *testing.T) {
	t.Parallel()
	r, err := OpenFile("./testdata/gregorian.txt")
	require.NoError(t, err)
	require.Equal(t, 5, r.NumRecords())
	require.True(t, r.BOF())

	var recs []*Record
	for {
		rec, err := r.Next()
		if err == ErrEOF {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	require.True(t, r.EOF())
	require.Len(t, recs, 5)

	require.Equal(t, 1, recs[0].Line)
	require.Equal(t, "2016-04-23", recs[0].Output)
	require.NoError(t, recs[0].Err)

	require.Equal(t, 3, recs[1].Line)
	require.Equal(t, "2016-04-23 14:30:45", recs[1].Output)
	require.True(t, recs[1].Gregorian.Equal(time.Date(2024, 1, 1, 14, 30, 45, 0, time.UTC)))

	require.Equal(t, "not a date", recs[2].Input)
	require.ErrorIs(t, recs[2].Err, ErrGregorian)
	require.Empty(t, recs[2].Output)

	require.ErrorIs(t, recs[3].Err, ErrRange)

	// the offset of the input is kept, the date is the local one
	require.Equal(t, 6, recs[4].Line)
	require.Equal(t, "2016-01-01 08:00:00", recs[4].Output)
	back, err := recs[4].Ethiopian.Gregorian()
	require.NoError(t, err)
	require.True(t, back.Equal(recs[4].Gregorian))
}

func TestReaderFromEthiopian(t *testing.T) {
	t.Parallel()
	dec, err := NewDecoder("windows-1252")
	require.NoError(t, err)
	r, err := OpenFile("./testdata/ethiopian-1252.txt", WithDirection(FromEthiopian), WithDecoder(dec))
	require.NoError(t, err)

	recs := r.Records()
	require.Len(t, recs, 4)
	require.Equal(t, "2024-01-01", recs[0].Output)
	require.Equal(t, Date{2016, 4, 23}, recs[0].Ethiopian.Date)
	require.ErrorIs(t, recs[1].Err, ErrValidation)
	require.ErrorIs(t, recs[2].Err, ErrFormat)
	require.Equal(t, "2023-09-10", recs[3].Output)
	require.Equal(t, "2015-13-06", recs[3].Input)
}

func TestReaderFromEthiopianBounds(t *testing.T) {
	t.Parallel()
	r, err := OpenStream(strings.NewReader("999999-13-06\n1000000-01-01\n"), WithDirection(FromEthiopian))
	require.NoError(t, err)

	recs := r.Records()
	require.Len(t, recs, 2)
	require.NoError(t, recs[0].Err)
	require.Equal(t, Date{MaxYear, 13, 6}, recs[0].Ethiopian.Date)
	require.Equal(t, TimeOfDay{}, recs[0].Ethiopian.TimeOfDay)
	back, err := recs[0].Ethiopian.Gregorian()
	require.NoError(t, err)
	require.True(t, back.Equal(recs[0].Gregorian))

	require.ErrorIs(t, recs[1].Err, ErrValidation)
	require.Empty(t, recs[1].Output)
	require.Equal(t, Timestamp{}, recs[1].Ethiopian)
	require.True(t, recs[1].Gregorian.IsZero())
}

func TestReaderPointer(t *testing.T) {
	t.Parallel()
	r, err := OpenStream(strings.NewReader("2016-01-01\n2016-01-02\n2016-01-03\n"), WithDirection(FromEthiopian))
	require.NoError(t, err)

	require.NoError(t, r.GoTo(2))
	rec, err := r.Record()
	require.NoError(t, err)
	require.Equal(t, "2023-09-13", rec.Output)

	require.Equal(t, ErrBOF, r.Skip(-5))
	require.True(t, r.BOF())
	require.NoError(t, r.Skip(1))
	rec, err = r.Record()
	require.NoError(t, err)
	require.Equal(t, "2023-09-12", rec.Output)

	require.Equal(t, ErrEOF, r.Skip(5))
	require.True(t, r.EOF())
	_, err = r.Record()
	require.Equal(t, ErrEOF, err)

	require.Equal(t, ErrEOF, r.GoTo(3))
	require.Equal(t, ErrInvalidRecord, r.GoTo(-1))
	_, err = r.RecordAt(-1)
	require.Equal(t, ErrInvalidRecord, err)
	rec, err = r.RecordAt(0)
	require.NoError(t, err)
	require.Equal(t, "2023-09-11", rec.Output)
}

func TestReaderConverterLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("EAT", 3*60*60)
	r, err := OpenStream(
		strings.NewReader("2016-04-23\n"),
		WithDirection(FromEthiopian),
		WithConverter(NewConverter(WithLocation(loc))),
	)
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), rec.Gregorian)
	require.Equal(t, loc, rec.Ethiopian.Location)
}

func TestOpenFileMissing(t *testing.T) {
	t.Parallel()
	_, err := OpenFile("./testdata/does-not-exist.txt")
	require.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "to-ethiopian", ToEthiopian.String())
	require.Equal(t, "from-ethiopian", FromEthiopian.String())
	require.Equal(t, "Direction(7)", Direction(7).String())
}
