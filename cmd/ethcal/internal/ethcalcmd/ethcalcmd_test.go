package ethcalcmd

import (
	"testing"
	"time"

	"github.com/SebastiaanKlippert/go-ethcal"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/stretchr/testify/require"
)

func TestParseGregorian(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("EAT", 3*60*60)

	got, hasTime, err := ParseGregorian("2024-01-01", loc)
	require.NoError(t, err)
	require.False(t, hasTime)
	require.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)))

	got, hasTime, err = ParseGregorian("2024-01-01T14:30:45.5+03:00", loc)
	require.NoError(t, err)
	require.True(t, hasTime)
	require.True(t, got.Equal(time.Date(2024, 1, 1, 14, 30, 45, 500000000, loc)))

	_, _, err = ParseGregorian("01/01/2024", loc)
	require.Error(t, err)
}

func TestEthiopianResult(t *testing.T) {
	t.Parallel()
	gregorian := time.Date(2024, 1, 1, 14, 30, 45, 0, time.UTC)
	ts, err := ethcal.ToEthiopianTimestamp(gregorian)
	require.NoError(t, err)

	require.Equal(t, cliio.Result{
		Input:     "2024-01-01T14:30:45Z",
		Ethiopian: "2016-04-23",
		Gregorian: "2024-01-01",
		Output:    "2016-04-23",
	}, EthiopianResult("2024-01-01T14:30:45Z", gregorian, ts, false))

	require.Equal(t, cliio.Result{
		Input:     "2024-01-01T14:30:45Z",
		Ethiopian: "2016-04-23 14:30:45",
		Gregorian: "2024-01-01T14:30:45Z",
		Output:    "2016-04-23 14:30:45",
	}, EthiopianResult("2024-01-01T14:30:45Z", gregorian, ts, true))
}

func TestParseFlags(t *testing.T) {
	t.Parallel()
	format, err := ParseFormat("yaml")
	require.NoError(t, err)
	require.Equal(t, cliio.FormatYAML, format)
	_, err = ParseFormat("xml")
	require.Error(t, err)

	loc, err := LoadLocation("UTC")
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
	_, err = LoadLocation("Nowhere/Special")
	require.Error(t, err)
}

func TestConversionError(t *testing.T) {
	t.Parallel()
	_, err := ethcal.ParseDate("2016-14-01")
	wrapped := ConversionError("2016-14-01", err)
	require.ErrorIs(t, wrapped, ethcal.ErrValidation)
	require.EqualError(t, wrapped, `convert "2016-14-01": invalid Ethiopian month: 14 (must be 1-13)`)
}
