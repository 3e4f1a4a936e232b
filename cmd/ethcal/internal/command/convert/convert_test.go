package convert

import (
	"strings"
	"testing"

	"github.com/SebastiaanKlippert/go-ethcal"
	"github.com/SebastiaanKlippert/go-ethcal/internal/cliio"
	"github.com/stretchr/testify/require"
)

func TestToResult(t *testing.T) {
	t.Parallel()
	reader, err := ethcal.OpenStream(strings.NewReader("2024-01-01T14:30:45Z\nbad\n"))
	require.NoError(t, err)
	records := reader.Records()
	require.Len(t, records, 2)

	require.Equal(t, cliio.Result{
		Input:     "2024-01-01T14:30:45Z",
		Line:      1,
		Ethiopian: "2016-04-23 14:30:45",
		Gregorian: "2024-01-01T14:30:45Z",
		Output:    "2016-04-23 14:30:45",
	}, toResult(records[0], ethcal.ToEthiopian))

	failed := toResult(records[1], ethcal.ToEthiopian)
	require.Equal(t, 2, failed.Line)
	require.Contains(t, failed.Error, "invalid Gregorian date")
	require.Empty(t, failed.Ethiopian)

	reader, err = ethcal.OpenStream(strings.NewReader("2016-01-01\n"), ethcal.WithDirection(ethcal.FromEthiopian))
	require.NoError(t, err)
	require.Equal(t, cliio.Result{
		Input:     "2016-01-01",
		Line:      1,
		Ethiopian: "2016-01-01",
		Gregorian: "2023-09-11",
		Output:    "2023-09-11",
	}, toResult(reader.Records()[0], ethcal.FromEthiopian))
}
