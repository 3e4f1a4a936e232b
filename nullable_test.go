package ethcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNilPropagation(t *testing.T) {
	t.Parallel()
	s, err := ToEthiopianDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, s)
	s, err = GregorianToEthiopianDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, s)

	ts, err := ToEthiopianDatetimePtr(nil)
	require.NoError(t, err)
	require.Nil(t, ts)
	ts, err = GregorianToEthiopianTimestampPtr(nil)
	require.NoError(t, err)
	require.Nil(t, ts)

	g, err := FromEthiopianDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, g)
	g, err = EthiopianToGregorianDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, g)
}

func TestPtrValues(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, 1, 1, 14, 30, 45, 0, time.UTC)

	s, err := ToEthiopianDatePtr(&in)
	require.NoError(t, err)
	require.Equal(t, "2016-04-23", StringValue(s))

	ts, err := GregorianToEthiopianTimestampPtr(&in)
	require.NoError(t, err)
	require.Equal(t, "2016-04-23 14:30:45", ts.String())

	g, err := EthiopianToGregorianDatePtr(s)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TimeValue(g))

	bad := "2016-14-01"
	g, err = FromEthiopianDatePtr(&bad)
	require.ErrorIs(t, err, ErrValidation)
	require.Nil(t, g)

	early := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err = ToEthiopianDatePtr(&early)
	require.ErrorIs(t, err, ErrRange)
	require.Nil(t, s)
	ts, err = ToEthiopianDatetimePtr(&early)
	require.ErrorIs(t, err, ErrRange)
	require.Nil(t, ts)

	require.Equal(t, "", StringValue(nil))
	require.True(t, TimeValue(nil).IsZero())
}
