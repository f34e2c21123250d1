package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	for in, want := range map[string]int64{
		"10":                   10,
		" -5 ":                 -5,
		"0x10":                 16,
		"-9223372036854775808": math.MinInt64,
	} {
		v, err := ToInt64(in)
		require.NoError(t, err, in)
		require.Equal(t, want, v, in)
	}
	_, err := ToInt64("1.5")
	require.Error(t, err)
	_, err = ToInt64(1.5)
	require.Error(t, err)
	v, err := ToInt64(int8(3))
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestToUint64(t *testing.T) {
	v, err := ToUint64("18446744073709551615")
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)
	_, err = ToUint64("-1")
	require.Error(t, err)
	_, err = ToUint64("x")
	require.Error(t, err)
}

func TestToFloat(t *testing.T) {
	v, err := ToFloat("2.5e3")
	require.NoError(t, err)
	require.Equal(t, 2500.0, v)
	v, err = ToFloat("NaN")
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
	v, err = ToFloat(float32(1.5))
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "-3", FormatNumber(int8(-3)))
	require.Equal(t, "18446744073709551615", FormatNumber(uint64(math.MaxUint64)))
	require.Equal(t, "0.1", FormatNumber(0.1))
	require.Equal(t, "0.1", FormatNumber(float32(0.1)))
	require.Equal(t, "1e+21", FormatNumber(1e21))
}
