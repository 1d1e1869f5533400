package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	require.Equal(t, "10661.85", Round2(decimal.RequireFromString("10661.8547")).StringFixed(2))
	require.Equal(t, "10661.86", Round2(decimal.RequireFromString("10661.855")).StringFixed(2))
	require.Equal(t, "-2.35", Round2(decimal.RequireFromString("-2.345")).StringFixed(2))
}

func TestIsSettled(t *testing.T) {
	require.True(t, IsSettled(decimal.Zero))
	require.True(t, IsSettled(decimal.RequireFromString("0.01")))
	require.True(t, IsSettled(decimal.RequireFromString("-0.50")))
	require.False(t, IsSettled(decimal.RequireFromString("0.02")))
}

func TestMin(t *testing.T) {
	a := decimal.NewFromInt(3)
	b := decimal.NewFromInt(7)
	require.True(t, Min(a, b).Equal(a))
	require.True(t, Min(b, a).Equal(a))
	require.True(t, Min(a, a).Equal(a))
}
