package kred

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatKred(t *testing.T) {
	tests := []struct {
		koin uint64
		want string
	}{
		{0, "0."},
		{1, "0.00000001"},
		{12345, "0.00012345"},
		{BlockRewardKoin, "42."},
		{3360000000, "33.6"},
		{420000000, "4.2"},
		{280333333, "2.80333333"},
		{KoinPerKred + 50000000, "1.5"},
		{KoinPerKred, "1."},
		{10 * KoinPerKred, "10."},
		{MaxSupplyKoin, "2100000000."},
	}
	for _, test := range tests {
		require.Equal(t, test.want, FormatKred(test.koin), "koin=%d", test.koin)
	}
}

func TestHalvingInterval(t *testing.T) {
	require.Equal(t, uint64(25228800), HalvingIntervalBlocks)
}
