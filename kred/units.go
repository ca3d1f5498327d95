package kred

import (
	"strconv"
	"strings"
)

// Koin is the smallest unit; one Kred is 10^8 Koin.
const (
	KoinPerKred uint64 = 100000000

	// BlockRewardKoin is 42 Kred.
	BlockRewardKoin uint64 = 4200000000

	// MaxSupplyKoin caps issuance at 2.1 billion Kred. Ledger credits do not
	// check it; callers bounding issuance compare against it.
	MaxSupplyKoin uint64 = 2100000000 * KoinPerKred

	SecondsPerBlock uint64 = 5

	// HalvingIntervalBlocks is four years of blocks at SecondsPerBlock.
	HalvingIntervalBlocks uint64 = 4 * 365 * 24 * 60 * 60 / SecondsPerBlock
)

// FormatKred renders a Koin amount as a decimal Kred string. The fraction is
// padded to eight digits and then stripped of trailing zeros, so whole
// amounts keep a bare dot: 4200000000 -> "42.", 12345 -> "0.00012345".
func FormatKred(koin uint64) string {
	whole := koin / KoinPerKred
	fraction := koin % KoinPerKred

	frac := strconv.FormatUint(fraction, 10)
	frac = strings.Repeat("0", 8-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	return strconv.FormatUint(whole, 10) + "." + frac
}
