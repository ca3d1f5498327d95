package chain

import (
	"fmt"

	"github.com/rony4d/go-kred/kred"
)

// Split is the outcome of dividing one block reward.
type Split struct {
	Faucet  uint64 // paid to the faucet
	Founder uint64 // paid to each founder
	Dropped uint64 // rounding loss, paid to nobody
}

// SplitReward divides reward between the faucet and founders founders:
// the faucet takes kred.FaucetSharePercent, the founders share the rest
// evenly. Both divisions truncate and the remainder of the founder division
// is not issued. A founder count below one yields a *kred.ConfigurationError.
func SplitReward(reward uint64, founders int) (Split, error) {
	if founders <= 0 {
		return Split{}, &kred.ConfigurationError{
			Field:  "Economy.Distribution.Founders",
			Reason: fmt.Sprintf("cannot split a reward between %d founders", founders),
		}
	}
	// Equal to reward*pct/100 without overflowing on large rewards.
	faucet := reward/100*kred.FaucetSharePercent + reward%100*kred.FaucetSharePercent/100
	leftover := reward - faucet
	each := leftover / uint64(founders)
	return Split{
		Faucet:  faucet,
		Founder: each,
		Dropped: leftover - each*uint64(founders),
	}, nil
}
