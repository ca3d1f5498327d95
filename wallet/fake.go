package wallet

import (
	"math/rand"

	"github.com/ethereum/go-ethereum/crypto"
)

// FakeWallet returns the n-th fake wallet. The same n always yields the same
// key, so fake wallets are for fake networks and tests only.
func FakeWallet(n int) *Wallet {
	reader := rand.New(rand.NewSource(int64(n)))

	seed := make([]byte, 32)
	for {
		reader.Read(seed)
		// Out of range scalars are astronomically rare; draw again.
		if key, err := crypto.ToECDSA(seed); err == nil {
			return FromPrivateKey(key)
		}
	}
}
