// Package ledger tracks account balances in Koin.
//
// The chain credits block rewards into a Ledger as it seals blocks; command
// output and tests read balances back through Balance, Addresses and
// Snapshot.
package ledger

import (
	"sort"
	"sync"
)

// Ledger maps an address to its balance. Balances only grow: the single
// mutation is Credit. Overflow is not checked, total supply is bounded by the
// issuance rules instead.
//
// A Ledger is safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]uint64
}

// New returns an empty ledger in which every address has a zero balance.
func New() *Ledger {
	return &Ledger{
		balances: make(map[string]uint64),
	}
}

// Credit adds amount to the balance of addr. An unknown address starts at 0,
// so crediting it creates the account. Addresses are compared as plain
// strings and are not validated here.
func (l *Ledger) Credit(addr string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[addr] += amount
}

// Balance returns the balance of addr in Koin, 0 if it was never credited.
// Use kred.FormatKred to render it for display.
func (l *Ledger) Balance(addr string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[addr]
}

// Addresses returns every credited address in lexical order, which gives
// balance listings a stable output.
func (l *Ledger) Addresses() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	addrs := make([]string, 0, len(l.balances))
	for addr := range l.balances {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// Snapshot returns a copy of all balances. Later credits do not show up in
// the copy, and changing the copy does not affect the ledger.
func (l *Ledger) Snapshot() map[string]uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cp := make(map[string]uint64, len(l.balances))
	for addr, v := range l.balances {
		cp[addr] = v
	}
	return cp
}

// Total sums every balance. With no rounding loss it equals the number of
// rewarded blocks times the block reward.
func (l *Ledger) Total() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total uint64
	for _, v := range l.balances {
		total += v
	}
	return total
}
