package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-kred/chain"
	"github.com/rony4d/go-kred/flags"
	"github.com/rony4d/go-kred/kred"
	"github.com/rony4d/go-kred/ledger"
	"github.com/rony4d/go-kred/tx"
	"github.com/rony4d/go-kred/wallet"
)

// node carries the configuration built in the app's Before hook into the
// command actions.
type node struct {
	cfg Config
	out io.Writer
	log log.Logger
}

func newApp() (*cli.App, *node) {
	n := &node{}

	app := flags.NewApp()
	app.ErrWriter = os.Stderr
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.ChainFlags()...)
	app.Flags = append(app.Flags, flags.MiningFlags()...)

	app.Before = func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		n.cfg = cfg
		n.out = ctx.App.Writer
		setupLogging(cfg.Node.Logging, ctx.App.ErrWriter)
		n.log = log.New("node", cfg.Node.Name)
		return nil
	}
	app.Action = n.run

	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Mine --mine.blocks blocks from genesis, verify the chain and print balances (default)",
			Action: n.run,
		},
		{
			Name:   "wallet",
			Usage:  "Create a wallet, print its addresses and sign a sample transfer",
			Action: n.wallet,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key",
					Usage: "Hex private key to load instead of generating one",
				},
				cli.IntFlag{
					Name:  "fake",
					Usage: "Load the deterministic fake wallet with this index (fake networks only)",
				},
			},
		},
		{
			Name:   "fork",
			Usage:  "Mine a local chain and a longer rival, ship the rival through the block codec and apply fork choice",
			Action: n.fork,
		},
		{
			Name:   "dumpconfig",
			Usage:  "Print the effective configuration as TOML",
			Action: n.dumpConfig,
		},
	}
	return app, n
}

// Launch parses args and runs the selected command. Errors are reported
// through the error reporter before being returned.
func Launch(args []string) error {
	app, n := newApp()
	if err := app.Run(args); err != nil {
		newReporter(n.cfg.Node.SentryDSN, app.ErrWriter).WithError(err).Error("kred failed")
		return err
	}
	return nil
}

// newChain builds an empty chain under the configured rules.
func (n *node) newChain() (*chain.Blockchain, error) {
	rules, err := n.cfg.Chain.Rules()
	if err != nil {
		return nil, err
	}
	bc, err := chain.New(rules)
	if err != nil {
		return nil, err
	}
	bc.SetLogger(n.log.New("module", "chain", "network", rules.Name))
	return bc, nil
}

// miner is the configured miner address, or the session wallet's.
func (n *node) miner(session *wallet.Wallet) string {
	if n.cfg.Mining.Miner != "" {
		return n.cfg.Mining.Miner
	}
	return session.Address()
}

// payload returns the items of the next block: the configured data, or a
// signed transfer of one Kred from the session wallet to the faucet.
func (n *node) payload(session *wallet.Wallet, faucet string) ([]string, error) {
	if len(n.cfg.Mining.Data) != 0 {
		return n.cfg.Mining.Data, nil
	}
	t, err := tx.Create(session, faucet, kred.KoinPerKred)
	if err != nil {
		return nil, err
	}
	item, err := t.Payload()
	if err != nil {
		return nil, err
	}
	return []string{item}, nil
}

// mine adds count blocks to bc.
func (n *node) mine(bc *chain.Blockchain, session *wallet.Wallet, count int) error {
	miner := n.miner(session)
	faucet := bc.Rules().Economy.Distribution.Faucet
	for i := 0; i < count; i++ {
		data, err := n.payload(session, faucet)
		if err != nil {
			return err
		}
		if _, err := bc.AddBlock(data, miner); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) run(ctx *cli.Context) error {
	session, err := wallet.New()
	if err != nil {
		return err
	}
	bc, err := n.newChain()
	if err != nil {
		return err
	}
	if err := n.mine(bc, session, n.cfg.Mining.Blocks); err != nil {
		return err
	}
	if err := chain.VerifyChain(bc.Blocks()); err != nil {
		return fmt.Errorf("mined chain does not verify: %w", err)
	}

	printChain(n.out, bc)
	printBalances(n.out, bc.Ledger())
	return nil
}

func (n *node) wallet(ctx *cli.Context) error {
	rules, err := n.cfg.Chain.Rules()
	if err != nil {
		return err
	}

	var w *wallet.Wallet
	switch {
	case ctx.String("key") != "":
		w, err = wallet.FromHex(ctx.String("key"))
	case ctx.IsSet("fake"):
		if fake := kred.FakeNetRules().Name; rules.Name != fake {
			return fmt.Errorf("fake wallets are only available on the %s network, not %s", fake, rules.Name)
		}
		w = wallet.FakeWallet(ctx.Int("fake"))
	default:
		w, err = wallet.New()
	}
	if err != nil {
		return err
	}

	t, err := tx.Create(w, rules.Economy.Distribution.Faucet, 42*kred.KoinPerKred/100)
	if err != nil {
		return err
	}

	fmt.Fprintf(n.out, "Address:        %s\n", w.Address())
	fmt.Fprintf(n.out, "Base58 address: %s\n", w.Base58Address())
	fmt.Fprintf(n.out, "Public key:     %s\n", w.PubKey())
	fmt.Fprintf(n.out, "Transaction:    %s -> %s: %s KRD\n", t.Sender, t.Recipient, kred.FormatKred(t.Amount))
	fmt.Fprintf(n.out, "Signature:      %s\n", t.Signature)
	fmt.Fprintf(n.out, "Valid:          %t\n", t.IsValid(wallet.Verify))
	return nil
}

func (n *node) fork(ctx *cli.Context) error {
	session, err := wallet.New()
	if err != nil {
		return err
	}

	local, err := n.newChain()
	if err != nil {
		return err
	}
	if err := n.mine(local, session, n.cfg.Mining.Blocks); err != nil {
		return err
	}
	rival, err := n.newChain()
	if err != nil {
		return err
	}
	if err := n.mine(rival, session, n.cfg.Mining.Blocks+1); err != nil {
		return err
	}

	candidate, size, err := shipChain(rival.Blocks())
	if err != nil {
		return err
	}
	fmt.Fprintf(n.out, "Rival chain: %d blocks, %d bytes encoded\n", len(candidate), size)

	before := local.Len()
	replaced := local.ReplaceChain(candidate)
	fmt.Fprintf(n.out, "Fork choice: replaced=%t length %d -> %d\n", replaced, before, local.Len())

	printChain(n.out, local)
	printBalances(n.out, local.Ledger())
	return nil
}

func (n *node) dumpConfig(ctx *cli.Context) error {
	out, err := dumpConfig(&n.cfg)
	if err != nil {
		return err
	}
	_, err = n.out.Write(out)
	return err
}

func printChain(w io.Writer, bc *chain.Blockchain) {
	for _, b := range bc.Blocks() {
		fmt.Fprintf(w, "#%-4d %s nonce=%d items=%d miner=%s\n", b.Index, b.Hash, b.Nonce, len(b.Data), b.Miner)
	}
}

func printBalances(w io.Writer, l *ledger.Ledger) {
	for _, addr := range l.Addresses() {
		fmt.Fprintf(w, "%s %s KRD\n", addr, kred.FormatKred(l.Balance(addr)))
	}
}
