package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// ChainFlags select the network preset and override its rules.

func ChainFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network preset (main|test|fake)",
			Value: "fake",
		},
		cli.UintFlag{
			Name:  "difficulty",
			Usage: "Leading zero hex characters a block hash must have",
		},
		cli.Uint64Flag{
			Name:  "reward",
			Usage: "Block reward in Koin (1 Kred = 100000000 Koin)",
		},
		cli.StringFlag{
			Name:  "faucet",
			Usage: "Address receiving the faucet share of every block reward",
		},
		cli.StringFlag{
			Name:  "founders",
			Usage: "Comma-separated founder addresses sharing the rest of the block reward",
		},
		cli.StringFlag{
			Name:  "genesis.data",
			Usage: "Payload item of the genesis block",
		},
	}
}

// MiningFlags control the blocks produced by the run and fork commands.
func MiningFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "mine.blocks",
			Usage: "Number of blocks to mine",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "mine.miner",
			Usage: "Miner address recorded in mined blocks (default: a fresh wallet)",
		},
		cli.StringSliceFlag{
			Name:  "mine.data",
			Usage: "Payload item for every mined block (repeatable; default: a signed demo transfer)",
		},
	}
}
