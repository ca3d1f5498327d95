package launcher

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-kred/chain"
	"github.com/rony4d/go-kred/kred"
	"github.com/rony4d/go-kred/wallet"
)

// runApp runs the launcher app on args with captured output.
func runApp(t *testing.T, args ...string) (string, *node, error) {
	t.Helper()

	app, n := newApp()
	var out, logs bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &logs

	err := app.Run(append([]string{"kred", "--difficulty", "1"}, args...))
	return out.String(), n, err
}

func TestRunCommand(t *testing.T) {
	require := require.New(t)

	out, n, err := runApp(t, "--mine.blocks", "2", "--mine.miner", "KRDxminer")
	require.NoError(err)
	require.Equal("KRDxminer", n.cfg.Mining.Miner)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// genesis + 2 blocks, then faucet and two founders
	require.Len(lines, 6)
	require.True(strings.HasPrefix(lines[0], "#0"))
	require.Contains(out, kred.FakeFaucetAddress+" 67.2 KRD")
	require.Contains(out, kred.FakeFounderAddress1+" 8.4 KRD")
	require.Contains(out, kred.FakeFounderAddress2+" 8.4 KRD")
}

func TestRunIsDefault(t *testing.T) {
	withCmd, _, err := runApp(t, "--mine.blocks", "0", "run")
	require.NoError(t, err)
	without, _, err := runApp(t, "--mine.blocks", "0")
	require.NoError(t, err)

	require.Equal(t, withCmd, without)
	require.Contains(t, without, "#0")
}

func TestRunCustomPayload(t *testing.T) {
	out, _, err := runApp(t, "--mine.blocks", "1", "--mine.data", "a", "--mine.data", "b", "--mine.miner", "m")
	require.NoError(t, err)
	require.Contains(t, out, "#1    ")
	require.Contains(t, out, "items=2 miner=m")
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, _, err := runApp(t, "--network", "main")
	require.Error(t, err)
}

func TestWalletCommand(t *testing.T) {
	require := require.New(t)

	out, _, err := runApp(t, "wallet", "--key", "0x289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032")
	require.NoError(err)
	require.Contains(out, "KRDxf87a6c22b75730dbed21e6234838f2d4b98d57e1")
	require.Contains(out, "KVryYX4A7mSirnbkJA5GQXvk1nctyvfCjd")
	require.Contains(out, "0.42 KRD")
	require.Contains(out, "Valid:          true")

	_, _, err = runApp(t, "wallet", "--key", "nothex")
	require.Error(err)
}

func TestForkCommand(t *testing.T) {
	out, _, err := runApp(t, "--mine.blocks", "2", "fork")
	require.NoError(t, err)
	require.Contains(t, out, "Rival chain: 4 blocks")
	require.Contains(t, out, "replaced=true length 3 -> 4")
}

func TestShipChain(t *testing.T) {
	rules := kred.FakeNetRules()
	rules.Blocks.Difficulty = 1
	bc, err := chain.New(rules)
	require.NoError(t, err)
	_, err = bc.AddBlock([]string{"x"}, "m")
	require.NoError(t, err)

	got, size, err := shipChain(bc.Blocks())
	require.NoError(t, err)
	require.Positive(t, size)
	require.Equal(t, bc.Blocks(), got)
	require.True(t, chain.IsValidChain(got))
}

func TestDumpConfigCommand(t *testing.T) {
	out, _, err := runApp(t, "--identity", "dumped", "dumpconfig")
	require.NoError(t, err)
	require.Contains(t, out, "[Node]")
	require.Contains(t, out, `Name = "dumped"`)
	require.Contains(t, out, "Difficulty = 1")
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer

	plain := newReporter("", &buf)
	require.Empty(t, plain.Hooks)

	broken := newReporter("://not a dsn", &buf)
	require.Empty(t, broken.Hooks)
	require.Contains(t, buf.String(), "Sentry reporting disabled")

	sentry := newReporter("https://public@sentry.example/1", &buf)
	require.Len(t, sentry.Hooks[logrus.ErrorLevel], 1)
	require.Len(t, sentry.Hooks[logrus.FatalLevel], 1)
	require.Empty(t, sentry.Hooks[logrus.InfoLevel])
}

func TestWalletCommandFake(t *testing.T) {
	out, _, err := runApp(t, "wallet", "--fake", "1")
	require.NoError(t, err)
	require.Contains(t, out, wallet.FakeWallet(1).Address())
}

func TestWalletCommandFakeOffFakeNet(t *testing.T) {
	out, _, err := runApp(t, "--network", "test", "--faucet", "KRDxf", "--founders", "KRDx1", "wallet", "--fake", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "only available on the fake network")
	require.NotContains(t, out, wallet.FakeWallet(1).Address())
}
