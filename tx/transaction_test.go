package tx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-kred/wallet"
)

const recipient = "KRDx00000000000000000000000000000000000000f1"

var at = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newWallet(t *testing.T) *wallet.Wallet {
	w, err := wallet.New()
	require.NoError(t, err)
	return w
}

func TestCreateAndVerify(t *testing.T) {
	require := require.New(t)

	sender := newWallet(t)
	tx, err := CreateAt(sender, recipient, 42000000, at)
	require.NoError(err)

	require.Equal(sender.Address(), tx.Sender)
	require.Equal(uint64(at.Unix()), tx.Timestamp)
	require.Equal(sender.Address()+":"+recipient+":42000000:1748779200", string(tx.Message()))
	require.True(tx.IsValid(wallet.Verify))
	require.True(tx.Time().Equal(at))
}

func TestCreateUsesNow(t *testing.T) {
	before := time.Now().Unix()
	tx, err := Create(newWallet(t), recipient, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, int64(tx.Timestamp), before)
}

func TestTamperedTransactionInvalid(t *testing.T) {
	sender := newWallet(t)
	orig, err := CreateAt(sender, recipient, 42000000, at)
	require.NoError(t, err)

	mutations := map[string]func(*Transaction){
		"amount":    func(t *Transaction) { t.Amount++ },
		"recipient": func(t *Transaction) { t.Recipient = sender.Address() },
		"timestamp": func(t *Transaction) { t.Timestamp-- },
		"sender":    func(t *Transaction) { t.Sender = recipient },
		"signature": func(t *Transaction) { t.Signature = "" },
	}
	for name, mutate := range mutations {
		cp := *orig
		mutate(&cp)
		require.False(t, cp.IsValid(wallet.Verify), name)
	}
}

type failingSigner struct{}

func (failingSigner) Address() string { return "KRDxbroken" }
func (failingSigner) Sign([]byte) (string, error) { return "", errors.New("device locked") }

func TestCreateErrors(t *testing.T) {
	_, err := CreateAt(newWallet(t), "", 1, at)
	require.Equal(t, ErrEmptyRecipient, err)

	_, err = CreateAt(failingSigner{}, recipient, 1, at)
	require.Error(t, err)
	require.Contains(t, err.Error(), "device locked")
}

func TestIsValidUsesVerifier(t *testing.T) {
	tx := &Transaction{Sender: "a", Recipient: "b", Amount: 1, Signature: "sig", Timestamp: 2}

	var gotAddr, gotMsg, gotSig string
	ok := tx.IsValid(func(address string, message []byte, signature string) bool {
		gotAddr, gotMsg, gotSig = address, string(message), signature
		return true
	})

	require.True(t, ok)
	require.Equal(t, "a", gotAddr)
	require.Equal(t, "a:b:1:2", gotMsg)
	require.Equal(t, "sig", gotSig)
}

func TestEncodeDecode(t *testing.T) {
	require := require.New(t)

	tx, err := CreateAt(newWallet(t), recipient, 42000000, at)
	require.NoError(err)

	b, err := tx.Encode()
	require.NoError(err)
	got, err := Decode(b)
	require.NoError(err)
	require.Equal(tx, got)
	require.True(got.IsValid(wallet.Verify))

	item, err := tx.Payload()
	require.NoError(err)
	fromItem, err := FromPayload(item)
	require.NoError(err)
	require.Equal(tx, fromItem)

	_, err = Decode(b[:len(b)-1])
	require.Error(err)
	_, err = FromPayload("not hex")
	require.Error(err)
}
