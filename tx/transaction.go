// Package tx defines signed value-transfer records.
//
// A Transaction is signed over the message
//
//	sender:recipient:amount:timestamp
//
// with the amount in Koin and the timestamp in Unix seconds. Transactions
// enter a block as opaque payload items (see Payload); the chain never
// looks inside them.
package tx

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrEmptySender    = errors.New("empty sender")
	ErrEmptyRecipient = errors.New("empty recipient")
)

// Transaction moves Amount Koin from Sender to Recipient.
type Transaction struct {
	Sender    string
	Recipient string
	Amount    uint64
	Signature string
	Timestamp uint64
}

// Signer produces signatures for a single address. *wallet.Wallet
// implements it.
type Signer interface {
	Address() string
	Sign(message []byte) (string, error)
}

// VerifyFunc checks signature over message against address. wallet.Verify
// has this signature.
type VerifyFunc func(address string, message []byte, signature string) bool

// Create builds a transaction from signer's address, stamped with the
// current time, and signs it.
func Create(signer Signer, recipient string, amount uint64) (*Transaction, error) {
	return CreateAt(signer, recipient, amount, time.Now())
}

// CreateAt is Create with a caller-supplied time.
func CreateAt(signer Signer, recipient string, amount uint64, at time.Time) (*Transaction, error) {
	t := &Transaction{
		Sender:    signer.Address(),
		Recipient: recipient,
		Amount:    amount,
		Timestamp: uint64(at.Unix()),
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	sig, err := signer.Sign(t.Message())
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	t.Signature = sig
	return t, nil
}

func (t *Transaction) check() error {
	if t.Sender == "" {
		return ErrEmptySender
	}
	if t.Recipient == "" {
		return ErrEmptyRecipient
	}
	return nil
}

// Message returns the signed bytes.
func (t *Transaction) Message() []byte {
	b := make([]byte, 0, len(t.Sender)+len(t.Recipient)+48)
	b = append(b, t.Sender...)
	b = append(b, ':')
	b = append(b, t.Recipient...)
	b = append(b, ':')
	b = strconv.AppendUint(b, t.Amount, 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, t.Timestamp, 10)
	return b
}

// IsValid reports whether t is well formed and carries a signature that
// verify accepts for the sender.
func (t *Transaction) IsValid(verify VerifyFunc) bool {
	if t.check() != nil || t.Signature == "" {
		return false
	}
	return verify(t.Sender, t.Message(), t.Signature)
}

// Time returns the creation time.
func (t *Transaction) Time() time.Time {
	return time.Unix(int64(t.Timestamp), 0).UTC()
}

// Encode returns the RLP encoding of t.
func (t *Transaction) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(t)
}

// Decode parses an RLP encoded transaction.
func Decode(b []byte) (*Transaction, error) {
	t := new(Transaction)
	if err := rlp.DecodeBytes(b, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Payload renders t as a block data item: the 0x-prefixed hex of its RLP
// encoding.
func (t *Transaction) Payload() (string, error) {
	b, err := t.Encode()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// FromPayload is the inverse of Payload.
func FromPayload(item string) (*Transaction, error) {
	b, err := hexutil.Decode(item)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s -> %s: %d Koin at %d", t.Sender, t.Recipient, t.Amount, t.Timestamp)
}
