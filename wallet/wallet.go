// Package wallet holds secp256k1 key pairs and the sign / verify capability
// transactions rely on.
//
// Addresses come in two display forms over the same 20-byte key hash:
//
//	KRDx<40 lowercase hex>     raw-hash form, as stored in the ledger
//	K...                       Base58Check form with version Base58Version
//
// Signatures are 65-byte recoverable secp256k1 signatures over the
// Keccak-256 digest of the message, hex encoded with a 0x prefix. Verify
// needs only the address: it recovers the signer's key from the signature.
package wallet

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet is a key pair.
type Wallet struct {
	key *ecdsa.PrivateKey
	pub PubKey
}

// New generates a fresh key pair.
func New() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(key), nil
}

// FromPrivateKey wraps an existing key.
func FromPrivateKey(key *ecdsa.PrivateKey) *Wallet {
	return &Wallet{
		key: key,
		pub: PubKey{
			Type: Types.Secp256k1,
			Raw:  crypto.CompressPubkey(&key.PublicKey),
		},
	}
}

// FromHex loads a private key from hex, with or without 0x.
func FromHex(s string) (*Wallet, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return FromPrivateKey(key), nil
}

// PrivateKeyHex exports the private key.
func (w *Wallet) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(w.key))
}

// PubKey returns a copy of the public key.
func (w *Wallet) PubKey() PubKey {
	return w.pub.Copy()
}

// Address returns the KRDx form of the wallet address.
func (w *Wallet) Address() string {
	return w.pub.Address()
}

// Base58Address returns the Base58Check form of the wallet address.
func (w *Wallet) Base58Address() string {
	return w.pub.Base58Address()
}

// Sign signs message.
func (w *Wallet) Sign(message []byte) (string, error) {
	sig, err := crypto.Sign(crypto.Keccak256(message), w.key)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(sig), nil
}

// Verify reports whether signature over message was produced by the key
// behind address. address may be in either display form. Malformed input
// of any kind yields false.
func Verify(address string, message []byte, signature string) bool {
	want, err := ParseAddress(address)
	if err != nil {
		return false
	}
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false
	}
	pub, err := crypto.SigToPub(crypto.Keccak256(message), sig)
	if err != nil {
		return false
	}
	return bytes.Equal(want, addressHash(crypto.CompressPubkey(pub)))
}
