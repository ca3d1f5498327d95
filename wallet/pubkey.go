package wallet

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// PubKey is a public key tagged with its signature scheme.
//
// Wallets hand out their key as a PubKey, and transaction verifiers parse it
// back with FromString. The first byte of the serialized form is the scheme
// tag, so a key always travels together with the curve it belongs to.
type PubKey struct {
	// Type identifies the curve, see Types.
	Type uint8
	// Raw is the key in the scheme's compact form (33 bytes for secp256k1).
	Raw []byte
}

// Types lists the supported key schemes.
var Types = struct {
	Secp256k1 uint8
}{
	Secp256k1: 0xc0,
}

var (
	// ErrEmptyPubKey is returned when parsing input with no type byte.
	ErrEmptyPubKey = errors.New("empty pubkey")
	// ErrUnknownScheme is returned when the type byte is not one of Types.
	ErrUnknownScheme = errors.New("unknown pubkey type")
)

// Empty reports whether pk is the zero value. An empty key has no address.
func (pk PubKey) Empty() bool {
	return len(pk.Raw) == 0 && pk.Type == 0
}

// String returns the 0x-prefixed hex of Bytes. It is the text form used in
// JSON, TOML and command output, and FromString parses it back.
func (pk PubKey) String() string {
	return "0x" + common.Bytes2Hex(pk.Bytes())
}

// Bytes returns the type byte followed by Raw. The result is a fresh slice
// that the caller may modify.
func (pk PubKey) Bytes() []byte {
	return append([]byte{pk.Type}, pk.Raw...)
}

// Copy returns a deep copy, so the result does not share Raw with pk.
func (pk PubKey) Copy() PubKey {
	return PubKey{
		Type: pk.Type,
		Raw:  common.CopyBytes(pk.Raw),
	}
}

// Address is the KRDx display address of the key: AddressPrefix followed by
// the hex of the first AddressLength bytes of SHA-256(Raw). Block rewards and
// transactions name accounts by this address.
func (pk PubKey) Address() string {
	return encodeAddress(addressHash(pk.Raw))
}

// Base58Address is the Base58Check form of the same 20-byte hash as
// Address, with Base58Version as the version byte.
func (pk PubKey) Base58Address() string {
	return encodeBase58Address(addressHash(pk.Raw))
}

// FromString parses hex, with or without the 0x prefix. Invalid hex decodes
// to nothing and is reported as ErrEmptyPubKey.
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromBytes is the inverse of PubKey.Bytes. It returns ErrEmptyPubKey for
// empty input and ErrUnknownScheme when the type byte is not a supported
// scheme. Raw aliases b.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) == 0 {
		return PubKey{}, ErrEmptyPubKey
	}
	if b[0] != Types.Secp256k1 {
		return PubKey{}, ErrUnknownScheme
	}
	return PubKey{b[0], b[1:]}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (pk *PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}
