package wallet

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// AddressPrefix starts every raw-hash display address.
	AddressPrefix = "KRDx"

	// Base58Version is the version byte of Base58Check addresses. It makes
	// them start with 'K'.
	Base58Version byte = 0x2d

	// AddressLength is the size of the key hash behind both address forms.
	AddressLength = 20
)

var ErrInvalidAddress = errors.New("invalid address")

// addressHash is the first AddressLength bytes of SHA-256 over the public key.
func addressHash(pub []byte) []byte {
	sum := sha256.Sum256(pub)
	return sum[:AddressLength]
}

func encodeAddress(h []byte) string {
	return AddressPrefix + common.Bytes2Hex(h)
}

func encodeBase58Address(h []byte) string {
	return base58.CheckEncode(h, Base58Version)
}

// ParseAddress returns the key hash behind either display form.
func ParseAddress(addr string) ([]byte, error) {
	if strings.HasPrefix(addr, AddressPrefix) {
		hexPart := addr[len(AddressPrefix):]
		if len(hexPart) != 2*AddressLength || !isLowerHex(hexPart) {
			return nil, ErrInvalidAddress
		}
		return common.Hex2Bytes(hexPart), nil
	}

	h, version, err := base58.CheckDecode(addr)
	if err != nil || version != Base58Version || len(h) != AddressLength {
		return nil, ErrInvalidAddress
	}
	return h, nil
}

// IsAddress reports whether addr parses as either display form.
func IsAddress(addr string) bool {
	_, err := ParseAddress(addr)
	return err == nil
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
