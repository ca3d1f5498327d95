package wallet

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestPubKeyFromString(t *testing.T) {
	require := require.New(t)

	exp := PubKey{
		Type: Types.Secp256k1,
		Raw:  common.FromHex("037db227d7094ce215c3a0f57e1bcc732551fe351f94249471934567e0f5dc1bf7"),
	}

	got, err := FromString(testPubKey[2:])
	require.NoError(err)
	require.Equal(exp, got)

	got, err = FromString(testPubKey)
	require.NoError(err)
	require.Equal(exp, got)
	require.Equal(testAddress, got.Address())

	for _, s := range []string{"", "0x", "-"} {
		_, err = FromString(s)
		require.Equal(ErrEmptyPubKey, err, s)
	}
}

func TestPubKeyUnknownScheme(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"0x01aabb", "0x00", "037db227d7094ce215c3a0f57e1bcc732551fe351f94249471934567e0f5dc1bf7"} {
		_, err := FromString(s)
		require.Equal(ErrUnknownScheme, err, s)
	}

	var pk PubKey
	require.Equal(ErrUnknownScheme, json.Unmarshal([]byte(`"0x02aa"`), &pk))
	require.True(pk.Empty())
}

func TestPubKeyEmpty(t *testing.T) {
	require.True(t, PubKey{}.Empty())
	require.False(t, PubKey{Type: Types.Secp256k1, Raw: []byte{0x01}}.Empty())
}

func TestPubKeyCopy(t *testing.T) {
	require := require.New(t)

	original := PubKey{Type: 0x01, Raw: []byte{0xAA, 0xBB}}
	cp := original.Copy()
	require.Equal(original, cp)

	cp.Raw[0] = 0xFF
	require.Equal(uint8(0xAA), original.Raw[0])
	require.Equal([]byte{0x01, 0xAA, 0xBB}, original.Bytes())
}

func TestPubKeyJSON(t *testing.T) {
	require := require.New(t)

	original := testWallet(t).PubKey()
	data, err := json.Marshal(&original)
	require.NoError(err)
	require.Equal(`"`+testPubKey+`"`, string(data))

	var decoded PubKey
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(original, decoded)
}
