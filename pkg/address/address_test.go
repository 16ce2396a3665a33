package address

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleWIF = "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"
	exampleHex = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
)

func compressedWIF(t *testing.T, key []byte, net *chaincfg.Params) string {
	t.Helper()
	priv, _ := btcec.PrivKeyFromBytes(key)
	wif, err := btcutil.NewWIF(priv, net, true)
	require.NoError(t, err)
	return wif.String()
}

func TestDecodePrivateKey(t *testing.T) {
	key, _ := hex.DecodeString(exampleHex)
	net := &chaincfg.MainNetParams

	tests := []struct {
		name  string
		input string
	}{
		{"非压缩 WIF", exampleWIF},
		{"压缩 WIF", compressedWIF(t, key, net)},
		{"WIF 前后空白", "  " + exampleWIF + "\n"},
		{"小写 hex", exampleHex},
		{"大写 hex", strings.ToUpper(exampleHex)},
		{"hex 含空白", "0c28fca3 86c7a227 600b2fe5 0b7cae11\n ec86d3bf 1fbe471b e89827e1 9d72aa1d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePrivateKey(tt.input, net)
			require.NoError(t, err)
			assert.Equal(t, key, got)
		})
	}
}

func TestDecodePrivateKey_Invalid(t *testing.T) {
	net := &chaincfg.MainNetParams
	key, _ := hex.DecodeString(exampleHex)

	overflowWIF := base58.CheckEncode(append(bytes.Repeat([]byte{0xff}, 32), 0x01), net.PrivateKeyID)

	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"空", "", ErrInvalidHexKey},
		{"63 位 hex", exampleHex[:63], ErrInvalidHexKey},
		{"65 位 hex", exampleHex + "0", ErrInvalidHexKey},
		{"非 hex 字符", "zz" + exampleHex[2:], ErrInvalidHexKey},
		{"全零 hex", strings.Repeat("0", 64), ErrKeyOutOfRange},
		{"大于 n 的 hex", strings.Repeat("f", 64), ErrKeyOutOfRange},
		{"测试网 WIF", compressedWIF(t, key, &chaincfg.TestNet3Params), ErrWrongNetwork},
		{"超出范围的 WIF", overflowWIF, ErrKeyOutOfRange},
		{"WIF 校验和错误", exampleWIF[:len(exampleWIF)-1] + "K", btcutil.ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePrivateKey(tt.input, net)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidKeyFormat)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestValidatePrivateKey(t *testing.T) {
	n := btcec.S256().N

	maxKey := new(big.Int).Sub(n, big.NewInt(1)).FillBytes(make([]byte, 32))
	assert.NoError(t, ValidatePrivateKey(maxKey))
	assert.ErrorIs(t, ValidatePrivateKey(n.FillBytes(make([]byte, 32))), ErrKeyOutOfRange)
	assert.ErrorIs(t, ValidatePrivateKey(make([]byte, 32)), ErrKeyOutOfRange)
	assert.ErrorIs(t, ValidatePrivateKey(make([]byte, 31)), ErrKeyOutOfRange)

	one := make([]byte, 32)
	one[31] = 1
	assert.NoError(t, ValidatePrivateKey(one))
}

func TestKeyBytesToWIF(t *testing.T) {
	key, _ := hex.DecodeString(exampleHex)

	wif, err := KeyBytesToWIF(key, &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, compressedWIF(t, key, &chaincfg.MainNetParams), wif)
	assert.True(t, wif[0] == 'K' || wif[0] == 'L', "主网压缩 WIF 以 K/L 开头: %s", wif)

	decoded, err := btcutil.DecodeWIF(wif)
	require.NoError(t, err)
	assert.True(t, decoded.CompressPubKey)
	assert.True(t, decoded.IsForNet(&chaincfg.MainNetParams))

	_, err = KeyBytesToWIF(make([]byte, 32), &chaincfg.MainNetParams)
	assert.ErrorIs(t, err, ErrKeyOutOfRange)
}

func TestBTCGenerator_PrivKeyToAddress(t *testing.T) {
	key, _ := hex.DecodeString(exampleHex)
	gen := NewBTCGenerator(nil)
	assert.Equal(t, &chaincfg.MainNetParams, gen.Network())

	addr, err := gen.PrivKeyToAddress(key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "1"), "主网 P2PKH 地址以 1 开头: %s", addr)

	// 与 Hash160(压缩公钥) 的结果一致
	_, pub := btcec.PrivKeyFromBytes(key)
	want, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, want.EncodeAddress(), addr)

	// 压缩与非压缩公钥地址不同
	assert.NotEqual(t, "1GAehh7TsJAHuUAeKZcXf5CnwuGuGgyX2S", addr)

	decoded, err := btcutil.DecodeAddress(addr, &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.True(t, decoded.IsForNet(&chaincfg.MainNetParams))

	_, err = gen.PrivKeyToAddress(make([]byte, 32))
	assert.ErrorIs(t, err, ErrKeyOutOfRange)
}

func TestBTCGenerator_Testnet(t *testing.T) {
	key, _ := hex.DecodeString(exampleHex)
	gen := NewBTCGenerator(&chaincfg.TestNet3Params)

	addr, err := gen.PrivKeyToAddress(key)
	require.NoError(t, err)
	assert.True(t, addr[0] == 'm' || addr[0] == 'n', "测试网地址: %s", addr)

	wif, err := gen.WIF(key)
	require.NoError(t, err)
	got, err := gen.DecodePrivateKey(wif)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestPubKeyToAddress_Invalid(t *testing.T) {
	gen := NewBTCGenerator(&chaincfg.MainNetParams)
	_, err := gen.PubKeyToAddress([]byte{0x02, 0x01})
	assert.Error(t, err)
}
