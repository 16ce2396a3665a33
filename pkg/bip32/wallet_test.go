package bip32

import (
	"encoding/hex"
	"testing"

	"zh-mnemonic/pkg/address"
	"zh-mnemonic/pkg/bip39"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMasterKeyFromSeed(t *testing.T) {
	// BIP-32 测试向量 1
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")

	wallet, err := NewMasterKeyFromSeed(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)

	master := wallet.MasterKey()
	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", master.String())

	pub, err := master.Neuter()
	require.NoError(t, err)
	assert.Equal(t, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8", pub.String())
	assert.False(t, pub.IsPrivate())

	_, err = NewMasterKeyFromSeed(seed[:15], nil)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDerivePath(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	wallet, err := NewMasterKeyFromSeed(seed, nil)
	require.NoError(t, err)

	// m/0H
	child, err := wallet.DerivePath("m/0'")
	require.NoError(t, err)
	assert.Equal(t, "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7", child.String())

	// h 写法等价
	childH, err := wallet.DerivePath("m/0h")
	require.NoError(t, err)
	assert.Equal(t, child.String(), childH.String())

	root, err := wallet.DerivePath("m")
	require.NoError(t, err)
	assert.Equal(t, wallet.MasterKey().String(), root.String())

	for _, bad := range []string{"m/x", "m/44'/abc", "m/2147483648", "m//0"} {
		_, err := wallet.DerivePath(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestParsePath(t *testing.T) {
	got, err := ParsePath(BIP44BitcoinPath)
	require.NoError(t, err)
	h := uint32(hdkeychain.HardenedKeyStart)
	assert.Equal(t, []uint32{44 + h, 0 + h, 0 + h, 0, 0}, got)
}

// "abandon ... about" 在 m/44'/0'/0'/0/0 的地址是常用的核对值
func TestDerivePath_BIP44Address(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	seed := bip39.MnemonicToSeed(mnemonic, "")

	wallet, err := NewMasterKeyFromSeed(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	key, err := wallet.DerivePath(BIP44BitcoinPath)
	require.NoError(t, err)
	addr, err := key.Address()
	require.NoError(t, err)
	assert.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", addr)

	// 与地址生成器结果一致
	pub, err := key.ECPubKey()
	require.NoError(t, err)
	viaGen, err := address.NewBTCGenerator(nil).PubKeyToAddress(pub.SerializeCompressed())
	require.NoError(t, err)
	assert.Equal(t, addr, viaGen)

	// 公钥派生出的地址相同
	xpub, err := key.Neuter()
	require.NoError(t, err)
	pubAddr, err := xpub.Address()
	require.NoError(t, err)
	assert.Equal(t, addr, pubAddr)
}
