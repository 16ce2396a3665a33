package bip32

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	// BIP44BitcoinPath 比特币第一个收款地址的派生路径，用于核对助记词
	BIP44BitcoinPath = "m/44'/0'/0'/0/0"
	// BIP44BitcoinAccount 第一个账户，导出的 xpub 可导入观察钱包
	BIP44BitcoinAccount = "m/44'/0'/0'"
)

// ExtendedKey 包装了 BIP-32 扩展密钥
type ExtendedKey interface {
	// String 返回 Base58 编码的密钥字符串 (xprv... / xpub...)
	String() string
	ECPubKey() (*btcec.PublicKey, error)
	// Derive 根据索引派生子密钥，index >= HardenedKeyStart 为硬化派生
	Derive(index uint32) (ExtendedKey, error)
	IsPrivate() bool
	// Address 返回该密钥对应的 P2PKH 地址
	Address() (string, error)
	// Neuter 返回只含公钥的扩展密钥
	Neuter() (ExtendedKey, error)
}

// HDWallet 定义了分层确定性钱包的基本行为
type HDWallet interface {
	MasterKey() ExtendedKey
	// DerivePath 根据路径 (如 "m/44'/0'/0'/0/0") 派生密钥
	DerivePath(path string) (ExtendedKey, error)
}

var (
	ErrInvalidSeed = errors.New("无效的种子")
	ErrInvalidPath = errors.New("无效的派生路径")
)
