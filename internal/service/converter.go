package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"zh-mnemonic/pkg/address"
	"zh-mnemonic/pkg/bip32"
	"zh-mnemonic/pkg/bip39"
	"zh-mnemonic/pkg/errno"
	"zh-mnemonic/pkg/logger"
	"zh-mnemonic/pkg/safe_random"
	"zh-mnemonic/pkg/wordlist"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

type InputType string

const (
	InputPrivateKey InputType = "bitcoin_private_key"
	InputMnemonic   InputType = "chinese_mnemonic"
)

// Result 一次转换的结果，私钥 -> 助记词方向不填 WIF
type Result struct {
	InputType     InputType
	PrivateKeyHex string
	Mnemonic      string
	WIF           string
	Address       string
	EntropyHex    string
}

// Translation 任意语言助记词转简体中文的结果
type Translation struct {
	Source         wordlist.Language
	Detected       bool // false 表示探测失败后使用了兜底词表
	SourceMnemonic string
	EntropyHex     string
	Mnemonic       string
	SeedHex        string
	Path           string
	Address        string
	AccountXpub    string // m/44'/0'/0' 的扩展公钥
}

type Options struct {
	Registry *wordlist.Registry // 为 nil 时使用内置词表
	Network  *chaincfg.Params   // 为 nil 时使用主网
	Fallback wordlist.Language
	// StrictDetection 为 true 时探测失败直接报错，不使用 Fallback
	StrictDetection bool
}

// Converter 构造后只读，可被多个 goroutine 并发调用
type Converter struct {
	registry *wordlist.Registry
	zh       *wordlist.Wordlist
	zhSvc    *bip39.MnemonicService
	fallback *wordlist.Wordlist
	btc      *address.BTCGenerator
}

var _ ConverterService = (*Converter)(nil)

func NewConverter(opts Options) (*Converter, error) {
	registry := opts.Registry
	if registry == nil {
		registry = wordlist.Default()
	}

	zh, err := registry.Get(wordlist.ChineseSimplified)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		registry: registry,
		zh:       zh,
		zhSvc:    bip39.NewMnemonicService(zh),
		btc:      address.NewBTCGenerator(opts.Network),
	}
	if !opts.StrictDetection {
		if c.fallback, err = registry.Get(opts.Fallback); err != nil {
			return nil, fmt.Errorf("兜底词表不可用: %w", err)
		}
	}
	return c, nil
}

// ContainsHan 输入中含任意汉字即视为中文助记词
func ContainsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// canonicalMnemonic NFKD 归一化并把任意空白压成单个空格
func canonicalMnemonic(s string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(s)), " ")
}

func (c *Converter) Convert(raw string) (*Result, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, errno.ErrEmptyInput
	}

	if ContainsHan(input) {
		logger.Debug("识别为中文助记词")
		return c.mnemonicToKey(input)
	}
	logger.Debug("识别为私钥")
	return c.keyToMnemonic(input)
}

func (c *Converter) keyToMnemonic(input string) (*Result, error) {
	key, err := c.btc.DecodePrivateKey(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errno.ErrInvalidKeyFormat, err)
	}
	return c.fromKey(key)
}

func (c *Converter) fromKey(key []byte) (*Result, error) {
	mnemonic, err := bip39.KeyToMnemonic(key, c.zh)
	if err != nil {
		return nil, internalError("编码助记词", err)
	}
	addr, err := c.btc.PrivKeyToAddress(key)
	if err != nil {
		return nil, internalError("生成地址", err)
	}

	return &Result{
		InputType:     InputPrivateKey,
		PrivateKeyHex: hex.EncodeToString(key),
		Mnemonic:      mnemonic,
		Address:       addr,
		EntropyHex:    hex.EncodeToString(bip39.NormalizeEntropy(key)),
	}, nil
}

func (c *Converter) mnemonicToKey(input string) (*Result, error) {
	mnemonic := canonicalMnemonic(input)

	entropy, err := bip39.MnemonicToEntropy(mnemonic, c.zh)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errno.ErrInvalidMnemonic, err)
	}
	key := bip39.KeyFromEntropy(entropy)

	// 熵 >= n 时不是合法私钥，极小概率
	wif, err := c.btc.WIF(key)
	if err != nil {
		return nil, internalError("编码 WIF", err)
	}
	addr, err := c.btc.PrivKeyToAddress(key)
	if err != nil {
		return nil, internalError("生成地址", err)
	}

	return &Result{
		InputType:     InputMnemonic,
		PrivateKeyHex: hex.EncodeToString(key),
		Mnemonic:      mnemonic,
		WIF:           wif,
		Address:       addr,
		EntropyHex:    hex.EncodeToString(entropy),
	}, nil
}

func (c *Converter) TranslateToChinese(raw string) (*Translation, error) {
	mnemonic := canonicalMnemonic(raw)
	if mnemonic == "" {
		return nil, errno.ErrEmptyInput
	}

	list, detected := c.registry.Detect(mnemonic)
	if !detected {
		if c.fallback == nil {
			return nil, errno.ErrWordlistDetection
		}
		logger.Warn("无法可靠识别助记词语言，使用兜底词表", zap.Stringer("fallback", c.fallback.Language()))
		list = c.fallback
	}

	entropy, err := bip39.MnemonicToEntropy(mnemonic, list)
	if err != nil {
		msg := fmt.Sprintf("Invalid %s mnemonic", list.Language())
		return nil, fmt.Errorf("%w: %w", errno.ErrInvalidMnemonic.WithMessage(msg), err)
	}

	// 保持原熵长度，不做 32 字节补齐
	zhMnemonic, err := bip39.EntropyToMnemonic(entropy, c.zh)
	if err != nil {
		return nil, internalError("编码中文助记词", err)
	}

	if !c.zhSvc.ValidateMnemonic(zhMnemonic) {
		return nil, internalError("校验中文助记词", bip39.ErrChecksumMismatch)
	}

	seed := c.zhSvc.MnemonicToSeed(zhMnemonic, "")
	xpub, addr, err := c.bip44Account(seed)
	if err != nil {
		return nil, internalError("派生 BIP-44 地址", err)
	}

	return &Translation{
		Source:         list.Language(),
		Detected:       detected,
		SourceMnemonic: mnemonic,
		EntropyHex:     hex.EncodeToString(entropy),
		Mnemonic:       zhMnemonic,
		SeedHex:        hex.EncodeToString(seed),
		Path:           bip32.BIP44BitcoinPath,
		Address:        addr,
		AccountXpub:    xpub,
	}, nil
}

// bip44Account 返回第一个账户的 xpub 和其下 0/0 的地址
func (c *Converter) bip44Account(seed []byte) (string, string, error) {
	wallet, err := bip32.NewMasterKeyFromSeed(seed, c.btc.Network())
	if err != nil {
		return "", "", err
	}
	account, err := wallet.DerivePath(bip32.BIP44BitcoinAccount)
	if err != nil {
		return "", "", err
	}
	pubAccount, err := account.Neuter()
	if err != nil {
		return "", "", err
	}

	key := account
	for _, index := range []uint32{0, 0} {
		if key, err = key.Derive(index); err != nil {
			return "", "", err
		}
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return "", "", err
	}
	addr, err := c.btc.PubKeyToAddress(pub.SerializeCompressed())
	if err != nil {
		return "", "", err
	}
	return pubAccount.String(), addr, nil
}

func (c *Converter) NewTestKey() (*Result, error) {
	key, err := safe_random.GenerateScalar(btcec.S256().N, btcec.PrivKeyBytesLen)
	if err != nil {
		return nil, internalError("生成随机私钥", err)
	}
	res, err := c.fromKey(key)
	if err != nil {
		return nil, err
	}
	if res.WIF, err = c.btc.WIF(key); err != nil {
		return nil, internalError("编码 WIF", err)
	}
	return res, nil
}

func (c *Converter) NewMnemonic(words int) (*Translation, error) {
	if words%3 != 0 {
		return nil, errno.ErrBind.WithMessage("words 必须是 12 / 15 / 18 / 21 / 24 之一")
	}
	// 每 3 个词对应 32 位熵
	m, err := c.zhSvc.GenerateMnemonic(words / 3 * 32)
	if err != nil {
		if errors.Is(err, bip39.ErrInvalidEntropyLength) {
			return nil, errno.ErrBind.WithMessage("words 必须是 12 / 15 / 18 / 21 / 24 之一")
		}
		return nil, internalError("生成助记词", err)
	}
	return c.TranslateToChinese(m)
}

func internalError(op string, err error) error {
	logger.Error("转换内部错误", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", errno.ErrInternalConversion, op, err)
}
