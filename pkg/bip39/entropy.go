package bip39

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"zh-mnemonic/pkg/wordlist"
)

const (
	bitsPerWord = 11

	// KeyEntropySize 私钥路径固定使用 256 bit 熵 (24 个单词)
	KeyEntropySize = 32

	minEntropySize = 16
	maxEntropySize = 32
)

var (
	ErrInvalidMnemonic      = errors.New("无效的助记词")
	ErrUnknownWord          = fmt.Errorf("%w: 单词不在词表中", ErrInvalidMnemonic)
	ErrInvalidWordCount     = fmt.Errorf("%w: 单词数量必须为 12/15/18/21/24", ErrInvalidMnemonic)
	ErrChecksumMismatch     = fmt.Errorf("%w: 校验和不匹配", ErrInvalidMnemonic)
	ErrInvalidEntropyLength = errors.New("熵长度必须为 16~32 字节且为 4 的倍数")
	ErrNilWordlist          = errors.New("词表为空")
)

// 日文助记词按 BIP-39 约定使用全角空格连接
func separator(list *wordlist.Wordlist) string {
	if list.Language() == wordlist.Japanese {
		return "　"
	}
	return " "
}

// EntropyToMnemonic 把 128~256 bit 熵编码为助记词：
// 追加 SHA-256 的前 len(entropy)*8/32 位作为校验和，再按 11 bit 切分查表。
func EntropyToMnemonic(entropy []byte, list *wordlist.Wordlist) (string, error) {
	if list == nil {
		return "", ErrNilWordlist
	}
	n := len(entropy)
	if n < minEntropySize || n > maxEntropySize || n%4 != 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidEntropyLength, n)
	}

	hash := sha256.Sum256(entropy)
	buf := make([]byte, n+1)
	copy(buf, entropy)
	buf[n] = hash[0]

	entBits := n * 8
	wordCount := (entBits + entBits/32) / bitsPerWord
	words := make([]string, wordCount)
	for i := range words {
		w, err := list.Word(readIndex(buf, i*bitsPerWord))
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return strings.Join(words, separator(list)), nil
}

// MnemonicToEntropy 严格解码助记词并校验 checksum。
// mnemonic 需已做 NFKD 归一化，单词间任意空白分隔。
func MnemonicToEntropy(mnemonic string, list *wordlist.Wordlist) ([]byte, error) {
	if list == nil {
		return nil, ErrNilWordlist
	}
	words := strings.Fields(mnemonic)
	n := len(words)
	if n < 12 || n > 24 || n%3 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWordCount, n)
	}

	totalBits := n * bitsPerWord
	csBits := totalBits / 33
	entBits := totalBits - csBits
	entBytes := entBits / 8

	buf := make([]byte, entBytes+1)
	for i, word := range words {
		idx, ok := list.Index(word)
		if !ok {
			// 不回显单词本身
			return nil, fmt.Errorf("%w: 第 %d 个单词", ErrUnknownWord, i+1)
		}
		writeIndex(buf, i*bitsPerWord, idx)
	}

	entropy := buf[:entBytes:entBytes]
	hash := sha256.Sum256(entropy)
	shift := uint(8 - csBits)
	if buf[entBytes]>>shift != hash[0]>>shift {
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// NormalizeEntropy 把任意长度的私钥字节右补零或截断为 32 字节。
// 截断会丢失信息，调用方应只传入 32 字节私钥。
func NormalizeEntropy(key []byte) []byte {
	out := make([]byte, KeyEntropySize)
	copy(out, key)
	return out
}

// KeyToMnemonic 私钥 -> 24 词助记词，熵与私钥逐字节相同
func KeyToMnemonic(key []byte, list *wordlist.Wordlist) (string, error) {
	return EntropyToMnemonic(NormalizeEntropy(key), list)
}

// KeyFromEntropy 熵 -> 32 字节私钥。全零不是合法私钥，替换为 0x00..01。
func KeyFromEntropy(entropy []byte) []byte {
	key := NormalizeEntropy(entropy)
	for _, b := range key {
		if b != 0 {
			return key
		}
	}
	key[KeyEntropySize-1] = 1
	return key
}

// MnemonicToKey 助记词 -> 32 字节私钥
func MnemonicToKey(mnemonic string, list *wordlist.Wordlist) ([]byte, error) {
	entropy, err := MnemonicToEntropy(mnemonic, list)
	if err != nil {
		return nil, err
	}
	return KeyFromEntropy(entropy), nil
}
