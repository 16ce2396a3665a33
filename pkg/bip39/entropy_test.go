package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"zh-mnemonic/pkg/safe_random"
	"zh-mnemonic/pkg/wordlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gobip39 "github.com/tyler-smith/go-bip39"
)

func mustList(t *testing.T, lang wordlist.Language) *wordlist.Wordlist {
	t.Helper()
	w, err := wordlist.Default().Get(lang)
	require.NoError(t, err)
	return w
}

func repeat(word string, n int, last string) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n) + last)
}

func TestEntropyToMnemonic_Vectors(t *testing.T) {
	en := mustList(t, wordlist.English)
	zh := mustList(t, wordlist.ChineseSimplified)

	tests := []struct {
		name    string
		entropy string
		list    *wordlist.Wordlist
		want    string
	}{
		{"128 bit 全零", strings.Repeat("00", 16), en, repeat("abandon", 11, "about")},
		{"128 bit 0x7f", strings.Repeat("7f", 16), en, "legal winner thank year wave sausage worth useful legal winner thank yellow"},
		{"128 bit 0x80", strings.Repeat("80", 16), en, "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"},
		{"128 bit 0xff", strings.Repeat("ff", 16), en, repeat("zoo", 11, "wrong")},
		{"256 bit 全零", strings.Repeat("00", 32), en, repeat("abandon", 23, "art")},
		{"256 bit 0xff", strings.Repeat("ff", 32), en, repeat("zoo", 23, "vote")},
		{"256 bit 0x7f", strings.Repeat("7f", 32), en, "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title"},
		{"中文 128 bit 全零", strings.Repeat("00", 16), zh, repeat("的", 11, "在")},
		{"中文 256 bit 全零", strings.Repeat("00", 32), zh, repeat("的", 23, "性")},
		{"中文 256 bit 0x7f", strings.Repeat("7f", 32), zh, "枪 疫 霉 尝 俩 闹 饿 贤 枪 疫 霉 尝 俩 闹 饿 贤 枪 疫 霉 尝 俩 闹 饿 搭"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entropy, err := hex.DecodeString(tt.entropy)
			require.NoError(t, err)

			got, err := EntropyToMnemonic(entropy, tt.list)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := MnemonicToEntropy(got, tt.list)
			require.NoError(t, err)
			assert.Equal(t, entropy, back)
		})
	}
}

func TestEntropyToMnemonic_InvalidLength(t *testing.T) {
	en := mustList(t, wordlist.English)
	for _, n := range []int{0, 12, 15, 17, 33, 64} {
		_, err := EntropyToMnemonic(make([]byte, n), en)
		assert.ErrorIs(t, err, ErrInvalidEntropyLength, "len=%d", n)
	}

	_, err := EntropyToMnemonic(make([]byte, 16), nil)
	assert.ErrorIs(t, err, ErrNilWordlist)
}

// 与 go-bip39 的英文实现交叉校验所有长度
func TestEntropyToMnemonic_MatchesGoBip39(t *testing.T) {
	en := mustList(t, wordlist.English)

	for _, size := range []int{16, 20, 24, 28, 32} {
		for i := 0; i < 20; i++ {
			entropy, err := safe_random.GenerateRandomBytes(size)
			require.NoError(t, err)

			ours, err := EntropyToMnemonic(entropy, en)
			require.NoError(t, err)
			theirs, err := gobip39.NewMnemonic(entropy)
			require.NoError(t, err)
			assert.Equal(t, theirs, ours)
		}
	}
}

func TestKeyToMnemonic_WIFScenario(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)
	en := mustList(t, wordlist.English)
	key, _ := hex.DecodeString("0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d")

	m, err := KeyToMnemonic(key, zh)
	require.NoError(t, err)
	assert.Equal(t, "从 章 每 还 杨 命 虫 演 络 哪 信 济 熙 介 沫 滨 波 狠 美 阳 管 氮 弯 鬼", m)
	assert.Len(t, strings.Fields(m), 24)

	m, err = KeyToMnemonic(key, en)
	require.NoError(t, err)
	assert.Equal(t, "around elevator cigar assault kick beauty lens grass topic fossil clog cat silent hawk wise water either tent champion exist border rich position radio", m)

	back, err := MnemonicToKey(m, en)
	require.NoError(t, err)
	assert.Equal(t, key, back)
}

func TestKeyToMnemonic_RoundTrip(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)

	for i := 0; i < 100; i++ {
		key, err := safe_random.GenerateRandomBytes(KeyEntropySize)
		require.NoError(t, err)

		m1, err := KeyToMnemonic(key, zh)
		require.NoError(t, err)
		m2, err := KeyToMnemonic(key, zh)
		require.NoError(t, err)
		assert.Equal(t, m1, m2, "编码必须确定")

		back, err := MnemonicToKey(m1, zh)
		require.NoError(t, err)
		if !bytes.Equal(back, key) && !isZero(key) {
			t.Fatalf("往返不一致: %x != %x", back, key)
		}
	}
}

func TestKeyToMnemonic_PadsShortKey(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)
	short, _ := hex.DecodeString("0102030405060708090a0b0c0d0e0f1011121314")

	m, err := KeyToMnemonic(short, zh)
	require.NoError(t, err)
	assert.Equal(t, "人 表 瓶 二 损 塔 思 密 点 杀 户 据 内 水 初 的 的 的 的 的 的 的 的 并", m)

	entropy, err := MnemonicToEntropy(m, zh)
	require.NoError(t, err)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f1011121314000000000000000000000000", hex.EncodeToString(entropy))
}

func TestKeyToMnemonic_TruncatesLongKey(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)
	long := bytes.Repeat([]byte{0x7f}, 40)

	m, err := KeyToMnemonic(long, zh)
	require.NoError(t, err)
	want, err := KeyToMnemonic(long[:32], zh)
	require.NoError(t, err)
	assert.Equal(t, want, m)
}

func TestMnemonicToKey_ZeroEntropy(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)

	zeroMnemonic := repeat("的", 23, "性")
	entropy, err := MnemonicToEntropy(zeroMnemonic, zh)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 32), entropy)

	key, err := MnemonicToKey(zeroMnemonic, zh)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("00", 31)+"01", hex.EncodeToString(key))

	// 0x00..01 本身对应另一个助记词
	one, err := KeyToMnemonic(key, zh)
	require.NoError(t, err)
	assert.Equal(t, repeat("的", 23, "听"), one)
}

func TestKeyFromEntropy(t *testing.T) {
	assert.Equal(t, strings.Repeat("00", 31)+"01", hex.EncodeToString(KeyFromEntropy(nil)))
	assert.Equal(t, strings.Repeat("00", 31)+"01", hex.EncodeToString(KeyFromEntropy(make([]byte, 16))))

	// 12 词熵右补零
	e := bytes.Repeat([]byte{0xab}, 16)
	assert.Equal(t, strings.Repeat("ab", 16)+strings.Repeat("00", 16), hex.EncodeToString(KeyFromEntropy(e)))
}

func TestMnemonicToEntropy_Errors(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)
	valid := "从 章 每 还 杨 命 虫 演 络 哪 信 济 熙 介 沫 滨 波 狠 美 阳 管 氮 弯 鬼"

	tests := []struct {
		name     string
		mnemonic string
		want     error
	}{
		{"空", "", ErrInvalidWordCount},
		{"23 个词", strings.Join(strings.Fields(valid)[:23], " "), ErrInvalidWordCount},
		{"11 个词", repeat("的", 10, "在"), ErrInvalidWordCount},
		{"未知单词", strings.Replace(valid, "从", "龘", 1), ErrUnknownWord},
		{"末词错误", strings.Replace(valid, "鬼", "的", 1), ErrChecksumMismatch},
		{"交换两个词", "章 从 每 还 杨 命 虫 演 络 哪 信 济 熙 介 沫 滨 波 狠 美 阳 管 氮 弯 鬼", ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MnemonicToEntropy(tt.mnemonic, zh)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidMnemonic)
		})
	}
}

func TestMnemonicToEntropy_Whitespace(t *testing.T) {
	zh := mustList(t, wordlist.ChineseSimplified)
	m := "  从 章\t每 还 杨 命 虫 演 络 哪 信 济\n熙 介 沫 滨 波 狠 美 阳 管 氮 弯   鬼 "

	entropy, err := MnemonicToEntropy(m, zh)
	require.NoError(t, err)
	assert.Equal(t, "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d", hex.EncodeToString(entropy))
}

func TestEntropyToMnemonic_JapaneseSeparator(t *testing.T) {
	ja := mustList(t, wordlist.Japanese)
	entropy := bytes.Repeat([]byte{0x11}, 16)

	m, err := EntropyToMnemonic(entropy, ja)
	require.NoError(t, err)
	assert.Contains(t, m, "　")
	assert.NotContains(t, m, " ")

	back, err := MnemonicToEntropy(m, ja)
	require.NoError(t, err)
	assert.Equal(t, entropy, back)
}

func TestPortugueseZeroVector(t *testing.T) {
	pt := mustList(t, wordlist.Portuguese)
	want := strings.Repeat("abacate ", 11) + "abater"

	m, err := EntropyToMnemonic(make([]byte, 16), pt)
	require.NoError(t, err)
	assert.Equal(t, want, m)

	entropy, err := MnemonicToEntropy(want, pt)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 16), entropy)
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
