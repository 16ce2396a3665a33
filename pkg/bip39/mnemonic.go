package bip39

import (
	"crypto/sha512"
	"fmt"

	"zh-mnemonic/pkg/safe_random"
	"zh-mnemonic/pkg/wordlist"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	seedIterations = 2048
	SeedSize       = 64
)

// MnemonicService 提供绑定到某个词表的助记词功能
type MnemonicService struct {
	list *wordlist.Wordlist
}

// NewMnemonicService 创建助记词服务实例，list 为 nil 时使用英文词表
func NewMnemonicService(list *wordlist.Wordlist) *MnemonicService {
	if list == nil {
		list, _ = wordlist.Default().Get(wordlist.English)
	}
	return &MnemonicService{list: list}
}

func (s *MnemonicService) Wordlist() *wordlist.Wordlist {
	return s.list
}

// GenerateMnemonic 生成一个新的随机助记词 (BIP-39)。
// bitSize: 熵的位数，128 (12个单词) 到 256 (24个单词)，必须是 32 的倍数。
func (s *MnemonicService) GenerateMnemonic(bitSize int) (string, error) {
	if bitSize%32 != 0 || bitSize < minEntropySize*8 || bitSize > maxEntropySize*8 {
		return "", fmt.Errorf("%w: %d bits", ErrInvalidEntropyLength, bitSize)
	}

	entropy, err := safe_random.GenerateRandomBytes(bitSize / 8)
	if err != nil {
		return "", fmt.Errorf("生成熵失败: %w", err)
	}

	mnemonic, err := EntropyToMnemonic(entropy, s.list)
	if err != nil {
		return "", fmt.Errorf("生成助记词失败: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic 验证助记词是否有效 (单词、数量、校验和)
func (s *MnemonicService) ValidateMnemonic(mnemonic string) bool {
	_, err := MnemonicToEntropy(norm.NFKD.String(mnemonic), s.list)
	return err == nil
}

// MnemonicToSeed 将助记词转换为 64 字节种子 (PBKDF2-HMAC-SHA512, 2048 轮)。
// 助记词和密码都先做 NFKD 归一化，非 ASCII 词表必须如此才能和其他实现一致。
// password 即 "第25个单词"，不需要时传 ""。
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) []byte {
	return MnemonicToSeed(mnemonic, password)
}

// MnemonicToSeed 同 MnemonicService.MnemonicToSeed，种子派生与词表无关
func MnemonicToSeed(mnemonic string, password string) []byte {
	m := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String("mnemonic" + password)
	return pbkdf2.Key([]byte(m), []byte(salt), seedIterations, SeedSize, sha512.New)
}
