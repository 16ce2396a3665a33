package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
)

var (
	ErrInvalidKeyFormat = errors.New("无效的比特币私钥格式")
	ErrKeyOutOfRange    = errors.New("私钥不在 secp256k1 有效范围内")
	ErrWrongNetwork     = errors.New("WIF 不属于当前网络")
	ErrInvalidHexKey    = errors.New("需要 64 位十六进制字符")
)

// ValidatePrivateKey 校验 32 字节私钥满足 0 < k < n
func ValidatePrivateKey(key []byte) error {
	if len(key) != btcec.PrivKeyBytesLen {
		return fmt.Errorf("%w: 长度 %d", ErrKeyOutOfRange, len(key))
	}
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(key); overflow || k.IsZero() {
		return ErrKeyOutOfRange
	}
	return nil
}

// DecodePrivateKey 依次尝试 WIF、64 位十六进制，第一个成功的生效。
// 全部失败时返回 ErrInvalidKeyFormat，并附带每次尝试的原因。
func DecodePrivateKey(input string, network *chaincfg.Params) ([]byte, error) {
	s := strings.TrimSpace(input)

	key, wifErr := decodeWIF(s, network)
	if wifErr == nil {
		return key, nil
	}
	key, hexErr := decodeHex(s)
	if hexErr == nil {
		return key, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, errors.Join(
		fmt.Errorf("WIF: %w", wifErr),
		fmt.Errorf("hex: %w", hexErr),
	))
}

func decodeWIF(s string, network *chaincfg.Params) ([]byte, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, err
	}
	if !wif.IsForNet(network) {
		return nil, ErrWrongNetwork
	}

	// DecodeWIF 会把超出范围的值静默取模，这里从原始载荷重新校验
	raw := base58.Decode(s)
	key := make([]byte, btcec.PrivKeyBytesLen)
	copy(key, raw[1:1+btcec.PrivKeyBytesLen])
	if err := ValidatePrivateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) != hex.EncodedLen(btcec.PrivKeyBytesLen) {
		return nil, fmt.Errorf("%w: 实际 %d 个字符", ErrInvalidHexKey, len(s))
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexKey, err)
	}
	if err := ValidatePrivateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

// KeyBytesToWIF 编码为压缩公钥格式的 WIF
func KeyBytesToWIF(key []byte, network *chaincfg.Params) (string, error) {
	if err := ValidatePrivateKey(key); err != nil {
		return "", err
	}
	priv, _ := btcec.PrivKeyFromBytes(key)
	wif, err := btcutil.NewWIF(priv, network, true)
	if err != nil {
		return "", fmt.Errorf("编码 WIF 失败: %w", err)
	}
	return wif.String(), nil
}

// PublicKey 返回 33 字节压缩公钥
func PublicKey(key []byte) ([]byte, error) {
	if err := ValidatePrivateKey(key); err != nil {
		return nil, err
	}
	_, pub := btcec.PrivKeyFromBytes(key)
	return pub.SerializeCompressed(), nil
}
