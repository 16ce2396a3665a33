package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// BTCGenerator 比特币地址生成器
type BTCGenerator struct {
	network *chaincfg.Params
}

// NewBTCGenerator network 为 nil 时默认主网
func NewBTCGenerator(network *chaincfg.Params) *BTCGenerator {
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	return &BTCGenerator{network: network}
}

func (g *BTCGenerator) Network() *chaincfg.Params {
	return g.network
}

// PubKeyToAddress 将公钥字节 (压缩格式) 转换为 P2PKH 地址
func (g *BTCGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKey(pubKeyBytes, g.network)
	if err != nil {
		return "", fmt.Errorf("解析公钥失败: %w", err)
	}
	return addr.AddressPubKeyHash().EncodeAddress(), nil
}

// PrivKeyToAddress 私钥 -> 压缩公钥 -> P2PKH 地址
func (g *BTCGenerator) PrivKeyToAddress(key []byte) (string, error) {
	pub, err := PublicKey(key)
	if err != nil {
		return "", err
	}
	return g.PubKeyToAddress(pub)
}

// WIF 按本生成器的网络编码压缩格式 WIF
func (g *BTCGenerator) WIF(key []byte) (string, error) {
	return KeyBytesToWIF(key, g.network)
}

// DecodePrivateKey 按本生成器的网络解析私钥输入
func (g *BTCGenerator) DecodePrivateKey(input string) ([]byte, error) {
	return DecodePrivateKey(input, g.network)
}
