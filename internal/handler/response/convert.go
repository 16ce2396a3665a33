package response

import (
	"net/http"

	"zh-mnemonic/pkg/errno"

	"github.com/gin-gonic/gin"
)

// 转换接口沿用前端页面约定的扁平结构，不包在 Response.Data 里

// KeyToMnemonic 私钥 -> 助记词
type KeyToMnemonic struct {
	Success         bool   `json:"success"`
	InputType       string `json:"inputType"`
	PrivateKeyHex   string `json:"privateKeyHex"`
	ChineseMnemonic string `json:"chineseMnemonic"`
	BitcoinAddress  string `json:"bitcoinAddress"`
	EntropyHex      string `json:"entropyHex"`
}

// MnemonicToKey 助记词 -> 私钥
type MnemonicToKey struct {
	Success        bool   `json:"success"`
	InputType      string `json:"inputType"`
	Mnemonic       string `json:"mnemonic"`
	PrivateKey     string `json:"privateKey"` // WIF
	PrivateKeyHex  string `json:"privateKeyHex"`
	BitcoinAddress string `json:"bitcoinAddress"`
	EntropyHex     string `json:"entropyHex"`
}

// Translation 任意语言助记词 -> 中文
type Translation struct {
	Success         bool   `json:"success"`
	SourceWordlist  string `json:"sourceWordlist"`
	Detected        bool   `json:"detected"`
	EntropyHex      string `json:"entropyHex"`
	ChineseMnemonic string `json:"chineseMnemonic"`
	SeedHex         string `json:"seedHex"`
	DerivationPath  string `json:"derivationPath"`
	BitcoinAddress  string `json:"bitcoinAddress"`
}

// Failure 失败时的响应体
type Failure struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
}

func Flat(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, err error) {
	code, msg := errno.Decode(err)
	c.JSON(errno.HTTPStatus(err), Failure{
		Success: false,
		Code:    code,
		Error:   msg,
	})
}
