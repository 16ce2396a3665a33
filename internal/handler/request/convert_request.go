package request

// ConvertRequest 转换请求，privateKey 同时接受 WIF / hex 私钥和中文助记词
type ConvertRequest struct {
	PrivateKey string `json:"privateKey" binding:"required,notblank,max=1024"`
}

// TranslateRequest 任意语言助记词转中文
type TranslateRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required,notblank,max=1024"`
}
