package service

// ConverterService 私钥与中文助记词互转
type ConverterService interface {
	// Convert 根据输入自动判断方向：含汉字视为助记词，否则视为 WIF / hex 私钥
	Convert(raw string) (*Result, error)
	// TranslateToChinese 探测任意语言助记词的词表，并用同一份熵重新编码为简体中文
	TranslateToChinese(raw string) (*Translation, error)
	// NewTestKey 生成随机私钥及其中文助记词，仅用于测试
	NewTestKey() (*Result, error)
	// NewMnemonic 生成 words 个词的随机中文助记词，返回值与 TranslateToChinese 相同
	NewMnemonic(words int) (*Translation, error)
}
