package handler

import (
	"time"

	"zh-mnemonic/internal/handler/request"
	"zh-mnemonic/internal/handler/response"
	"zh-mnemonic/internal/middleware"
	"zh-mnemonic/internal/service"
	"zh-mnemonic/pkg/errno"
	"zh-mnemonic/pkg/logger"
	"zh-mnemonic/pkg/monitor"
	"zh-mnemonic/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ConvertHandler struct {
	svc service.ConverterService
}

func NewConvertHandler(svc service.ConverterService) *ConvertHandler {
	// 请求结构体用到 notblank，绑定前必须注册
	validator.Init()
	return &ConvertHandler{svc: svc}
}

// Convert 私钥与中文助记词互转
// @Summary 私钥 <-> 中文助记词
// @Description 含汉字的输入按简体中文助记词解码，否则按 WIF 或 64 位 hex 私钥编码为 24 词助记词
// @Tags Converter
// @Accept json
// @Produce json
// @Param request body request.ConvertRequest true "WIF / hex 私钥或中文助记词"
// @Success 200 {object} response.KeyToMnemonic
// @Failure 400 {object} response.Failure
// @Failure 500 {object} response.Failure
// @Router /convert-bitcoin-key [post]
func (h *ConvertHandler) Convert(c *gin.Context) {
	var req request.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err, "PrivateKey"))
		return
	}

	start := time.Now()
	res, err := h.svc.Convert(req.PrivateKey)
	if err != nil {
		h.fail(c, err)
		return
	}
	monitor.Business.ObserveConversion(string(res.InputType), time.Since(start))
	logger.Info("转换成功",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("input_type", string(res.InputType)))

	if res.InputType == service.InputMnemonic {
		response.Flat(c, response.MnemonicToKey{
			Success:        true,
			InputType:      string(res.InputType),
			Mnemonic:       res.Mnemonic,
			PrivateKey:     res.WIF,
			PrivateKeyHex:  res.PrivateKeyHex,
			BitcoinAddress: res.Address,
			EntropyHex:     res.EntropyHex,
		})
		return
	}
	response.Flat(c, response.KeyToMnemonic{
		Success:         true,
		InputType:       string(res.InputType),
		PrivateKeyHex:   res.PrivateKeyHex,
		ChineseMnemonic: res.Mnemonic,
		BitcoinAddress:  res.Address,
		EntropyHex:      res.EntropyHex,
	})
}

// Translate 任意语言助记词转简体中文
// @Summary 助记词转中文
// @Description 自动识别助记词语言，用同一份熵重新编码为简体中文，并给出 m/44'/0'/0'/0/0 地址用于核对
// @Tags Converter
// @Accept json
// @Produce json
// @Param request body request.TranslateRequest true "任意 BIP-39 语言的助记词"
// @Success 200 {object} response.Translation
// @Failure 400 {object} response.Failure
// @Router /v1/translate [post]
func (h *ConvertHandler) Translate(c *gin.Context) {
	var req request.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err, "Mnemonic"))
		return
	}

	start := time.Now()
	tr, err := h.svc.TranslateToChinese(req.Mnemonic)
	if err != nil {
		h.fail(c, err)
		return
	}
	monitor.Business.ObserveConversion("translate", time.Since(start))
	monitor.Business.ObserveDetection(tr.Source.String(), tr.Detected)

	response.Flat(c, response.Translation{
		Success:         true,
		SourceWordlist:  tr.Source.String(),
		Detected:        tr.Detected,
		EntropyHex:      tr.EntropyHex,
		ChineseMnemonic: tr.Mnemonic,
		SeedHex:         tr.SeedHex,
		DerivationPath:  tr.Path,
		BitcoinAddress:  tr.Address,
	})
}

func (h *ConvertHandler) fail(c *gin.Context, err error) {
	code, _ := errno.Decode(err)
	monitor.Business.ObserveFailure(code)
	// 只记录错误码，不记录输入内容
	logger.Warn("转换失败",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Int("code", code))
	response.Fail(c, err)
}

// bindError 缺少字段按空输入处理，与旧接口的返回保持一致
func bindError(err error, field string) error {
	if validator.IsMissing(err, field) {
		return errno.ErrEmptyInput
	}
	return errno.ErrBind.WithMessage(validator.GetErrorMsg(err))
}
