package main

import (
	"os"

	"zh-mnemonic/internal/handler"
	"zh-mnemonic/internal/server"
	"zh-mnemonic/internal/service"
	"zh-mnemonic/pkg/config"
	"zh-mnemonic/pkg/logger"
	"zh-mnemonic/pkg/wordlist"

	"go.uber.org/zap"

	_ "zh-mnemonic/docs/swagger"
)

// @title Chinese Mnemonic Converter API
// @version 1.0
// @description Bitcoin private key <-> Simplified Chinese BIP-39 mnemonic

// @license.name MIT

// @host localhost:8080
// @BasePath /api
func main() {
	// 0. 初始化 Config
	config.Init()
	cfg := config.Global

	// 1. 初始化 Logger
	if err := logger.Init(cfg.App.Env, cfg.App.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 2. 加载词表，配置了 portuguese_wordlist 时覆盖内置的葡萄牙语词表
	registry, err := wordlist.NewRegistry(
		wordlist.WithFile(wordlist.Portuguese, cfg.Converter.PortugueseWordlist),
	)
	if err != nil {
		logger.Fatal("加载词表失败", zap.Error(err))
	}
	langs := make([]string, 0, 9)
	for _, l := range registry.Available() {
		langs = append(langs, l.String())
	}
	logger.Info("词表加载完成", zap.Strings("languages", langs))

	// 3. 初始化转换服务 (Validate 已保证两项配置合法)
	network, _ := cfg.Converter.NetworkParams()
	fallback, _ := cfg.Converter.FallbackLanguage()
	svc, err := service.NewConverter(service.Options{
		Registry: registry,
		Network:  network,
		Fallback: fallback,
	})
	if err != nil {
		logger.Fatal("初始化转换服务失败", zap.Error(err))
	}
	logger.Info("转换服务就绪",
		zap.String("network", network.Name),
		zap.Stringer("fallback", fallback))

	// 4. HTTP Router
	r := server.NewHTTPRouter(handler.NewConvertHandler(svc), cfg.App.StaticDir)

	// 5. 运行 (阻塞)
	app := server.New(server.Config{HttpPort: cfg.App.HttpPort}, r)
	if err := app.Run(); err != nil {
		logger.Error("服务异常退出", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("系统已退出")
}
