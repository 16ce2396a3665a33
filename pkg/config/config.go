package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"zh-mnemonic/pkg/wordlist"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Converter ConverterConfig `mapstructure:"converter"`
}

type AppConfig struct {
	Env       string `mapstructure:"env"`
	HttpPort  string `mapstructure:"http_port"`
	LogLevel  string `mapstructure:"log_level"`
	StaticDir string `mapstructure:"static_dir"` // 前端静态页面目录，为空则不挂载
}

type ConverterConfig struct {
	Network            string `mapstructure:"network"`             // mainnet / testnet3 / regtest / signet
	FallbackWordlist   string `mapstructure:"fallback_wordlist"`   // 语言探测失败时使用的词表
	PortugueseWordlist string `mapstructure:"portuguese_wordlist"` // 覆盖内置葡萄牙语词表的 portuguese.txt 路径
}

var Global Config

var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet3": &chaincfg.TestNet3Params,
	"regtest":  &chaincfg.RegressionNetParams,
	"signet":   &chaincfg.SigNetParams,
}

// Load 读取配置文件和环境变量 (APP_HTTP_PORT 覆盖 app.http_port)。
// paths 为空时在 "." 和 "./config" 下查找 config.yaml。
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init 加载配置到 Global，失败直接退出
func Init() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Fatal error config: %s \n", err)
	}
	Global = *cfg
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.log_level", "")
	v.SetDefault("app.static_dir", "")

	v.SetDefault("converter.network", "mainnet")
	v.SetDefault("converter.fallback_wordlist", "english")
	v.SetDefault("converter.portuguese_wordlist", "")
}

// Validate 校验网络名和词表名
func (c *Config) Validate() error {
	if _, err := c.Converter.NetworkParams(); err != nil {
		return err
	}
	if _, err := c.Converter.FallbackLanguage(); err != nil {
		return err
	}
	return nil
}

func (c ConverterConfig) NetworkParams() (*chaincfg.Params, error) {
	params, ok := networks[strings.ToLower(c.Network)]
	if !ok {
		return nil, fmt.Errorf("未知的网络: %q", c.Network)
	}
	return params, nil
}

func (c ConverterConfig) FallbackLanguage() (wordlist.Language, error) {
	return wordlist.ParseLanguage(c.FallbackWordlist)
}
