package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"zh-mnemonic/internal/service"
	"zh-mnemonic/pkg/config"
	"zh-mnemonic/pkg/errno"
	"zh-mnemonic/pkg/logger"
	"zh-mnemonic/pkg/wordlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	network            string
	portugueseWordlist string
	verbose            bool
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "zhkey",
	Short: "比特币私钥与中文助记词互转工具",
	Long: `把比特币私钥 (WIF 或 64 位 hex) 编码为 24 个简体中文 BIP-39 助记词，
或把中文助记词还原为私钥；也可以把任意语言的 BIP-39 助记词翻译成中文。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			return logger.Init("development", "debug")
		}
		return nil
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&network, "network", "mainnet", "比特币网络: mainnet / testnet3 / regtest / signet")
	rootCmd.PersistentFlags().StringVar(&portugueseWordlist, "portuguese-wordlist", "", "覆盖内置葡萄牙语词表的文件 (每行一个词，共 2048 行)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
}

// newConverter 按全局标志构造转换服务
func newConverter(fallback string, strict bool) (*service.Converter, error) {
	cc := config.ConverterConfig{
		Network:            network,
		FallbackWordlist:   fallback,
		PortugueseWordlist: portugueseWordlist,
	}
	params, err := cc.NetworkParams()
	if err != nil {
		return nil, err
	}

	opts := service.Options{Network: params, StrictDetection: strict}
	if !strict {
		if opts.Fallback, err = cc.FallbackLanguage(); err != nil {
			return nil, err
		}
	}
	if portugueseWordlist != "" {
		if opts.Registry, err = wordlist.NewRegistry(wordlist.WithFile(wordlist.Portuguese, portugueseWordlist)); err != nil {
			return nil, err
		}
	}
	return service.NewConverter(opts)
}

// readInput 优先使用参数；没有参数时从标准输入读一行，hide 为 true 时不回显
func readInput(cmd *cobra.Command, args []string, prompt string, hide bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if hide {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", errors.New("--hide-input 只能在终端中使用")
		}
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("读取输入失败: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return line, nil
}

// userError 只把错误码对应的描述展示给用户，细节写入调试日志
func userError(err error) error {
	code, msg := errno.Decode(err)
	logger.Debug("命令执行失败", zap.Int("code", code), zap.Error(err))
	return errors.New(msg)
}
