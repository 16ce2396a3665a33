package cmd

import (
	"fmt"

	"zh-mnemonic/pkg/bip32"

	"github.com/spf13/cobra"
)

var (
	toZhFallback string
	toZhStrict   bool
	toZhHide     bool
)

// toZhCmd 任意语言助记词翻译成简体中文
var toZhCmd = &cobra.Command{
	Use:   "to-zh [助记词]",
	Short: "把任意语言的 BIP-39 助记词转换为简体中文",
	Long: `自动识别助记词所用的词表 (英、西、法、意、日、韩、葡、简中、繁中)，
用同一份熵重新编码为简体中文助记词，并派生 m/44'/0'/0'/0/0 地址用于核对。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args, "请粘贴 BIP-39 助记词\n> ", toZhHide)
		if err != nil {
			return err
		}

		svc, err := newConverter(toZhFallback, toZhStrict)
		if err != nil {
			return err
		}
		tr, err := svc.TranslateToChinese(input)
		if err != nil {
			return userError(err)
		}

		w := cmd.OutOrStdout()
		if tr.Detected {
			fmt.Fprintf(w, "识别的词表: %s\n", tr.Source)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "警告: 无法可靠识别助记词语言，已按 %s 词表校验\n", tr.Source)
		}
		fmt.Fprintf(w, "熵 (Entropy Hex): %s\n", tr.EntropyHex)
		fmt.Fprintf(w, "简体中文助记词 (BIP39): %s\n", tr.Mnemonic)
		fmt.Fprintf(w, "种子 (Seed Hex, 前 64 位): %s ...\n", tr.SeedHex[:64])
		fmt.Fprintf(w, "BIP44 第一个地址 (P2PKH, %s) [%s]: %s\n", network, tr.Path, tr.Address)
		fmt.Fprintf(w, "账户扩展公钥 (%s): %s\n", bip32.BIP44BitcoinAccount, tr.AccountXpub)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "核对建议: 把中文助记词导入任意兼容 BIP-39 的钱包，确认派生出的地址与上面一致。")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "安全提示: 不要把真实助记词粘贴到不可信的网站或分享给他人，演示请使用测试钱包。")
		return nil
	},
}

func init() {
	toZhCmd.Flags().StringVar(&toZhFallback, "fallback", "english", "无法识别语言时用于校验的词表")
	toZhCmd.Flags().BoolVar(&toZhStrict, "strict", false, "无法识别语言时直接报错")
	toZhCmd.Flags().BoolVar(&toZhHide, "hide-input", false, "从终端读取时不回显")
	rootCmd.AddCommand(toZhCmd)
}
