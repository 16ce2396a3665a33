package cmd

import (
	"fmt"

	"zh-mnemonic/pkg/bip32"
	"zh-mnemonic/pkg/errno"

	"github.com/spf13/cobra"
)

var newWords int

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "生成一个随机测试私钥",
	Long: `生成一个随机的比特币私钥，并显示对应的中文助记词和地址，仅用于演示和测试。
指定 --words 时改为生成标准 BIP-39 中文助记词，并派生 m/44'/0'/0'/0/0 地址。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wantMnemonic := cmd.Flags().Changed("words")
		if wantMnemonic && newWords <= 0 {
			return userError(errno.ErrBind.WithMessage("words 必须是 12 / 15 / 18 / 21 / 24 之一"))
		}

		svc, err := newConverter("english", false)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		if wantMnemonic {
			tr, err := svc.NewMnemonic(newWords)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(w, "正在生成新钱包...")
			fmt.Fprintln(w, "---------------------------------------------------")
			fmt.Fprintf(w, "助记词 (Mnemonic): \n%s\n", tr.Mnemonic)
			fmt.Fprintln(w, "---------------------------------------------------")
			fmt.Fprintf(w, "种子 (Seed Hex): %s\n", tr.SeedHex)
			fmt.Fprintf(w, "Bitcoin Address (%s) [%s]: %s\n", network, tr.Path, tr.Address)
			fmt.Fprintf(w, "账户扩展公钥 (%s): %s\n", bip32.BIP44BitcoinAccount, tr.AccountXpub)
			fmt.Fprintln(w, "---------------------------------------------------")
			fmt.Fprintln(w, "请妥善保管您的助记词！任何拥有助记词的人都可以控制该钱包的所有资产。")
			return nil
		}

		res, err := svc.NewTestKey()
		if err != nil {
			return userError(err)
		}

		fmt.Fprintln(w, "正在生成测试私钥...")
		printResult(w, res)
		fmt.Fprintf(w, "私钥 (WIF): %s\n", res.WIF)
		fmt.Fprintln(w, "仅用于测试，请勿向该地址转入真实资产。")
		return nil
	},
}

func init() {
	newCmd.Flags().IntVar(&newWords, "words", 0, "生成 12 / 15 / 18 / 21 / 24 个词的中文助记词")
	rootCmd.AddCommand(newCmd)
}
