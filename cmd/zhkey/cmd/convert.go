package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"zh-mnemonic/internal/handler/request"
	"zh-mnemonic/internal/handler/response"
	"zh-mnemonic/internal/service"
	"zh-mnemonic/pkg/errno"
	"zh-mnemonic/pkg/validator"

	"github.com/spf13/cobra"
)

var (
	convertJSON bool
	convertHide bool
)

// convertCmd 私钥和中文助记词互转
var convertCmd = &cobra.Command{
	Use:   "convert [私钥或中文助记词]",
	Short: "私钥 <-> 中文助记词",
	Long: `输入含汉字时按简体中文助记词解码为私钥，否则按 WIF 或 64 位 hex 私钥
编码为 24 个中文助记词。不带参数时从标准输入读取。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args, "请输入私钥或中文助记词\n> ", convertHide)
		if err != nil {
			return err
		}
		if err := validator.Struct(request.ConvertRequest{PrivateKey: input}); err != nil {
			if validator.IsMissing(err, "PrivateKey") {
				return userError(errno.ErrEmptyInput)
			}
			return userError(errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		}

		svc, err := newConverter("english", false)
		if err != nil {
			return err
		}
		res, err := svc.Convert(input)
		if err != nil {
			return userError(err)
		}

		out := cmd.OutOrStdout()
		if convertJSON {
			return printJSON(out, convertBody(res))
		}
		printResult(out, res)
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "以 JSON 输出，结构与 HTTP 接口一致")
	convertCmd.Flags().BoolVar(&convertHide, "hide-input", false, "从终端读取时不回显")
	rootCmd.AddCommand(convertCmd)
}

func convertBody(res *service.Result) interface{} {
	if res.InputType == service.InputMnemonic {
		return response.MnemonicToKey{
			Success:        true,
			InputType:      string(res.InputType),
			Mnemonic:       res.Mnemonic,
			PrivateKey:     res.WIF,
			PrivateKeyHex:  res.PrivateKeyHex,
			BitcoinAddress: res.Address,
			EntropyHex:     res.EntropyHex,
		}
	}
	return response.KeyToMnemonic{
		Success:         true,
		InputType:       string(res.InputType),
		PrivateKeyHex:   res.PrivateKeyHex,
		ChineseMnemonic: res.Mnemonic,
		BitcoinAddress:  res.Address,
		EntropyHex:      res.EntropyHex,
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printResult(w io.Writer, res *service.Result) {
	fmt.Fprintln(w, "---------------------------------------------------")
	if res.InputType == service.InputMnemonic {
		fmt.Fprintln(w, "输入类型: 中文助记词")
		fmt.Fprintf(w, "助记词 (Mnemonic): %s\n", res.Mnemonic)
		fmt.Fprintf(w, "私钥 (WIF): %s\n", res.WIF)
	} else {
		fmt.Fprintln(w, "输入类型: 比特币私钥")
		fmt.Fprintf(w, "中文助记词 (Mnemonic): %s\n", res.Mnemonic)
	}
	fmt.Fprintf(w, "私钥 (Hex): %s\n", res.PrivateKeyHex)
	fmt.Fprintf(w, "熵 (Entropy Hex): %s\n", res.EntropyHex)
	fmt.Fprintf(w, "比特币地址 (P2PKH): %s\n", res.Address)
	fmt.Fprintln(w, "---------------------------------------------------")
}
