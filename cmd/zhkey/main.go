package main

import "zh-mnemonic/cmd/zhkey/cmd"

func main() {
	cmd.Execute()
}
