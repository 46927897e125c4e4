package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/subdao/cmd/subdao"
)

func main() {
	rootCmd := subdao.BuildSubdaoCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
