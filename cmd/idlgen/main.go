package main

import (
	"os"

	"github.com/mettadata/solana-idl-codegen/cmd/idlgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
