package main

import (
	"os"

	"github.com/unclebandit/storefront/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
