package main

import (
	"os"

	"github.com/govalues/tvm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
