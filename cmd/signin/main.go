package main

import (
	"os"

	"github.com/nfrund/signin/cmd/signin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
