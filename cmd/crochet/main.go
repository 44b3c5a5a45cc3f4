package main

import (
	"os"

	"github.com/msto63/crochet/cmd/crochet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
