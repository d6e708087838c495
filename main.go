package main

import (
	"os"

	"github.com/mkoehler/sprechzeit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
