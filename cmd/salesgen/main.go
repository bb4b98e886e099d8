package main

import (
	"os"

	"github.com/spatsahani4100-alt/salesgen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
