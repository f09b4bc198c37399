package main

import (
	"os"

	"github.com/dmitrymomot/datekit/cmd/datekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
