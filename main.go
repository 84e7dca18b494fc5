package main

import (
	"os"

	"github.com/tgillard/clutch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
