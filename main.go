package main

import (
	"os"

	"github.com/ackhava/homepage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
