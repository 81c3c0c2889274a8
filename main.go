package main

import (
	"os"

	"github.com/oguzk/denizci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
