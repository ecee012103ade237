package main

import (
	"os"

	"github.com/xpchart/xpchart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
