package main

import (
	"os"

	"github.com/rony4d/go-kred/cmd/kred/launcher"
)

func main() {
	// The launcher has already reported the error.
	if err := launcher.Launch(os.Args); err != nil {
		os.Exit(1)
	}
}
