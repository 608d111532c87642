package main

import (
	"os"

	"github.com/ameya/eduplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
