package main

import (
	"os"

	"github.com/campsched/campsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
