package main

import (
	"os"

	"github.com/harsh8864/bharat-ai-tutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
