package main

import (
	"os"

	"github.com/Rehneet11/LeetNotes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
