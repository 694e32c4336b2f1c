package main

import (
	"os"

	"github.com/abhisek/studygen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
