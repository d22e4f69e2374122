package main

import (
	"os"

	"github.com/biokg/go-biokg/cmd/biokg"
)

func main() {
	if err := biokg.Execute(); err != nil {
		os.Exit(1)
	}
}
