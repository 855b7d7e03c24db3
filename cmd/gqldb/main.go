package main

import (
	"os"

	"github.com/shyptr/gqldb/cmd/gqldb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
