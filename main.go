package main

import (
	"os"

	"github.com/oasdoc/oasdoc/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		os.Exit(1)
	}
}
