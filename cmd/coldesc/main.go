package main

import (
	"os"

	"github.com/andreyvit/tstruct/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
