package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/meshdom/meshdom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
