package main

import (
	"os"

	"github.com/stwalsh4118/tagit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
