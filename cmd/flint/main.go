package main

import (
	"os"

	"github.com/dosanma1/flint-cli/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
