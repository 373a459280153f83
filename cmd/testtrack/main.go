package main

import (
	"os"

	"testtrack/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute())
}
