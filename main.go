package main

import (
	"os"

	"biomarkerprep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
