package main

import (
	"os"

	"github.com/nothingbetterhealth/nbh-site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
