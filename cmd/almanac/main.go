// Command almanac finds the closest destination of seeds remapped through a
// chain of stages.
package main

import (
	"os"

	"github.com/ib-77/almanac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
