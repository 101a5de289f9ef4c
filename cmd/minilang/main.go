// Command minilang lexes and parses minilang source and prints the result.
package main

import (
	"os"

	"minilang/cmd/minilang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
