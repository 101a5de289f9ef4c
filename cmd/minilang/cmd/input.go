package cmd

import (
	"fmt"
	"os"
)

const sampleSource = `let x = 10;
let y = x * (2 + 3.5);
if (y >= 20) {
	let z = -y;
} else {
	x == y;
}
`

// readSource picks the program text: -e wins, then the file argument, then
// the built-in sample.
func readSource(args []string, inline string) (name, src string, err error) {
	switch {
	case inline != "":
		if len(args) > 0 {
			return "", "", fmt.Errorf("use either a file or -e, not both")
		}
		return "<expr>", inline, nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read error: %w", err)
		}
		return args[0], string(data), nil
	default:
		return "<sample>", sampleSource, nil
	}
}
