// Command hillclimb prints the fewest steps from S to E on an elevation map.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hillclimb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
