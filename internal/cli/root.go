// Package cli implements the hillclimb command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/internal/logger"
)

var (
	showPath bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "hillclimb [file]",
	Short: "Count the fewest steps from S to E on an elevation map",
	Long: `Reads an elevation map (one row per line, 'a'..'z' plus one 'S' and
one 'E') from a file, or from stdin when no file or "-" is given, and
prints the minimum number of moves from S to E. A move goes to an
orthogonal neighbour at most one level higher.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runClimb,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage to stderr")
	rootCmd.Flags().BoolVar(&showPath, "path", false, "also print the cells of one shortest route")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runClimb(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if !showPath {
		steps, err := climb.FewestSteps(input)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), steps)
		return nil
	}

	route, err := climb.FindRoute(input)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, route.Steps)
	for _, c := range route.Path {
		fmt.Fprintln(out, c)
	}
	return nil
}

// readInput loads the map text and trims surrounding whitespace.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		logger.Debug("reading map from stdin")
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		logger.Debug("reading map from %s", args[0])
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
