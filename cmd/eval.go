package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/proplogic"
)

var assignFlags []string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an expression under a variable assignment",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: please provide exactly one expression")
			os.Exit(1)
		}

		assignment, err := parseAssignments(assignFlags)
		if err != nil {
			logger.Fatal("Invalid assignment", zap.Error(err))
		}

		value, err := proplogic.Eval(args[0], assignment)
		if err != nil {
			logger.Fatal("Failed to evaluate expression", zap.Error(err))
		}
		fmt.Println(value)
	},
}

func init() {
	evalCmd.Flags().StringSliceVarP(&assignFlags, "set", "s", nil,
		"variable assignment, e.g. -s a=true -s b=false (unset variables are false)")
}

// parseAssignments converts name=bool flag pairs into an Assignment.
func parseAssignments(pairs []string) (proplogic.Assignment, error) {
	assignment := make(proplogic.Assignment, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed assignment %q, expected name=bool", pair)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("malformed assignment %q, empty variable name", pair)
		}
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("malformed assignment %q: %w", pair, err)
		}
		assignment[name] = value
	}
	return assignment, nil
}
