package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/proplogic"
)

var proveCmd = &cobra.Command{
	Use:   "prove [expression]",
	Short: "Classify an expression as tautology, contradiction, or contingency",
	Long: "Builds the full truth table for the expression and reports its\n" +
		"classification. The exit status is 0 only for a tautology.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: please provide exactly one expression")
			os.Exit(1)
		}

		stmt, err := proplogic.Parse(args[0])
		if err != nil {
			logger.Fatal("Failed to parse expression", zap.Error(err))
		}
		if n := len(proplogic.Variables(stmt)); n > config.MaxVariables {
			logger.Fatal("Too many variables for table enumeration",
				zap.Int("variables", n),
				zap.Int("max", config.MaxVariables))
		}

		table, err := proplogic.NewTruthTable(stmt)
		if err != nil {
			logger.Fatal("Failed to build truth table", zap.Error(err))
		}

		classification := table.Classify()
		fmt.Println(classification)
		if classification != proplogic.Tautology {
			os.Exit(1)
		}
	},
}
