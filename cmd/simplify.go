package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/proplogic"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [expression]",
	Short: "Rewrite an expression into an equivalent smaller form",
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

		simplifiedStmt, err := proplogic.Simplify(stmt, table)
		if err != nil {
			logger.Fatal("Failed to simplify expression", zap.Error(err))
		}
		fmt.Println(simplifiedStmt)
	},
}
