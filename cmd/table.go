package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/proplogic"
	"github.com/gnolang/proplogic/formatter"
)

var (
	tableJSONOutput bool
	tableStart      int
	tableEnd        int
)

var tableCmd = &cobra.Command{
	Use:   "table [expression]",
	Short: "Print the truth table of an expression",
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

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var table *proplogic.TruthTable
		runWithTimeout(ctx, func() {
			table, err = buildTable(stmt)
		})
		if err != nil {
			logger.Fatal("Failed to build truth table", zap.Error(err))
		}

		if tableJSONOutput {
			data, err := json.MarshalIndent(table.Rows(), "", "  ")
			if err != nil {
				logger.Fatal("Failed to marshal rows", zap.Error(err))
			}
			fmt.Println(string(data))
			return
		}
		fmt.Print(formatter.RenderTable(table, renderOptions()))
	},
}

func init() {
	tableCmd.Flags().IntVar(&tableStart, "start", 0, "first row index")
	tableCmd.Flags().IntVar(&tableEnd, "end", -1, "row limit, exclusive (-1 for the full table)")
	tableCmd.Flags().BoolVar(&tableJSONOutput, "json", false, "output rows as JSON")
}

func buildTable(stmt proplogic.Statement) (*proplogic.TruthTable, error) {
	if tableStart == 0 && tableEnd == -1 {
		return proplogic.NewTruthTable(stmt)
	}
	end := tableEnd
	if end == -1 {
		end = 1 << len(proplogic.Variables(stmt))
	}
	return proplogic.NewTruthTableRange(stmt, tableStart, end)
}

func renderOptions() formatter.Options {
	return formatter.Options{
		TrueLabel:  config.TrueLabel,
		FalseLabel: config.FalseLabel,
		NoColor:    config.NoColor,
	}
}
