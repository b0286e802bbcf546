// Package formatter renders truth tables as human-readable text.
package formatter

import (
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/gnolang/proplogic/internal/logic"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	trueStyle   = color.New(color.FgGreen)
	falseStyle  = color.New(color.FgRed)
)

// Options controls table rendering.
type Options struct {
	// TrueLabel and FalseLabel are the cell texts for the two truth values.
	TrueLabel  string
	FalseLabel string
	// NoColor disables ANSI styling. Alignment is computed on the raw cell
	// text either way, so colored and plain output line up identically.
	NoColor bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		TrueLabel:  "True",
		FalseLabel: "False",
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.TrueLabel == "" {
		o.TrueLabel = defaults.TrueLabel
	}
	if o.FalseLabel == "" {
		o.FalseLabel = defaults.FalseLabel
	}
	return o
}

// RenderTable formats a truth table with one aligned column per variable
// plus a trailing value column:
//
//	a     | b     | value |
//	-----------------------
//	False | False | False |
//	True  | False | False |
//	...
func RenderTable(table *logic.TruthTable, opts Options) string {
	opts = opts.withDefaults()

	headers := append(append([]string{}, table.Variables()...), "value")
	labelWidth := max(len(opts.TrueLabel), len(opts.FalseLabel))
	widths := lo.Map(headers, func(header string, _ int) int {
		return max(len(header), labelWidth)
	})

	var builder strings.Builder
	headerLine := renderLine(headers, widths)
	builder.WriteString(opts.paint(headerStyle, headerLine))
	builder.WriteByte('\n')
	builder.WriteString(strings.Repeat("-", len(headerLine)))
	builder.WriteByte('\n')

	for _, row := range table.Rows() {
		values := lo.Map(table.Variables(), func(name string, _ int) bool {
			return row.Assignment[name]
		})
		values = append(values, row.Value)

		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = opts.paintValue(pad(opts.label(v), widths[i]), v)
		}
		builder.WriteString(joinCells(cells))
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (o Options) label(v bool) string {
	if v {
		return o.TrueLabel
	}
	return o.FalseLabel
}

func (o Options) paint(style *color.Color, s string) string {
	if o.NoColor {
		return s
	}
	return style.Sprint(s)
}

func (o Options) paintValue(cell string, v bool) string {
	if v {
		return o.paint(trueStyle, cell)
	}
	return o.paint(falseStyle, cell)
}

func renderLine(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i])
	}
	return joinCells(padded)
}

func joinCells(cells []string) string {
	return strings.Join(cells, " | ") + " |"
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
