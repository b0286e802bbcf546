package logic

import "fmt"

// Row is a single truth table entry: one variable assignment and the
// statement's value under it. Index is the row's position in the full
// enumeration, so variable i holds bit i of Index.
type Row struct {
	Index      int        `json:"index"`
	Assignment Assignment `json:"assignment"`
	Value      bool       `json:"value"`
}

// Classification buckets a statement by its complete truth table.
type Classification int

const (
	_ Classification = iota
	// Tautology indicates the statement is true under every assignment.
	Tautology
	// Contradiction indicates the statement is false under every assignment.
	Contradiction
	// Contingency indicates the statement is true under some assignments
	// and false under others.
	Contingency
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingency:
		return "contingency"
	default:
		return "?"
	}
}

// TruthTable enumerates a statement's value over variable assignments.
// Column order is the statement's first-occurrence variable order and rows
// are produced in increasing index order. A TruthTable is read-only after
// construction.
type TruthTable struct {
	stmt      Statement
	variables []string
	rows      []Row
}

// NewTruthTable enumerates the full table: 2^n rows for n variables.
// Enumeration is O(2^n); the caller is responsible for bounding n.
func NewTruthTable(stmt Statement) (*TruthTable, error) {
	if stmt == nil {
		return nil, ErrInvalidStatement
	}
	vars := Variables(stmt)
	return newTruthTable(stmt, vars, 0, 1<<len(vars))
}

// NewTruthTableRange enumerates only the rows in the half-open interval
// [start, end). ErrRowRange is returned when the interval does not fit the
// full enumeration.
func NewTruthTableRange(stmt Statement, start, end int) (*TruthTable, error) {
	if stmt == nil {
		return nil, ErrInvalidStatement
	}
	vars := Variables(stmt)
	if limit := 1 << len(vars); start < 0 || end > limit || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) with %d variables", ErrRowRange, start, end, len(vars))
	}
	return newTruthTable(stmt, vars, start, end)
}

func newTruthTable(stmt Statement, vars []string, start, end int) (*TruthTable, error) {
	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		assignment := make(Assignment, len(vars))
		for j, name := range vars {
			bit, err := GetBit(i, j)
			if err != nil {
				return nil, err
			}
			assignment[name] = bit
		}
		value, err := Eval(stmt, assignment)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Index: i, Assignment: assignment, Value: value})
	}
	return &TruthTable{stmt: stmt, variables: vars, rows: rows}, nil
}

// Statement returns the statement the table was built from.
func (t *TruthTable) Statement() Statement { return t.stmt }

// Variables returns the variable names in column order.
func (t *TruthTable) Variables() []string { return t.variables }

// Rows returns the enumerated rows in increasing index order.
func (t *TruthTable) Rows() []Row { return t.rows }

// Complete reports whether the table covers every assignment.
func (t *TruthTable) Complete() bool {
	return len(t.rows) == 1<<len(t.variables)
}

// Classify buckets the statement as a tautology, contradiction, or
// contingency based on the enumerated rows.
func (t *TruthTable) Classify() Classification {
	allTrue, allFalse := true, true
	for _, row := range t.rows {
		if row.Value {
			allFalse = false
		} else {
			allTrue = false
		}
	}
	switch {
	case allTrue:
		return Tautology
	case allFalse:
		return Contradiction
	default:
		return Contingency
	}
}

// IsTautology reports whether every enumerated row is true.
func (t *TruthTable) IsTautology() bool { return t.Classify() == Tautology }

// IsContradiction reports whether every enumerated row is false.
func (t *TruthTable) IsContradiction() bool { return t.Classify() == Contradiction }

// IsContingency reports whether the rows mix true and false values.
func (t *TruthTable) IsContingency() bool { return t.Classify() == Contingency }
