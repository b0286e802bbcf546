package logic

// Prove reports whether the statement is a tautology by exhaustively
// enumerating its truth table: 2^n evaluations for n variables, no
// shortcutting. The caller is responsible for bounding n.
func Prove(stmt Statement) (bool, error) {
	table, err := NewTruthTable(stmt)
	if err != nil {
		return false, err
	}
	return table.IsTautology(), nil
}
