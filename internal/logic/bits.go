package logic

import "fmt"

// GetBit reports whether bit c of x is set, where bit 0 is the low-order
// bit. In a truth table enumeration this is the value assigned to the
// variable at position c in row x. ErrNegativeBit is returned when either
// input is negative.
func GetBit(x, c int) (bool, error) {
	if x < 0 || c < 0 {
		return false, fmt.Errorf("%w: x=%d, c=%d", ErrNegativeBit, x, c)
	}
	return x>>uint(c)&1 == 1, nil
}
