// Package calc provides the pure arithmetic primitives behind the
// calculator's operations.
package calc

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned when a division has a zero divisor.
// Its message is part of the REPL output contract.
var ErrDivisionByZero = errors.New("Cannot divide by zero.")

// Addition returns the sum of a and b
func Addition(a, b float64) float64 {
	return a + b
}

// Subtraction returns a minus b
func Subtraction(a, b float64) float64 {
	return a - b
}

// Multiplication returns the product of a and b
func Multiplication(a, b float64) float64 {
	return a * b
}

// Division returns a divided by b, or ErrDivisionByZero when b is zero
func Division(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns a raised to the power of b
func Power(a, b float64) float64 {
	return math.Pow(a, b)
}
