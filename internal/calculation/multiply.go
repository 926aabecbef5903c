package calculation

import (
	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/pkg/types"
)

// MultiplyCalculation binds two operands to the multiplication primitive
type MultiplyCalculation struct {
	a float64
	b float64
}

// NewMultiplyCalculation creates a multiplication calculation over a and b
func NewMultiplyCalculation(a, b float64) types.Calculation {
	return &MultiplyCalculation{a: a, b: b}
}

// Execute returns the product of the operands
func (c *MultiplyCalculation) Execute() (float64, error) {
	return calc.Multiplication(c.a, c.b), nil
}

// A returns the first operand
func (c *MultiplyCalculation) A() float64 { return c.a }

// B returns the second operand
func (c *MultiplyCalculation) B() float64 { return c.b }

// String renders the calculation with its result
func (c *MultiplyCalculation) String() string {
	return displayString("MultiplyCalculation", "Multiply", c)
}

// GoString renders the calculation for debugging
func (c *MultiplyCalculation) GoString() string {
	return debugString("MultiplyCalculation", c)
}
