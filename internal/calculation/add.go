package calculation

import (
	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/pkg/types"
)

// AddCalculation binds two operands to the addition primitive
type AddCalculation struct {
	a float64
	b float64
}

// NewAddCalculation creates an addition calculation over a and b
func NewAddCalculation(a, b float64) types.Calculation {
	return &AddCalculation{a: a, b: b}
}

// Execute returns the sum of the operands
func (c *AddCalculation) Execute() (float64, error) {
	return calc.Addition(c.a, c.b), nil
}

// A returns the first operand
func (c *AddCalculation) A() float64 { return c.a }

// B returns the second operand
func (c *AddCalculation) B() float64 { return c.b }

// String renders the calculation with its result
func (c *AddCalculation) String() string {
	return displayString("AddCalculation", "Add", c)
}

// GoString renders the calculation for debugging
func (c *AddCalculation) GoString() string {
	return debugString("AddCalculation", c)
}
