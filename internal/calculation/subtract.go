package calculation

import (
	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/pkg/types"
)

// SubtractCalculation binds two operands to the subtraction primitive
type SubtractCalculation struct {
	a float64
	b float64
}

// NewSubtractCalculation creates a subtraction calculation over a and b
func NewSubtractCalculation(a, b float64) types.Calculation {
	return &SubtractCalculation{a: a, b: b}
}

// Execute returns the first operand minus the second
func (c *SubtractCalculation) Execute() (float64, error) {
	return calc.Subtraction(c.a, c.b), nil
}

// A returns the first operand
func (c *SubtractCalculation) A() float64 { return c.a }

// B returns the second operand
func (c *SubtractCalculation) B() float64 { return c.b }

// String renders the calculation with its result
func (c *SubtractCalculation) String() string {
	return displayString("SubtractCalculation", "Subtract", c)
}

// GoString renders the calculation for debugging
func (c *SubtractCalculation) GoString() string {
	return debugString("SubtractCalculation", c)
}
