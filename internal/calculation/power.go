package calculation

import (
	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/pkg/types"
)

// PowerCalculation binds two operands to the exponentiation primitive
type PowerCalculation struct {
	a float64
	b float64
}

// NewPowerCalculation creates an exponentiation calculation over a and b
func NewPowerCalculation(a, b float64) types.Calculation {
	return &PowerCalculation{a: a, b: b}
}

// Execute returns the first operand raised to the power of the second
func (c *PowerCalculation) Execute() (float64, error) {
	return calc.Power(c.a, c.b), nil
}

// A returns the first operand
func (c *PowerCalculation) A() float64 { return c.a }

// B returns the second operand
func (c *PowerCalculation) B() float64 { return c.b }

// String renders the calculation with its result
func (c *PowerCalculation) String() string {
	return displayString("PowerCalculation", "Power", c)
}

// GoString renders the calculation for debugging
func (c *PowerCalculation) GoString() string {
	return debugString("PowerCalculation", c)
}
