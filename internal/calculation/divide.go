package calculation

import (
	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/pkg/types"
)

// DivideCalculation binds two operands to the division primitive
type DivideCalculation struct {
	a float64
	b float64
}

// NewDivideCalculation creates a division calculation over a and b
func NewDivideCalculation(a, b float64) types.Calculation {
	return &DivideCalculation{a: a, b: b}
}

// Execute returns the first operand divided by the second. A zero
// divisor surfaces calc.ErrDivisionByZero unchanged.
func (c *DivideCalculation) Execute() (float64, error) {
	return calc.Division(c.a, c.b)
}

// A returns the first operand
func (c *DivideCalculation) A() float64 { return c.a }

// B returns the second operand
func (c *DivideCalculation) B() float64 { return c.b }

// String renders the calculation with its result
func (c *DivideCalculation) String() string {
	return displayString("DivideCalculation", "Divide", c)
}

// GoString renders the calculation for debugging
func (c *DivideCalculation) GoString() string {
	return debugString("DivideCalculation", c)
}
