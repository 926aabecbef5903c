package types

// Calculation represents an arithmetic operation bound to two operands
type Calculation interface {
	// Execute runs the operation and returns its result
	Execute() (float64, error)

	// String renders the calculation as "<Name>: <a> <Word> <b> = <result>"
	String() string

	// GoString renders the calculation as "<Name>(a=<a>, b=<b>)"
	GoString() string

	// A returns the first operand
	A() float64

	// B returns the second operand
	B() float64
}

// CalculationConstructor builds a calculation bound to the given operands
type CalculationConstructor func(a, b float64) Calculation
