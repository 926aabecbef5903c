// Package calculation implements the calculation variants and the
// factory that constructs them from user-supplied operation names.
package calculation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/calcforge/calc-repl/pkg/types"
)

// FormatOperand renders a float the way the calculator displays operands
// and results: integral values keep a trailing ".0" (10.0, not 10),
// everything else renders in shortest form.
func FormatOperand(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e21 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// displayString renders "<Name>: <a> <Word> <b> = <result>". The result
// is recomputed at render time; operands are immutable and the
// primitives are pure, so the render is deterministic. A failing
// calculation renders its error message in the result position.
func displayString(name, word string, c types.Calculation) string {
	result, err := c.Execute()
	if err != nil {
		return fmt.Sprintf("%s: %s %s %s = %s", name, FormatOperand(c.A()), word, FormatOperand(c.B()), err)
	}
	return fmt.Sprintf("%s: %s %s %s = %s", name, FormatOperand(c.A()), word, FormatOperand(c.B()), FormatOperand(result))
}

// debugString renders "<Name>(a=<a>, b=<b>)"
func debugString(name string, c types.Calculation) string {
	return fmt.Sprintf("%s(a=%s, b=%s)", name, FormatOperand(c.A()), FormatOperand(c.B()))
}
