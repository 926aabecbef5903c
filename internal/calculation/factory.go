package calculation

import (
	"sort"
	"strings"
	"sync"

	"github.com/calcforge/calc-repl/pkg/types"
)

// Factory maps operation names to calculation constructors. Names are
// case-insensitive and unique. The factory is safe for concurrent use,
// though the REPL only mutates it before the loop starts.
type Factory struct {
	mu           sync.RWMutex
	constructors map[string]types.CalculationConstructor
}

// NewFactory creates an empty factory
func NewFactory() *Factory {
	return &Factory{
		constructors: make(map[string]types.CalculationConstructor),
	}
}

// NewDefaultFactory creates a factory with the five built-in
// calculation types registered: add, subtract, multiply, divide, power.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.constructors["add"] = NewAddCalculation
	f.constructors["subtract"] = NewSubtractCalculation
	f.constructors["multiply"] = NewMultiplyCalculation
	f.constructors["divide"] = NewDivideCalculation
	f.constructors["power"] = NewPowerCalculation
	return f
}

// Register adds a name->constructor association. Registering a name
// that already exists fails with a DuplicateRegistrationError and
// leaves the factory unchanged.
func (f *Factory) Register(name string, ctor types.CalculationConstructor) error {
	key := strings.ToLower(name)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.constructors[key]; exists {
		return &DuplicateRegistrationError{Name: key}
	}

	f.constructors[key] = ctor
	return nil
}

// Create constructs the calculation registered under name, bound to
// the operands a and b. Unknown names fail with an
// UnsupportedOperationError naming the requested type.
func (f *Factory) Create(name string, a, b float64) (types.Calculation, error) {
	key := strings.ToLower(name)

	f.mu.RLock()
	ctor, exists := f.constructors[key]
	f.mu.RUnlock()

	if !exists {
		return nil, &UnsupportedOperationError{Name: key}
	}

	return ctor(a, b), nil
}

// Operations returns the registered operation names, sorted
func (f *Factory) Operations() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.constructors))
	for name := range f.constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
