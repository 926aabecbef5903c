package calculation

import "fmt"

// DuplicateRegistrationError is returned when a calculation type name
// is registered a second time. The registry is left unchanged.
type DuplicateRegistrationError struct {
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("calculation type already registered: '%s'", e.Name)
}

// UnsupportedOperationError is returned when no calculation type is
// registered under the requested name. Its message is part of the REPL
// output contract.
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Unsupported calculation type: '%s'.", e.Name)
}
