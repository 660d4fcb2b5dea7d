package menucfg

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownHandler indicates a definition references a handler name
	// missing from the builder's registry.
	ErrUnknownHandler = errors.New("unknown handler name")

	// ErrUnknownFormatter indicates a definition references a formatter
	// name missing from the builder's registry.
	ErrUnknownFormatter = errors.New("unknown formatter name")

	// ErrUnknownFormat indicates a definition file whose extension is
	// neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown definition format")
)

// DefinitionError represents a failure to load, decode, or build a menu
// definition.
type DefinitionError struct {
	Op  string // Stage that failed (e.g., "read", "decode", "build")
	Err error  // Underlying error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("menucfg: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("menucfg: %s", e.Op)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// NewDefinitionError creates a new definition error.
func NewDefinitionError(op string, err error) *DefinitionError {
	return &DefinitionError{Op: op, Err: err}
}

// IsDefinitionError checks if an error is a definition error.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}
