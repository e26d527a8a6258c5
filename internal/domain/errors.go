package domain

import (
	"errors"
	"fmt"
)

// LoadErrorKind distinguishes why a profile could not be loaded.
type LoadErrorKind string

const (
	LoadErrorRead  LoadErrorKind = "read"
	LoadErrorParse LoadErrorKind = "parse"
)

// LoadError is a fatal failure before validation: the file could not be read,
// or its content is not a structured document. No ValidationResult exists
// when a LoadError is returned.
type LoadError struct {
	Path string
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadErrorRead:
		return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("invalid document %s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err wraps a LoadError of the given kind.
func IsLoadError(err error, kind LoadErrorKind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}
