package employee

import (
	"errors"
	"fmt"
)

// ErrLoad is matched by every error returned from loading the dataset.
var ErrLoad = errors.New("employee: dataset load failed")

// LoadError describes why the dataset could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("employee: load dataset from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
