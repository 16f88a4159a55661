package async

import "github.com/pkg/errors"

// Errable runs fn in its own goroutine. A panic in fn is reported as its error.
func Errable(fn func() error) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				ch <- errors.Errorf("async: panic: %v", r)
			}
		}()
		ch <- fn()
	}()
	return ch
}
