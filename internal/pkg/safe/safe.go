// Package safe isolates calls that must not take the process down.
package safe

import "fmt"

// Call runs fn and converts a panic into an error.
func Call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
