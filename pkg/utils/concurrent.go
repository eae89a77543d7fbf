// nolint: revive
package utils

import (
	"fmt"
	"runtime/debug"
)

// SafelyRun executes function and converts a panic into an error.
func SafelyRun(function func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w\n%s", e, string(debug.Stack()))
			} else {
				err = fmt.Errorf("unknown panic\n%s", string(debug.Stack()))
			}
		}
	}()

	function()

	return nil
}

// SafelyGo runs function on its own goroutine; a panic is routed to handleError
// instead of taking the process down.
func SafelyGo(function func(), handleError func(error)) {
	go func() {
		err := SafelyRun(function)
		if err != nil {
			handleError(err)
		}
	}()
}

// IfErrReturn runs fns in order and stops at the first error.
func IfErrReturn(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
