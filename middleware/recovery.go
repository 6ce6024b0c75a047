package middleware

import (
	"fmt"
	"runtime/debug"

	"aoc_solvers/utils"
)

// PanicError is returned by Recover when the wrapped function panicked.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recover runs fn and turns a panic into a *PanicError after logging it.
func Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			utils.Logger.Errorw("Panic recovered",
				"error", r,
				"stack", string(stack))
			err = &PanicError{Value: r, Stack: stack}
		}
	}()
	return fn()
}
