// Package result provides a Success/Error value for chaining fallible steps.
//
// A Result holds exactly one of a success value or an ErrorType. FlatMap
// applies the next step only to a success and passes an error through
// untouched, so a sequence of steps reads left to right:
//
//	r := result.FlatMap(result.FlatMap(loadA(), toB), toC)
//
// The first failing step decides the ErrorType of the whole chain.
package result

import "fmt"

// ErrorType identifies the stage that failed.
type ErrorType int

const (
	ErrorStepA ErrorType = iota + 1
	ErrorStepB
	ErrorStepC
)

func (t ErrorType) String() string {
	switch t {
	case ErrorStepA:
		return "STEP_A"
	case ErrorStepB:
		return "STEP_B"
	case ErrorStepC:
		return "STEP_C"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// Result is either Success(value) or Error(kind). The zero value is not a
// valid Result; build one with Success or Error.
type Result[T any] struct {
	value   T
	errType ErrorType
}

// Success ...
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Error ...
func Error[T any](kind ErrorType) Result[T] {
	if kind == 0 {
		panic("result: Error requires a non-zero ErrorType")
	}
	return Result[T]{errType: kind}
}

// IsSuccess ...
func (r Result[T]) IsSuccess() bool {
	return r.errType == 0
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if !r.IsSuccess() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ErrorType returns the error kind and true, or zero and false on success.
func (r Result[T]) ErrorType() (ErrorType, bool) {
	return r.errType, !r.IsSuccess()
}

func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Error(%s)", r.errType)
}

// FlatMap applies action to a success value. An Error is returned as is and
// action is not called.
func FlatMap[T, U any](r Result[T], action func(T) Result[U]) Result[U] {
	if !r.IsSuccess() {
		return Error[U](r.errType)
	}
	return action(r.value)
}

// Map is FlatMap for steps that can't fail.
func Map[T, U any](r Result[T], transform func(T) U) Result[U] {
	return FlatMap(r, func(v T) Result[U] {
		return Success(transform(v))
	})
}

// Catch turns a (value, error) call into a Result, reporting any error as kind.
func Catch[T any](kind ErrorType, fn func() (T, error)) Result[T] {
	v, err := fn()
	if err != nil {
		return Error[T](kind)
	}
	return Success(v)
}
