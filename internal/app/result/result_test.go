package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	r := Success(42)

	assert.True(t, r.IsSuccess())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	_, failed := r.ErrorType()
	assert.False(t, failed)
	assert.Equal(t, "Success(42)", r.String())
}

func TestError(t *testing.T) {
	r := Error[int](ErrorStepB)

	assert.False(t, r.IsSuccess())
	v, ok := r.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	kind, failed := r.ErrorType()
	assert.True(t, failed)
	assert.Equal(t, ErrorStepB, kind)
	assert.Equal(t, "Error(STEP_B)", r.String())

	assert.Panics(t, func() { Error[int](0) })
}

func TestFlatMap(t *testing.T) {
	calls := 0
	double := func(v int) Result[int] {
		calls++
		return Success(v * 2)
	}

	r := FlatMap(Success(21), double)
	v, _ := r.Value()
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	r = FlatMap(Error[int](ErrorStepA), double)
	kind, _ := r.ErrorType()
	assert.Equal(t, ErrorStepA, kind)
	assert.Equal(t, 1, calls, "action must not run on an error")
}

func TestFlatMap_ChangesType(t *testing.T) {
	parse := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Error[int](ErrorStepB)
		}
		return Success(n)
	}

	v, ok := FlatMap(Success("7"), parse).Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	kind, _ := FlatMap(Success("x"), parse).ErrorType()
	assert.Equal(t, ErrorStepB, kind)
}

func TestMap(t *testing.T) {
	v, _ := Map(Success(3), strconv.Itoa).Value()
	assert.Equal(t, "3", v)

	kind, _ := Map(Error[int](ErrorStepC), strconv.Itoa).ErrorType()
	assert.Equal(t, ErrorStepC, kind)
}

func TestCatch(t *testing.T) {
	r := Catch(ErrorStepA, func() (string, error) { return "ok", nil })
	v, _ := r.Value()
	assert.Equal(t, "ok", v)

	r = Catch(ErrorStepA, func() (string, error) { return "", errors.New("boom") })
	kind, _ := r.ErrorType()
	assert.Equal(t, ErrorStepA, kind)
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "STEP_A", ErrorStepA.String())
	assert.Equal(t, "STEP_C", ErrorStepC.String())
	assert.Equal(t, "ErrorType(9)", ErrorType(9).String())
}
