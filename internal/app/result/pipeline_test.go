package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errStage = errors.New("stage failed")

type stageCalls struct {
	a, b, c int
}

func newPipeline(calls *stageCalls, failAt ErrorType) Pipeline[string, int, bool] {
	return Pipeline[string, int, bool]{
		StepA: func() (string, error) {
			calls.a++
			if failAt == ErrorStepA {
				return "", errStage
			}
			return "some", nil
		},
		StepB: func(s string) (int, error) {
			calls.b++
			if failAt == ErrorStepB {
				return 0, errStage
			}
			return len(s), nil
		},
		StepC: func(n int) (bool, error) {
			calls.c++
			if failAt == ErrorStepC {
				return false, errStage
			}
			return n == 4, nil
		},
	}
}

func TestPipeline(t *testing.T) {
	testCases := []struct {
		name      string
		failAt    ErrorType
		wantCalls stageCalls
	}{
		{name: "all succeed", failAt: 0, wantCalls: stageCalls{1, 1, 1}},
		{name: "step a fails", failAt: ErrorStepA, wantCalls: stageCalls{1, 0, 0}},
		{name: "step b fails", failAt: ErrorStepB, wantCalls: stageCalls{1, 1, 0}},
		{name: "step c fails", failAt: ErrorStepC, wantCalls: stageCalls{1, 1, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var flat, early stageCalls

			got := newPipeline(&flat, tc.failAt).Run()
			want := newPipeline(&early, tc.failAt).RunEarlyReturn()

			assert.Equal(t, want, got)
			assert.Equal(t, tc.wantCalls, flat)
			assert.Equal(t, tc.wantCalls, early)

			if tc.failAt == 0 {
				v, ok := got.Value()
				assert.True(t, ok)
				assert.True(t, v)
				return
			}

			kind, failed := got.ErrorType()
			assert.True(t, failed)
			assert.Equal(t, tc.failAt, kind)
		})
	}
}
