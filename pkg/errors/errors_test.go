package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "GLM.Fit",
			kind:     "optimization failed",
			err:      fmt.Errorf("test error"),
			wantMsg:  "glmkit: GLM.Fit: optimization failed: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "GLM.Fit",
			kind:     "no usable result",
			err:      nil,
			wantMsg:  "glmkit: GLM.Fit: no usable result",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
			if tt.err != nil && !Is(err, tt.err) {
				t.Error("Wrapped cause should stay matchable with Is")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("GLM.Fit", 3, 2, 1)

	want := "glmkit: GLM.Fit: dimension mismatch on axis 1 (columns). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 || dimErr.Axis != 1 {
		t.Errorf("DimensionError fields = %+v", dimErr)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("GLM", "Weights")

	want := "glmkit: GLM: this model is not fitted yet. Call Fit() before using Weights()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("NewGLM", "class count must be at least 2")

	want := "glmkit: NewGLM: class count must be at least 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewNumericalInstabilityError(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		row    int
		want   string
	}{
		{
			name:   "single value with row",
			values: []float64{2.5},
			row:    7,
			want:   "glmkit: numerical instability detected in NegLogLikelihood at row 7. Values: [2.5]",
		},
		{
			name:   "no row context",
			values: []float64{1, 2},
			row:    -1,
			want:   "glmkit: numerical instability detected in NegLogLikelihood. Values: [1, 2]",
		},
		{
			name:   "long value list is truncated",
			values: []float64{1, 2, 3, 4, 5, 6, 7},
			row:    0,
			want:   "glmkit: numerical instability detected in NegLogLikelihood at row 0. Values: [1, 2, 3, 4, 5, ...]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNumericalInstabilityError("NegLogLikelihood", tt.values, tt.row)
			if err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
			}

			var numErr *NumericalInstabilityError
			if !As(err, &numErr) {
				t.Error("Error should be castable to *NumericalInstabilityError")
			}
		})
	}
}

func TestConvergenceWarning(t *testing.T) {
	w := NewConvergenceWarning("L-BFGS", 100, "line search failed")
	want := "L-BFGS stopped after 100 iterations without converging: line search failed"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}

	w = NewConvergenceWarning("L-BFGS", 100, "")
	want = "L-BFGS stopped after 100 iterations without converging"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}
}

func TestWarnUsesInstalledHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	warning := NewConvergenceWarning("L-BFGS", 42, "")
	Warn(warning)

	if captured == nil {
		t.Fatal("handler was not invoked")
	}
	var conv *ConvergenceWarning
	if !As(captured, &conv) || conv.Iterations != 42 {
		t.Errorf("handler received %v, want the original ConvergenceWarning", captured)
	}
}

func TestRecoverPreservesErrorPanics(t *testing.T) {
	sentinel := New("boom")

	run := func() (err error) {
		defer Recover(&err, "test op")
		panic(sentinel)
	}

	err := run()
	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}
	if !Is(err, sentinel) {
		t.Errorf("recovered error %v should match the panicked error", err)
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Error("recovered error should be castable to *PanicError")
	}
	if panicErr.Operation != "test op" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "test op")
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("ok op", func() error { return nil })
	if err != nil {
		t.Errorf("SafeExecute returned %v for a clean function", err)
	}

	cause := New("inner failure")
	err = SafeExecute("failing op", func() error { return cause })
	if !Is(err, cause) {
		t.Errorf("SafeExecute should pass through returned errors, got %v", err)
	}

	err = SafeExecute("panicking op", func() error { panic("kaboom") })
	if err == nil {
		t.Fatal("SafeExecute should convert panics to errors")
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("converted error %v should mention the panic value", err)
	}
}
