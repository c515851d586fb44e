package model

import (
	"sync"
	"testing"

	"github.com/YuminosukeSato/glmkit/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	sm := NewStateManager()

	if sm.IsFitted() {
		t.Error("new manager reports fitted")
	}
	if err := sm.RequireFitted("GLM", "Weights"); err == nil {
		t.Error("RequireFitted passed on an unfitted manager")
	}

	sm.SetDimensions(100, 3, 4)
	sm.SetFitted()

	if !sm.IsFitted() {
		t.Error("manager not fitted after SetFitted")
	}
	if err := sm.RequireFitted("GLM", "Weights"); err != nil {
		t.Errorf("RequireFitted failed on a fitted manager: %v", err)
	}
	if n, m, c := sm.GetDimensions(); n != 100 || m != 3 || c != 4 {
		t.Errorf("GetDimensions() = (%d, %d, %d), want (100, 3, 4)", n, m, c)
	}

	sm.Reset()
	if sm.IsFitted() {
		t.Error("manager still fitted after Reset")
	}
	if n, m, c := sm.GetDimensions(); n != 0 || m != 0 || c != 0 {
		t.Errorf("dimensions not cleared by Reset: (%d, %d, %d)", n, m, c)
	}
}

func TestStateManagerRequireFittedError(t *testing.T) {
	sm := NewStateManager()

	err := sm.RequireFitted("GLM", "Probabilities")
	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
	if nfErr.ModelName != "GLM" || nfErr.Method != "Probabilities" {
		t.Errorf("error names %q.%q, want GLM.Probabilities", nfErr.ModelName, nfErr.Method)
	}
}

func TestStateManagerConcurrentReads(t *testing.T) {
	sm := NewStateManager()
	sm.SetDimensions(10, 2, 3)
	sm.SetFitted()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if !sm.IsFitted() {
					t.Error("fitted flag flickered under concurrent reads")
					return
				}
				sm.GetDimensions()
			}
		}()
	}
	wg.Wait()
}
