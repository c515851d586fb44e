// Package model provides fitted-state management for estimators.
package model

import (
	"sync"

	"github.com/YuminosukeSato/glmkit/pkg/errors"
)

// StateManager tracks whether an estimator has been fitted, plus the data
// dimensions seen at fit time. It is meant to be composed into estimator
// structs rather than embedded as a base class.
//
// The mutex only guards the flag and dimension bookkeeping; it does not make
// the owning estimator safe for concurrent fitting.
type StateManager struct {
	fitted bool
	mu     sync.RWMutex

	nSamples  int
	nFeatures int
	nClasses  int
}

// NewStateManager creates a new StateManager in the unfitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset returns the manager to the unfitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nSamples = 0
	s.nFeatures = 0
	s.nClasses = 0
}

// SetDimensions records the data dimensions seen during fitting.
func (s *StateManager) SetDimensions(nSamples, nFeatures, nClasses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nSamples = nSamples
	s.nFeatures = nFeatures
	s.nClasses = nClasses
}

// GetDimensions returns the data dimensions seen during fitting.
func (s *StateManager) GetDimensions() (nSamples, nFeatures, nClasses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nSamples, s.nFeatures, s.nClasses
}

// RequireFitted returns a NotFittedError naming the model and the method
// that needs fitted state, or nil if the model has been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
