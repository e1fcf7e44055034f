package service

import (
	"sync"

	app_errors "orchestrator/backend/internal/errors"
)

// Condition is the process-wide provider availability state. RateLimited
// and MissingCredential are the only failures that block submissions; all
// others are absorbed inside the conversation pipeline.
type Condition string

const (
	ConditionOK                Condition = "ok"
	ConditionRateLimited       Condition = "rate_limited"
	ConditionMissingCredential Condition = "missing_credential"
)

// ProviderState holds the blocking condition. It is shared by the
// conversation service (which raises rate limiting) and the provider
// handler (which clears conditions on retry or credential swap).
type ProviderState struct {
	mu   sync.RWMutex
	cond Condition
}

func NewProviderState(hasCredential bool) *ProviderState {
	cond := ConditionOK
	if !hasCredential {
		cond = ConditionMissingCredential
	}
	return &ProviderState{cond: cond}
}

func (s *ProviderState) Condition() Condition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cond
}

// SetRateLimited raises the blocking quota condition. It never downgrades
// a missing credential, which takes precedence.
func (s *ProviderState) SetRateLimited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cond != ConditionMissingCredential {
		s.cond = ConditionRateLimited
	}
}

func (s *ProviderState) SetMissingCredential() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cond = ConditionMissingCredential
}

// Clear resets the condition to OK. Used by both recovery actions:
// wait-and-retry and credential swap.
func (s *ProviderState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cond = ConditionOK
}

// Guard returns the domain error matching the active blocking condition,
// or nil when submissions may proceed.
func (s *ProviderState) Guard() error {
	switch s.Condition() {
	case ConditionRateLimited:
		return app_errors.ErrRateLimited
	case ConditionMissingCredential:
		return app_errors.ErrNoCredential
	default:
		return nil
	}
}
