package authflow

import (
	"sync"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/countdown"
	"github.com/google/uuid"
)

// entry pairs a flow with its resend cooldown. The cooldown lives with the
// flow, not with any page instance, so navigating away and back does not
// reset it.
type entry struct {
	flow   domain.Flow
	resend *countdown.Cooldown
}

// Store keeps pending-verification flows in memory, keyed by flow id, each
// with a fixed TTL. It replaces navigation-carried state: the client round-
// trips only the opaque flow id.
type Store struct {
	mu       sync.Mutex
	flows    map[string]*entry
	ttl      time.Duration
	cooldown time.Duration
	now      func() time.Time
}

// NewStore creates a flow store and starts its stale-entry sweeper.
func NewStore(ttl, cooldown time.Duration) *Store {
	s := newStore(ttl, cooldown, time.Now)
	go s.sweep()
	return s
}

// newStore is NewStore without the sweeper, with an injectable clock.
func newStore(ttl, cooldown time.Duration, now func() time.Time) *Store {
	return &Store{
		flows:    make(map[string]*entry),
		ttl:      ttl,
		cooldown: cooldown,
		now:      now,
	}
}

// Create registers a new flow and starts its resend cooldown (registration
// and sign-in both trigger an initial send, so the clock starts immediately).
func (s *Store) Create(email, firstName, userType string, mode domain.VerificationMode, state domain.FlowState) *domain.Flow {
	now := s.now()
	f := domain.Flow{
		FlowID:    uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		UserType:  userType,
		Mode:      mode,
		State:     state,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	cd := countdown.NewWithClock(s.cooldown, s.now)
	cd.Start()

	s.mu.Lock()
	s.flows[f.FlowID] = &entry{flow: f, resend: cd}
	s.mu.Unlock()
	return &f
}

// Get returns the flow and its cooldown, or false when the flow is unknown
// or past its TTL. Expired flows are removed on access.
func (s *Store) Get(flowID string) (*domain.Flow, *countdown.Cooldown, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.flows[flowID]
	if !ok {
		return nil, nil, false
	}
	if !e.flow.ExpiresAt.After(s.now()) {
		delete(s.flows, flowID)
		return nil, nil, false
	}
	f := e.flow
	return &f, e.resend, true
}

// SetState updates a flow's lifecycle state.
func (s *Store) SetState(flowID string, state domain.FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.flows[flowID]; ok {
		e.flow.State = state
	}
}

// Delete destroys a flow (verified, or the user navigated away for good).
func (s *Store) Delete(flowID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, flowID)
}

// sweep removes expired flows every minute.
func (s *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		s.mu.Lock()
		now := s.now()
		for id, e := range s.flows {
			if !e.flow.ExpiresAt.After(now) {
				delete(s.flows, id)
			}
		}
		s.mu.Unlock()
	}
}
