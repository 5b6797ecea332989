package authflow

import (
	"testing"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	now := time.Unix(5000, 0)
	s := newStore(15*time.Minute, time.Minute, func() time.Time { return now })

	f := s.Create("a@b.com", "Ada", domain.UserTypeStudent, domain.ModeSignUpConfirmation, domain.StateAwaitingEmailVerification)
	require.NotEmpty(t, f.FlowID)

	got, cd, ok := s.Get(f.FlowID)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, domain.ModeSignUpConfirmation, got.Mode)
	assert.False(t, cd.Ready(), "cooldown starts armed: creation implies an initial send")
}

func TestStoreGetUnknown(t *testing.T) {
	s := newStore(time.Minute, time.Minute, time.Now)
	_, _, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestStoreTTLExpiry(t *testing.T) {
	now := time.Unix(5000, 0)
	s := newStore(15*time.Minute, time.Minute, func() time.Time { return now })
	f := s.Create("a@b.com", "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)

	now = now.Add(15*time.Minute + time.Second)
	_, _, ok := s.Get(f.FlowID)
	assert.False(t, ok, "flow past TTL must be gone")
}

func TestStoreDelete(t *testing.T) {
	s := newStore(time.Minute, time.Minute, time.Now)
	f := s.Create("a@b.com", "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)
	s.Delete(f.FlowID)
	_, _, ok := s.Get(f.FlowID)
	assert.False(t, ok)
}

func TestStoreSetState(t *testing.T) {
	s := newStore(time.Minute, time.Minute, time.Now)
	f := s.Create("a@b.com", "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)
	s.SetState(f.FlowID, domain.StateAwaitingSessionConfirmation)

	got, _, ok := s.Get(f.FlowID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitingSessionConfirmation, got.State)
}

func TestStoreIndependentCooldownsPerFlow(t *testing.T) {
	now := time.Unix(5000, 0)
	s := newStore(15*time.Minute, time.Minute, func() time.Time { return now })
	f1 := s.Create("a@b.com", "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)
	now = now.Add(30 * time.Second)
	f2 := s.Create("c@d.com", "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)

	_, cd1, _ := s.Get(f1.FlowID)
	_, cd2, _ := s.Get(f2.FlowID)
	assert.Equal(t, 30, cd1.Seconds())
	assert.Equal(t, 60, cd2.Seconds())
}
