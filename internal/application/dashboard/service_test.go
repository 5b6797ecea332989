package dashboard

import (
	"testing"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Publish(title, message, variant string) *domain.Notification {
	m.Called(title, message, variant)
	return &domain.Notification{Title: title, Message: message, Variant: variant}
}

func TestEmptyFilterReturnsSourceCollection(t *testing.T) {
	svc := NewService(nil)

	got := svc.Users(Filter{})
	require.Len(t, got, len(sampleUsers))
	for i := range got {
		assert.Equal(t, sampleUsers[i].UserID, got[i].UserID, "order must be preserved")
	}
	// Clearing all filters hands back the literal collection itself.
	assert.Same(t, &sampleUsers[0], &got[0])

	events := svc.Events(Filter{})
	require.Len(t, events, len(sampleEvents))
	assert.Same(t, &sampleEvents[0], &events[0])
}

func TestFilterIsIdempotent(t *testing.T) {
	svc := NewService(nil)
	f := Filter{Category: "student", Status: "active"}

	once := svc.Users(f)
	twice := svc.Users(f)
	assert.Equal(t, once, twice, "applying the same filter twice must yield the same result")
	require.NotEmpty(t, once)
	for _, u := range once {
		assert.Equal(t, "student", u.UserType)
		assert.Equal(t, "active", u.Status)
	}
}

func TestFilterCriteriaCombineWithAND(t *testing.T) {
	svc := NewService(nil)

	// Query alone matches two volunteers; adding status narrows to one.
	byQuery := svc.Users(Filter{Category: "volunteer"})
	assert.Len(t, byQuery, 2)

	narrowed := svc.Users(Filter{Category: "volunteer", Status: "inactive"})
	require.Len(t, narrowed, 1)
	assert.Equal(t, "usr-005", narrowed[0].UserID)
}

func TestFilterTextQueryIsCaseInsensitive(t *testing.T) {
	svc := NewService(nil)
	got := svc.Users(Filter{Query: "CYNTHIA"})
	require.Len(t, got, 1)
	assert.Equal(t, "usr-002", got[0].UserID)
}

func TestFilterDateRange(t *testing.T) {
	svc := NewService(nil)
	got := svc.Users(Filter{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, got, 3)
	assert.Equal(t, "usr-002", got[0].UserID)
	assert.Equal(t, "usr-004", got[2].UserID)
}

func TestFilterNeverMutatesSource(t *testing.T) {
	svc := NewService(nil)
	before := append([]User(nil), sampleUsers...)

	svc.Users(Filter{Query: "nairobi"})
	svc.Users(Filter{Status: "pending"})
	svc.Messages(Filter{Status: "unread"})
	svc.Events(Filter{Category: "workshop"})

	assert.Equal(t, before, sampleUsers)
}

func TestEventFilterByStatus(t *testing.T) {
	svc := NewService(nil)
	open := svc.Events(Filter{Status: "open"})
	require.Len(t, open, 2)
	assert.Equal(t, "evt-open-day", open[0].EventID)
	assert.Equal(t, "evt-cv-workshop", open[1].EventID)
}

func TestMessagesFilterUnread(t *testing.T) {
	svc := NewService(nil)
	unread := svc.Messages(Filter{Status: "unread"})
	require.Len(t, unread, 2)
	for _, m := range unread {
		assert.Equal(t, "unread", m.Status)
	}
}

func TestStatsDerivesPercentages(t *testing.T) {
	svc := NewService(nil)
	stats := svc.Stats()

	require.NotEmpty(t, stats.MonthlySignups)
	require.Len(t, stats.Enrollment, len(programEnrollment))
	for _, e := range stats.Enrollment {
		assert.GreaterOrEqual(t, e.Percent, 0)
		assert.LessOrEqual(t, e.Percent, 100)
	}
	// 96 of 120 is 80%.
	assert.Equal(t, 80, stats.Enrollment[1].Percent)
}

func TestSubmitUserModalEmitsToastOnly(t *testing.T) {
	n := &mockNotifier{}
	n.On("Publish", "User added", mock.Anything, domain.VariantSuccess).Return()

	svc := NewService(n)
	before := len(sampleUsers)

	err := svc.SubmitUserModal(UserModalRequest{Name: "New Person", Email: "new@example.com", UserType: "student"})
	require.NoError(t, err)

	assert.Len(t, sampleUsers, before, "modal submit must not persist anything")
	n.AssertExpectations(t)
}

func TestSubmitUserModalRejectsInvalid(t *testing.T) {
	n := &mockNotifier{}
	svc := NewService(n)

	err := svc.SubmitUserModal(UserModalRequest{Name: "X", Email: "not-an-email", UserType: "student"})
	require.Error(t, err)
	n.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitEventModal(t *testing.T) {
	n := &mockNotifier{}
	n.On("Publish", "Event created", mock.Anything, domain.VariantSuccess).Return()

	svc := NewService(n)
	err := svc.SubmitEventModal(EventModalRequest{Title: "Alumni Meetup", Category: "community", Date: "2026-10-03", Location: "Nairobi Hub"})
	require.NoError(t, err)
	n.AssertExpectations(t)

	err = svc.SubmitEventModal(EventModalRequest{Title: "Alumni Meetup", Category: "community", Date: "03/10/2026", Location: "Nairobi Hub"})
	require.Error(t, err)
	assert.Equal(t, "Date must be in YYYY-MM-DD format", err.Error())
}
