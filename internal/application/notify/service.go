// Package notify is the process-wide toast queue. Services publish
// fire-and-forget records; the single toast surface consumes them over a
// subscription and each record expires after its display duration.
package notify

import (
	"sync"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/id"
)

// DisplayDuration is how long a toast stays active before it expires on its
// own.
const DisplayDuration = 5 * time.Second

type Service interface {
	Publish(title, message, variant string) *domain.Notification
	Dismiss(notificationID string)
	Active() []domain.Notification
	Subscribe() (<-chan domain.Notification, func())
}

type service struct {
	mu      sync.Mutex
	queue   []domain.Notification
	subs    map[int]chan domain.Notification
	nextSub int
	now     func() time.Time
}

func NewService() Service {
	s := &service{
		subs: make(map[int]chan domain.Notification),
		now:  time.Now,
	}
	go s.sweep()
	return s
}

// newServiceWithClock is used by tests to control expiry.
func newServiceWithClock(now func() time.Time) *service {
	return &service{
		subs: make(map[int]chan domain.Notification),
		now:  now,
	}
}

// Publish enqueues a toast and fans it out to subscribers. Slow subscribers
// are skipped rather than blocking the publisher.
func (s *service) Publish(title, message, variant string) *domain.Notification {
	now := s.now()
	n := domain.Notification{
		NotificationID: id.New(),
		Title:          title,
		Message:        message,
		Variant:        variant,
		CreatedAt:      now,
		ExpiresAt:      now.Add(DisplayDuration),
	}
	s.mu.Lock()
	s.queue = append(s.queue, n)
	for _, ch := range s.subs {
		select {
		case ch <- n:
		default:
		}
	}
	s.mu.Unlock()
	return &n
}

// Dismiss removes a toast before its display duration elapses.
func (s *service) Dismiss(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.queue {
		if n.NotificationID == notificationID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Active returns the not-yet-expired toasts in publish order.
func (s *service) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	out := make([]domain.Notification, 0, len(s.queue))
	for _, n := range s.queue {
		if n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	return out
}

// Subscribe registers a consumer. The returned cancel func must be called
// when the consumer goes away.
func (s *service) Subscribe() (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, 16)
	s.mu.Lock()
	idx := s.nextSub
	s.nextSub++
	s.subs[idx] = ch
	s.mu.Unlock()
	cancel := func() {
		s.mu.Lock()
		delete(s.subs, idx)
		s.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

// sweep drops expired toasts every few seconds so the queue never grows
// unbounded.
func (s *service) sweep() {
	for {
		time.Sleep(DisplayDuration)
		s.mu.Lock()
		now := s.now()
		kept := s.queue[:0]
		for _, n := range s.queue {
			if n.ExpiresAt.After(now) {
				kept = append(kept, n)
			}
		}
		s.queue = kept
		s.mu.Unlock()
	}
}
