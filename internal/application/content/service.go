// Package content serves the read-only public pages. All data is literal;
// the service hands out copies so callers can never mutate the source
// arrays.
package content

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
)

// AboutPage is the about-page payload.
type AboutPage struct {
	Mission string              `json:"mission"`
	Story   string              `json:"story"`
	Stats   []domain.ImpactStat `json:"stats"`
}

// HomePage is the landing-page payload.
type HomePage struct {
	Headline string              `json:"headline"`
	Tagline  string              `json:"tagline"`
	Stats    []domain.ImpactStat `json:"stats"`
	Featured []domain.Program    `json:"featured_programs"`
}

// ObjectStore is the minimal interface the service needs from the resource
// bucket.
type ObjectStore interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// linkTTL bounds how long a shared resource link stays valid.
const linkTTL = 15 * time.Minute

type Service interface {
	Home() HomePage
	About() AboutPage
	Team() []domain.TeamMember
	Programs() []domain.Program
	DonationTiers() []domain.DonationTier
	Resources() []domain.Resource
	Events() []domain.Event
	Event(eventID string) (*domain.Event, error)
	DownloadResource(ctx context.Context, resourceID string) (io.ReadCloser, string, error)
	ResourceLink(ctx context.Context, resourceID string) (string, error)
}

type service struct {
	store ObjectStore
}

func NewService(store ObjectStore) Service {
	return &service{store: store}
}

func (s *service) Home() HomePage {
	return HomePage{
		Headline: "Launch your career with CareerLift",
		Tagline:  "Free mentorship, training and job placement for young job seekers.",
		Stats:    append([]domain.ImpactStat(nil), impactStats...),
		Featured: append([]domain.Program(nil), programs[:3]...),
	}
}

func (s *service) About() AboutPage {
	return AboutPage{
		Mission: "CareerLift equips young job seekers with the skills, mentors and networks they need to start meaningful careers.",
		Story:   "Started in 2018 as a weekend CV clinic, CareerLift now runs year-round mentorship, training and placement programs with a community of volunteer professionals.",
		Stats:   append([]domain.ImpactStat(nil), impactStats...),
	}
}

func (s *service) Team() []domain.TeamMember {
	return append([]domain.TeamMember(nil), teamMembers...)
}

func (s *service) Programs() []domain.Program {
	return append([]domain.Program(nil), programs...)
}

func (s *service) DonationTiers() []domain.DonationTier {
	return append([]domain.DonationTier(nil), donationTiers...)
}

func (s *service) Resources() []domain.Resource {
	return append([]domain.Resource(nil), resources...)
}

func (s *service) Events() []domain.Event {
	return append([]domain.Event(nil), events...)
}

func (s *service) Event(eventID string) (*domain.Event, error) {
	for i := range events {
		if events[i].EventID == eventID {
			e := events[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
}

// DownloadResource streams a resource object from the bucket along with its
// content type.
func (s *service) DownloadResource(ctx context.Context, resourceID string) (io.ReadCloser, string, error) {
	for i := range resources {
		if resources[i].ResourceID == resourceID {
			rc, err := s.store.Download(ctx, resources[i].ObjectKey)
			if err != nil {
				return nil, "", err
			}
			return rc, resources[i].ContentType, nil
		}
	}
	return nil, "", fmt.Errorf("resource %s: %w", resourceID, domain.ErrNotFound)
}

// ResourceLink returns a time-limited presigned URL so large resources can
// be fetched straight from the bucket.
func (s *service) ResourceLink(ctx context.Context, resourceID string) (string, error) {
	for i := range resources {
		if resources[i].ResourceID == resourceID {
			return s.store.PresignedURL(ctx, resources[i].ObjectKey, linkTTL)
		}
	}
	return "", fmt.Errorf("resource %s: %w", resourceID, domain.ErrNotFound)
}
