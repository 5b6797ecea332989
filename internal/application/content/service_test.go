package content

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockObjectStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func TestPagesReturnCopies(t *testing.T) {
	svc := NewService(nil)

	progs := svc.Programs()
	require.NotEmpty(t, progs)
	progs[0].Title = "mutated"
	assert.NotEqual(t, "mutated", svc.Programs()[0].Title, "caller mutation must not leak into source data")

	team := svc.Team()
	require.NotEmpty(t, team)
	team[0].Name = "mutated"
	assert.NotEqual(t, "mutated", svc.Team()[0].Name)
}

func TestHomeFeaturesThreePrograms(t *testing.T) {
	svc := NewService(nil)
	home := svc.Home()
	assert.Len(t, home.Featured, 3)
	assert.NotEmpty(t, home.Stats)
}

func TestEventLookup(t *testing.T) {
	svc := NewService(nil)
	e, err := svc.Event("evt-cv-workshop")
	require.NoError(t, err)
	assert.Equal(t, "CV Workshop", e.Title)

	_, err = svc.Event("evt-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDownloadResource(t *testing.T) {
	store := &mockObjectStore{}
	store.On("Download", mock.Anything, "guides/cv-writing-guide.pdf").
		Return(io.NopCloser(strings.NewReader("pdf-bytes")), nil)

	svc := NewService(store)
	rc, contentType, err := svc.DownloadResource(context.Background(), "res-cv-guide")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "application/pdf", contentType)

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(b))
}

func TestResourceLink(t *testing.T) {
	store := &mockObjectStore{}
	store.On("PresignedURL", mock.Anything, "guides/cv-writing-guide.pdf", mock.Anything).
		Return("https://bucket.example.com/signed", nil)

	svc := NewService(store)
	url, err := svc.ResourceLink(context.Background(), "res-cv-guide")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/signed", url)

	_, err = svc.ResourceLink(context.Background(), "res-missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDownloadResource_UnknownID(t *testing.T) {
	svc := NewService(&mockObjectStore{})
	_, _, err := svc.DownloadResource(context.Background(), "res-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
