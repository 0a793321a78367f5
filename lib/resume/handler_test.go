package resume

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	err   error
	ttl   time.Duration
	calls int
}

func (f *fakeStorage) PresignedGet(ctx context.Context, objectName string, ttl time.Duration) (string, error) {
	f.ttl = ttl
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.local/resumes/" + objectName + "?sig=1", nil
}

func (f *fakeStorage) BucketExists(ctx context.Context) (bool, error) {
	return true, nil
}

func TestLink(t *testing.T) {
	t.Run(`uploads proxy without storage`, func(t *testing.T) {
		require.Equal(t, "/uploads/cv%201.pdf", NewInstance(nil, time.Minute).Link("cv 1.pdf"))
	})

	t.Run(`presigned link`, func(t *testing.T) {
		storage := &fakeStorage{}
		require.Equal(t, "https://s3.local/resumes/cv.pdf?sig=1", NewInstance(storage, 15*time.Minute).Link("cv.pdf"))
		require.Equal(t, 15*time.Minute, storage.ttl)
	})

	t.Run(`signed link is reused`, func(t *testing.T) {
		storage := &fakeStorage{}
		linker := NewInstance(storage, 15*time.Minute)
		first := linker.Link("cv.pdf")
		require.Equal(t, first, linker.Link("cv.pdf"))
		require.Equal(t, 1, storage.calls)
		linker.Link("other.pdf")
		require.Equal(t, 2, storage.calls)
	})

	t.Run(`falls back on sign error`, func(t *testing.T) {
		storage := &fakeStorage{err: errors.New("boom")}
		linker := NewInstance(storage, time.Minute)
		require.Equal(t, "/uploads/cv.pdf", linker.Link("cv.pdf"))
		require.Equal(t, "/uploads/cv.pdf", linker.Link("cv.pdf"))
		require.Equal(t, 2, storage.calls)
	})
}
