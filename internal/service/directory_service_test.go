package service

import (
	"context"
	"errors"
	"testing"

	"directory-helper/internal/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	body []byte
	err  error
}

func (f fakeClient) Fetch(ctx context.Context, slug string) ([]byte, error) {
	return f.body, f.err
}

var testOpts = directory.Options{
	DirectoryURI:      "http://dir.example.edu",
	ArchiveURI:        "http://dir.example.edu/news/",
	PlaceholderImage:  "/img/placeholder.png",
	PlaceholderAuthor: "Staff Writer",
}

func TestDirectoryService_Load(t *testing.T) {
	t.Run("returns directory on valid feed", func(t *testing.T) {
		svc := NewDirectoryService(fakeClient{body: []byte(`{"sites":[{"id":1,"slug":"registrar"}]}`)}, testOpts)

		d, err := svc.Load(context.Background(), "registrar")

		require.NoError(t, err)
		assert.Equal(t, "registrar", d.Slug())
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		svc := NewDirectoryService(fakeClient{err: errors.New("feed down")}, testOpts)

		_, err := svc.Load(context.Background(), "registrar")

		require.Error(t, err)
	})

	t.Run("propagates malformed feed error", func(t *testing.T) {
		svc := NewDirectoryService(fakeClient{body: []byte(`{"sites":[]}`)}, testOpts)

		_, err := svc.Load(context.Background(), "registrar")

		require.ErrorIs(t, err, directory.ErrFeedMalformed)
	})
}
