package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newYoutubeServer(t *testing.T, items string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/videos" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"kind":"youtube#videoListResponse","items":[%s]}`, items)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestYoutubeAPITitle(t *testing.T) {
	server := newYoutubeServer(t, `{"id":"dQw4w9WgXcQ","snippet":{"title":"Never Gonna Give You Up"}}`)
	yt := NewYoutubeAPI("test-key", option.WithEndpoint(server.URL+"/"))

	title, err := yt.Title(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", title)
}

func TestYoutubeAPITitleNotFound(t *testing.T) {
	server := newYoutubeServer(t, "")
	yt := NewYoutubeAPI("test-key", option.WithEndpoint(server.URL+"/"))

	_, err := yt.Title(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

type failingTitles struct{}

func (failingTitles) Title(context.Context, VideoId) (string, error) {
	return "", errors.New("quota exceeded")
}

func TestLookupTitleFallsBack(t *testing.T) {
	assert.Equal(t, UnknownTitle, LookupTitle(context.Background(), nil, "dQw4w9WgXcQ"))
	assert.Equal(t, UnknownTitle, LookupTitle(context.Background(), failingTitles{}, "dQw4w9WgXcQ"))
}
