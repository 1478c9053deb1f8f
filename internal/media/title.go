package media

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const UnknownTitle = "Untitled Video"

var ErrMediaNotFound = errors.New("Media not found")

type TitleSource interface {
	Title(ctx context.Context, id VideoId) (string, error)
}

type YoutubeAPI struct {
	apiKey string
	opts   []option.ClientOption
}

// NewYoutubeAPI looks video titles up through the YouTube Data API. Extra
// options are passed to the client, e.g. a custom endpoint.
func NewYoutubeAPI(apiKey string, opts ...option.ClientOption) *YoutubeAPI {
	return &YoutubeAPI{apiKey: apiKey, opts: opts}
}

func (yt *YoutubeAPI) newClient(ctx context.Context) (*youtube.Service, error) {
	opts := append([]option.ClientOption{option.WithAPIKey(yt.apiKey)}, yt.opts...)
	return youtube.NewService(ctx, opts...)
}

func (yt *YoutubeAPI) Title(ctx context.Context, id VideoId) (string, error) {
	if !id.Valid() {
		return "", ErrMediaNotFound
	}

	client, err := yt.newClient(ctx)
	if err != nil {
		return "", err
	}

	response, err := client.Videos.List([]string{"snippet"}).Id(string(id)).MaxResults(1).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	if len(response.Items) < 1 || response.Items[0].Snippet == nil {
		return "", ErrMediaNotFound
	}

	return response.Items[0].Snippet.Title, nil
}

// LookupTitle returns the title reported by source, or UnknownTitle when
// there is no source or the lookup fails.
func LookupTitle(ctx context.Context, source TitleSource, id VideoId) string {
	if source == nil {
		return UnknownTitle
	}

	title, err := source.Title(ctx, id)
	if err != nil || title == "" {
		slog.Warn("Unable to look up video title", "id", id, "err", err)
		return UnknownTitle
	}

	return title
}
