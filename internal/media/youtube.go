package media

import (
	"regexp"
)

// VideoId is the 11 character identifier YouTube addresses a video by.
type VideoId string

type URLShape string

const (
	ShapeWatch URLShape = "watch"
	ShapeEmbed URLShape = "embed"
	ShapeV     URLShape = "v"
	ShapeLive  URLShape = "live"
	ShapeShort URLShape = "youtu.be"
	ShapeBare  URLShape = "bare"
)

const videoIdPattern = `([A-Za-z0-9_-]{11})`

type videoIdMatcher struct {
	shape   URLShape
	pattern *regexp.Regexp
}

func newVideoIdMatcher(shape URLShape, prefix string) videoIdMatcher {
	return videoIdMatcher{
		shape:   shape,
		pattern: regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:m\.)?` + prefix + videoIdPattern),
	}
}

// order matters: the first matcher that hits wins
var videoIdMatchers = []videoIdMatcher{
	newVideoIdMatcher(ShapeWatch, `youtube\.com/watch\?v=`),
	newVideoIdMatcher(ShapeEmbed, `youtube\.com/embed/`),
	newVideoIdMatcher(ShapeV, `youtube\.com/v/`),
	newVideoIdMatcher(ShapeLive, `youtube\.com/live/`),
	newVideoIdMatcher(ShapeShort, `youtu\.be/`),
	newVideoIdMatcher(ShapeBare, `youtube\.com/`),
}

type VideoURLMatch struct {
	Id    VideoId
	Shape URLShape
}

func (m videoIdMatcher) match(s string) (VideoURLMatch, bool) {
	groups := m.pattern.FindStringSubmatch(s)
	if len(groups) < 2 {
		return VideoURLMatch{}, false
	}

	return VideoURLMatch{Id: VideoId(groups[1]), Shape: m.shape}, true
}

func MatchVideoURL(s string) (VideoURLMatch, bool) {
	for _, matcher := range videoIdMatchers {
		if m, ok := matcher.match(s); ok {
			return m, true
		}
	}

	return VideoURLMatch{}, false
}

// ExtractVideoId returns the video id embedded in a YouTube URL. Anything
// after the id is ignored.
func ExtractVideoId(s string) (VideoId, bool) {
	m, ok := MatchVideoURL(s)
	return m.Id, ok
}

func checkId(s string) bool {
	for _, r := range s {
		suitable := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !suitable {
			return false
		}
	}

	return true
}

func (id VideoId) Valid() bool {
	return len(id) == 11 && checkId(string(id))
}
