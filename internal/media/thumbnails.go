package media

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultThumbnailBaseURL = "https://i.ytimg.com/vi/"
const DefaultProbeTimeout = 5 * time.Second

// highest quality first
var ThumbnailQualities = []string{
	"maxresdefault.jpg",
	"sddefault.jpg",
	"hqdefault.jpg",
	"mqdefault.jpg",
	"default.jpg",
}

// ProbeFunc reports whether the resource at url exists.
type ProbeFunc func(ctx context.Context, url string) bool

func ThumbnailCandidates(baseURL string, id VideoId) []string {
	candidates := make([]string, 0, len(ThumbnailQualities))
	for _, quality := range ThumbnailQualities {
		candidates = append(candidates, baseURL+string(id)+"/"+quality)
	}

	return candidates
}

func resolveThumbnail(ctx context.Context, baseURL string, id VideoId, probe ProbeFunc) (string, bool) {
	for _, candidate := range ThumbnailCandidates(baseURL, id) {
		if probe(ctx, candidate) {
			return candidate, true
		}
	}

	return "", false
}

// ResolveThumbnail returns the highest quality thumbnail of the video that
// probe reports as present. Candidates are probed one at a time and the
// search stops at the first hit.
func ResolveThumbnail(ctx context.Context, id VideoId, probe ProbeFunc) (string, bool) {
	return resolveThumbnail(ctx, DefaultThumbnailBaseURL, id, probe)
}

type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

type HTTPProberOptions struct {
	Client  *http.Client
	Timeout time.Duration
	// probes per second, 0 disables limiting
	Rate float64
}

func NewHTTPProber(opts HTTPProberOptions) *HTTPProber {
	p := &HTTPProber{client: opts.Client, timeout: opts.Timeout}
	if p.client == nil {
		p.client = http.DefaultClient
	}
	if p.timeout <= 0 {
		p.timeout = DefaultProbeTimeout
	}
	if opts.Rate > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(opts.Rate), len(ThumbnailQualities))
	}

	return p
}

// Probe sends a HEAD request to url and reports whether it answered 200.
// Every failure is logged and reported as absent.
func (p *HTTPProber) Probe(ctx context.Context, url string) bool {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			slog.Debug("Thumbnail probe rate limit wait failed", "url", url, "err", err)
			return false
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		slog.Debug("Could not build thumbnail probe", "url", url, "err", err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Debug("Could not check thumbnail", "url", url, "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Thumbnail not available", "url", url, "status", resp.StatusCode)
		return false
	}

	return true
}

type ThumbnailResolver struct {
	baseURL string
	probe   ProbeFunc
}

func NewThumbnailResolver(baseURL string, probe ProbeFunc) *ThumbnailResolver {
	if baseURL == "" {
		baseURL = DefaultThumbnailBaseURL
	}

	return &ThumbnailResolver{baseURL: baseURL, probe: probe}
}

func (r *ThumbnailResolver) Resolve(ctx context.Context, id VideoId) (string, bool) {
	start := time.Now()
	url, ok := resolveThumbnail(ctx, r.baseURL, id, r.probe)
	slog.Debug("Resolved thumbnail", "id", id, "url", url, "found", ok, "time", time.Since(start))
	return url, ok
}
