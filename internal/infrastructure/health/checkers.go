package health

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pokebingo/pokebingo/internal/core/ports"
)

// upstreamHealthChecker probes the external image host with a HEAD request
// to its root. A reachable host is enough; individual card fetches have
// their own fallback path.
type upstreamHealthChecker struct {
	baseURL string
	client  *http.Client
}

func (u *upstreamHealthChecker) Name() string { return "upstream-image-host" }

func (u *upstreamHealthChecker) Check(ctx context.Context) error {
	parsed, err := url.Parse(u.baseURL)
	if err != nil {
		return fmt.Errorf("invalid upstream URL: %w", err)
	}

	probe := parsed.Scheme + "://" + parsed.Host + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probe, nil)
	if err != nil {
		return err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("upstream host returned status %d", resp.StatusCode)
	}
	return nil
}

// NewUpstreamHealthChecker creates a health checker for the external image
// host behind baseURL (template placeholders are ignored; only the host is
// probed).
func NewUpstreamHealthChecker(baseURL string, client *http.Client) ports.HealthChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &upstreamHealthChecker{baseURL: baseURL, client: client}
}
