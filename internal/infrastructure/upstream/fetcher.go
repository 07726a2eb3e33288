package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Config describes the external card artwork host. BaseURL is a template
// with {set} and {number} placeholders; {number} is already zero-padded by
// the caller.
type Config struct {
	BaseURL      string
	FetchTimeout time.Duration
	UserAgent    string
}

// HTTPFetcher retrieves card artwork over HTTP, implementing
// ports.ImageFetcher. Each fetch is bounded by the configured timeout and
// never retried; the next client request re-attempts.
type HTTPFetcher struct {
	config Config
	client *http.Client
	logger *logrus.Logger
}

func NewHTTPFetcher(config Config, logger *logrus.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		config: config,
		client: &http.Client{Timeout: config.FetchTimeout},
		logger: logger,
	}
}

// BuildURL substitutes the set code and zero-padded number into the URL
// template. The default template uses {set} twice (directory and filename).
func (f *HTTPFetcher) BuildURL(set, number string) string {
	url := strings.ReplaceAll(f.config.BaseURL, "{set}", set)
	return strings.ReplaceAll(url, "{number}", number)
}

// Fetch downloads the artwork for one card. Non-2xx statuses, transport
// errors and timeouts are all returned as plain errors; the caller decides
// how to degrade.
func (f *HTTPFetcher) Fetch(ctx context.Context, set, number string) (*ports.FetchedImage, error) {
	url := f.BuildURL(set, number)

	ctx, cancel := context.WithTimeout(ctx, f.config.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	f.logger.WithFields(logrus.Fields{"url": url}).Debug("fetching image from upstream")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return &ports.FetchedImage{Payload: payload, ContentType: contentType}, nil
}
