package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pokebingo/pokebingo/internal/infrastructure/upstream"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestBuildURL_SubstitutesAllPlaceholders(t *testing.T) {
	f := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      "https://cdn.example.com/tpci/{set}/{set}_{number}_R_PT.png",
		FetchTimeout: time.Second,
	}, quietLogger())

	url := f.BuildURL("BLK", "067")
	require.Equal(t, "https://cdn.example.com/tpci/BLK/BLK_067_R_PT.png", url)
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/BLK/067.png", r.URL.Path)
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	f := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/{set}/{number}.png",
		FetchTimeout: time.Second,
		UserAgent:    "test-agent",
	}, quietLogger())

	fetched, err := f.Fetch(context.Background(), "BLK", "067")
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), fetched.Payload)
	require.Equal(t, "image/jpeg", fetched.ContentType)
}

func TestFetch_DefaultsContentTypeToPNG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress auto-detection
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("raw"))
	}))
	defer srv.Close()

	f := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/{set}/{number}.png",
		FetchTimeout: time.Second,
	}, quietLogger())

	fetched, err := f.Fetch(context.Background(), "BLK", "067")
	require.NoError(t, err)
	require.Equal(t, "image/png", fetched.ContentType)
}

func TestFetch_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/{set}/{number}.png",
		FetchTimeout: time.Second,
	}, quietLogger())

	_, err := f.Fetch(context.Background(), "BLK", "067")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestFetch_TimeoutIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/{set}/{number}.png",
		FetchTimeout: 20 * time.Millisecond,
	}, quietLogger())

	_, err := f.Fetch(context.Background(), "BLK", "067")
	require.Error(t, err)
}
