package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pokebingo/pokebingo/internal/core/domain/image"
)

const (
	// Cache-Control lifetimes disclosed to clients and intermediaries.
	// Fallback images get a short lifetime so the real artwork is retried
	// soon after the upstream recovers.
	assetCacheControl    = "public, max-age=3600"
	fallbackCacheControl = "public, max-age=300"
)

// getCardImage proxies card artwork. Validation happens before any cache or
// network access; upstream failures degrade to a placeholder, never a 5xx.
func (s *Server) getCardImage(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "code is required"})
	}

	// Reserved code for cache diagnostics.
	if code == image.StatsCode {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"cache":     s.imageSvc.CacheStats(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	if !image.ValidCode(code) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   "invalid code format",
			"message": `use the format XXX-1 (e.g. BLK-67, WHT-9) or "stats" for cache diagnostics`,
		})
	}

	result, err := s.imageSvc.GetCardImage(c.Request().Context(), code)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("image proxy internal fault")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "internal server error",
			"message": "could not process the request",
		})
	}

	imageRequestsTotal.WithLabelValues(string(result.Status)).Inc()
	imageCacheEntries.Set(float64(result.CacheSize))

	cacheControl := assetCacheControl
	if result.Status == image.StatusFallback {
		cacheControl = fallbackCacheControl
	}

	header := c.Response().Header()
	header.Set("Cache-Control", cacheControl)
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET")
	header.Set("Access-Control-Allow-Headers", "Content-Type")
	header.Set("X-Cache-Status", string(result.Status))
	header.Set("X-Cache-Size", strconv.Itoa(result.CacheSize))

	return c.Blob(http.StatusOK, result.ContentType, result.Payload)
}
