package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pokebingo/pokebingo/internal/core/domain/event"
)

func (s *Server) trackCardCreated(c echo.Context) error {
	var ev event.CardCreated
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if ev.ID == "" || ev.Name == "" || ev.Timestamp == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required fields"})
	}

	if err := s.analyticsSvc.TrackCardCreated(c.Request().Context(), &ev); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) trackCellMarked(c echo.Context) error {
	var ev event.CellMarked
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if ev.CardID == "" || ev.CardName == "" || len(ev.Slots) == 0 || ev.MarkedPositions == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required fields"})
	}

	if err := s.analyticsSvc.TrackCellMarked(c.Request().Context(), &ev); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
