package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pokebingo/pokebingo/internal/core/domain/card"
)

type createCardRequest struct {
	Name string `json:"name"`
}

type bulkCardsRequest struct {
	Count    int   `json:"count"`
	BaseSeed int64 `json:"base_seed"`
}

// createCard generates a named card; the same name always yields the same
// layout.
func (s *Server) createCard(c echo.Context) error {
	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card name is required")
	}
	return c.JSON(http.StatusCreated, s.cardSvc.GenerateByName(req.Name))
}

// getTodayCard serves the shared daily card.
func (s *Server) getTodayCard(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cardSvc.GenerateToday())
}

// generateCard builds a card from an explicit seed, or a fresh wall-clock
// seed when none is given.
func (s *Server) generateCard(c echo.Context) error {
	seed := card.TimeSeed()
	if raw := c.QueryParam("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "seed must be an integer")
		}
		seed = parsed
	}
	return c.JSON(http.StatusOK, s.cardSvc.GenerateCard(seed))
}

// generateBulkCards builds a batch of cards seeded base_seed+i. The batch is
// reproducible only when base_seed is supplied.
func (s *Server) generateBulkCards(c echo.Context) error {
	var req bulkCardsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cards, err := s.cardSvc.GenerateBulk(c.Request().Context(), req.Count, req.BaseSeed)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"cards": cards, "count": len(cards)})
}
