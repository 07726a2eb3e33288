package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	api.GET("/image/:code", s.getCardImage)

	cards := api.Group("/cards")
	cards.POST("", s.createCard)
	cards.GET("/today", s.getTodayCard)
	cards.GET("/generate", s.generateCard)
	cards.POST("/bulk", s.generateBulkCards)

	analytics := api.Group("/analytics")
	analytics.POST("/card-created", s.trackCardCreated)
	analytics.POST("/cell-marked", s.trackCellMarked)
}
