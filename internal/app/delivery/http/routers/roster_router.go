package routers

import (
	"shiftcal-service/internal/app/delivery/http/controllers"
	"shiftcal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRosterRouter(router chi.Router, m *middlewares.Middlewares, c *controllers.RosterController) {
	router.With(m.OptionalAuthenticate).Get("/roster/week", c.GetWeekRoster)
	router.With(m.OptionalAuthenticate).Post("/roster/week/refresh", c.RefreshWeekRoster)
}
