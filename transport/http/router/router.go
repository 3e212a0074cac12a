package router

import (
	"hms/internal/handlers/auth"
	"hms/internal/handlers/availability"
	"hms/internal/handlers/booking"
	"hms/internal/handlers/report"
	"hms/internal/handlers/room"
	"hms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Room         room.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Availability.PublicRouter(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Availability.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Report.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
