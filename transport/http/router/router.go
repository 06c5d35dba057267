package router

import (
	"kmc/internal/handlers/auth"
	"kmc/internal/handlers/dashboard"
	"kmc/internal/handlers/importer"
	"kmc/internal/handlers/meal"
	"kmc/internal/handlers/missionary"
	"kmc/internal/handlers/reservation"
	"kmc/internal/handlers/room"
	"kmc/internal/handlers/vacation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Room        room.Handler
	Dashboard   dashboard.Handler
	Reservation reservation.Handler
	Importer    importer.Handler
	Meal        meal.Handler
	Vacation    vacation.Handler
	Missionary  missionary.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Importer.Router(routerGroup)
		r.DomainHandlers.Meal.Router(routerGroup)
		r.DomainHandlers.Vacation.Router(routerGroup)
		r.DomainHandlers.Missionary.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
