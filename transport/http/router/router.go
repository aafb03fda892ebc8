package router

import (
	"garage/internal/handlers/auth"
	"garage/internal/handlers/booking"
	"garage/internal/handlers/health"
	"garage/internal/handlers/inventory"
	"garage/internal/handlers/testimonial"
	"garage/internal/handlers/vehiclehistory"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	Booking        booking.Handler
	Health         health.Handler
	Inventory      inventory.Handler
	Testimonial    testimonial.Handler
	VehicleHistory vehiclehistory.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.VehicleHistory.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
