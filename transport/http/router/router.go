package router

import (
	"github.com/go-chi/chi/v5"

	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/user"
	"shareit/transport/http/middleware"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Identity       middleware.Identity
}

// SetupRoutes mounts the domain routers. User endpoints are open; item and
// booking endpoints require the sharer identity header.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Identity.RequireSharerID)

			r.DomainHandlers.Item.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, identity middleware.Identity) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Identity:       identity,
	}
}
