package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/auth"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/booking"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/content"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/destination"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/quote"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/quotetoken"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/handlers/tour"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Quote       quote.Handler
	QuoteToken  quotetoken.Handler
	Destination destination.Handler
	Tour        tour.Handler
	Booking     booking.Handler
	Content     content.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Quote.Router(routerGroup)
		r.DomainHandlers.QuoteToken.Router(routerGroup)
		r.DomainHandlers.Destination.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
