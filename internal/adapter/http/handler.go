package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-market/internal/config/configs"
	"mesa-market/internal/core/port"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Auth       port.AuthUseCase
	AdSlots    port.AdSlotUseCase
	Quotes     port.QuoteUseCase
	Campaigns  port.CampaignUseCase
	Sponsors   port.SponsorUseCase
	Publishers port.PublisherUseCase
	Placements port.PlacementUseCase
	Dashboard  port.DashboardUseCase
	Newsletter port.NewsletterUseCase
}

// Infra holds the non-business collaborators of the router. A nil Limiter
// disables rate limiting.
type Infra struct {
	Sessions   port.SessionValidator
	CookieName string
	DB         port.Pinger
	Limiter    port.RateLimiter
	RateLimit  configs.RateLimit
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router under /api.
type Handler struct {
	svc    Services
	infra  Infra
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, infra Infra, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, infra: infra, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(h.recoverer)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	rl := infra.RateLimit
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit("auth", rl.AuthRate, rl.AuthBurst))
			r.Get("/auth/role/{userId}", h.handleResolveRole)
			r.With(h.authenticate).Get("/auth/me", h.handleMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit("api", rl.Rate, rl.Burst))
			r.Post("/newsletter", h.handleSubscribe)

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate)

				r.Route("/ad-slots", func(r chi.Router) {
					r.Get("/", h.handleListAdSlots)
					r.Post("/", h.handleCreateAdSlot)
					r.Get("/{id}", h.handleGetAdSlot)
					r.Put("/{id}", h.handleUpdateAdSlot)
					r.Delete("/{id}", h.handleDeleteAdSlot)
					r.Post("/{id}/book", h.handleBookAdSlot)
					r.Post("/{id}/unbook", h.handleUnbookAdSlot)
				})

				r.Route("/quotes", func(r chi.Router) {
					r.Post("/", h.handleRequestQuote)
					r.Get("/", h.handlePublisherQuotes)
					r.Get("/mine", h.handleMyQuotes)
					r.Patch("/{id}/status", h.handleUpdateQuoteStatus)
				})

				r.Route("/campaigns", func(r chi.Router) {
					r.Get("/", h.handleListCampaigns)
					r.Post("/", h.handleCreateCampaign)
					r.Get("/{id}", h.handleGetCampaign)
					r.Put("/{id}", h.handleUpdateCampaign)
					r.Delete("/{id}", h.handleDeleteCampaign)
				})

				r.Route("/sponsors", func(r chi.Router) {
					r.Get("/", h.handleListSponsors)
					r.Post("/", h.handleCreateSponsor)
					r.Get("/{id}", h.handleGetSponsor)
					r.Put("/{id}", h.handleUpdateSponsor)
				})

				r.Route("/publishers", func(r chi.Router) {
					r.Get("/", h.handleListPublishers)
					r.Post("/", h.handleCreatePublisher)
					r.Get("/{id}", h.handleGetPublisher)
				})

				r.Get("/placements", h.handleListPlacements)
				r.Post("/placements", h.handleCreatePlacement)

				r.Get("/dashboard/stats", h.handleDashboardStats)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
