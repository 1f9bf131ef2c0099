package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/abs-steel/abs-inventory/internal/dashboard"
	"github.com/abs-steel/abs-inventory/internal/masterdata/districts"
	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	ItemsHandler     *items.Handler
	LedgersHandler   *ledgers.Handler
	DistrictsHandler *districts.Handler
	OrdersHandler    *orders.Handler
	DashboardHandler *dashboard.Handler
}

// NewRouter constructs the chi.Router serving the console API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", params.ItemsHandler.MountRoutes)
		r.Route("/ledgers", params.LedgersHandler.MountRoutes)
		r.Route("/districts", params.DistrictsHandler.MountRoutes)
		params.OrdersHandler.MountRoutes(r)
		if params.DashboardHandler != nil {
			params.DashboardHandler.MountRoutes(r)
		}
	})

	return r
}
