package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abs-steel/abs-inventory/internal/platform/httpx"
)

// RefreshEnqueuer queues a background warmup run. Wired to the job
// queue in main so the handler stays decoupled from asynq.
type RefreshEnqueuer func(ctx context.Context) error

type Handler struct {
	logger  *slog.Logger
	service *Service
	enqueue RefreshEnqueuer
}

func NewHandler(logger *slog.Logger, service *Service, enqueue RefreshEnqueuer) *Handler {
	return &Handler{logger: logger, service: service, enqueue: enqueue}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.Summary)
	r.Post("/dashboard/refresh", h.Refresh)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("dashboard summary failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to build dashboard summary")
		return
	}
	httpx.Success(w, http.StatusOK, summary)
}

// Refresh queues a warmup so the next summary read is recomputed from
// fresh data.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.enqueue == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", "background refresh is not configured")
		return
	}
	if err := h.enqueue(r.Context()); err != nil {
		h.logger.Error("enqueue dashboard refresh failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to queue dashboard refresh")
		return
	}
	httpx.SuccessMessage(w, http.StatusAccepted, "Dashboard refresh queued")
}
