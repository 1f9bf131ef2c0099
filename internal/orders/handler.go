package orders

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abs-steel/abs-inventory/internal/platform/httpx"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load orders")
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListWithItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListWithItemCounts(r.Context())
	if err != nil {
		h.logger.Error("list orders with items failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load orders")
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) ShowWithItems(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	order, err := h.service.GetWithItems(r.Context(), id)
	if err != nil {
		h.respondError(w, "get order", err)
		return
	}
	httpx.Success(w, http.StatusOK, order)
}

func (h *Handler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondError(w, "create order", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, httpx.Envelope{
		Success: true,
		Data:    map[string]int64{"id": id},
		Message: "Order created successfully",
	})
}

func (h *Handler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid order ID")
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, payload); err != nil {
		h.respondError(w, "update order", err)
		return
	}
	httpx.SuccessMessage(w, http.StatusOK, "Order updated successfully")
}

func (h *Handler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete order", err)
		return
	}
	httpx.SuccessMessage(w, http.StatusOK, "Order deleted successfully")
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req PaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.UpdatePayment(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update payment", err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Envelope{
		Success: true,
		Data:    order,
		Message: "Payment updated successfully",
	})
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (SubmitPayload, bool) {
	var payload SubmitPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid JSON body")
		return SubmitPayload{}, false
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Fail(w, http.StatusBadRequest, err.Error())
		return SubmitPayload{}, false
	}
	return payload, true
}

// respondError uses the envelope shape rather than problem details
// because the console reads the message field off every order response.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, httpx.ErrNotFound):
		httpx.Fail(w, http.StatusNotFound, "order not found")
	case errors.Is(err, httpx.ErrValidation):
		httpx.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(op+" failed", "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "something went wrong, please retry")
	}
}
