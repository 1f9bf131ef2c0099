package districts

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
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

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type districtRequest struct {
	DistrictName string `json:"district_name" validate:"required"`
	DistrictCode string `json:"district_code" validate:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ZoneRegion   string `json:"zone_region"`
	ActiveStatus string `json:"active_status" validate:"omitempty,oneof=Active Inactive"`
	Remarks      string `json:"remarks"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.ListFilters{
		Search: r.URL.Query().Get("search"),
		State:  r.URL.Query().Get("state"),
		Status: r.URL.Query().Get("status"),
	}

	list, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list districts failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load districts")
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid district ID")
		return
	}

	district, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get district", err)
		return
	}
	httpx.JSON(w, http.StatusOK, district)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req districtRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		h.respondError(w, "create district", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid district ID")
		return
	}

	var req districtRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := h.service.Update(r.Context(), id, req.toModel()); err != nil {
		h.respondError(w, "update district", err)
		return
	}
	district, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "reload district", err)
		return
	}
	httpx.JSON(w, http.StatusOK, district)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid district ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete district", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", "district not found")
	case errors.Is(err, shared.ErrDuplicate):
		httpx.Problem(w, http.StatusConflict, "Conflict", "district already exists")
	case errors.Is(err, shared.ErrInvalidID):
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrRequiredField):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error(op+" failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func (req districtRequest) toModel() District {
	return District{
		DistrictName: req.DistrictName,
		DistrictCode: req.DistrictCode,
		State:        req.State,
		PostalCode:   req.PostalCode,
		ZoneRegion:   req.ZoneRegion,
		ActiveStatus: req.ActiveStatus,
		Remarks:      req.Remarks,
	}
}
