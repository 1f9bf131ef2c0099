package ledgers

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

type ledgerRequest struct {
	PartyCode     string `json:"party_code"`
	PartyName     string `json:"party_name" validate:"required"`
	PartyType     string `json:"party_type" validate:"omitempty,oneof=Customer Supplier Dealer"`
	Address       string `json:"address"`
	State         string `json:"state"`
	DistrictCode  string `json:"district_code"`
	DistrictName  string `json:"district_name"`
	PostalCode    string `json:"postal_code"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	ContactPerson string `json:"contact_person"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email" validate:"omitempty,email"`
	LedgerMapping string `json:"ledger_mapping"`
	ActiveStatus  string `json:"active_status" validate:"omitempty,oneof=Active Inactive"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.ListFilters{
		Search: r.URL.Query().Get("search"),
		State:  r.URL.Query().Get("state"),
		Status: r.URL.Query().Get("status"),
	}

	list, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list ledgers failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "failed to load ledgers")
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid ledger ID")
		return
	}

	ledger, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get ledger", err)
		return
	}
	httpx.JSON(w, http.StatusOK, ledger)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ledgerRequest
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
		h.respondError(w, "create ledger", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid ledger ID")
		return
	}

	var req ledgerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := h.service.Update(r.Context(), id, req.toModel()); err != nil {
		h.respondError(w, "update ledger", err)
		return
	}
	ledger, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "reload ledger", err)
		return
	}
	httpx.JSON(w, http.StatusOK, ledger)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid ledger ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete ledger", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", "ledger not found")
	case errors.Is(err, shared.ErrDuplicate):
		httpx.Problem(w, http.StatusConflict, "Conflict", "ledger already exists")
	case errors.Is(err, shared.ErrInvalidID):
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrRequiredField):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error(op+" failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func (req ledgerRequest) toModel() Ledger {
	return Ledger{
		PartyCode:     req.PartyCode,
		PartyName:     req.PartyName,
		PartyType:     PartyType(req.PartyType),
		Address:       req.Address,
		State:         req.State,
		DistrictCode:  req.DistrictCode,
		DistrictName:  req.DistrictName,
		PostalCode:    req.PostalCode,
		GSTIN:         req.GSTIN,
		PAN:           req.PAN,
		ContactPerson: req.ContactPerson,
		MobileNumber:  req.MobileNumber,
		Email:         req.Email,
		LedgerMapping: req.LedgerMapping,
		ActiveStatus:  req.ActiveStatus,
	}
}
