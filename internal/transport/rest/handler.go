// Package rest provides the HTTP handlers for unit measures, products and sales.
package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/platform/web"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	unitMeasures service.UnitMeasureService
	products     service.ProductService
	sales        service.SaleService
	db           Pinger
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewHandler creates a Handler serving the given services.
func NewHandler(unitMeasures service.UnitMeasureService, products service.ProductService, sales service.SaleService, db Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		unitMeasures: unitMeasures,
		products:     products,
		sales:        sales,
		db:           db,
		validate:     web.NewValidator(),
		logger:       logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the inventory service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/unitmeasures", func(r chi.Router) {
		r.Post("/", h.CreateUnitMeasure)
		r.Get("/", h.FindUnitMeasures)
		r.Put("/", h.UpdateUnitMeasure)
		r.Delete("/", h.DeleteUnitMeasure)
	})
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.FindProducts)
		r.Put("/", h.UpdateProduct)
		r.Delete("/", h.DeleteProduct)
	})
	r.Route("/sales", func(r chi.Router) {
		r.Post("/", h.RecordSale)
		r.Get("/", h.AggregateSales)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck reports 200 when the database answers a ping and 503 otherwise.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.loggerWithReqID(r).WarnContext(r.Context(), "Health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// decodeBody reads the optional JSON body into dst.
// It writes the response and returns false if the body is malformed or holds a value of the wrong type.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	err := web.DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	var typeErr *web.TypeMismatchError
	if errors.As(err, &typeErr) {
		logger.WarnContext(r.Context(), "Request field has the wrong type", "field", typeErr.Field, "expected", typeErr.Expected)
		web.RespondValidationErrors(w, logger, http.StatusNotAcceptable, map[string]string{typeErr.Field: "failed on rule: type"})
		return false
	}
	logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
	web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
	return false
}

// validateDto writes a 406 with the failing fields and returns false if dto does not pass validation.
func (h *Handler) validateDto(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dto any) bool {
	err := h.validate.Struct(dto)
	if err == nil {
		return true
	}
	if errorResponse, ok := web.ValidationErrors(err); ok {
		logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		web.RespondValidationErrors(w, logger, http.StatusNotAcceptable, errorResponse)
		return false
	}
	logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, logger, http.StatusNotAcceptable, "Invalid request body")
	return false
}

// decodeAndValidate combines decodeBody and validateDto.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dto any) bool {
	return h.decodeBody(w, r, logger, dto) && h.validateDto(w, r, logger, dto)
}

// respondServiceError maps a service error to its HTTP status.
// Client errors carry the error text; server errors carry only the failure message.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, failure string) {
	ctx := r.Context()
	switch {
	case errors.Is(err, inverrors.ErrUnitMeasureNotFound),
		errors.Is(err, inverrors.ErrProductNotFound),
		errors.Is(err, inverrors.ErrSalesNotFound):
		logger.WarnContext(ctx, "Entity not found", "error", err)
		web.RespondError(w, logger, http.StatusNotFound, err.Error())
	case errors.Is(err, inverrors.ErrConstraintViolation):
		logger.WarnContext(ctx, "Constraint violation", "error", err)
		web.RespondError(w, logger, http.StatusNotFound, err.Error())
	case errors.Is(err, inverrors.ErrEntityInUse), errors.Is(err, inverrors.ErrProductExists):
		logger.WarnContext(ctx, "Conflicting request", "error", err)
		web.RespondError(w, logger, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(ctx, failure, "error", err)
		web.RespondError(w, logger, http.StatusInternalServerError, failure)
	}
}

// queryInt64 overrides *dst with the named query parameter when it is present.
// It writes a 406 and returns false if the parameter is not an integer.
func queryInt64(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string, dst **int64) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.WarnContext(r.Context(), "Invalid query parameter", "param", name, "value", raw)
		web.RespondValidationErrors(w, logger, http.StatusNotAcceptable, map[string]string{name: "failed on rule: type"})
		return false
	}
	*dst = &v
	return true
}

// queryString overrides *dst with the named query parameter when it is present and not empty.
func queryString(r *http.Request, name string, dst **string) {
	if raw := r.URL.Query().Get(name); raw != "" {
		*dst = &raw
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
