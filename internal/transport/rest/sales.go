package rest

import (
	"net/http"

	"github.com/abgdnv/inventory/internal/platform/web"
	"github.com/abgdnv/inventory/internal/service"
)

type saleFilter struct {
	ProductName *string `json:"productName" validate:"omitempty,max=100"`
}

// RecordSale handles POST /sales.
func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.SaleCreateDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to record sale", "product", dto.ProductName, "quantity", *dto.Quantity)

	recorded, err := h.sales.Record(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to record sale")
		return
	}
	mLogger.InfoContext(r.Context(), "Sale recorded successfully", "ID", recorded.ID, "product", recorded.ProductName)
	web.RespondJSON(w, mLogger, http.StatusCreated, recorded)
}

// AggregateSales handles GET /sales, returning per-product quantity and amount totals.
func (h *Handler) AggregateSales(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var filter saleFilter
	if !h.decodeBody(w, r, mLogger, &filter) {
		return
	}
	queryString(r, "productName", &filter.ProductName)
	if !h.validateDto(w, r, mLogger, &filter) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to aggregate sales", "filter", filter.ProductName)

	summary, err := h.sales.Aggregate(r.Context(), filter.ProductName)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to aggregate sales")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully aggregated sales", "products", len(summary))
	web.RespondJSON(w, mLogger, http.StatusOK, summary)
}
