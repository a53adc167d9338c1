package rest

import (
	"fmt"
	"net/http"

	"github.com/abgdnv/inventory/internal/platform/web"
	"github.com/abgdnv/inventory/internal/service"
)

type productFilter struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

type productIdentity struct {
	Name *string `json:"name" validate:"required,min=1,max=100"`
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.ProductWriteDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", dto.Name)

	created, err := h.products.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// FindProducts handles GET /products. With a name it returns one product, otherwise all of them.
func (h *Handler) FindProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var filter productFilter
	if !h.decodeBody(w, r, mLogger, &filter) {
		return
	}
	queryString(r, "name", &filter.Name)
	if !h.validateDto(w, r, mLogger, &filter) {
		return
	}

	if filter.Name == nil {
		mLogger.DebugContext(r.Context(), "Received request to find all products")
		list, err := h.products.FindAll(r.Context())
		if err != nil {
			h.respondServiceError(w, r, mLogger, err, "Failed to fetch products")
			return
		}
		mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
		web.RespondJSON(w, mLogger, http.StatusOK, list)
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by name", "Name", *filter.Name)
	found, err := h.products.FindByName(r.Context(), *filter.Name)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve product %q", *filter.Name))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// UpdateProduct handles PUT /products.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.ProductWriteDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "Name", dto.Name)

	updated, err := h.products.Update(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to update product %q", dto.Name))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "Name", updated.Name, "Price", updated.Price)
	web.RespondJSON(w, mLogger, http.StatusCreated, updated)
}

// DeleteProduct handles DELETE /products.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var identity productIdentity
	if !h.decodeBody(w, r, mLogger, &identity) {
		return
	}
	queryString(r, "name", &identity.Name)
	if !h.validateDto(w, r, mLogger, &identity) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "Name", *identity.Name)

	if err := h.products.Delete(r.Context(), *identity.Name); err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to delete product %q", *identity.Name))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "Name", *identity.Name)
	web.RespondMessage(w, mLogger, http.StatusCreated, fmt.Sprintf("Product %q deleted", *identity.Name))
}
