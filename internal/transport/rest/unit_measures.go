package rest

import (
	"fmt"
	"net/http"

	"github.com/abgdnv/inventory/internal/platform/web"
	"github.com/abgdnv/inventory/internal/service"
)

type unitMeasureFilter struct {
	ID *int64 `json:"id" validate:"omitempty,gt=0"`
}

type unitMeasureIdentity struct {
	ID *int64 `json:"id" validate:"required,gt=0"`
}

// CreateUnitMeasure handles POST /unitmeasures.
func (h *Handler) CreateUnitMeasure(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.UnitMeasureCreateDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create unit measure", "name", dto.Name)

	created, err := h.unitMeasures.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to create unit measure")
		return
	}
	mLogger.InfoContext(r.Context(), "Unit measure created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// FindUnitMeasures handles GET /unitmeasures. With an id it returns one unit measure, otherwise all of them.
func (h *Handler) FindUnitMeasures(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var filter unitMeasureFilter
	if !h.decodeBody(w, r, mLogger, &filter) || !queryInt64(w, r, mLogger, "id", &filter.ID) || !h.validateDto(w, r, mLogger, &filter) {
		return
	}

	if filter.ID == nil {
		mLogger.DebugContext(r.Context(), "Received request to find all unit measures")
		list, err := h.unitMeasures.FindAll(r.Context())
		if err != nil {
			h.respondServiceError(w, r, mLogger, err, "Failed to fetch unit measures")
			return
		}
		mLogger.DebugContext(r.Context(), "Successfully retrieved unit measure list", "count", len(list))
		web.RespondJSON(w, mLogger, http.StatusOK, list)
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find unit measure by ID", "ID", *filter.ID)
	found, err := h.unitMeasures.FindByID(r.Context(), *filter.ID)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve unit measure with ID %d", *filter.ID))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// UpdateUnitMeasure handles PUT /unitmeasures.
func (h *Handler) UpdateUnitMeasure(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.UnitMeasureUpdateDto
	if !h.decodeAndValidate(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update unit measure", "ID", *dto.ID)

	updated, err := h.unitMeasures.Update(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to update unit measure with ID %d", *dto.ID))
		return
	}
	mLogger.InfoContext(r.Context(), "Unit measure updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, updated)
}

// DeleteUnitMeasure handles DELETE /unitmeasures.
func (h *Handler) DeleteUnitMeasure(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var identity unitMeasureIdentity
	if !h.decodeBody(w, r, mLogger, &identity) || !queryInt64(w, r, mLogger, "id", &identity.ID) || !h.validateDto(w, r, mLogger, &identity) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete unit measure", "ID", *identity.ID)

	if err := h.unitMeasures.Delete(r.Context(), *identity.ID); err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to delete unit measure with ID %d", *identity.ID))
		return
	}
	mLogger.InfoContext(r.Context(), "Unit measure deleted successfully", "ID", *identity.ID)
	web.RespondMessage(w, mLogger, http.StatusCreated, fmt.Sprintf("Unit measure with ID %d deleted", *identity.ID))
}
