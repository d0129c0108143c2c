package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-api/application/services"
	"catalog-api/domain/catalog"
	"catalog-api/pkg/common"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/utils"
)

// maxBodyBytes caps request body size for all write endpoints
const maxBodyBytes = 1 << 20

// BrandHandler handles brand HTTP requests
type BrandHandler struct {
	service *services.BrandService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(service *services.BrandService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger,
	}
}

type createBrandRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Website     string `json:"website,omitempty"`
}

type updateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// Create handles POST /api/v1/brands
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	item, err := h.service.Create(r.Context(), req.Name, req.Description, req.Website)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusCreated, item, "Brand created successfully")
}

// Get handles GET /api/v1/brands/{brandID}
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "brandID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/v1/brands/{brandID}
func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBrandRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "brandID"), catalog.UpdateBrandFields{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, item, "Brand updated successfully")
}

// Delete handles DELETE /api/v1/brands/{brandID}
func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "brandID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, nil, "Brand deleted successfully")
}

// List handles GET /api/v1/brands
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), common.ExtractListParams(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
