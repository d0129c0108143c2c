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

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	service *services.CategoryService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *services.CategoryService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger,
	}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	item, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusCreated, item, "Category created successfully")
}

// Get handles GET /api/v1/categories/{categoryID}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/v1/categories/{categoryID}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "categoryID"), catalog.UpdateCategoryFields{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, item, "Category updated successfully")
}

// Delete handles DELETE /api/v1/categories/{categoryID}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, nil, "Category deleted successfully")
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), common.ExtractListParams(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
