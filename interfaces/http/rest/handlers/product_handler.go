package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/application/services"
	"catalog-api/domain/catalog"
	"catalog-api/pkg/common"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/utils"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	service *services.ProductService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *services.ProductService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger,
	}
}

type createProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	BrandID       string   `json:"brand_id" validate:"required"`
	CategoryID    string   `json:"category_id" validate:"required"`
	Price         float64  `json:"price"`
	Description   string   `json:"description,omitempty"`
	StockQuantity int      `json:"stock_quantity,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type updateProductRequest struct {
	Name          *string   `json:"name,omitempty"`
	BrandID       *string   `json:"brand_id,omitempty"`
	CategoryID    *string   `json:"category_id,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	Description   *string   `json:"description,omitempty"`
	StockQuantity *int      `json:"stock_quantity,omitempty"`
	Images        *[]string `json:"images,omitempty"`
}

// updateStockRequest accepts either an absolute quantity or a signed delta,
// never both
type updateStockRequest struct {
	StockQuantity  *int `json:"stock_quantity,omitempty"`
	QuantityChange *int `json:"quantity_change,omitempty"`
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	item, err := h.service.Create(r.Context(), ports.NewProductInput{
		Name:          req.Name,
		BrandID:       req.BrandID,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Images:        req.Images,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusCreated, item, "Product created successfully")
}

// Get handles GET /api/v1/products/{productID}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/v1/products/{productID}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "productID"), catalog.UpdateProductFields{
		Name:          req.Name,
		BrandID:       req.BrandID,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Images:        req.Images,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, item, "Product updated successfully")
}

// UpdateStock handles PATCH /api/v1/products/{productID}/stock
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if (req.StockQuantity == nil) == (req.QuantityChange == nil) {
		h.errors.Handle(w, r, apperrors.NewValidationError("Either stock_quantity or quantity_change must be provided"))
		return
	}

	productID := chi.URLParam(r, "productID")

	var item ports.Item
	var err error
	if req.StockQuantity != nil {
		item, err = h.service.UpdateStock(r.Context(), productID, *req.StockQuantity)
	} else {
		item, err = h.service.AdjustStock(r.Context(), productID, *req.QuantityChange)
	}
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, item, "Stock updated successfully")
}

// Delete handles DELETE /api/v1/products/{productID}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "productID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSONWithMessage(w, http.StatusOK, nil, "Product deleted successfully")
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), common.ExtractListParams(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListByBrand handles GET /api/v1/products/by-brand/{brandID}
func (h *ProductHandler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListByBrand(r.Context(), chi.URLParam(r, "brandID"), common.ExtractListParams(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListByCategory handles GET /api/v1/products/by-category/{categoryID}
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListByCategory(r.Context(), chi.URLParam(r, "categoryID"), common.ExtractListParams(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
