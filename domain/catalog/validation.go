package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "catalog-api/pkg/errors"

	"github.com/google/uuid"
)

// Validation bounds for catalog entities
const (
	NameMinLength = 2

	BrandNameMaxLength   = 100
	ProductNameMaxLength = 200

	DescriptionMinLength        = 10
	BrandDescriptionMaxLength   = 500
	ProductDescriptionMaxLength = 1000

	PriceMax         = 999999.99
	StockQuantityMax = 999999
	MaxImages        = 10
)

var (
	// Brand and category names allow letters, numbers, spaces and a small
	// set of punctuation. Product names allow a wider set.
	brandNamePattern   = regexp.MustCompile(`^[a-zA-Z0-9\s\-_&.]+$`)
	productNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_&.,()'"/!+]+$`)
	imageURLPattern    = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)(\?.*)?$`)
)

// ValidateBrandName validates a brand name
func ValidateBrandName(name string) error {
	return validateName("Brand", name, BrandNameMaxLength, brandNamePattern)
}

// ValidateCategoryName validates a category name
func ValidateCategoryName(name string) error {
	return validateName("Category", name, BrandNameMaxLength, brandNamePattern)
}

// ValidateProductName validates a product name
func ValidateProductName(name string) error {
	return validateName("Product", name, ProductNameMaxLength, productNamePattern)
}

func validateName(entity, name string, maxLen int, pattern *regexp.Regexp) error {
	if name == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s name is required", entity))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s name cannot be empty or whitespace", entity))
	}

	length := utf8.RuneCountInString(name)
	if length < NameMinLength {
		return apperrors.NewValidationError(fmt.Sprintf("%s name must be at least %d characters long", entity, NameMinLength))
	}

	if length > maxLen {
		return apperrors.NewValidationError(fmt.Sprintf("%s name cannot exceed %d characters", entity, maxLen))
	}

	if !pattern.MatchString(name) {
		return apperrors.NewValidationError(fmt.Sprintf("%s name contains invalid characters", entity))
	}

	return nil
}

// ValidateBrandDescription validates a required brand description
func ValidateBrandDescription(description string) error {
	return validateRequiredDescription("Brand", description, BrandDescriptionMaxLength)
}

// ValidateCategoryDescription validates a required category description
func ValidateCategoryDescription(description string) error {
	return validateRequiredDescription("Category", description, BrandDescriptionMaxLength)
}

func validateRequiredDescription(entity, description string, maxLen int) error {
	if description == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s description is required", entity))
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s description cannot be empty or whitespace", entity))
	}

	length := utf8.RuneCountInString(description)
	if length < DescriptionMinLength {
		return apperrors.NewValidationError(fmt.Sprintf("%s description must be at least %d characters long", entity, DescriptionMinLength))
	}

	if length > maxLen {
		return apperrors.NewValidationError(fmt.Sprintf("%s description cannot exceed %d characters", entity, maxLen))
	}

	return nil
}

// ValidateProductDescription validates an optional product description.
// Empty after trimming is acceptable for the optional field.
func ValidateProductDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}

	length := utf8.RuneCountInString(description)
	if length < DescriptionMinLength {
		return apperrors.NewValidationError(fmt.Sprintf("Product description must be at least %d characters long", DescriptionMinLength))
	}

	if length > ProductDescriptionMaxLength {
		return apperrors.NewValidationError(fmt.Sprintf("Product description cannot exceed %d characters", ProductDescriptionMaxLength))
	}

	return nil
}

// ValidateWebsite validates an optional brand website URL. The URL must
// parse and use the http or https scheme.
func ValidateWebsite(website string) error {
	website = strings.TrimSpace(website)
	if website == "" {
		return nil
	}

	parsed, err := url.Parse(website)
	if err != nil || parsed.Host == "" {
		return apperrors.NewValidationError("Invalid website URL format")
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return apperrors.NewValidationError("Website URL must use http or https protocol")
	}

	return nil
}

// ValidatePrice validates a product price: non-negative, capped, and with at
// most two decimal places.
func ValidatePrice(price float64) error {
	if price < 0 {
		return apperrors.NewValidationError("Price cannot be negative")
	}

	if price > PriceMax {
		return apperrors.NewValidationError("Price cannot exceed 999,999.99")
	}

	rendered := strconv.FormatFloat(price, 'f', -1, 64)
	if dot := strings.IndexByte(rendered, '.'); dot >= 0 {
		if len(rendered)-dot-1 > 2 {
			return apperrors.NewValidationError("Price cannot have more than 2 decimal places")
		}
	}

	return nil
}

// ValidateStockQuantity validates a whole stock quantity within bounds
func ValidateStockQuantity(quantity int) error {
	if quantity < 0 {
		return apperrors.NewValidationError("Stock quantity cannot be negative")
	}

	if quantity > StockQuantityMax {
		return apperrors.NewValidationError("Stock quantity cannot exceed 999,999")
	}

	return nil
}

// ValidateImages validates an optional list of product image URLs
func ValidateImages(images []string) error {
	if len(images) > MaxImages {
		return apperrors.NewValidationError(fmt.Sprintf("Cannot have more than %d images", MaxImages))
	}

	for i, imageURL := range images {
		imageURL = strings.TrimSpace(imageURL)
		if imageURL == "" {
			return apperrors.NewValidationError(fmt.Sprintf("Image %d URL cannot be empty", i+1))
		}

		if !imageURLPattern.MatchString(imageURL) {
			return apperrors.NewValidationError(fmt.Sprintf("Image %d must be a valid image URL (jpg, jpeg, png, gif, webp)", i+1))
		}
	}

	return nil
}

// ValidateEntityID validates a referenced entity id as a UUID
func ValidateEntityID(entity, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s ID is required", entity))
	}

	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("%s ID must be a valid UUID", entity))
	}

	return nil
}
