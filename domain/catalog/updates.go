package catalog

// Typed partial-update field sets. A nil pointer means "leave unchanged";
// every settable field is enumerated here so the repositories can build
// their update statements from a fixed set of attributes.

// UpdateBrandFields holds the updatable fields of a brand
type UpdateBrandFields struct {
	Name        *string
	Description *string
	Website     *string
}

// IsEmpty reports whether no field is set
func (f UpdateBrandFields) IsEmpty() bool {
	return f.Name == nil && f.Description == nil && f.Website == nil
}

// Validate checks every set field against the brand rules
func (f UpdateBrandFields) Validate() error {
	if f.Name != nil {
		if err := ValidateBrandName(*f.Name); err != nil {
			return err
		}
	}
	if f.Description != nil {
		if err := ValidateBrandDescription(*f.Description); err != nil {
			return err
		}
	}
	if f.Website != nil {
		if err := ValidateWebsite(*f.Website); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCategoryFields holds the updatable fields of a category
type UpdateCategoryFields struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether no field is set
func (f UpdateCategoryFields) IsEmpty() bool {
	return f.Name == nil && f.Description == nil
}

// Validate checks every set field against the category rules
func (f UpdateCategoryFields) Validate() error {
	if f.Name != nil {
		if err := ValidateCategoryName(*f.Name); err != nil {
			return err
		}
	}
	if f.Description != nil {
		if err := ValidateCategoryDescription(*f.Description); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProductFields holds the updatable fields of a product
type UpdateProductFields struct {
	Name          *string
	BrandID       *string
	CategoryID    *string
	Price         *float64
	Description   *string
	StockQuantity *int
	Images        *[]string
}

// IsEmpty reports whether no field is set
func (f UpdateProductFields) IsEmpty() bool {
	return f.Name == nil && f.BrandID == nil && f.CategoryID == nil &&
		f.Price == nil && f.Description == nil && f.StockQuantity == nil &&
		f.Images == nil
}

// Validate checks every set field against the product rules
func (f UpdateProductFields) Validate() error {
	if f.Name != nil {
		if err := ValidateProductName(*f.Name); err != nil {
			return err
		}
	}
	if f.BrandID != nil {
		if err := ValidateEntityID("Brand", *f.BrandID); err != nil {
			return err
		}
	}
	if f.CategoryID != nil {
		if err := ValidateEntityID("Category", *f.CategoryID); err != nil {
			return err
		}
	}
	if f.Price != nil {
		if err := ValidatePrice(*f.Price); err != nil {
			return err
		}
	}
	if f.Description != nil {
		if err := ValidateProductDescription(*f.Description); err != nil {
			return err
		}
	}
	if f.StockQuantity != nil {
		if err := ValidateStockQuantity(*f.StockQuantity); err != nil {
			return err
		}
	}
	if f.Images != nil {
		if err := ValidateImages(*f.Images); err != nil {
			return err
		}
	}
	return nil
}
