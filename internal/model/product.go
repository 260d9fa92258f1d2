package model

import "time"

// Product represents a single catalog product record
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	ModelURL    string    `json:"model_url,omitempty"` // GLB/GLTF asset, may be empty
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductVariation represents one purchasable variation of a product
// (color, size, material and the like)
type ProductVariation struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	Price     float64 `json:"price"`
	InStock   bool    `json:"in_stock"`
}

// HasModel returns true if the product carries a previewable 3D asset
func (p *Product) HasModel() bool {
	return p.ModelURL != ""
}

// GetDisplayTitle returns name, falling back to the id
func (p *Product) GetDisplayTitle() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
