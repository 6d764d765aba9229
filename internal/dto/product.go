package dto

import (
	"time"

	"github.com/Additional-Code/storehouse/pkg/optional"
)

// CreateProductRequest carries the caller supplied product fields. Omitted
// fields take their column defaults.
type CreateProductRequest struct {
	CustomerID *int64   `json:"customer_id"`
	Name       *string  `json:"product_name"`
	Price      *float64 `json:"product_price"`
	Quantity   *int     `json:"product_quantity"`
}

// UpdateProductRequest is a partial product update.
type UpdateProductRequest struct {
	Name     optional.Value[string]  `json:"product_name"`
	Price    optional.Value[float64] `json:"product_price"`
	Quantity optional.Value[int]     `json:"product_quantity"`
	Status   optional.Value[bool]    `json:"product_status"`
}

// ProductResponse represents a product as exposed via transport layers.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"product_name"`
	CodeNumber  string    `json:"product_code_number"`
	BuildupDate time.Time `json:"buildup_date"`
	Price       float64   `json:"product_price"`
	Quantity    int       `json:"product_quantity"`
	Status      bool      `json:"product_status"`
	OwnerID     *int64    `json:"owner_id"`
}
