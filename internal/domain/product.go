package domain

import "github.com/shopspring/decimal"

// Product is read-only from this service's perspective; rows are seeded and
// maintained by the catalog tooling.
type Product struct {
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"category_id"`
	Description string          `json:"description"`
	Subcategory string          `json:"subcategory"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `json:"image_url"`
}
