package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta o edición de producto del catálogo.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category"`
}

// ProductResponse producto para la API.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category"`
}
