package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory categorías fijas del menú. "Otros" es además el destino
// de las ventas directas que no se pueden atribuir a ningún producto.
type ProductCategory string

const (
	CategoryBebidas  ProductCategory = "Bebidas"
	CategoryComidas  ProductCategory = "Comidas"
	CategoryPostres  ProductCategory = "Postres"
	CategorySnacks   ProductCategory = "Snacks"
	CategoryOtros    ProductCategory = "Otros"
)

// ValidCategories lista cerrada para validación en la capa de aplicación.
var ValidCategories = []ProductCategory{
	CategoryBebidas, CategoryComidas, CategoryPostres, CategorySnacks, CategoryOtros,
}

// Product representa un producto del catálogo (menú + mostrador).
//
// BuyPrice y SellPrice son no negativos. Stock puede llegar a cero (agotado)
// pero no interviene en el cálculo de COGS: el costo de lo vendido se deriva
// de BuyPrice × cantidad vendida, nunca de la depleción de stock.
type Product struct {
	ID        string
	Name      string
	BuyPrice  decimal.Decimal // precio de costo
	SellPrice decimal.Decimal // precio de venta
	Stock     int
	Category  ProductCategory
	CreatedAt time.Time
	UpdatedAt time.Time
}
