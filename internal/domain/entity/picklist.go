package entity

import (
	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// Advertencias de stock sobre un renglón del pick list. No excluyen el item:
// un faltante de catálogo o de stock se reporta, nunca se descarta.
const (
	StockOK           = ""
	StockNotFound     = "NO_ENCONTRADO"
	StockInsufficient = "INSUFICIENTE"
)

// PickListItem es un renglón del pick list final: un SKU resuelto con su
// demanda agregada y los datos del catálogo de stock.
type PickListItem struct {
	SKU          sku.SKU
	Quantity     decimal.Decimal
	Description  string
	Supplier     string
	Unit         string
	Subcategory  string
	Available    int
	StockWarning string
}
