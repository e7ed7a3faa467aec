package entity

import "github.com/shopspring/decimal"

// ComboEntry es una fila del catálogo de combos (lista de materiales):
// el SKU padre se vende como unidad pero descuenta ComponentSKU × Multiplier
// del inventario. Solo es válida con Multiplier > 0.
type ComboEntry struct {
	ParentSKU    string
	ComponentSKU string
	Multiplier   decimal.Decimal
}

// StockRecord es una fila del catálogo de stock, indexada por SKU exacto.
type StockRecord struct {
	SKU         string
	Description string
	Supplier    string
	Subcategory string
	Unit        string
	Available   int
}
