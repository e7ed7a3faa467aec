package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartOrder es un carro físico de armado: todas las órdenes de un mismo
// GroupID fusionadas, con su letra secuencial ("A", "B", ..., "AA", ...).
type CartOrder struct {
	SaleNumber string
	CreatedAt  *time.Time
	Label      string
	Items      []CartItem
}

// CartItem es un renglón del carro, ya expandido por combos.
type CartItem struct {
	SKU         string
	Quantity    decimal.Decimal
	Description string
	Unit        string
}
