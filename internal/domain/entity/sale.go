package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// Sale es una línea de venta pendiente reportada por una fuente (un item, no
// una orden). La crea el adaptador de la fuente y solo el normalizador vuelve
// a escribir su SKU; después de eso es inmutable.
type Sale struct {
	SKU      sku.SKU
	Quantity decimal.Decimal
	Origin   string // etiqueta de la fuente: "ML", "ML Acuerdo", "KT HOGAR", "KT GASTRO", "MANUAL"
	Title    string
}

// Order es una orden de marketplace con sus items. GroupID es la clave de
// "venta" (pack) que une envíos partidos de una misma compra; ShipmentID es
// una referencia débil usada para cruzar el SLA del envío.
type Order struct {
	OrderID           int64
	GroupID           int64
	SaleNumber        string
	ShipmentID        *int64
	CreatedAt         *time.Time
	ShippingSubstatus string
	Items             []*Sale
}

// ManualEntry es un renglón cargado a mano por el operador (SKU + cantidad),
// que entra al pipeline como pseudo-fuente "MANUAL" sin pasar por la red.
type ManualEntry struct {
	SKU      string
	Quantity decimal.Decimal
}
