package entity

import "time"

// SlaRecord es el SLA de un envío: estado y fecha límite prometida de
// despacho. Expedited marca envíos prioritarios (turbo).
type SlaRecord struct {
	Status       string
	ExpectedDate *time.Time
	Expedited    bool
}

// SlaOrder es el resumen de SLA por grupo de venta que sale en el reporte:
// el primer envío del grupo con SLA decide, y los items se cuentan sobre
// todo el grupo.
type SlaOrder struct {
	SaleNumber   string
	ItemCount    int
	Status       string
	ExpectedDate *time.Time
}
