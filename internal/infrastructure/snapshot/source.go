package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/application/pickit"
	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// Source es una fuente de ventas offline: un snapshot JSON exportado
// previamente (corridas sin red, fixtures, soporte). Cumple el mismo contrato
// que un cliente de marketplace, incluida la clasificación de ingesta:
// cantidad <= 0 se etiqueta CANT INVALIDA y un item sin SKU queda SIN SKU con
// su título.
type Source struct {
	name string
	path string
}

// New construye la fuente con el nombre de origen que llevarán sus ventas.
func New(name, path string) *Source {
	return &Source{name: name, path: path}
}

// Name devuelve la etiqueta de la fuente.
func (s *Source) Name() string { return s.name }

type snapshotFile struct {
	Ventas  []snapshotSale  `json:"ventas"`
	Ordenes []snapshotOrder `json:"ordenes"`
}

type snapshotSale struct {
	SKU      string          `json:"sku"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Titulo   string          `json:"titulo"`
}

type snapshotOrder struct {
	OrderID       int64          `json:"order_id"`
	VentaID       int64          `json:"venta_id"`
	NumeroVenta   string         `json:"numero_venta"`
	ShipmentID    *int64         `json:"shipment_id"`
	FechaCreacion *time.Time     `json:"fecha_creacion"`
	Substatus     string         `json:"substatus"`
	Items         []snapshotSale `json:"items"`
}

// Fetch lee y decodifica el snapshot completo. El orden de los items del
// archivo se conserva.
func (s *Source) Fetch(_ context.Context) (pickit.SourceResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return pickit.SourceResult{}, fmt.Errorf("leer snapshot %q: %w", s.path, err)
	}
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return pickit.SourceResult{}, fmt.Errorf("decodificar snapshot %q: %w", s.path, err)
	}

	var result pickit.SourceResult
	for _, v := range file.Ventas {
		result.Sales = append(result.Sales, s.toSale(v))
	}
	for _, o := range file.Ordenes {
		orden := &entity.Order{
			OrderID:           o.OrderID,
			GroupID:           o.VentaID,
			SaleNumber:        o.NumeroVenta,
			ShipmentID:        o.ShipmentID,
			CreatedAt:         o.FechaCreacion,
			ShippingSubstatus: o.Substatus,
		}
		if orden.GroupID == 0 {
			// sin pack: la orden es su propio grupo de venta
			orden.GroupID = o.OrderID
		}
		for _, item := range o.Items {
			orden.Items = append(orden.Items, s.toSale(item))
		}
		if len(orden.Items) > 0 {
			result.Orders = append(result.Orders, orden)
		}
	}
	return result, nil
}

// toSale aplica la clasificación de ingesta sobre un renglón del snapshot.
func (s *Source) toSale(v snapshotSale) *entity.Sale {
	code := v.SKU
	switch {
	case v.Cantidad.LessThanOrEqual(decimal.Zero):
		if code == "" {
			code = v.Titulo
		}
		return &entity.Sale{SKU: sku.InvalidQuantity(code), Quantity: v.Cantidad, Origin: s.name, Title: v.Titulo}
	case code == "":
		return &entity.Sale{SKU: sku.Missing(v.Titulo), Quantity: v.Cantidad, Origin: s.name, Title: v.Titulo}
	default:
		return &entity.Sale{SKU: sku.Raw(code), Quantity: v.Cantidad, Origin: s.name, Title: v.Titulo}
	}
}
