package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/application/pickit"
	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

// GeneratePickitRequest cuerpo de la petición de corrida.
type GeneratePickitRequest struct {
	SoloHoy  bool             `json:"solo_hoy"`
	Manuales []ManualEntryDTO `json:"manuales"`
}

// ManualEntryDTO renglón manual cargado por el operador.
type ManualEntryDTO struct {
	SKU      string          `json:"sku"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// PickListItemDTO renglón del pick list en la respuesta.
type PickListItemDTO struct {
	SKU          string          `json:"sku"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Descripcion  string          `json:"descripcion"`
	Proveedor    string          `json:"proveedor,omitempty"`
	Unidad       string          `json:"unidad,omitempty"`
	SubRubro     string          `json:"subrubro,omitempty"`
	Stock        int             `json:"stock"`
	Advertencia  string          `json:"advertencia,omitempty"`
}

// CartItemDTO renglón de un carro.
type CartItemDTO struct {
	SKU         string          `json:"sku"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Descripcion string          `json:"descripcion,omitempty"`
	Unidad      string          `json:"unidad,omitempty"`
}

// CartOrderDTO un carro con su letra.
type CartOrderDTO struct {
	NumeroVenta   string        `json:"numero_venta"`
	Letra         string        `json:"letra"`
	FechaCreacion *time.Time    `json:"fecha_creacion,omitempty"`
	Items         []CartItemDTO `json:"items"`
}

// SlaOrderDTO resumen de SLA por venta.
type SlaOrderDTO struct {
	NumeroVenta   string     `json:"numero_venta"`
	CantidadItems int        `json:"cantidad_items"`
	Estado        string     `json:"estado"`
	FechaPrevista *time.Time `json:"fecha_prevista,omitempty"`
}

// PickitSummaryDTO bloque RESUMEN de la corrida.
type PickitSummaryDTO struct {
	VentasPorFuente  map[string]int `json:"ventas_por_fuente"`
	TotalVentas      int            `json:"total_ventas"`
	SkusUnicos       int            `json:"skus_unicos"`
	NoEncontrados    int            `json:"no_encontrados"`
	StockInsuficiente int           `json:"stock_insuficiente"`
	ConError         int            `json:"con_error"`
	ExcluidasSLA     int            `json:"excluidas_sla"`
	Carros           int            `json:"carros"`
}

// GeneratePickitResponse respuesta completa de una corrida.
type GeneratePickitResponse struct {
	PickList []PickListItemDTO `json:"pick_list"`
	Carros   []CartOrderDTO    `json:"carros"`
	Slas     []SlaOrderDTO     `json:"slas"`
	Resumen  PickitSummaryDTO  `json:"resumen"`
}

// FromPickitResult mapea el resultado del pipeline a la respuesta HTTP.
func FromPickitResult(res *pickit.Result) GeneratePickitResponse {
	out := GeneratePickitResponse{
		PickList: make([]PickListItemDTO, 0, len(res.PickList)),
		Carros:   make([]CartOrderDTO, 0, len(res.Carts)),
		Slas:     make([]SlaOrderDTO, 0, len(res.SlaOrders)),
		Resumen: PickitSummaryDTO{
			VentasPorFuente:   res.Summary.SalesBySource,
			TotalVentas:       res.Summary.TotalSales,
			SkusUnicos:        res.Summary.UniqueSKUs,
			NoEncontrados:     res.Summary.NotFound,
			StockInsuficiente: res.Summary.Insufficient,
			ConError:          res.Summary.Errored,
			ExcluidasSLA:      res.Summary.ExcludedSLA,
			Carros:            res.Summary.CartCount,
		},
	}
	for _, it := range res.PickList {
		out.PickList = append(out.PickList, PickListItemDTO{
			SKU:         it.SKU.Display(),
			Cantidad:    it.Quantity,
			Descripcion: it.Description,
			Proveedor:   it.Supplier,
			Unidad:      it.Unit,
			SubRubro:    it.Subcategory,
			Stock:       it.Available,
			Advertencia: it.StockWarning,
		})
	}
	for _, c := range res.Carts {
		cart := CartOrderDTO{
			NumeroVenta:   c.SaleNumber,
			Letra:         c.Label,
			FechaCreacion: c.CreatedAt,
			Items:         make([]CartItemDTO, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cart.Items = append(cart.Items, CartItemDTO{
				SKU:         it.SKU,
				Cantidad:    it.Quantity,
				Descripcion: it.Description,
				Unidad:      it.Unit,
			})
		}
		out.Carros = append(out.Carros, cart)
	}
	for _, s := range res.SlaOrders {
		out.Slas = append(out.Slas, SlaOrderDTO{
			NumeroVenta:   s.SaleNumber,
			CantidadItems: s.ItemCount,
			Estado:        s.Status,
			FechaPrevista: s.ExpectedDate,
		})
	}
	return out
}

// ManualEntries convierte los renglones manuales del request al dominio.
func (r GeneratePickitRequest) ManualEntries() []entity.ManualEntry {
	if len(r.Manuales) == 0 {
		return nil
	}
	out := make([]entity.ManualEntry, 0, len(r.Manuales))
	for _, m := range r.Manuales {
		out = append(out, entity.ManualEntry{SKU: m.SKU, Quantity: m.Cantidad})
	}
	return out
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
