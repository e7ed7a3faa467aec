package pickit

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
	"github.com/leo-ar/pickit-api/pkg/logger"
)

// resolveStats son los contadores del cruce contra stock para el resumen.
type resolveStats struct {
	notFound     int
	insufficient int
	errored      int
}

// resolveStock cruza la demanda agregada contra el catálogo de stock y arma
// los renglones del pick list. Los SKUs etiquetados se arrastran sin lookup
// (para SIN SKU el título pasa a la descripción). Un SKU válido que no está
// en el catálogo, o cuyo stock no alcanza, entra igual al pick list con su
// advertencia: son warnings, nunca motivo de exclusión.
func resolveStock(ctx context.Context, stock StockCatalog, agg *aggregatedDemand, log *logger.Logger) ([]entity.PickListItem, resolveStats, error) {
	items := make([]entity.PickListItem, 0, agg.len())
	var stats resolveStats

	for _, key := range agg.keys {
		b := agg.buckets[key]
		item := entity.PickListItem{SKU: b.sku, Quantity: b.quantity}

		switch {
		case b.sku.Kind == sku.KindMissing:
			item.Description = b.sku.Payload
			stats.errored++
		case b.sku.IsError():
			stats.errored++
		default:
			producto, err := stock.Find(ctx, b.sku.Code)
			if err != nil {
				return nil, stats, fmt.Errorf("catálogo de stock: %w", err)
			}
			if producto == nil {
				log.Warn().Str("sku", b.sku.Code).Msg("SKU no encontrado en catálogo de stock")
				item.StockWarning = entity.StockNotFound
				stats.notFound++
				break
			}
			item.Description = producto.Description
			item.Supplier = producto.Supplier
			item.Subcategory = producto.Subcategory
			item.Unit = producto.Unit
			item.Available = producto.Available
			if decimal.NewFromInt(int64(producto.Available)).LessThan(b.quantity) {
				log.Warn().
					Str("sku", b.sku.Code).
					Str("pedido", b.quantity.String()).
					Int("disponible", producto.Available).
					Msg("stock insuficiente")
				item.StockWarning = entity.StockInsufficient
				stats.insufficient++
			}
		}

		items = append(items, item)
	}
	return items, stats, nil
}

// sortPickList ordena el pick list por unidad, proveedor, subrubro y
// descripción (ascendente, sensible a mayúsculas, vacío primero). El sort es
// estable: los empates conservan el orden de inserción de la agregación.
func sortPickList(items []entity.PickListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		if a.Supplier != b.Supplier {
			return a.Supplier < b.Supplier
		}
		if a.Subcategory != b.Subcategory {
			return a.Subcategory < b.Subcategory
		}
		return a.Description < b.Description
	})
}
