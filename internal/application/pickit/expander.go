package pickit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// expandCombos reemplaza cada venta cuyo SKU es padre de combo por una venta
// por componente, con cantidad = cantidad de la venta × multiplicador. Una
// expansión no positiva (multiplicador corrupto en el catálogo) se convierte
// en una venta etiquetada COMBO INVALIDO con el SKU del componente, nunca se
// descarta en silencio. Las ventas sin combo y las ya etiquetadas pasan sin
// cambios.
//
// La expansión es de un solo nivel: un componente que a su vez es combo sigue
// como SKU simple (limitación conocida del sistema, no se resuelve recursivo).
func expandCombos(ctx context.Context, combos ComboCatalog, sales []*entity.Sale) ([]*entity.Sale, error) {
	expanded := make([]*entity.Sale, 0, len(sales))
	for _, venta := range sales {
		if venta.SKU.IsError() {
			expanded = append(expanded, venta)
			continue
		}
		componentes, err := combos.Components(ctx, venta.SKU.Code)
		if err != nil {
			return nil, fmt.Errorf("catálogo de combos: %w", err)
		}
		if len(componentes) == 0 {
			expanded = append(expanded, venta)
			continue
		}
		for _, comp := range componentes {
			cantidad := venta.Quantity.Mul(comp.Multiplier)
			s := sku.Raw(comp.ComponentSKU)
			if cantidad.LessThanOrEqual(decimal.Zero) {
				s = sku.InvalidCombo(comp.ComponentSKU)
			}
			expanded = append(expanded, &entity.Sale{
				SKU:      s,
				Quantity: cantidad,
				Origin:   venta.Origin,
				Title:    venta.Title,
			})
		}
	}
	return expanded, nil
}
