package pickit

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// Un grupo de venta entra a carros solo si junta al menos esta cantidad de
// SKUs distintos; las compras de uno o dos renglones no justifican carro.
const minCartDistinctSKUs = 3

// CartLabel genera la letra del carro i (base 0) en numeración biyectiva
// base 26, estilo columna de planilla: 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
func CartLabel(index int) string {
	index++
	var buf [8]byte
	pos := len(buf)
	for index > 0 {
		index--
		pos--
		buf[pos] = byte('A' + index%26)
		index /= 26
	}
	return string(buf[pos:])
}

// sortOrders ordena las órdenes por fecha de creación ascendente (las sin
// fecha al final) con desempate por orderId. Tiene que correr antes de armar
// los carros: las letras se asignan en este orden.
func sortOrders(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			return a.OrderID < b.OrderID
		case a.CreatedAt == nil:
			return false
		case b.CreatedAt == nil:
			return true
		case a.CreatedAt.Equal(*b.CreatedAt):
			return a.OrderID < b.OrderID
		default:
			return a.CreatedAt.Before(*b.CreatedAt)
		}
	})
}

// buildCarts fusiona las órdenes de cada grupo de venta en un carro físico.
// Los grupos con menos de minCartDistinctSKUs SKUs distintos se saltean sin
// consumir letra. Los items del carro se expanden por combos contra los items
// originales de la orden (no contra el agregado), así la descripción por
// renglón puede diferir de la fila agregada del pick list.
func buildCarts(ctx context.Context, orders []*entity.Order, combos ComboCatalog, stock StockCatalog) ([]entity.CartOrder, error) {
	groupKeys, groups := groupByVenta(orders)

	carts := make([]entity.CartOrder, 0, len(groupKeys))
	carroIndex := 0
	for _, ventaID := range groupKeys {
		grupo := groups[ventaID]

		// SKUs distintos del grupo, sobre los items ya clasificados
		distintos := make(map[string]bool)
		for _, orden := range grupo {
			for _, item := range orden.Items {
				distintos[item.SKU.Display()] = true
			}
		}
		if len(distintos) < minCartDistinctSKUs {
			continue
		}

		items, err := cartItems(ctx, grupo, combos, stock)
		if err != nil {
			return nil, err
		}
		carts = append(carts, entity.CartOrder{
			SaleNumber: grupo[0].SaleNumber,
			CreatedAt:  grupo[0].CreatedAt,
			Label:      CartLabel(carroIndex),
			Items:      items,
		})
		carroIndex++
	}
	return carts, nil
}

// cartItems arma los renglones del carro de un grupo, expandiendo combos y
// enriqueciendo con descripción y unidad del catálogo de stock.
func cartItems(ctx context.Context, grupo []*entity.Order, combos ComboCatalog, stock StockCatalog) ([]entity.CartItem, error) {
	var items []entity.CartItem
	for _, orden := range grupo {
		for _, item := range orden.Items {
			switch {
			case item.SKU.Kind == sku.KindMissing:
				items = append(items, entity.CartItem{
					SKU:         item.SKU.Display(),
					Quantity:    item.Quantity,
					Description: item.SKU.Payload,
				})
			case item.SKU.IsError():
				items = append(items, entity.CartItem{
					SKU:      item.SKU.String(),
					Quantity: item.Quantity,
				})
			default:
				componentes, err := combos.Components(ctx, item.SKU.Code)
				if err != nil {
					return nil, fmt.Errorf("catálogo de combos: %w", err)
				}
				if len(componentes) == 0 {
					ci, err := lookupCartItem(ctx, stock, item.SKU.Code, item.Quantity)
					if err != nil {
						return nil, err
					}
					items = append(items, ci)
					continue
				}
				for _, comp := range componentes {
					ci, err := lookupCartItem(ctx, stock, comp.ComponentSKU, item.Quantity.Mul(comp.Multiplier))
					if err != nil {
						return nil, err
					}
					items = append(items, ci)
				}
			}
		}
	}
	return items, nil
}

func lookupCartItem(ctx context.Context, stock StockCatalog, code string, qty decimal.Decimal) (entity.CartItem, error) {
	ci := entity.CartItem{SKU: code, Quantity: qty}
	producto, err := stock.Find(ctx, code)
	if err != nil {
		return ci, fmt.Errorf("catálogo de stock: %w", err)
	}
	if producto != nil {
		ci.Description = producto.Description
		ci.Unit = producto.Unit
	}
	return ci, nil
}

// buildSlaOrders arma el listado de SLA por grupo de venta: el primer envío
// del grupo con SLA conocido aporta estado y fecha, y los items se cuentan
// sobre todo el grupo. Sale ordenado por fecha prometida ascendente, las sin
// fecha al final.
func buildSlaOrders(orders []*entity.Order, slas map[int64]entity.SlaRecord) []entity.SlaOrder {
	groupKeys, groups := groupByVenta(orders)

	out := make([]entity.SlaOrder, 0, len(groupKeys))
	for _, ventaID := range groupKeys {
		grupo := groups[ventaID]
		for _, orden := range grupo {
			if orden.ShipmentID == nil {
				continue
			}
			sla, ok := slas[*orden.ShipmentID]
			if !ok {
				continue
			}
			cantItems := 0
			for _, o := range grupo {
				cantItems += len(o.Items)
			}
			out = append(out, entity.SlaOrder{
				SaleNumber:   grupo[0].SaleNumber,
				ItemCount:    cantItems,
				Status:       sla.Status,
				ExpectedDate: sla.ExpectedDate,
			})
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ExpectedDate == nil:
			return false
		case b.ExpectedDate == nil:
			return true
		default:
			return a.ExpectedDate.Before(*b.ExpectedDate)
		}
	})
	return out
}
