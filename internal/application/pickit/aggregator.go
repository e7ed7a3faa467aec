package pickit

import (
	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// demandBucket acumula la demanda de una clave de SKU.
type demandBucket struct {
	sku      sku.SKU
	quantity decimal.Decimal
}

// aggregatedDemand es la demanda sumada por SKU resuelto, conservando el
// orden de primera aparición de cada clave para que la salida sea
// determinística antes del ordenamiento final.
type aggregatedDemand struct {
	keys    []string
	buckets map[string]*demandBucket
}

// aggregate agrupa las ventas expandidas por clave de SKU y suma cantidades.
// Los pseudo-SKUs de error agregan por etiqueta completa: dos errores con
// payload distinto son buckets distintos.
func aggregate(sales []*entity.Sale) *aggregatedDemand {
	agg := &aggregatedDemand{buckets: make(map[string]*demandBucket, len(sales))}
	for _, venta := range sales {
		key := venta.SKU.Key()
		b, ok := agg.buckets[key]
		if !ok {
			b = &demandBucket{sku: venta.SKU}
			agg.buckets[key] = b
			agg.keys = append(agg.keys, key)
		}
		b.quantity = b.quantity.Add(venta.Quantity)
	}
	return agg
}

// len devuelve la cantidad de SKUs únicos.
func (a *aggregatedDemand) len() int {
	return len(a.keys)
}
