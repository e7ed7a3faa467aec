package pickit

import (
	"time"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/pkg/logger"
)

// endOfDay devuelve el fin del día actual (23:59:59) en la zona del depósito.
// Es el corte del modo "despacho hoy".
func endOfDay(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}

// filterBySLA devuelve las órdenes que sobreviven al modo "despacho hoy".
// La exclusión opera a nivel de grupo de venta: el primer envío del grupo con
// SLA conocido decide la suerte de todo el grupo. Se excluye solo cuando la
// fecha prometida existe y es estrictamente posterior al corte (una orden con
// fecha exactamente en el corte se despacha hoy y queda). Las órdenes sin SLA
// resoluble se conservan: mejor un renglón de más que perder demanda en
// silencio.
func filterBySLA(orders []*entity.Order, slas map[int64]entity.SlaRecord, cutoff time.Time, log *logger.Logger) []*entity.Order {
	if len(orders) == 0 || len(slas) == 0 {
		return orders
	}

	groupKeys, groups := groupByVenta(orders)

	excluir := make(map[int64]bool)
	for _, ventaID := range groupKeys {
		for _, orden := range groups[ventaID] {
			if orden.ShipmentID == nil {
				continue
			}
			sla, ok := slas[*orden.ShipmentID]
			if !ok {
				continue
			}
			if sla.ExpectedDate != nil && sla.ExpectedDate.After(cutoff) {
				excluir[ventaID] = true
			}
			break // el primer envío con SLA decide
		}
	}

	if len(excluir) == 0 {
		return orders
	}

	surviving := make([]*entity.Order, 0, len(orders))
	for _, orden := range orders {
		if !excluir[orden.GroupID] {
			surviving = append(surviving, orden)
		}
	}
	log.Info().Int("excluidas", len(excluir)).Msg("filtro SLA hoy: grupos de venta excluidos")
	return surviving
}

// groupByVenta agrupa órdenes por GroupID conservando el orden de primera
// aparición de cada grupo.
func groupByVenta(orders []*entity.Order) ([]int64, map[int64][]*entity.Order) {
	keys := make([]int64, 0, len(orders))
	groups := make(map[int64][]*entity.Order, len(orders))
	for _, orden := range orders {
		if _, ok := groups[orden.GroupID]; !ok {
			keys = append(keys, orden.GroupID)
		}
		groups[orden.GroupID] = append(groups[orden.GroupID], orden)
	}
	return keys, groups
}
