package pickit

import (
	"context"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

// SourceResult es la contribución de una fuente: ventas sueltas (sin orden
// asociada, ej. Tienda Nube) y/u órdenes agrupadas con sus items (ej.
// MercadoLibre). Un item de una orden NO se repite en Sales: el conjunto de
// trabajo del pipeline se arma como ventas sueltas + items de las órdenes
// sobrevivientes, lo que permite excluir órdenes por SLA sin remover ventas
// por identidad.
type SourceResult struct {
	Sales  []*entity.Sale
	Orders []*entity.Order
}

// SourceAdapter es una fuente de ventas pendientes (cliente de marketplace,
// snapshot offline, etc.). Su falla no aborta la corrida: se loguea y la
// fuente contribuye vacío.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context) (SourceResult, error)
}

// ComboCatalog resuelve la lista de componentes de un SKU combo.
// Devuelve slice vacío si el SKU no es combo.
type ComboCatalog interface {
	Components(ctx context.Context, skuCode string) ([]entity.ComboEntry, error)
}

// StockCatalog busca un SKU en el catálogo de stock. Devuelve (nil, nil) si
// no existe; un error indica catálogo inaccesible (fatal para la corrida).
type StockCatalog interface {
	Find(ctx context.Context, skuCode string) (*entity.StockRecord, error)
}

// SlaSource obtiene el SLA de un envío. Devuelve (nil, nil) si el envío no
// tiene SLA. El orquestador lo invoca en paralelo con un pool acotado, un
// envío por tarea, y une los resultados antes del filtro.
type SlaSource interface {
	Fetch(ctx context.Context, shipmentID int64) (*entity.SlaRecord, error)
}
