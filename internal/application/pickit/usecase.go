package pickit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain"
	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
	"github.com/leo-ar/pickit-api/pkg/logger"
)

// Cantidad de workers del pool de consultas de SLA (una tarea por envío).
const slaWorkers = 4

// GenerateUseCase corre el pipeline de consolidación: fan-out concurrente
// sobre las fuentes, normalización y clasificación de SKUs, expansión de
// combos, agregación de demanda, cruce contra stock, filtro SLA y armado de
// carros. Se construye por corrida de servicio y no guarda estado entre
// corridas: cada Generate opera sobre un snapshot fresco de las fuentes.
type GenerateUseCase struct {
	sources []SourceAdapter
	combos  ComboCatalog
	stock   StockCatalog
	slas    SlaSource
	tz      *time.Location
	log     *logger.Logger
	now     func() time.Time
}

// NewGenerateUseCase construye el caso de uso. slas puede ser nil si no hay
// fuente de SLA (el filtro "hoy" queda sin efecto y todo se conserva).
func NewGenerateUseCase(
	sources []SourceAdapter,
	combos ComboCatalog,
	stock StockCatalog,
	slas SlaSource,
	tz *time.Location,
	log *logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		sources: sources,
		combos:  combos,
		stock:   stock,
		slas:    slas,
		tz:      tz,
		log:     log,
		now:     time.Now,
	}
}

// Options parámetros de una corrida.
type Options struct {
	SameDayOnly bool // excluir grupos de venta cuyo SLA cae después de hoy
	Manual      []entity.ManualEntry
}

// Summary contadores de la corrida para el bloque RESUMEN del reporte.
type Summary struct {
	SalesBySource map[string]int
	TotalSales    int
	UniqueSKUs    int
	NotFound      int
	Insufficient  int
	Errored       int
	ExcludedSLA   int
	CartCount     int
}

// Result salida completa de una corrida: pick list ordenado, carros en orden
// de letra y listado de SLA por venta.
type Result struct {
	PickList  []entity.PickListItem
	Carts     []entity.CartOrder
	SlaOrders []entity.SlaOrder
	Summary   Summary
}

// fetchOutcome es el buffer privado de la tarea de una fuente; se fusiona
// recién después de la barrera de join, nunca se lee a medias.
type fetchOutcome struct {
	name   string
	result SourceResult
	err    error
}

// Generate corre el pipeline completo y devuelve el resultado, o falla con
// ErrNoDemand si ninguna fuente aportó ventas. La falla de una fuente no
// aborta la corrida: se loguea y esa fuente contribuye vacío.
func (uc *GenerateUseCase) Generate(ctx context.Context, opts Options) (*Result, error) {
	log := logger.Sub(uc.log.With().Str("run_id", uuid.New().String()).Logger())

	// Fan-out: una goroutine por fuente, resultado en slot propio, barrera
	// con WaitGroup. Ninguna etapa posterior arranca antes del join.
	log.Info().Int("fuentes", len(uc.sources)).Msg("PICKIT - obteniendo ventas de las fuentes")
	outcomes := make([]fetchOutcome, len(uc.sources))
	var wg sync.WaitGroup
	for i, src := range uc.sources {
		wg.Add(1)
		go func(i int, src SourceAdapter) {
			defer wg.Done()
			result, err := src.Fetch(ctx)
			outcomes[i] = fetchOutcome{name: src.Name(), result: result, err: err}
		}(i, src)
	}
	wg.Wait()

	// Merge determinístico en el orden declarado de las fuentes.
	summary := Summary{SalesBySource: make(map[string]int, len(uc.sources)+1)}
	var looseSales []*entity.Sale
	var orders []*entity.Order
	for _, out := range outcomes {
		if out.err != nil {
			log.Warn().Str("fuente", out.name).Err(out.err).Msg("fuente falló; contribuye vacío")
			summary.SalesBySource[out.name] = 0
			continue
		}
		count := len(out.result.Sales)
		for _, orden := range out.result.Orders {
			count += len(orden.Items)
		}
		summary.SalesBySource[out.name] = count
		looseSales = append(looseSales, out.result.Sales...)
		orders = append(orders, out.result.Orders...)
	}

	// Productos manuales: pseudo-fuente agregada después de la barrera.
	if len(opts.Manual) > 0 {
		for _, pm := range opts.Manual {
			s := sku.Raw(pm.SKU)
			if pm.Quantity.LessThanOrEqual(decimal.Zero) {
				s = sku.InvalidQuantity(pm.SKU)
			}
			looseSales = append(looseSales, &entity.Sale{
				SKU:      s,
				Quantity: pm.Quantity,
				Origin:   "MANUAL",
			})
		}
		summary.SalesBySource["MANUAL"] = len(opts.Manual)
		log.Info().Int("cantidad", len(opts.Manual)).Msg("PICKIT - productos manuales agregados")
	}

	if len(looseSales) == 0 && len(orders) == 0 {
		return nil, domain.ErrNoDemand
	}

	// SLAs: una tarea por envío distinto, pool acotado, join antes del filtro.
	slaMap := uc.fetchSLAs(ctx, orders, log)

	// Filtro "despacho hoy": decide por grupo de venta, antes de agregar.
	if opts.SameDayOnly && len(slaMap) > 0 {
		cutoff := endOfDay(uc.now(), uc.tz)
		antes := len(orders)
		orders = filterBySLA(orders, slaMap, cutoff, log)
		summary.ExcludedSLA = antes - len(orders)
	}

	// Conjunto de trabajo: ventas sueltas + items de las órdenes vivas.
	allSales := make([]*entity.Sale, 0, len(looseSales))
	allSales = append(allSales, looseSales...)
	for _, orden := range orders {
		allSales = append(allSales, orden.Items...)
	}
	summary.TotalSales = len(allSales)

	// Normalización y clasificación de SKUs (muta el SKU una única vez).
	log.Info().Int("ventas", len(allSales)).Msg("PICKIT - limpiando SKUs")
	for _, venta := range allSales {
		normalizado := sku.Normalize(venta.SKU)
		if normalizado.Kind == sku.KindInvalid && !venta.SKU.IsError() {
			log.Warn().Str("sku", venta.SKU.Code).Msg("SKU inválido")
		}
		venta.SKU = normalizado
	}

	// Expansión de combos y agregación de demanda.
	log.Info().Msg("PICKIT - expandiendo combos")
	expanded, err := expandCombos(ctx, uc.combos, allSales)
	if err != nil {
		return nil, err
	}
	agg := aggregate(expanded)
	summary.UniqueSKUs = agg.len()
	log.Info().Int("skus", agg.len()).Msg("PICKIT - demanda agregada por SKU")

	// Cruce contra stock y ordenamiento final del pick list.
	items, stats, err := resolveStock(ctx, uc.stock, agg, log)
	if err != nil {
		return nil, err
	}
	summary.NotFound = stats.notFound
	summary.Insufficient = stats.insufficient
	summary.Errored = stats.errored
	sortPickList(items)

	// Carros y listado SLA: las letras se asignan en orden de creación.
	sortOrders(orders)
	slaOrders := buildSlaOrders(orders, slaMap)
	carts, err := buildCarts(ctx, orders, uc.combos, uc.stock)
	if err != nil {
		return nil, err
	}
	summary.CartCount = len(carts)

	uc.logResumen(log, summary)
	return &Result{
		PickList:  items,
		Carts:     carts,
		SlaOrders: slaOrders,
		Summary:   summary,
	}, nil
}

// fetchSLAs junta los shipment IDs distintos (en orden de aparición) y
// consulta el SLA de cada uno con un pool acotado de workers. Cada worker
// escribe en el canal de resultados; el merge es de un solo lector, después
// del join. Un envío que falla o no tiene SLA simplemente no entra al mapa.
func (uc *GenerateUseCase) fetchSLAs(ctx context.Context, orders []*entity.Order, log *logger.Logger) map[int64]entity.SlaRecord {
	if uc.slas == nil {
		return nil
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, orden := range orders {
		if orden.ShipmentID != nil && !seen[*orden.ShipmentID] {
			seen[*orden.ShipmentID] = true
			ids = append(ids, *orden.ShipmentID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	log.Info().Int("envios", len(ids)).Msg("PICKIT - obteniendo SLAs")

	type slaOutcome struct {
		id  int64
		rec *entity.SlaRecord
	}
	jobs := make(chan int64)
	results := make(chan slaOutcome, len(ids))

	var wg sync.WaitGroup
	for w := 0; w < slaWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				rec, err := uc.slas.Fetch(ctx, id)
				if err != nil {
					log.Warn().Int64("shipment_id", id).Err(err).Msg("no se pudo obtener el SLA del envío")
					results <- slaOutcome{id: id}
					continue
				}
				results <- slaOutcome{id: id, rec: rec}
			}
		}()
	}
	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(results)

	slaMap := make(map[int64]entity.SlaRecord, len(ids))
	for out := range results {
		if out.rec != nil {
			slaMap[out.id] = *out.rec
		}
	}
	log.Info().Int("obtenidos", len(slaMap)).Msg("PICKIT - SLAs obtenidos")
	return slaMap
}

func (uc *GenerateUseCase) logResumen(log *logger.Logger, s Summary) {
	ev := log.Info().
		Int("ventas", s.TotalSales).
		Int("skus_unicos", s.UniqueSKUs).
		Int("carros", s.CartCount)
	for fuente, count := range s.SalesBySource {
		ev = ev.Int("fuente_"+fuente, count)
	}
	ev.Msg("PICKIT - RESUMEN")

	if s.NotFound > 0 {
		log.Warn().Int("cantidad", s.NotFound).Msg("PICKIT - SKUs no encontrados en stock")
	}
	if s.Insufficient > 0 {
		log.Warn().Int("cantidad", s.Insufficient).Msg("PICKIT - SKUs con stock insuficiente")
	}
	if s.Errored > 0 {
		log.Warn().Int("cantidad", s.Errored).Msg("PICKIT - SKUs con error")
	}
}
