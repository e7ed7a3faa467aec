package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/leo-ar/pickit-api/internal/domain"
	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

// StockCatalog catálogo de stock cargado desde Stock.xlsx a un mapa en
// memoria al construirse. Formato esperado (primera hoja, primera fila de
// encabezado): SKU | Producto | Proveedor | SubRubro | Unidad | Stock.
type StockCatalog struct {
	records map[string]entity.StockRecord
}

// NewStockCatalog abre y lee el Excel completo. Un archivo inaccesible es
// falla de configuración (ErrCatalogUnavailable), no de datos.
func NewStockCatalog(path string) (*StockCatalog, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stock %q: %v", domain.ErrCatalogUnavailable, path, err)
	}

	records := make(map[string]entity.StockRecord, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue // encabezado o fila vacía
		}
		skuCode := strings.TrimSpace(cell(row, 0))
		if skuCode == "" {
			continue
		}
		records[skuCode] = entity.StockRecord{
			SKU:         skuCode,
			Description: strings.TrimSpace(cell(row, 1)),
			Supplier:    strings.TrimSpace(cell(row, 2)),
			Subcategory: strings.TrimSpace(cell(row, 3)),
			Unit:        strings.TrimSpace(cell(row, 4)),
			Available:   parseInt(cell(row, 5)),
		}
	}
	return &StockCatalog{records: records}, nil
}

// Find busca el SKU por coincidencia exacta. (nil, nil) si no está.
func (c *StockCatalog) Find(_ context.Context, skuCode string) (*entity.StockRecord, error) {
	if r, ok := c.records[skuCode]; ok {
		return &r, nil
	}
	return nil, nil
}

// Len devuelve la cantidad de SKUs del catálogo.
func (c *StockCatalog) Len() int { return len(c.records) }

// ComboCatalog catálogo de combos cargado desde Combos.xlsx. Formato esperado
// (primera hoja, primera fila de encabezado): SKU Combo | SKU Componente | Cantidad.
type ComboCatalog struct {
	entries map[string][]entity.ComboEntry
}

// NewComboCatalog abre y lee el Excel completo.
func NewComboCatalog(path string) (*ComboCatalog, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, fmt.Errorf("%w: combos %q: %v", domain.ErrCatalogUnavailable, path, err)
	}

	entries := make(map[string][]entity.ComboEntry)
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		parent := strings.TrimSpace(cell(row, 0))
		component := strings.TrimSpace(cell(row, 1))
		if parent == "" || component == "" {
			continue
		}
		entries[parent] = append(entries[parent], entity.ComboEntry{
			ParentSKU:    parent,
			ComponentSKU: component,
			Multiplier:   parseDecimal(cell(row, 2)),
		})
	}
	return &ComboCatalog{entries: entries}, nil
}

// Components devuelve los componentes del combo (vacío si el SKU no es combo).
func (c *ComboCatalog) Components(_ context.Context, skuCode string) ([]entity.ComboEntry, error) {
	return c.entries[skuCode], nil
}

// readSheet abre el archivo y devuelve todas las filas de la hoja activa.
func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseInt tolera celdas con decimales ("12.0") o vacías: 0 si no parsea.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return int(f)
	}
	return 0
}

// parseDecimal tolera coma decimal (planillas en es-AR): 0 si no parsea.
func parseDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
