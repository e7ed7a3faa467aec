package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leo-ar/pickit-api/internal/application/pickit"
	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

var (
	_ pickit.StockCatalog = (*CatalogRepo)(nil)
	_ pickit.ComboCatalog = (*CatalogRepo)(nil)
)

// CatalogRepo catálogos de stock y combos sobre PostgreSQL, para depósitos
// que mantienen el maestro en base en lugar de planillas. Implementa los dos
// puertos de catálogo del pipeline.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador de catálogos.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Find busca un SKU en stock_catalog por coincidencia exacta. (nil, nil) si no existe.
func (r *CatalogRepo) Find(ctx context.Context, skuCode string) (*entity.StockRecord, error) {
	query := `
		SELECT sku, descripcion, proveedor, subrubro, unidad, stock
		FROM stock_catalog WHERE sku = $1`
	var rec entity.StockRecord
	err := r.pool.QueryRow(ctx, query, skuCode).Scan(
		&rec.SKU, &rec.Description, &rec.Supplier, &rec.Subcategory, &rec.Unit, &rec.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar stock de %s: %w", skuCode, err)
	}
	return &rec, nil
}

// Components devuelve las filas de combo del SKU padre en orden estable.
// Vacío si el SKU no es combo.
func (r *CatalogRepo) Components(ctx context.Context, skuCode string) ([]entity.ComboEntry, error) {
	query := `
		SELECT sku_combo, sku_componente, cantidad
		FROM combos WHERE sku_combo = $1
		ORDER BY sku_componente`
	rows, err := r.pool.Query(ctx, query, skuCode)
	if err != nil {
		return nil, fmt.Errorf("buscar combos de %s: %w", skuCode, err)
	}
	defer rows.Close()

	var entries []entity.ComboEntry
	for rows.Next() {
		var e entity.ComboEntry
		if err := rows.Scan(&e.ParentSKU, &e.ComponentSKU, &e.Multiplier); err != nil {
			return nil, fmt.Errorf("leer combo de %s: %w", skuCode, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recorrer combos de %s: %w", skuCode, err)
	}
	return entries, nil
}
