package pickit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
	"github.com/leo-ar/pickit-api/internal/domain/sku"
	"github.com/leo-ar/pickit-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de los puertos para los tests del pipeline: catálogos en mapas,
// fuentes fijas y SLA precargado. Sin red, sin archivos.
// ──────────────────────────────────────────────────────────────────────────────

type stubCombos map[string][]entity.ComboEntry

func (s stubCombos) Components(_ context.Context, code string) ([]entity.ComboEntry, error) {
	return s[code], nil
}

type stubStock map[string]entity.StockRecord

func (s stubStock) Find(_ context.Context, code string) (*entity.StockRecord, error) {
	if r, ok := s[code]; ok {
		return &r, nil
	}
	return nil, nil
}

type stubSource struct {
	name   string
	result SourceResult
	err    error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(_ context.Context) (SourceResult, error) {
	return s.result, s.err
}

type stubSLA map[int64]entity.SlaRecord

func (s stubSLA) Fetch(_ context.Context, id int64) (*entity.SlaRecord, error) {
	if r, ok := s[id]; ok {
		return &r, nil
	}
	return nil, nil
}

// dec parsea un decimal literal de test.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// venta arma una venta ya normalizada con SKU válido.
func venta(code, qty, origin string) *entity.Sale {
	return &entity.Sale{SKU: sku.Raw(code), Quantity: dec(qty), Origin: origin}
}

func tptr(t time.Time) *time.Time { return &t }

func i64ptr(v int64) *int64 { return &v }

// testLogger devuelve un logger silencioso para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
