package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo-ar/pickit-api/internal/domain/sku"
	"github.com/leo-ar/pickit-api/internal/infrastructure/snapshot"
)

const fixture = `{
	"ventas": [
		{"sku": "1234", "cantidad": 2, "titulo": "Olla 24cm"},
		{"sku": "", "cantidad": 1, "titulo": "Pava eléctrica"},
		{"sku": "5678", "cantidad": 0, "titulo": "Sartén"}
	],
	"ordenes": [
		{
			"order_id": 11,
			"venta_id": 100,
			"numero_venta": "2000004321",
			"shipment_id": 500,
			"fecha_creacion": "2026-03-09T10:00:00-03:00",
			"substatus": "ready_to_print",
			"items": [{"sku": "9999", "cantidad": 3, "titulo": "Juego de tapas"}]
		},
		{
			"order_id": 12,
			"venta_id": 0,
			"numero_venta": "2000004322",
			"items": [{"sku": "8888", "cantidad": 1, "titulo": "Colador"}]
		}
	]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pedidos.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	return path
}

func TestFetch_ClasificaEnIngesta(t *testing.T) {
	src := snapshot.New("KT HOGAR", writeFixture(t))
	res, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Sales, 3)

	assert.Equal(t, sku.KindValid, res.Sales[0].SKU.Kind)
	assert.Equal(t, "KT HOGAR", res.Sales[0].Origin)

	assert.Equal(t, sku.KindMissing, res.Sales[1].SKU.Kind, "sin SKU: se etiqueta con el título")
	assert.Equal(t, "Pava eléctrica", res.Sales[1].SKU.Payload)

	assert.Equal(t, sku.KindInvalidQuantity, res.Sales[2].SKU.Kind, "cantidad 0 se etiqueta en ingesta")
	assert.Equal(t, "5678", res.Sales[2].SKU.Payload)
}

func TestFetch_OrdenesConGrupoYFallback(t *testing.T) {
	src := snapshot.New("ML", writeFixture(t))
	res, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)

	o := res.Orders[0]
	assert.Equal(t, int64(100), o.GroupID)
	assert.Equal(t, "2000004321", o.SaleNumber)
	require.NotNil(t, o.ShipmentID)
	assert.Equal(t, int64(500), *o.ShipmentID)
	require.NotNil(t, o.CreatedAt)
	assert.Equal(t, "ready_to_print", o.ShippingSubstatus)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "ML", o.Items[0].Origin)

	assert.Equal(t, int64(12), res.Orders[1].GroupID,
		"sin venta_id la orden es su propio grupo")
	assert.Nil(t, res.Orders[1].ShipmentID)
}

func TestFetch_ArchivoInexistenteDevuelveError(t *testing.T) {
	src := snapshot.New("ML", filepath.Join(t.TempDir(), "nada.json"))
	_, err := src.Fetch(context.Background())
	assert.Error(t, err, "la falla queda en la fuente; el orquestador la aísla")
}
