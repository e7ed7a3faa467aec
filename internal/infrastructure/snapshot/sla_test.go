package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo-ar/pickit-api/internal/infrastructure/snapshot"
)

const slaFixture = `{
	"slas": [
		{"shipment_id": 500, "estado": "handling", "fecha_prevista": "2026-03-09T00:00:00-03:00"},
		{"shipment_id": 501, "estado": "ready_to_ship", "expedited": true}
	]
}`

func writeSlaFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slas.json")
	require.NoError(t, os.WriteFile(path, []byte(slaFixture), 0o600))
	return path
}

func TestSlaFetch_EnvioConocido(t *testing.T) {
	src, err := snapshot.NewSlaSource(writeSlaFixture(t))
	require.NoError(t, err)

	rec, err := src.Fetch(context.Background(), 500)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "handling", rec.Status)
	require.NotNil(t, rec.ExpectedDate)
	esperada := time.Date(2026, 3, 9, 0, 0, 0, 0, time.FixedZone("", -3*3600))
	assert.True(t, rec.ExpectedDate.Equal(esperada))
	assert.False(t, rec.Expedited)
}

func TestSlaFetch_EnvioDesconocidoDevuelveNil(t *testing.T) {
	src, err := snapshot.NewSlaSource(writeSlaFixture(t))
	require.NoError(t, err)

	rec, err := src.Fetch(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, rec, "un envío sin SLA no es un error")
}

func TestNewSlaSource_ArchivoRotoFalla(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{no es json}`), 0o600))

	_, err := snapshot.NewSlaSource(path)
	require.Error(t, err)
}
