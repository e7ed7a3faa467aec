package pickit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

var zonaBA = func() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestEndOfDay_FinDelDiaEnZonaDelDeposito(t *testing.T) {
	// 2026-03-10 15:30 UTC = 12:30 en Buenos Aires (UTC-3)
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	cutoff := endOfDay(now, zonaBA)

	assert.Equal(t, 2026, cutoff.Year())
	assert.Equal(t, time.March, cutoff.Month())
	assert.Equal(t, 10, cutoff.Day())
	assert.Equal(t, 23, cutoff.Hour())
	assert.Equal(t, 59, cutoff.Minute())
	assert.Equal(t, 59, cutoff.Second())
	assert.Equal(t, zonaBA.String(), cutoff.Location().String())
}

func ordenConEnvio(orderID, groupID, shipmentID int64) *entity.Order {
	return &entity.Order{
		OrderID:    orderID,
		GroupID:    groupID,
		SaleNumber: "V-1",
		ShipmentID: i64ptr(shipmentID),
		Items:      []*entity.Sale{venta("1234", "1", "ML")},
	}
}

func TestFilterBySLA_ExcluyeFechaPosteriorAlCorte(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 23, 59, 59, 0, zonaBA)
	maniana := time.Date(2026, 3, 11, 0, 1, 0, 0, zonaBA)

	orders := []*entity.Order{ordenConEnvio(1, 100, 500)}
	slas := map[int64]entity.SlaRecord{500: {ExpectedDate: tptr(maniana)}}

	out := filterBySLA(orders, slas, cutoff, testLogger())
	assert.Empty(t, out, "mañana 00:01 es después del corte: el grupo se excluye")
}

func TestFilterBySLA_FechaExactaEnElCorteSeConserva(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 23, 59, 59, 0, zonaBA)

	orders := []*entity.Order{ordenConEnvio(1, 100, 500)}
	slas := map[int64]entity.SlaRecord{500: {ExpectedDate: tptr(cutoff)}}

	out := filterBySLA(orders, slas, cutoff, testLogger())
	assert.Len(t, out, 1, "el límite es inclusivo: fecha exacta en el corte no se excluye")
}

func TestFilterBySLA_SinSlaSeConserva(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 23, 59, 59, 0, zonaBA)

	orders := []*entity.Order{
		ordenConEnvio(1, 100, 500), // sin SLA en el mapa
		{OrderID: 2, GroupID: 200, Items: []*entity.Sale{venta("1", "1", "ML")}}, // sin shipment
	}
	slas := map[int64]entity.SlaRecord{999: {ExpectedDate: tptr(cutoff.Add(time.Hour))}}

	out := filterBySLA(orders, slas, cutoff, testLogger())
	assert.Len(t, out, 2, "fail open: sin SLA resoluble no se descarta demanda")
}

func TestFilterBySLA_ElPrimerEnvioConSlaDecideElGrupo(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 23, 59, 59, 0, zonaBA)
	hoy := cutoff.Add(-2 * time.Hour)
	maniana := cutoff.Add(time.Hour)

	// Mismo grupo (venta partida en dos envíos): el primer envío con SLA (500,
	// hoy) decide y gana sobre el segundo (501, mañana). No es intersección.
	orders := []*entity.Order{
		ordenConEnvio(1, 100, 500),
		ordenConEnvio(2, 100, 501),
	}
	slas := map[int64]entity.SlaRecord{
		500: {ExpectedDate: tptr(hoy)},
		501: {ExpectedDate: tptr(maniana)},
	}

	out := filterBySLA(orders, slas, cutoff, testLogger())
	require.Len(t, out, 2, "el grupo entero se conserva: el primer envío despacha hoy")

	// Y al revés: si el primero con SLA cae mañana, se excluye el grupo entero.
	slasInv := map[int64]entity.SlaRecord{
		500: {ExpectedDate: tptr(maniana)},
		501: {ExpectedDate: tptr(hoy)},
	}
	out = filterBySLA(orders, slasInv, cutoff, testLogger())
	assert.Empty(t, out)
}

func TestFilterBySLA_SinMapaNoFiltraNada(t *testing.T) {
	orders := []*entity.Order{ordenConEnvio(1, 100, 500)}
	out := filterBySLA(orders, nil, time.Now(), testLogger())
	assert.Len(t, out, 1)
}
