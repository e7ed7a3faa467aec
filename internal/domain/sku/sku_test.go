package sku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leo-ar/pickit-api/internal/domain/sku"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalize: la limpieza debe reproducir exactamente el comportamiento del
// generador original: trim, truncar en el primer espacio, quitar basura no
// numérica en los extremos y etiquetar lo que no quede puramente numérico.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_LimpiaVariantesDeMarketplace(t *testing.T) {
	cases := []struct {
		nombre string
		crudo  string
		code   string
	}{
		{"numérico simple", "123456", "123456"},
		{"con espacios alrededor", "  123456  ", "123456"},
		{"anotación después del espacio", "123456 COLOR ROJO", "123456"},
		{"prefijo no numérico", "SKU-123456", "123456"},
		{"sufijo no numérico", "123456-B", "123456"},
		{"prefijo y sufijo", "x123456y", "123456"},
	}

	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			got := sku.Normalize(sku.Raw(c.crudo))
			assert.Equal(t, sku.KindValid, got.Kind, "debe quedar válido")
			assert.Equal(t, c.code, got.Code)
		})
	}
}

func TestNormalize_EtiquetaNoNumericos(t *testing.T) {
	cases := []struct {
		nombre  string
		crudo   string
		payload string
	}{
		{"vacío", "", ""},
		{"solo espacios", "   ", ""},
		{"solo letras", "ABCDEF", ""},
		{"dígitos intercalados", "12A34", "12A34"},
	}

	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			got := sku.Normalize(sku.Raw(c.crudo))
			assert.Equal(t, sku.KindInvalid, got.Kind, "debe etiquetarse como inválido")
			assert.Equal(t, c.payload, got.Payload, "el payload conserva lo que quedó tras limpiar")
		})
	}
}

func TestNormalize_EsIdempotenteSobreEtiquetados(t *testing.T) {
	etiquetados := []sku.SKU{
		sku.Missing("Olla esmaltada 24cm"),
		sku.Invalid("ABC"),
		sku.InvalidQuantity("123456"),
		sku.InvalidCombo("778899"),
	}
	for _, s := range etiquetados {
		assert.Equal(t, s, sku.Normalize(s), "Normalize sobre un SKU etiquetado debe ser no-op")
	}

	// Doble pasada sobre un válido tampoco cambia nada.
	una := sku.Normalize(sku.Raw(" 4455 x"))
	dos := sku.Normalize(una)
	assert.Equal(t, una, dos)
}

func TestString_FormatoDeEtiquetasOriginal(t *testing.T) {
	assert.Equal(t, "123", sku.Raw("123").String())
	assert.Equal(t, "SIN SKU: Olla 24cm", sku.Missing("Olla 24cm").String())
	assert.Equal(t, "SKU INVALIDO: AB", sku.Invalid("AB").String())
	assert.Equal(t, "CANT INVALIDA: 555", sku.InvalidQuantity("555").String())
	assert.Equal(t, "COMBO INVALIDO: 777", sku.InvalidCombo("777").String())
}

func TestDisplay_SinSkuSeColapsa(t *testing.T) {
	// En la columna SKU del pick list, "SIN SKU: título" se muestra como
	// "SIN SKU" y el título pasa a la descripción.
	assert.Equal(t, "SIN SKU", sku.Missing("Olla 24cm").Display())
	assert.Equal(t, "SKU INVALIDO: AB", sku.Invalid("AB").Display())
	assert.Equal(t, "9988", sku.Raw("9988").Display())
}

func TestKey_PayloadsDistintosSonBucketsDistintos(t *testing.T) {
	a := sku.Invalid("ABC")
	b := sku.Invalid("XYZ")
	assert.NotEqual(t, a.Key(), b.Key(), "errores con payload distinto no deben agregarse juntos")

	c := sku.Invalid("ABC")
	assert.Equal(t, a.Key(), c.Key(), "mismo error y mismo payload comparten bucket")
}
