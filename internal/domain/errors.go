package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNoDemand y ErrCatalogUnavailable son las únicas condiciones fatales del
// pipeline: sin ventas que procesar, o catálogo obligatorio inaccesible
// (falla de configuración, no de datos).
var (
	ErrNoDemand           = errors.New("no se encontraron ventas para procesar")
	ErrCatalogUnavailable = errors.New("catálogo obligatorio no disponible")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
)
