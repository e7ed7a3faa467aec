package sku

import "strings"

// Kind clasifica un SKU: válido o uno de los errores reconocidos.
// Reemplaza el esquema de prefijos en el string del SKU ("SKU INVALIDO: ..."),
// que obligaba a matchear prefijos en cada etapa y era ambiguo si un SKU real
// empezaba con una palabra reservada.
type Kind int

const (
	KindValid           Kind = iota
	KindMissing              // item sin SKU; se conserva el título
	KindInvalid              // SKU no numérico luego de la limpieza
	KindInvalidQuantity      // cantidad <= 0 reportada por la fuente
	KindInvalidCombo         // multiplicador de combo corrupto (expansión <= 0)
)

// Etiquetas con las que cada clase de error aparece en los reportes.
// Se mantienen byte a byte iguales a las del sistema original.
const (
	tagMissing         = "SIN SKU"
	tagInvalid         = "SKU INVALIDO"
	tagInvalidQuantity = "CANT INVALIDA"
	tagInvalidCombo    = "COMBO INVALIDO"
)

// SKU es el identificador de un item, ya clasificado.
// Code solo tiene valor con KindValid; Payload lleva el dato de diagnóstico
// (el string original, el título del item o el SKU del componente).
type SKU struct {
	Kind    Kind
	Code    string
	Payload string
}

// Raw construye un SKU aún sin clasificar a partir del string crudo de la fuente.
func Raw(code string) SKU {
	return SKU{Kind: KindValid, Code: code}
}

// Missing construye el error "sin SKU" conservando el título del item.
func Missing(title string) SKU {
	return SKU{Kind: KindMissing, Payload: title}
}

// Invalid construye el error "SKU inválido" conservando el string rechazado.
func Invalid(original string) SKU {
	return SKU{Kind: KindInvalid, Payload: original}
}

// InvalidQuantity construye el error "cantidad inválida". El payload es el SKU
// reportado o, si venía vacío, el título del item.
func InvalidQuantity(original string) SKU {
	return SKU{Kind: KindInvalidQuantity, Payload: original}
}

// InvalidCombo construye el error de expansión de combo con el SKU del componente.
func InvalidCombo(component string) SKU {
	return SKU{Kind: KindInvalidCombo, Payload: component}
}

// IsError indica si el SKU lleva alguna etiqueta de error.
func (s SKU) IsError() bool {
	return s.Kind != KindValid
}

// Normalize limpia un SKU crudo: recorta espacios, trunca en el primer espacio
// (algunos marketplaces agregan anotaciones como sufijo) y quita caracteres no
// numéricos al inicio y al final. Si después de limpiar queda vacío o no es
// puramente numérico, lo reclasifica como KindInvalid.
// Es idempotente: sobre un SKU ya etiquetado no hace nada.
func Normalize(s SKU) SKU {
	if s.IsError() {
		return s
	}
	code := strings.TrimSpace(s.Code)
	if i := strings.IndexByte(code, ' '); i > 0 {
		code = code[:i]
	}
	code = strings.TrimFunc(code, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if !isNumeric(code) {
		return Invalid(code)
	}
	return SKU{Kind: KindValid, Code: code}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Key devuelve la clave de agregación: el código para SKUs válidos y la
// etiqueta completa (con payload) para los de error, de modo que dos errores
// con payload distinto nunca se fusionan en un mismo bucket.
func (s SKU) Key() string {
	return s.String()
}

// String devuelve la forma visible del SKU, idéntica a la de los reportes
// originales: "123456", "SIN SKU: título", "SKU INVALIDO: abc", etc.
func (s SKU) String() string {
	switch s.Kind {
	case KindMissing:
		return tagMissing + ": " + s.Payload
	case KindInvalid:
		return tagInvalid + ": " + s.Payload
	case KindInvalidQuantity:
		return tagInvalidQuantity + ": " + s.Payload
	case KindInvalidCombo:
		return tagInvalidCombo + ": " + s.Payload
	default:
		return s.Code
	}
}

// Display devuelve el SKU como se imprime en la columna SKU del pick list:
// los items sin SKU se colapsan a la etiqueta sola (el título va en la
// descripción), el resto igual que String.
func (s SKU) Display() string {
	if s.Kind == KindMissing {
		return tagMissing
	}
	return s.String()
}
