// Package input convierte los valores sueltos que llegan en el JSON (números como
// número o como texto, fechas en varios formatos, enums con acentos) a tipos del dominio.
package input

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/unicode/norm"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Present informa si un campo llegó con algún valor (nil y texto vacío cuentan como ausentes).
func Present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// ID valida un id de ruta: entero positivo en base 10.
func ID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Decimal convierte un número JSON o su forma textual.
func Decimal(v any) (decimal.Decimal, bool) {
	if !Present(v) {
		return decimal.Zero, false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Integer convierte a entero truncando la parte decimal ("12.7" -> 12).
// Valores fuera del rango de int64 se rechazan.
func Integer(v any) (int64, bool) {
	d, ok := Decimal(v)
	if !ok || !fitsInt64(d) {
		return 0, false
	}
	return d.IntPart(), true
}

// Reference valida un id enviado en el cuerpo (Cliente_ID, Producto_ID, Empresa_ID):
// debe ser un entero positivo, como número o texto.
func Reference(v any) (int64, bool) {
	d, ok := Decimal(v)
	if !ok || !d.IsInteger() || !d.IsPositive() || !fitsInt64(d) {
		return 0, false
	}
	return d.IntPart(), true
}

// fitsInt64 informa si la parte entera de d cabe en un int64; IntPart desborda sin error.
func fitsInt64(d decimal.Decimal) bool {
	return d.Truncate(0).BigInt().IsInt64()
}

// Text convierte números o texto a *string; nil o vacío devuelven nil.
func Text(v any) *string {
	if !Present(v) {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// OptionalText normaliza un texto opcional: vacío se guarda como NULL.
func OptionalText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// Date interpreta fechas en los formatos habituales ("2024-03-01", "2024-03-01T10:00:00Z",
// "03/01/2024 10:00"...). Las fechas sin zona se interpretan en UTC.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Email aplica el patrón simple usuario@dominio.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Option busca value entre options comparando en forma NFC, de modo que
// "En Revisión" escrito con acento combinado coincide con el valor canónico.
func Option(value string, options []string) (string, bool) {
	v := norm.NFC.String(strings.TrimSpace(value))
	for _, o := range options {
		if v == o {
			return o, true
		}
	}
	return "", false
}
