package input_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-ventas-api/internal/application/input"
)

func TestID(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want int64
		ok   bool
	}{
		"numérico":    {"12", 12, true},
		"cero":        {"0", 0, false},
		"negativo":    {"-3", 0, false},
		"texto":       {"abc", 0, false},
		"decimal":     {"1.5", 0, false},
		"vacío":       {"", 0, false},
		"con blancos": {" 7 ", 7, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := input.ID(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecimal(t *testing.T) {
	d, ok := input.Decimal(float64(10.5))
	assert.True(t, ok)
	assert.Equal(t, "10.5", d.String())

	d, ok = input.Decimal("99.90")
	assert.True(t, ok)
	assert.Equal(t, "99.9", d.String())

	_, ok = input.Decimal("abc")
	assert.False(t, ok)

	_, ok = input.Decimal(nil)
	assert.False(t, ok)

	_, ok = input.Decimal("")
	assert.False(t, ok)

	_, ok = input.Decimal(true)
	assert.False(t, ok)
}

func TestInteger_Trunca(t *testing.T) {
	n, ok := input.Integer("12.7")
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	n, ok = input.Integer(float64(5))
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	n, ok = input.Integer("-9223372036854775808")
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), n)

	for _, v := range []any{"1e20", float64(1 << 64), "9223372036854775808", "-9223372036854775809"} {
		_, ok := input.Integer(v)
		assert.False(t, ok, "%v no cabe en int64", v)
	}
}

func TestReference(t *testing.T) {
	id, ok := input.Reference(float64(3))
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	id, ok = input.Reference("8")
	assert.True(t, ok)
	assert.Equal(t, int64(8), id)

	id, ok = input.Reference("9223372036854775807")
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), id)

	for _, v := range []any{nil, "", "x", float64(0), float64(-1), float64(1.5), float64(1e19), "9223372036854775808"} {
		_, ok := input.Reference(v)
		assert.False(t, ok, "%v no es una referencia válida", v)
	}
}

func TestText(t *testing.T) {
	assert.Nil(t, input.Text(nil))
	assert.Nil(t, input.Text(" "))
	assert.Equal(t, "3001234567", *input.Text(float64(3001234567)))
	assert.Equal(t, "abc", *input.Text(" abc "))
}

func TestDate(t *testing.T) {
	d, ok := input.Date("2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = input.Date("2024-03-01T10:30:00Z")
	assert.True(t, ok)

	_, ok = input.Date("no es fecha")
	assert.False(t, ok)

	_, ok = input.Date("")
	assert.False(t, ok)
}

func TestEmail(t *testing.T) {
	assert.True(t, input.Email("ana@empresa.com"))
	assert.False(t, input.Email("ana@empresa"))
	assert.False(t, input.Email("ana empresa.com"))
	assert.False(t, input.Email(""))
}

func TestOption_NormalizaAcentos(t *testing.T) {
	opts := []string{"Iniciado", "En Revisión"}

	got, ok := input.Option("En Revisión", opts) // acento combinado (NFD)
	assert.True(t, ok)
	assert.Equal(t, "En Revisión", got)

	_, ok = input.Option("iniciado", opts)
	assert.False(t, ok, "la comparación distingue mayúsculas")

	_, ok = input.Option("Invalid", opts)
	assert.False(t, ok)
}
