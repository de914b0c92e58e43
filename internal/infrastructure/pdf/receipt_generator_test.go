package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

func sampleReceipt() *billing.Receipt {
	phone := "3001234567"
	return &billing.Receipt{
		Sale: &entity.Sale{
			ID: 17, ClientID: 3, ProductID: 9,
			Commission:    decimal.RequireFromString("12.5"),
			Date:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			PaymentMethod: entity.PaymentCard,
			PaymentStatus: entity.PaymentPaid,
			Total:         decimal.RequireFromString("1250000"),
		},
		Client:   &entity.Client{ID: 3, Name: "Ana Pérez", Email: "ana@acme.com", Phone: &phone},
		Product:  &entity.Product{ID: 9, Name: "Escritorio", Price: decimal.NewFromInt(1250000), Category: "Muebles"},
		IssuedAt: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_DevuelvePDF(t *testing.T) {
	out, err := NewReceiptGenerator("crm-ventas-api").Generate(sampleReceipt())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe empezar con la firma PDF")
}

func TestGenerate_SinClienteNiProducto(t *testing.T) {
	r := sampleReceipt()
	r.Client = nil
	r.Product = nil

	out, err := NewReceiptGenerator("crm-ventas-api").Generate(r)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerate_SinVenta(t *testing.T) {
	_, err := NewReceiptGenerator("crm-ventas-api").Generate(&billing.Receipt{})
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"25000":     "25.000,00",
		"1234567.5": "1.234.567,50",
		"999.999":   "1.000,00",
		"-1500":     "-1.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}
