package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	apphttp "github.com/jhoicas/crm-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/crm-ventas-api/internal/testutil/fakes"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "crm-ventas-test"
	testExpMin    = 60
)

// stubPDF devuelve un PDF mínimo sin pasar por Maroto.
type stubPDF struct{}

func (stubPDF) Generate(*billing.Receipt) ([]byte, error) { return []byte("%PDF-1.3 stub"), nil }

// buildTestApp construye la aplicación con el router real y repositorios en memoria.
func buildTestApp(store *fakes.Store, authRequired bool) *fiber.App {
	app := fiber.New()
	app.Get("/", apphttp.Home)
	apphttp.Router(app, apphttp.RouterDeps{
		SaleUC:        billing.NewSaleUseCase(store.SaleRepo()),
		ReceiptUC:     billing.NewReceiptUseCase(store.SaleRepo(), store.ClientRepo(), store.ProductRepo(), stubPDF{}),
		ClientUC:      usecase.NewClientUseCase(store.ClientRepo()),
		ProductUC:     usecase.NewProductUseCase(store.ProductRepo()),
		NegotiationUC: usecase.NewNegotiationUseCase(store.NegotiationRepo()),
		CompanyUC:     usecase.NewCompanyUseCase(store.CompanyRepo()),
		AuthUC:        auth.NewAuthUseCase(store.AccountRepo(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:     testJWTSecret,
		AuthRequired:  authRequired,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON (nil = sin cuerpo) y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode lee el cuerpo JSON de la respuesta en un mapa.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
