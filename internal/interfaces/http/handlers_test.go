package http_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/testutil/fakes"
)

func path(prefix string, id int64) string { return prefix + "/" + strconv.FormatInt(id, 10) }

func TestHome(t *testing.T) {
	app := buildTestApp(fakes.NewStore(), false)
	resp := doJSON(t, app, http.MethodGet, "/", nil)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bienvenido al backend", string(body))
}

func TestList_VacioDevuelveArreglo(t *testing.T) {
	app := buildTestApp(fakes.NewStore(), false)
	for _, p := range []string{"/api/ventas", "/api/clientes", "/api/productos", "/api/negociaciones", "/api/empresas"} {
		resp := doJSON(t, app, http.MethodGet, p, nil)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.JSONEq(t, "[]", string(body), p)
	}
}

func TestList_ErrorDeBaseDeDatos(t *testing.T) {
	store := fakes.NewStore()
	store.Err = errors.New("dial tcp: connection refused")
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodGet, "/api/productos", nil)
	body := decode(t, resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "Error en la consulta a la base de datos", body["message"])
	assert.NotContains(t, body["message"], "dial tcp", "el error del driver no se expone")
}

func TestCreateNegociacion_SoloCliente(t *testing.T) {
	store := fakes.NewStore()
	clientID := store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com"})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/negociaciones", map[string]any{"Cliente_ID": clientID})
	body := decode(t, resp)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	id := int64(body["negociacionId"].(float64))
	require.Contains(t, store.Negotiations, id)
	assert.Equal(t, entity.NegotiationStarted, store.Negotiations[id].Status)
}

func TestUpdateNegociacion(t *testing.T) {
	store := fakes.NewStore()
	id := store.AddNegotiation(entity.Negotiation{ClientID: 1, Status: entity.NegotiationStarted})
	app := buildTestApp(store, false)

	t.Run("terminado fija fecha de cierre", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, path("/api/negociaciones", id), map[string]any{"Estatus": "Terminado"})
		body := decode(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Terminado", data["Estatus"])
		assert.NotNil(t, data["Fecha_Cierre"])
	})
	t.Run("en revisión limpia fecha de cierre", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, path("/api/negociaciones", id), map[string]any{"Estatus": "En Revisión"})
		body := decode(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Nil(t, data["Fecha_Cierre"])
	})
	t.Run("estatus inválido", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, path("/api/negociaciones", id), map[string]any{"Estatus": "Abierto"})
		body := decode(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Estatus inválido. Use uno de: Iniciado, Terminado, Cancelado, En Revisión", body["message"])
	})
	t.Run("no existe", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/negociaciones/999", map[string]any{"Estatus": "Iniciado"})
		body := decode(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Negociación no encontrada", body["message"])
	})
	t.Run("id inválido", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/negociaciones/abc", map[string]any{"Estatus": "Iniciado"})
		body := decode(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID inválido", body["message"])
	})
}

func TestCreateCliente_EmailInvalidoNoConsultaBD(t *testing.T) {
	store := fakes.NewStore()
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{
		"Nombre": "Ana", "Email": "ana-sin-arroba", "Empresa_ID": 1,
	})
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "Por favor ingrese un email válido", body["message"])
	assert.Zero(t, store.Calls)
}

func TestCreateCliente_EmpresaInexistente(t *testing.T) {
	app := buildTestApp(fakes.NewStore(), false)

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{
		"Nombre": "Ana", "Email": "ana@acme.com", "Empresa_ID": 77,
	})
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "FOREIGN_KEY", body["code"])
	assert.Equal(t, "La empresa especificada no existe", body["detail"])
}

func TestCreateCliente_OK(t *testing.T) {
	store := fakes.NewStore()
	companyID := store.AddCompany(entity.Company{Name: "Acme", Address: "Calle 1"})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{
		"Nombre": "Ana", "Email": "ana@acme.com", "Telefono": "3001234567", "Empresa_ID": companyID,
	})
	body := decode(t, resp)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Cliente agregado correctamente", body["message"])
	assert.NotZero(t, body["clienteId"])
}

func TestDeleteEmpresa_ConClientes(t *testing.T) {
	store := fakes.NewStore()
	companyID := store.AddCompany(entity.Company{Name: "Acme", Address: "Calle 1"})
	store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com", CompanyID: companyID})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodDelete, path("/api/empresas", companyID), nil)
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "HAS_DEPENDENTS", body["code"])
	assert.Equal(t, "No se puede eliminar la empresa porque tiene clientes asociados", body["message"])
	assert.Zero(t, store.Deletes)
}

func TestDeleteCliente(t *testing.T) {
	store := fakes.NewStore()
	clientID := store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com"})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodDelete, path("/api/clientes", clientID), nil)
	body := decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(clientID), body["deletedId"])

	resp = doJSON(t, app, http.MethodDelete, path("/api/clientes", clientID), nil)
	body = decode(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente no encontrado", body["message"])

	resp = doJSON(t, app, http.MethodDelete, "/api/clientes/abc", nil)
	body = decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID de cliente no válido", body["message"])
}

func TestProductos_CrearYActualizar(t *testing.T) {
	store := fakes.NewStore()
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", map[string]any{
		"Nombre": "Silla", "Precio": "49.90", "Stock": 10, "Categoria": "Muebles",
	})
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int64(body["productId"].(float64))
	product := body["product"].(map[string]any)
	assert.Equal(t, "Silla", product["Nombre"])

	resp = doJSON(t, app, http.MethodPut, path("/api/productos", id), map[string]any{
		"Nombre": "Silla ergonómica", "Precio": 59.9, "Stock": 8, "Categoria": "Muebles",
	})
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(id), body["productId"])
	assert.Equal(t, "Silla ergonómica", store.Products[id].Name)

	resp = doJSON(t, app, http.MethodPut, "/api/productos/999", map[string]any{
		"Nombre": "X", "Precio": 1, "Stock": 1, "Categoria": "Y",
	})
	body = decode(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", body["message"])
}

func TestVentas_ActualizarConLlaveForanea(t *testing.T) {
	store := fakes.NewStore()
	clientID := store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com"})
	productID := store.AddProduct(entity.Product{Name: "Silla", Category: "Muebles"})
	saleID := store.AddSale(entity.Sale{ClientID: clientID, ProductID: productID, Total: decimal.NewFromInt(10)})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPut, path("/api/ventas", saleID), map[string]any{
		"Cliente_ID": 999, "Producto_ID": productID, "Total": 10,
	})
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Restricción de llave foránea", body["message"])
	assert.Equal(t, "El cliente especificado no existe", body["detail"])
}

func TestVentas_CrearActualizarEliminar(t *testing.T) {
	store := fakes.NewStore()
	clientID := store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com"})
	productID := store.AddProduct(entity.Product{Name: "Silla", Category: "Muebles"})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/ventas", map[string]any{
		"Cliente_ID": clientID, "Producto_ID": productID, "Comision": 5,
		"Fecha": "2024-05-01", "Metodo_pago": "Tarjeta", "Estado_pago": "Pagado", "Total": 120,
	})
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saleID := int64(body["ventaId"].(float64))

	resp = doJSON(t, app, http.MethodPut, path("/api/ventas", saleID), map[string]any{
		"Cliente_ID": clientID, "Producto_ID": productID, "Total": 130,
	})
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(saleID), body["ventaId"])
	assert.Equal(t, float64(1), body["changes"])
	assert.Equal(t, "Tarjeta", store.Sales[saleID].PaymentMethod)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/ventas/%04d", saleID), map[string]any{
		"Cliente_ID": clientID, "Producto_ID": productID, "Total": 140,
	})
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(saleID), body["ventaId"])

	resp = doJSON(t, app, http.MethodPut, "/api/ventas/999", map[string]any{
		"Cliente_ID": clientID, "Producto_ID": productID, "Total": 130,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, path("/api/ventas", saleID), nil)
	body = decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Venta eliminada correctamente", body["message"])
}

func TestVentas_MetodoDePagoInvalido(t *testing.T) {
	store := fakes.NewStore()
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/ventas", map[string]any{
		"Cliente_ID": 1, "Producto_ID": 1, "Fecha": "2024-05-01",
		"Metodo_pago": "Cheque", "Estado_pago": "Pagado", "Total": 120,
	})
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Método de pago inválido. Use uno de: Efectivo, Tarjeta", body["message"])
	assert.Zero(t, store.Calls)
}

func TestComprobante(t *testing.T) {
	store := fakes.NewStore()
	clientID := store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com"})
	productID := store.AddProduct(entity.Product{Name: "Silla", Category: "Muebles"})
	saleID := store.AddSale(entity.Sale{ClientID: clientID, ProductID: productID})
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodGet, path("/api/ventas", saleID)+"/comprobante", nil)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp = doJSON(t, app, http.MethodGet, "/api/ventas/999/comprobante", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCuerpoMalformado(t *testing.T) {
	app := buildTestApp(fakes.NewStore(), false)
	req := httptest.NewRequest(http.MethodPost, "/api/empresas", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestCuerpoVacio_RespondeCamposObligatorios(t *testing.T) {
	app := buildTestApp(fakes.NewStore(), false)

	resp := doJSON(t, app, http.MethodPost, "/api/empresas", nil)
	body := decode(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nombre y Dirección son campos obligatorios", body["message"])
}

func TestLogin(t *testing.T) {
	store := fakes.NewStore()
	store.Accounts["a@b.com"] = "x"
	app := buildTestApp(store, false)

	resp := doJSON(t, app, http.MethodPost, "/api/login", map[string]any{"email": "a@b.com", "password": "x"})
	body := decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	resp = doJSON(t, app, http.MethodPost, "/api/login", map[string]any{"email": "a@b.com", "password": "mal"})
	body = decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Credenciales incorrectas", body["message"])

	store.Reset()
	resp = doJSON(t, app, http.MethodPost, "/api/login", map[string]any{"email": "a@b.com"})
	body = decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email y contraseña son requeridos", body["message"])
	assert.Zero(t, store.Calls)
}
