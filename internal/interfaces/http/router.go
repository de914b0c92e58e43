package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC        *billing.SaleUseCase
	ReceiptUC     *billing.ReceiptUseCase
	ClientUC      *usecase.ClientUseCase
	ProductUC     *usecase.ProductUseCase
	NegotiationUC *usecase.NegotiationUseCase
	CompanyUC     *usecase.CompanyUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	// AuthRequired protege todas las rutas /api salvo /api/login.
	AuthRequired bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	protected := api
	if deps.AuthRequired {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Ventas
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	protected.Get("/ventas", saleHandler.List)
	protected.Post("/ventas", saleHandler.Create)
	protected.Put("/ventas/:id", saleHandler.Update)
	protected.Delete("/ventas/:id", saleHandler.Delete)
	protected.Get("/ventas/:id/comprobante", saleHandler.Receipt)

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC)
	protected.Get("/clientes", clientHandler.List)
	protected.Post("/clientes", clientHandler.Create)
	protected.Delete("/clientes/:id", clientHandler.Delete)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/productos", productHandler.List)
	protected.Post("/productos", productHandler.Create)
	protected.Put("/productos/:id", productHandler.Update)
	protected.Delete("/productos/:id", productHandler.Delete)

	// Negociaciones
	negotiationHandler := NewNegotiationHandler(deps.NegotiationUC)
	protected.Get("/negociaciones", negotiationHandler.List)
	protected.Post("/negociaciones", negotiationHandler.Create)
	protected.Put("/negociaciones/:id", negotiationHandler.UpdateStatus)

	// Empresas
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/empresas", companyHandler.List)
	protected.Post("/empresas", companyHandler.Create)
	protected.Delete("/empresas/:id", companyHandler.Delete)
}
