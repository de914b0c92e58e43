package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/billing"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/crm-ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
	"github.com/jhoicas/crm-ventas-api/pkg/logger"
	"github.com/jhoicas/crm-ventas-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth_required", cfg.Auth.Required).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.MigrateUp(cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	saleRepo := postgres.NewSaleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	negotiationRepo := postgres.NewNegotiationRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)

	// PDF: comprobante de venta
	receiptUC := billing.NewReceiptUseCase(saleRepo, clientRepo, productRepo, infrapdf.NewReceiptGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))
	app.Use(httpRouter.RequestLogger())

	if cfg.Metrics.Enabled {
		m := metrics.New(strings.ReplaceAll(cfg.App.Name, "-", "_"))
		app.Use(httpRouter.MetricsMiddleware(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.Path); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.Path,
			Path:     "docs",
			Title:    "CRM Ventas API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.Path).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/", httpRouter.Home)
	app.Get("/health", httpRouter.Health(cfg.App.Name))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SaleUC:        billing.NewSaleUseCase(saleRepo),
		ReceiptUC:     receiptUC,
		ClientUC:      usecase.NewClientUseCase(clientRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		NegotiationUC: usecase.NewNegotiationUseCase(negotiationRepo),
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		AuthRequired:  cfg.Auth.Required,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// corsConfig habilita credenciales solo con orígenes explícitos; fiber rechaza
// AllowCredentials junto con "*".
func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" || origins == "*" {
		return cors.Config{AllowOrigins: "*"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}
}
