package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/auth"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/ledger"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/notifier"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/report"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/usecase"
	"github.com/SarahAbdulmajeed/Stocker/internal/infrastructure/mail"
	infrapdf "github.com/SarahAbdulmajeed/Stocker/internal/infrastructure/pdf"
	"github.com/SarahAbdulmajeed/Stocker/internal/infrastructure/postgres"
	httpRouter "github.com/SarahAbdulmajeed/Stocker/internal/interfaces/http"
	"github.com/SarahAbdulmajeed/Stocker/pkg/config"
	"github.com/SarahAbdulmajeed/Stocker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	withdrawalRepo := postgres.NewStockWithdrawalRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewGomailSender(cfg.Alerts)
	alerts := notifier.New(notifier.Config{
		ExpiryAlertDays: cfg.Alerts.ExpiryAlertDays,
		ManagerEmail:    cfg.Alerts.ManagerEmail,
	}, mailer, productRepo, entryRepo, log)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, entryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, entryRepo)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, supplierRepo, entryRepo, withdrawalRepo, alerts, log)
	reportUC := report.NewUseCase(reportRepo)
	reportPDFUC := report.NewPDFUseCase(reportUC, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		LedgerUC:   ledgerUC,
		ReportUC:   reportUC,
		ReportPDF:  reportPDFUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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

// mountSwagger monta la UI de swagger solo si el spec existe en disco: el
// middleware entra en pánico con el archivo ausente y eso no debe impedir
// que la API arranque. Devuelve si la UI quedó montada.
func mountSwagger(app *fiber.App, specPath string, log *logger.Logger) bool {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("path", specPath).
			Msg("swagger.json no encontrado, la UI de documentación queda deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Stocker API",
	}))
	return true
}
