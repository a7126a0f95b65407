package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/auth"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/ledger"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/report"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/usecase"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	LedgerUC   *ledger.UseCase
	ReportUC   *report.UseCase
	ReportPDF  *report.PDFUseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido; aprobación solo admin)
	users := protected.Group("/users")
	users.Get("/pending", adminOnly, authHandler.ListPending)
	users.Post("/:id/approve", adminOnly, authHandler.Approve)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock ledger (protegido)
	stock := protected.Group("/stock")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	stock.Post("/entries", ledgerHandler.CreateEntry)
	stock.Get("/entries", ledgerHandler.ListEntries)
	stock.Get("/entries/:id", ledgerHandler.GetEntry)
	stock.Put("/entries/:id", ledgerHandler.UpdateEntry)
	stock.Delete("/entries/:id", adminOnly, ledgerHandler.DeleteEntry)
	stock.Post("/entries/:id/withdraw", ledgerHandler.Withdraw)
	stock.Get("/entries/:id/withdrawals", ledgerHandler.ListEntryWithdrawals)
	stock.Get("/withdrawals", ledgerHandler.ListWithdrawals)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)
	reports.Get("/suppliers", reportHandler.Suppliers)
}
