package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventory/internal/application/auth"
	"github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/application/usecase"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ItemUC      *usecase.ItemUseCase
	CategoryUC  *usecase.CategoryUseCase
	Access      *usecase.AccessService
	StockUC     *inventory.StockUseCase
	LowStockUC  *inventory.LowStockUseCase
	PositionUC  *report.StockPositionUseCase
	ExportUC    *report.ExportPDFUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (creación y consulta públicas; la matriz de accesos es protegida)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Access)
	companies := api.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Selector de empresa
	protected.Get("/auth/companies", authHandler.ListCompanies)
	protected.Post("/auth/switch-company", authHandler.SwitchCompany)

	// Matriz rol x módulo (solo admin)
	roleAccess := protected.Group("/companies/role-access", RequireRole(entity.RoleAdmin))
	roleAccess.Get("/", companyHandler.ListRoleAccess)
	roleAccess.Post("/toggle-module", companyHandler.ToggleModule)
	roleAccess.Post("/toggle-visibility", companyHandler.ToggleVisibility)
	companies.Get("/:id", companyHandler.GetByID)

	// Módulo stock: artículos, bodegas, categorías, motor FIFO y reportes
	stock := protected.Group("/", RequireModule(entity.ModuleStock, deps.Access))

	items := stock.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	warehouses := stock.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	reportHandler := NewReportHandler(deps.CategoryUC, deps.PositionUC)
	categories := stock.Group("/categories")
	categories.Post("/", reportHandler.CreateCategory)
	categories.Get("/", reportHandler.ListCategories)
	categories.Get("/:id", reportHandler.GetCategory)
	categories.Delete("/:id", reportHandler.DeleteCategory)

	invGroup := stock.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.LowStockUC, deps.ExportUC)
	invGroup.Post("/receive", inventoryHandler.Receive)
	invGroup.Post("/withdraw", inventoryHandler.Withdraw)
	invGroup.Get("/items/:id/layers", inventoryHandler.GetLayers)
	invGroup.Get("/items/:id/valuation", inventoryHandler.Valuation)
	invGroup.Get("/on-hand", inventoryHandler.ListOnHand)
	invGroup.Get("/purchases/:id", inventoryHandler.GetPurchase)
	invGroup.Get("/restock-list", inventoryHandler.GetRestockList)
	invGroup.Get("/valuation/pdf", inventoryHandler.ExportValuationPDF)

	reports := stock.Group("/reports")
	reports.Get("/stock-position", reportHandler.StockPosition)
}
