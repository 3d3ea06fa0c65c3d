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

	"github.com/jhoicas/erp-inventory/internal/application/auth"
	"github.com/jhoicas/erp-inventory/internal/application/inventory"
	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/application/usecase"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/erp-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/erp-inventory/internal/interfaces/http"
	"github.com/jhoicas/erp-inventory/pkg/config"
	"github.com/jhoicas/erp-inventory/pkg/logger"
)

// repos agrupa los puertos de persistencia resueltos según STORE_DRIVER.
type repos struct {
	company    repository.CompanyRepository
	user       repository.UserRepository
	warehouse  repository.WarehouseRepository
	item       repository.ItemRepository
	category   repository.CategoryRepository
	lot        repository.LotRepository
	withdrawal repository.WithdrawalRepository
	txRunner   inventory.TxRunner
	close      func()
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	r, err := buildRepos(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	stockUC := inventory.NewStockUseCase(r.txRunner, r.item, r.lot, r.withdrawal)
	lowStockUC := inventory.NewLowStockUseCase(r.item, r.lot)
	positionUC := report.NewStockPositionUseCase(r.category, r.item, r.lot)
	exportUC := report.NewExportPDFUseCase(stockUC, r.company, infrapdf.NewMarotoPDFGenerator())

	companyUC := usecase.NewCompanyUseCase(r.company)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouse, r.lot)
	itemUC := usecase.NewItemUseCase(r.item)
	categoryUC := usecase.NewCategoryUseCase(r.category)
	accessSvc := usecase.NewAccessService(r.company)

	authUC := auth.NewAuthUseCase(r.user, r.company, auth.JWTConfig{
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
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		ItemUC:      itemUC,
		CategoryUC:  categoryUC,
		Access:      accessSvc,
		StockUC:     stockUC,
		LowStockUC:  lowStockUC,
		PositionUC:  positionUC,
		ExportUC:    exportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

// buildRepos resuelve el backend de persistencia según STORE_DRIVER:
// "memory" para desarrollo local sin base de datos, "postgres" en producción.
func buildRepos(cfg *config.Config) (*repos, error) {
	if cfg.Store.Driver == "postgres" {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		return &repos{
			company:    postgres.NewCompanyRepository(pool),
			user:       postgres.NewUserRepository(pool),
			warehouse:  postgres.NewWarehouseRepository(pool),
			item:       postgres.NewItemRepository(pool),
			category:   postgres.NewCategoryRepository(pool),
			lot:        postgres.NewLotRepository(pool),
			withdrawal: postgres.NewWithdrawalRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
			close:      pool.Close,
		}, nil
	}

	companyRepo := memory.NewCompanyRepository()
	lotRepo := memory.NewLotRepository()
	withdrawalRepo := memory.NewWithdrawalRepository()
	return &repos{
		company:    companyRepo,
		user:       memory.NewUserRepository(companyRepo),
		warehouse:  memory.NewWarehouseRepository(),
		item:       memory.NewItemRepository(),
		category:   memory.NewCategoryRepository(),
		lot:        lotRepo,
		withdrawal: withdrawalRepo,
		txRunner:   memory.NewTxRunner(lotRepo, withdrawalRepo),
		close:      func() {},
	}, nil
}
