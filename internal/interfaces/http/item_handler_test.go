package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/application/usecase"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/erp-inventory/internal/interfaces/http"
)

// buildCrudApp arma una app con los handlers CRUD sobre repos en memoria
// vacíos, con los locals de auth ya cargados.
func buildCrudApp() (*fiber.App, *memory.ItemRepository) {
	items := memory.NewItemRepository()
	warehouses := memory.NewWarehouseRepository()
	categories := memory.NewCategoryRepository()
	companies := memory.NewCompanyRepository()
	lots := memory.NewLotRepository()

	itemHandler := apphttp.NewItemHandler(usecase.NewItemUseCase(items))
	warehouseHandler := apphttp.NewWarehouseHandler(usecase.NewWarehouseUseCase(warehouses, lots))
	companyHandler := apphttp.NewCompanyHandler(usecase.NewCompanyUseCase(companies), usecase.NewAccessService(companies))
	reportHandler := apphttp.NewReportHandler(
		usecase.NewCategoryUseCase(categories),
		report.NewStockPositionUseCase(categories, items, lots),
	)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalCompanyID, testCompanyID)
		c.Locals(apphttp.LocalRole, entity.RoleAdmin)
		return c.Next()
	})
	app.Get("/items/:id", itemHandler.GetByID)
	app.Put("/items/:id", itemHandler.Update)
	app.Get("/warehouses/:id", warehouseHandler.GetByID)
	app.Get("/categories/:id", reportHandler.GetCategory)
	app.Get("/companies/:id", companyHandler.GetByID)
	return app, items
}

func getStatus(t *testing.T, app *fiber.App, method, path string) (int, map[string]interface{}) {
	t.Helper()
	var reqBody io.Reader
	if method != http.MethodGet {
		reqBody = strings.NewReader("{}")
	}
	req := httptest.NewRequest(method, path, reqBody)
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

// Un ID desconocido debe producir 404, nunca un 500 ni un 200 con cuerpo null.
func TestGetItem_NoExistenteRetorna404(t *testing.T) {
	app, _ := buildCrudApp()

	status, body := getStatus(t, app, http.MethodGet, "/items/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestUpdateItem_NoExistenteRetorna404(t *testing.T) {
	app, _ := buildCrudApp()

	status, body := getStatus(t, app, http.MethodPut, "/items/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetWarehouse_NoExistenteRetorna404(t *testing.T) {
	app, _ := buildCrudApp()

	status, body := getStatus(t, app, http.MethodGet, "/warehouses/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetCategory_NoExistenteRetorna404(t *testing.T) {
	app, _ := buildCrudApp()

	status, body := getStatus(t, app, http.MethodGet, "/categories/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetCompany_NoExistenteRetorna404(t *testing.T) {
	app, _ := buildCrudApp()

	status, body := getStatus(t, app, http.MethodGet, "/companies/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// El camino feliz sigue respondiendo 200 con el artículo.
func TestGetItem_ExistenteRetorna200(t *testing.T) {
	app, items := buildCrudApp()
	now := time.Now()
	require.NoError(t, items.Create(&entity.Item{
		ID:        "item-1",
		CompanyID: testCompanyID,
		SKU:       "ITM001",
		Name:      "Camisa Oxford",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	status, body := getStatus(t, app, http.MethodGet, "/items/item-1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ITM001", body["sku"])
}
