package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/infrastructure/memory"
)

const companyID = "company-1"

type fixture struct {
	uc         *report.StockPositionUseCase
	categories *memory.CategoryRepository
	items      *memory.ItemRepository
	lots       *memory.LotRepository
}

func newFixture() *fixture {
	categories := memory.NewCategoryRepository()
	items := memory.NewItemRepository()
	lots := memory.NewLotRepository()
	return &fixture{
		uc:         report.NewStockPositionUseCase(categories, items, lots),
		categories: categories,
		items:      items,
		lots:       lots,
	}
}

func (f *fixture) addCategory(t *testing.T, id, name string, position int, sizes ...string) {
	t.Helper()
	buckets := make([]entity.SizeBucket, 0, len(sizes))
	for i, label := range sizes {
		buckets = append(buckets, entity.SizeBucket{ID: id + "-s" + label, Label: label, Position: i})
	}
	require.NoError(t, f.categories.Create(&entity.Category{
		ID:        id,
		CompanyID: companyID,
		Name:      name,
		Position:  position,
		Sizes:     buckets,
	}))
}

func (f *fixture) addItemWithStock(t *testing.T, id, categoryID, sizeLabel string, qty int64) {
	t.Helper()
	require.NoError(t, f.items.Create(&entity.Item{
		ID:         id,
		CompanyID:  companyID,
		SKU:        id,
		Name:       id,
		CategoryID: categoryID,
		SizeLabel:  sizeLabel,
	}))
	if qty > 0 {
		q := decimal.NewFromInt(qty)
		require.NoError(t, f.lots.Create(&entity.Lot{
			ID:         "lot-" + id,
			CompanyID:  companyID,
			ItemID:     id,
			Quantity:   q,
			Remaining:  q,
			UnitCost:   decimal.NewFromInt(100),
			ReceivedAt: time.Now(),
		}))
	}
}

// Los buckets declarados aparecen aunque estén en cero, en el orden de la
// categoría.
func TestReport_BucketsDeclaradosConCeros(t *testing.T) {
	f := newFixture()
	f.addCategory(t, "cat-shirts", "Shirts", 0, "SM", "M", "XL")
	f.addItemWithStock(t, "shirt-sm", "cat-shirts", "SM", 10)
	f.addItemWithStock(t, "shirt-xl", "cat-shirts", "XL", 5)

	out, err := f.uc.Report(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)

	sizes := out.Data[0].Sizes
	require.Len(t, sizes, 3)
	assert.Equal(t, "SM", sizes[0].Label)
	assert.True(t, sizes[0].OnHand.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "M", sizes[1].Label)
	assert.True(t, sizes[1].OnHand.IsZero(), "bucket declarado sin stock debe salir en cero")
	assert.Equal(t, "XL", sizes[2].Label)
	assert.True(t, sizes[2].OnHand.Equal(decimal.NewFromInt(5)))
}

// Talla no declarada con stock cae en el bucket OTHER; sin stock, OTHER no
// aparece.
func TestReport_TallaDesconocidaVaAlBucketPorDefecto(t *testing.T) {
	f := newFixture()
	f.addCategory(t, "cat-shirts", "Shirts", 0, "SM", "M")
	f.addItemWithStock(t, "shirt-sm", "cat-shirts", "SM", 10)
	f.addItemWithStock(t, "shirt-xxxl", "cat-shirts", "XXXL", 3)

	out, err := f.uc.Report(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)

	sizes := out.Data[0].Sizes
	require.Len(t, sizes, 3)
	last := sizes[len(sizes)-1]
	assert.Equal(t, entity.DefaultSizeLabel, last.Label)
	assert.True(t, last.OnHand.Equal(decimal.NewFromInt(3)))
}

func TestReport_SinStockDesconocidoNoHayBucketPorDefecto(t *testing.T) {
	f := newFixture()
	f.addCategory(t, "cat-shirts", "Shirts", 0, "SM", "M")
	f.addItemWithStock(t, "shirt-xxxl", "cat-shirts", "XXXL", 0)

	out, err := f.uc.Report(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Len(t, out.Data[0].Sizes, 2, "OTHER no debe aparecer sin stock desconocido")
}

// Las categorías salen en orden estable (Position) aunque no tengan artículos.
func TestReport_CategoriasEnOrdenEstable(t *testing.T) {
	f := newFixture()
	f.addCategory(t, "cat-pants", "Pants", 1, "32", "34")
	f.addCategory(t, "cat-shirts", "Shirts", 0, "SM", "M")

	out, err := f.uc.Report(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "Shirts", out.Data[0].CategoryName)
	assert.Equal(t, "Pants", out.Data[1].CategoryName)
}

// Varios artículos del mismo par (categoría, talla) se suman en el bucket.
func TestReport_SumaPorParCategoriaTalla(t *testing.T) {
	f := newFixture()
	f.addCategory(t, "cat-shirts", "Shirts", 0, "M")
	f.addItemWithStock(t, "shirt-m-azul", "cat-shirts", "M", 4)
	f.addItemWithStock(t, "shirt-m-rojo", "cat-shirts", "M", 6)

	out, err := f.uc.Report(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	require.Len(t, out.Data[0].Sizes, 1)
	assert.True(t, out.Data[0].Sizes[0].OnHand.Equal(decimal.NewFromInt(10)))
}
