package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/inventory"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// StockUseCase es la fachada de consulta y mutación del motor FIFO: recibir
// mercancía (crea lotes), registrar salidas (consume lotes en orden FIFO),
// listar existencias y exponer las capas vivas de un artículo.
//
// Las mutaciones pasan por TxRunner; las lecturas van directo a los
// repositorios (fuera de transacción, el estado es consistente por artículo).
type StockUseCase struct {
	txRunner       TxRunner
	itemRepo       repository.ItemRepository
	lotRepo        repository.LotRepository
	withdrawalRepo repository.WithdrawalRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	lotRepo repository.LotRepository,
	withdrawalRepo repository.WithdrawalRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:       txRunner,
		itemRepo:       itemRepo,
		lotRepo:        lotRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// Receive registra una recepción de mercancía: valida y agrega un lote nuevo
// con Remaining = Quantity. El lote queda visible para consumo FIFO en orden
// de llegada.
func (uc *StockUseCase) Receive(ctx context.Context, companyID, userID string, in dto.ReceiveStockRequest) (*dto.LotResponse, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidCost
	}
	item, err := uc.requireItem(companyID, in.ItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receivedAt := now
	if in.ReceivedAt != nil {
		receivedAt = *in.ReceivedAt
	}
	lot := &entity.Lot{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ItemID:      item.ID,
		WarehouseID: in.WarehouseID,
		Supplier:    in.Supplier,
		Quantity:    in.Quantity,
		Remaining:   in.Quantity,
		UnitCost:    in.UnitCost,
		ReceivedAt:  receivedAt,
		CreatedBy:   userID,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(lotRepo repository.LotRepository, _ repository.WithdrawalRepository) error {
		return lotRepo.Create(lot)
	})
	if err != nil {
		return nil, err
	}
	resp := toLotResponse(lot)
	return &resp, nil
}

// Withdraw registra una salida (venta) consumiendo lotes en orden FIFO.
// El plan de consumo se calcula primero y solo entonces se aplican los
// decrementos: si el stock es insuficiente ningún lote se muta (todo-o-nada).
func (uc *StockUseCase) Withdraw(ctx context.Context, companyID, userID string, in dto.WithdrawRequest) (*dto.WithdrawalResponse, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	item, err := uc.requireItem(companyID, in.ItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	withdrawal := &entity.Withdrawal{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ItemID:        item.ID,
		TotalQuantity: in.Quantity,
		Date:          now,
		CreatedBy:     userID,
		CreatedAt:     now,
	}
	err = uc.txRunner.Run(ctx, func(lotRepo repository.LotRepository, withdrawalRepo repository.WithdrawalRepository) error {
		lots, err := lotRepo.ListByItemForUpdate(item.ID)
		if err != nil {
			return err
		}
		consumptions, err := inventory.Consume(lots, in.Quantity)
		if err != nil {
			return err
		}
		for _, c := range consumptions {
			remaining := findLot(lots, c.LotID).Remaining.Sub(c.Quantity)
			if err := lotRepo.UpdateRemaining(c.LotID, remaining); err != nil {
				return err
			}
		}
		withdrawal.Consumptions = consumptions
		withdrawal.TotalCost = inventory.TotalCost(consumptions)
		return withdrawalRepo.Create(withdrawal)
	})
	if err != nil {
		return nil, err
	}
	return toWithdrawalResponse(withdrawal), nil
}

// GetLayers devuelve las capas FIFO vivas (Remaining > 0) de un artículo,
// más antiguas primero. Artículo desconocido degrada a lista vacía: "sin
// stock todavía" es un estado normal, no un error.
func (uc *StockUseCase) GetLayers(companyID, itemID string) (*dto.LayersResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &dto.LayersResponse{ItemID: itemID, Layers: []dto.LotResponse{}}, nil
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lots, err := uc.lotRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	layers := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		if lot.Depleted() {
			continue
		}
		layers = append(layers, toLotResponse(lot))
	}
	return &dto.LayersResponse{ItemID: item.ID, ItemName: item.Name, Layers: layers}, nil
}

// Valuation devuelve cantidad disponible y valor FIFO en libros del artículo.
// Artículo desconocido degrada a ceros.
func (uc *StockUseCase) Valuation(companyID, itemID string) (*dto.ValuationResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &dto.ValuationResponse{ItemID: itemID, OnHand: decimal.Zero, Valuation: decimal.Zero}, nil
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lots, err := uc.lotRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return &dto.ValuationResponse{
		ItemID:    item.ID,
		OnHand:    inventory.OnHand(lots),
		Valuation: inventory.Valuation(lots),
	}, nil
}

// ListOnHand lista existencias por artículo con filtro por subcadena del
// nombre o SKU, insensible a mayúsculas (comportamiento del buscador de la UI).
func (uc *StockUseCase) ListOnHand(companyID, filter string, limit, offset int) (*dto.OnHandListResponse, error) {
	items, err := uc.itemRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.lotRepo.OnHandByCompany(companyID)
	if err != nil {
		return nil, err
	}
	valuations, err := uc.lotRepo.ValuationByCompany(companyID)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(filter)

	rows := make([]dto.OnHandRow, 0, len(items))
	for _, item := range items {
		if needle != "" &&
			!strings.Contains(fold.String(item.Name), needle) &&
			!strings.Contains(fold.String(item.SKU), needle) {
			continue
		}
		qty, ok := onHand[item.ID]
		if !ok {
			qty = decimal.Zero
		}
		val, ok := valuations[item.ID]
		if !ok {
			val = decimal.Zero
		}
		rows = append(rows, dto.OnHandRow{
			Item:        toItemResponse(item),
			OnHand:      qty,
			Valuation:   val,
			StockStatus: item.StockStatus(qty),
		})
	}
	return &dto.OnHandListResponse{
		Items: rows,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(rows)},
	}, nil
}

// GetPurchase devuelve un registro de compra por id: el lote con proveedor,
// costo y total de la recepción.
func (uc *StockUseCase) GetPurchase(companyID, lotID string) (*dto.PurchaseResponse, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	if lot.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	item, err := uc.itemRepo.GetByID(lot.ItemID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseResponse{
		Lot:   toLotResponse(lot),
		Total: lot.Quantity.Mul(lot.UnitCost),
	}
	if item != nil {
		resp.ItemName = item.Name
		resp.SKU = item.SKU
	}
	return resp, nil
}

// requireItem valida existencia y pertenencia a la empresa para mutaciones.
func (uc *StockUseCase) requireItem(companyID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func findLot(lots []*entity.Lot, id string) *entity.Lot {
	for _, lot := range lots {
		if lot.ID == id {
			return lot
		}
	}
	return nil
}

func toLotResponse(l *entity.Lot) dto.LotResponse {
	return dto.LotResponse{
		ID:          l.ID,
		ItemID:      l.ItemID,
		WarehouseID: l.WarehouseID,
		Supplier:    l.Supplier,
		Quantity:    l.Quantity,
		Remaining:   l.Remaining,
		UnitCost:    l.UnitCost,
		ReceivedAt:  l.ReceivedAt,
	}
}

func toWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	consumptions := make([]dto.ConsumptionDTO, 0, len(w.Consumptions))
	for _, c := range w.Consumptions {
		consumptions = append(consumptions, dto.ConsumptionDTO{
			LotID:    c.LotID,
			Quantity: c.Quantity,
			UnitCost: c.UnitCost,
			Cost:     c.Cost(),
		})
	}
	return &dto.WithdrawalResponse{
		ID:            w.ID,
		ItemID:        w.ItemID,
		Consumptions:  consumptions,
		TotalQuantity: w.TotalQuantity,
		TotalCost:     w.TotalCost,
		Date:          w.Date,
	}
}

func toItemResponse(i *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:             i.ID,
		CompanyID:      i.CompanyID,
		SKU:            i.SKU,
		Name:           i.Name,
		CategoryID:     i.CategoryID,
		SizeLabel:      i.SizeLabel,
		Unit:           i.Unit,
		Price:          i.Price,
		WholesalePrice: i.WholesalePrice,
		MinStockLevel:  i.MinStockLevel,
		Supplier:       i.Supplier,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
