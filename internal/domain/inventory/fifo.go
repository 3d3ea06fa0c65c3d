// Package inventory implementa la lógica pura de valoración FIFO (servicio de
// dominio, sin estado): el lote más antiguo se consume primero y el costo de
// salida se calcula a los costos originales de cada capa consumida.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

// SortFIFO ordena lotes en orden FIFO: ReceivedAt ascendente y, a igual
// timestamp, secuencia de inserción ascendente. El orden FIFO se define sobre
// la secuencia de inserción, no solo sobre el reloj.
func SortFIFO(lots []*entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		if lots[i].ReceivedAt.Equal(lots[j].ReceivedAt) {
			return lots[i].Seq < lots[j].Seq
		}
		return lots[i].ReceivedAt.Before(lots[j].ReceivedAt)
	})
}

// Consume planifica el consumo FIFO de qty sobre los lotes dados (ya en orden
// FIFO). No muta los lotes: devuelve la lista de consumos por lote en el orden
// consumido. Si el total disponible es menor que qty devuelve
// ErrInsufficientStock sin consumo parcial (todo-o-nada).
func Consume(lots []*entity.Lot, qty decimal.Decimal) ([]entity.LotConsumption, error) {
	if qty.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if OnHand(lots).LessThan(qty) {
		return nil, domain.ErrInsufficientStock
	}
	var consumptions []entity.LotConsumption
	remaining := qty
	for _, lot := range lots {
		if lot.Depleted() {
			continue
		}
		take := decimal.Min(lot.Remaining, remaining)
		consumptions = append(consumptions, entity.LotConsumption{
			LotID:    lot.ID,
			Quantity: take,
			UnitCost: lot.UnitCost,
		})
		remaining = remaining.Sub(take)
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}
	return consumptions, nil
}

// OnHand devuelve la cantidad disponible total (suma de remanentes).
func OnHand(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Remaining)
	}
	return total
}

// Valuation devuelve el valor FIFO en libros del stock disponible
// (Σ Remaining * UnitCost sobre todos los lotes).
func Valuation(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.BookValue())
	}
	return total
}

// TotalCost suma el costo de una lista de consumos.
func TotalCost(consumptions []entity.LotConsumption) decimal.Decimal {
	total := decimal.Zero
	for _, c := range consumptions {
		total = total.Add(c.Cost())
	}
	return total
}
