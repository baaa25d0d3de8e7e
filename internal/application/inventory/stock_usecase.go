package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	domaininv "github.com/jhoicas/inventario-fixtures/internal/domain/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

// StockUseCase consultas de stock sobre el fixture: productos bajo mínimo e historial de movimientos.
type StockUseCase struct {
	repo repository.FixtureLookup
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.FixtureLookup) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// LowStock devuelve los productos activos con CurrentStock <= MinStock y la cantidad sugerida
// para llegar a MaxStock. Ordena por mayor déficit, luego menor stock, luego código.
func (uc *StockUseCase) LowStock() []dto.LowStockItemDTO {
	products := uc.repo.Products()

	items := make([]dto.LowStockItemDTO, 0, len(products))
	for _, p := range products {
		if !p.IsActive || !p.IsLowStock() {
			continue
		}
		categoryName := ""
		if c, ok := uc.repo.CategoryByID(p.CategoryID); ok {
			categoryName = c.Name
		}
		items = append(items, dto.LowStockItemDTO{
			ProductID:         p.ID,
			Code:              p.Code,
			Name:              p.Name,
			CategoryID:        p.CategoryID,
			CategoryName:      categoryName,
			CurrentStock:      p.CurrentStock,
			MinStock:          p.MinStock,
			MaxStock:          p.MaxStock,
			Deficit:           domaininv.Deficit(p.CurrentStock, p.MinStock),
			SuggestedOrderQty: domaininv.SuggestedOrderQty(p.CurrentStock, p.MaxStock),
			Location:          p.Location,
			Status:            p.Status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Deficit != b.Deficit {
			return a.Deficit > b.Deficit
		}
		if a.CurrentStock != b.CurrentStock {
			return a.CurrentStock < b.CurrentStock
		}
		return a.Code < b.Code
	})

	for i := range items {
		items[i].Priority = i + 1
	}
	return items
}

// ProductMovements devuelve el producto y sus movimientos. domain.ErrNotFound si no existe.
func (uc *StockUseCase) ProductMovements(productID string) (*dto.ProductMovementsResponse, error) {
	p, ok := uc.repo.ProductByID(productID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	movs := uc.repo.MovementsByProduct(productID)
	return &dto.ProductMovementsResponse{Product: p, Movements: movs, Total: len(movs)}, nil
}
