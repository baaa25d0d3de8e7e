package dto

import "github.com/jhoicas/inventario-fixtures/internal/domain/entity"

// LowStockItemDTO producto en o por debajo de su stock mínimo, con la reposición sugerida.
type LowStockItemDTO struct {
	ProductID         string `json:"product_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	CategoryID        string `json:"category_id"`
	CategoryName      string `json:"category_name"`
	CurrentStock      int    `json:"current_stock"`
	MinStock          int    `json:"min_stock"`
	MaxStock          int    `json:"max_stock"`
	Deficit           int    `json:"deficit"`             // MinStock - CurrentStock (0 si en el mínimo)
	SuggestedOrderQty int    `json:"suggested_order_qty"` // MaxStock - CurrentStock
	Location          string `json:"location"`
	Status            string `json:"status"`
	Priority          int    `json:"priority"` // 1 = más urgente
}

// ProductMovementsResponse historial de movimientos de un producto en orden de autoría.
type ProductMovementsResponse struct {
	Product   entity.Product    `json:"product"`
	Movements []entity.Movement `json:"movements"`
	Total     int               `json:"total"`
}
