package entity

import "time"

// Estados de stock de un producto.
const (
	ProductStatusAvailable  = "available"
	ProductStatusLowStock   = "low-stock"
	ProductStatusOutOfStock = "out-of-stock"
)

// SerialRange rango de números de serie de un lote (ej. "MS-2024-001" a "MS-2024-050").
type SerialRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Product representa un producto consumible o de reposición con control de stock.
// CurrentStock debe estar en [0, MaxStock] y MinStock en [0, MaxStock].
type Product struct {
	ID           string       `json:"id" validate:"required"`
	Code         string       `json:"code" validate:"required"` // código único (ej. MOUSE-001)
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description"`
	CategoryID   string       `json:"categoryId" validate:"required"`
	SerialRange  *SerialRange `json:"serialNumberRange,omitempty"`
	CurrentStock int          `json:"currentStock" validate:"gte=0,ltefield=MaxStock"`
	MinStock     int          `json:"minStock" validate:"gte=0"`
	MaxStock     int          `json:"maxStock" validate:"gtefield=MinStock"`
	Location     string       `json:"location"`
	Status       string       `json:"status" validate:"allowed=product.status"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" validate:"gtefield=CreatedAt"`
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// Clone devuelve una copia sin punteros compartidos.
func (p Product) Clone() Product {
	if p.SerialRange != nil {
		r := *p.SerialRange
		p.SerialRange = &r
	}
	return p
}
