package fixtures

import (
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func products() []entity.Product {
	return []entity.Product{
		{
			ID:           "1",
			Code:         "MOUSE-001",
			Name:         "Mouse Óptico USB",
			Description:  "Mouse óptico alámbrico USB, 1000 DPI",
			CategoryID:   "2",
			SerialRange:  &entity.SerialRange{From: "MS-2024-0001", To: "MS-2024-0050"},
			CurrentStock: 25,
			MinStock:     10,
			MaxStock:     50,
			Location:     "Almacén Central - Estante A1",
			Status:       entity.ProductStatusAvailable,
			IsActive:     true,
			CreatedAt:    ts(2024, time.January, 18, 10, 0),
			UpdatedAt:    ts(2024, time.March, 5, 9, 10),
		},
		{
			ID:           "2",
			Code:         "TECLADO-001",
			Name:         "Teclado USB en Español",
			Description:  "Teclado alámbrico distribución latinoamericana",
			CategoryID:   "2",
			CurrentStock: 14,
			MinStock:     8,
			MaxStock:     40,
			Location:     "Almacén Central - Estante A2",
			Status:       entity.ProductStatusAvailable,
			IsActive:     true,
			CreatedAt:    ts(2024, time.January, 18, 10, 5),
			UpdatedAt:    ts(2024, time.March, 12, 15, 40),
		},
		{
			ID:           "3",
			Code:         "CABLE-RJ45-001",
			Name:         "Patch Cord Cat6 2m",
			Description:  "Cable de red UTP categoría 6, 2 metros",
			CategoryID:   "3",
			CurrentStock: 95,
			MinStock:     30,
			MaxStock:     200,
			Location:     "Almacén Central - Estante B1",
			Status:       entity.ProductStatusAvailable,
			IsActive:     true,
			CreatedAt:    ts(2024, time.January, 19, 8, 0),
			UpdatedAt:    ts(2024, time.March, 14, 11, 25),
		},
		{
			ID:           "4",
			Code:         "TONER-001",
			Name:         "Botella de Tinta Epson T504 Negra",
			Description:  "Tinta original para impresoras EcoTank",
			CategoryID:   "4",
			CurrentStock: 18,
			MinStock:     5,
			MaxStock:     30,
			Location:     "Almacén Central - Estante C3",
			Status:       entity.ProductStatusAvailable,
			IsActive:     true,
			CreatedAt:    ts(2024, time.January, 19, 8, 30),
			UpdatedAt:    ts(2024, time.March, 20, 10, 0),
		},
		{
			ID:           "5",
			Code:         "SWITCH-001",
			Name:         "Switch No Administrable 8 Puertos",
			Description:  "Switch Gigabit de escritorio para puestos remotos",
			CategoryID:   "3",
			SerialRange:  &entity.SerialRange{From: "TPL-SG108-0001", To: "TPL-SG108-0010"},
			CurrentStock: 0,
			MinStock:     3,
			MaxStock:     10,
			Location:     "Almacén Central - Estante B4",
			Status:       entity.ProductStatusOutOfStock,
			IsActive:     true,
			CreatedAt:    ts(2024, time.January, 19, 9, 0),
			UpdatedAt:    ts(2024, time.March, 16, 14, 50),
		},
		{
			ID:           "6",
			Code:         "DIADEMA-001",
			Name:         "Diadema con Micrófono USB",
			Description:  "Diadema biaural para videollamadas",
			CategoryID:   "2",
			CurrentStock: 4,
			MinStock:     5,
			MaxStock:     20,
			Location:     "Almacén Central - Estante A3",
			Status:       entity.ProductStatusLowStock,
			IsActive:     true,
			CreatedAt:    ts(2024, time.February, 2, 9, 0),
			UpdatedAt:    ts(2024, time.February, 2, 9, 0),
		},
	}
}
