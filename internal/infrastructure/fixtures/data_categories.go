package fixtures

import (
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func categories() []entity.Category {
	return []entity.Category{
		{
			ID:          "1",
			Name:        "Computadores",
			Description: "Equipos de cómputo portátiles y de escritorio",
			Code:        "COMP",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.January, 10, 8, 0),
		},
		{
			ID:          "2",
			Name:        "Periféricos",
			Description: "Mouse, teclados, diademas y accesorios",
			Code:        "PERI",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.January, 10, 8, 0),
		},
		{
			ID:          "3",
			Name:        "Redes",
			Description: "Switches, cableado estructurado y conectividad",
			Code:        "RED",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.February, 20, 11, 0),
		},
		{
			ID:          "4",
			Name:        "Impresión",
			Description: "Impresoras, tóner y consumibles de impresión",
			Code:        "IMP",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.January, 10, 8, 0),
		},
		{
			ID:          "5",
			Name:        "Audiovisuales",
			Description: "Proyectores, pantallas y equipos de videoconferencia",
			Code:        "AV",
			IsActive:    false,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.April, 2, 16, 45),
		},
	}
}
