package fixtures

import (
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func areas() []entity.Area {
	return []entity.Area{
		{
			ID:          "1",
			Name:        "Sistemas",
			Description: "Área de tecnología e infraestructura",
			Code:        "SIS",
			Responsible: "Administrador del Sistema",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.January, 10, 8, 0),
		},
		{
			ID:          "2",
			Name:        "Contabilidad",
			Description: "Área contable y financiera",
			Code:        "CONT",
			Responsible: "Carlos Rodríguez",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.February, 1, 9, 0),
		},
		{
			ID:          "3",
			Name:        "Recursos Humanos",
			Description: "Gestión del talento humano",
			Code:        "RRHH",
			Responsible: "María González",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.February, 5, 10, 15),
		},
		{
			ID:          "4",
			Name:        "Administración",
			Description: "Dirección administrativa y gerencia",
			Code:        "ADM",
			Responsible: "Ana Martínez",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 10, 8, 0),
			UpdatedAt:   ts(2024, time.March, 10, 14, 0),
		},
		{
			ID:          "5",
			Name:        "Almacén Central",
			Description: "Bodega de repuestos, consumibles y equipos en tránsito",
			Code:        "ALM",
			Responsible: "Supervisor Técnico",
			IsActive:    true,
			CreatedAt:   ts(2024, time.January, 12, 7, 30),
			UpdatedAt:   ts(2024, time.January, 12, 7, 30),
		},
	}
}
