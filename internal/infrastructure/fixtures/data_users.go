package fixtures

import (
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func users() []entity.User {
	return []entity.User{
		{
			ID:         "1",
			Username:   "admin",
			Name:       "Administrador del Sistema",
			Email:      "admin@empresa.com",
			Role:       entity.RoleAdmin,
			Department: "Sistemas",
			Position:   "Administrador de TI",
			Phone:      "+57 300 123 4567",
			CreatedAt:  ts(2024, time.January, 15, 8, 0),
			IsActive:   true,
		},
		{
			ID:         "2",
			Username:   "supervisor",
			Name:       "Supervisor Técnico",
			Email:      "supervisor@empresa.com",
			Role:       entity.RoleManager,
			Department: "Sistemas",
			Position:   "Supervisor de Soporte",
			Phone:      "+57 301 234 5678",
			CreatedAt:  ts(2024, time.January, 15, 8, 30),
			IsActive:   true,
		},
		{
			ID:         "3",
			Username:   "crodriguez",
			Name:       "Carlos Rodríguez",
			Email:      "carlos.rodriguez@empresa.com",
			Role:       entity.RoleUser,
			Department: "Contabilidad",
			Position:   "Contador",
			Phone:      "+57 302 345 6789",
			CreatedAt:  ts(2024, time.February, 1, 9, 0),
			IsActive:   true,
		},
		{
			ID:         "4",
			Username:   "mgonzalez",
			Name:       "María González",
			Email:      "maria.gonzalez@empresa.com",
			Role:       entity.RoleUser,
			Department: "Recursos Humanos",
			Position:   "Analista de Talento Humano",
			Phone:      "+57 303 456 7890",
			CreatedAt:  ts(2024, time.February, 5, 10, 15),
			IsActive:   true,
		},
		{
			ID:         "5",
			Username:   "amartinez",
			Name:       "Ana Martínez",
			Email:      "ana.martinez@empresa.com",
			Role:       entity.RoleManager,
			Department: "Administración",
			Position:   "Coordinadora Administrativa",
			Phone:      "+57 304 567 8901",
			CreatedAt:  ts(2024, time.March, 10, 14, 0),
			IsActive:   false,
		},
	}
}
