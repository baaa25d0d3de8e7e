package fixtures

import (
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func movements() []entity.Movement {
	return []entity.Movement{
		{
			ID:            "1",
			ProductID:     "1",
			Type:          entity.MovementTypeAssignment,
			Quantity:      5,
			PreviousStock: 30,
			NewStock:      25,
			Reason:        "Dotación de puestos nuevos en Contabilidad",
			Reference:     "SOL-2024-0012",
			UserID:        "2",
			FromLocation:  str("Almacén Central"),
			ToLocation:    str("Contabilidad"),
			AssignedTo:    str("Carlos Rodríguez"),
			ReceivedBy:    "Carlos Rodríguez",
			Notes:         "Entregados con acta firmada",
			CreatedAt:     ts(2024, time.March, 5, 9, 10),
		},
		{
			ID:            "2",
			ProductID:     "2",
			Type:          entity.MovementTypeExit,
			Quantity:      2,
			PreviousStock: 15,
			NewStock:      13,
			Reason:        "Baja por daño (teclas defectuosas)",
			Reference:     "BAJA-2024-0003",
			UserID:        "2",
			FromLocation:  str("Almacén Central"),
			ReceivedBy:    "Supervisor Técnico",
			Notes:         "Enviados a disposición final de RAEE",
			CreatedAt:     ts(2024, time.March, 8, 11, 0),
		},
		{
			ID:            "3",
			ProductID:     "2",
			Type:          entity.MovementTypeReturn,
			Quantity:      1,
			PreviousStock: 13,
			NewStock:      14,
			Reason:        "Devolución por retiro de puesto",
			Reference:     "DEV-2024-0007",
			UserID:        "3",
			FromLocation:  str("Recursos Humanos"),
			ToLocation:    str("Almacén Central"),
			ReceivedBy:    "Supervisor Técnico",
			Notes:         "",
			CreatedAt:     ts(2024, time.March, 12, 15, 40),
		},
		{
			ID:            "4",
			ProductID:     "5",
			Type:          entity.MovementTypeMaintenance,
			Quantity:      1,
			PreviousStock: 1,
			NewStock:      0,
			Reason:        "Puerto 3 sin enlace, enviado a garantía",
			Reference:     "MNT-2024-0002",
			UserID:        "1",
			FromLocation:  str("Almacén Central"),
			ToLocation:    str("Proveedor - Servicio Técnico"),
			ReceivedBy:    "Redes y Soluciones S.A.S.",
			Notes:         "Tiempo estimado de respuesta: 15 días hábiles",
			CreatedAt:     ts(2024, time.March, 16, 14, 50),
		},
		{
			ID:            "5",
			ProductID:     "4",
			Type:          entity.MovementTypeEntry,
			Quantity:      15,
			PreviousStock: 3,
			NewStock:      18,
			Reason:        "Compra trimestral de consumibles",
			Reference:     "OC-2024-0031",
			UserID:        "1",
			ToLocation:    str("Almacén Central"),
			ReceivedBy:    "Supervisor Técnico",
			Notes:         "Factura FE-88213 del proveedor",
			CreatedAt:     ts(2024, time.March, 20, 10, 0),
		},
	}
}
