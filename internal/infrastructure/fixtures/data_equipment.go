package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func equipment() []entity.Equipment {
	return []entity.Equipment{
		{
			ID:                 "1",
			InventoryCode:      "EQ-2024-001",
			Type:               entity.EquipmentTypeLaptop,
			Brand:              "Dell",
			Model:              "Latitude 5420",
			SerialNumber:       "DL5420-7H2K9M3",
			Status:             entity.EquipmentStatusActive,
			CurrentLocation:    "Contabilidad",
			AssignedTo:         str("Carlos Rodríguez"),
			PurchaseDate:       day(2024, time.January, 20),
			WarrantyExpiration: day(2027, time.January, 20),
			Value:              decimal.NewFromInt(4200000),
			Description:        "Portátil para el área contable",
			Specifications: entity.Specs(
				"procesador", "Intel Core i5-1145G7",
				"ram", "16GB DDR4",
				"almacenamiento", "512GB SSD",
				"pantalla", "14 pulgadas FHD",
				"sistemaOperativo", "Windows 11 Pro",
			),
			CreatedAt: ts(2024, time.January, 22, 9, 0),
			UpdatedAt: ts(2024, time.February, 1, 9, 30),
		},
		{
			ID:                 "2",
			InventoryCode:      "EQ-2024-002",
			Type:               entity.EquipmentTypeDesktop,
			Brand:              "HP",
			Model:              "ProDesk 400 G7",
			SerialNumber:       "HP400-MXL2301Q",
			Status:             entity.EquipmentStatusActive,
			CurrentLocation:    "Recursos Humanos",
			AssignedTo:         str("María González"),
			PurchaseDate:       day(2024, time.January, 20),
			WarrantyExpiration: day(2026, time.January, 20),
			Value:              decimal.NewFromInt(2800000),
			Description:        "Equipo de escritorio para gestión de nómina",
			Specifications: entity.Specs(
				"procesador", "Intel Core i3-10100",
				"ram", "8GB DDR4",
				"almacenamiento", "256GB SSD",
				"sistemaOperativo", "Windows 10 Pro",
			),
			CreatedAt: ts(2024, time.January, 22, 9, 15),
			UpdatedAt: ts(2024, time.February, 5, 10, 30),
		},
		{
			ID:                 "3",
			InventoryCode:      "EQ-2024-003",
			Type:               entity.EquipmentTypeMonitor,
			Brand:              "Samsung",
			Model:              "S24R350",
			SerialNumber:       "SMS24-0KQ7HCNR",
			Status:             entity.EquipmentStatusActive,
			CurrentLocation:    "SIS",
			PurchaseDate:       day(2024, time.February, 10),
			WarrantyExpiration: day(2025, time.February, 10),
			Value:              decimal.NewFromInt(650000),
			Description:        "Monitor de repuesto para puestos de soporte",
			Specifications: entity.Specs(
				"tamaño", "24 pulgadas",
				"resolución", "1920x1080",
				"conectores", "HDMI, VGA",
			),
			CreatedAt: ts(2024, time.February, 12, 11, 0),
			UpdatedAt: ts(2024, time.February, 12, 11, 0),
		},
		{
			ID:                 "4",
			InventoryCode:      "EQ-2023-014",
			Type:               entity.EquipmentTypePrinter,
			Brand:              "Epson",
			Model:              "EcoTank L6270",
			SerialNumber:       "EPL6270-X5YZ001",
			Status:             entity.EquipmentStatusMaintenance,
			CurrentLocation:    "Almacén Central",
			PurchaseDate:       day(2023, time.June, 5),
			WarrantyExpiration: day(2025, time.June, 5),
			Value:              decimal.NewFromInt(1350000),
			Description:        "Impresora multifuncional en revisión por atasco recurrente",
			Specifications: entity.Specs(
				"tipo", "Multifuncional tinta continua",
				"conectividad", "Wi-Fi, Ethernet, USB",
				"dúplex", "Sí",
			),
			CreatedAt: ts(2023, time.June, 6, 8, 0),
			UpdatedAt: ts(2024, time.March, 18, 15, 20),
		},
		{
			ID:                 "5",
			InventoryCode:      "EQ-2019-007",
			Type:               entity.EquipmentTypeProjector,
			Brand:              "Epson",
			Model:              "PowerLite X41+",
			SerialNumber:       "EPX41-W8NT5521",
			Status:             entity.EquipmentStatusRetired,
			CurrentLocation:    "Administración",
			PurchaseDate:       day(2019, time.March, 14),
			WarrantyExpiration: day(2021, time.March, 14),
			Value:              decimal.Zero,
			Description:        "Proyector dado de baja por falla de lámpara",
			Specifications: entity.Specs(
				"lúmenes", "3600",
				"resolución", "1024x768",
			),
			CreatedAt: ts(2019, time.March, 15, 9, 0),
			UpdatedAt: ts(2024, time.April, 2, 16, 45),
		},
		{
			ID:                 "6",
			InventoryCode:      "EQ-2024-004",
			Type:               entity.EquipmentTypeNetwork,
			Brand:              "Cisco",
			Model:              "CBS250-24T-4G",
			SerialNumber:       "CSC250-FOC2419Y",
			Status:             entity.EquipmentStatusActive,
			CurrentLocation:    "Sistemas",
			PurchaseDate:       day(2024, time.February, 20),
			WarrantyExpiration: day(2029, time.February, 20),
			Value:              decimal.RequireFromString("1890000.50"),
			Description:        "Switch de distribución del rack principal",
			Specifications: entity.Specs(
				"puertos", "24 x GbE + 4 x SFP",
				"administrable", "Sí",
				"montaje", "Rack 19 pulgadas",
			),
			CreatedAt: ts(2024, time.February, 20, 11, 0),
			UpdatedAt: ts(2024, time.February, 20, 11, 0),
		},
	}
}
