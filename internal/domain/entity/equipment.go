package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un equipo.
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

// Tipos de equipo.
const (
	EquipmentTypeLaptop    = "laptop"
	EquipmentTypeDesktop   = "desktop"
	EquipmentTypeMonitor   = "monitor"
	EquipmentTypePrinter   = "printer"
	EquipmentTypeNetwork   = "network"
	EquipmentTypeProjector = "projector"
)

// Equipment representa un equipo inventariado (activo fijo) con código de inventario único.
// CurrentLocation nombra un Area (por nombre o código); AssignedTo es nil si no está asignado.
type Equipment struct {
	ID                 string          `json:"id" validate:"required"`
	InventoryCode      string          `json:"inventoryCode" validate:"required"`
	Type               string          `json:"type" validate:"allowed=equipment.type"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	SerialNumber       string          `json:"serialNumber"`
	Status             string          `json:"status" validate:"allowed=equipment.status"`
	CurrentLocation    string          `json:"currentLocation" validate:"required"`
	AssignedTo         *string         `json:"assignedTo,omitempty"`
	PurchaseDate       time.Time       `json:"purchaseDate"`
	WarrantyExpiration time.Time       `json:"warrantyExpiration" validate:"gtefield=PurchaseDate"`
	Value              decimal.Decimal `json:"value" validate:"gte=0"` // COP
	Description        string          `json:"description"`
	Specifications     Specifications  `json:"specifications"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt" validate:"gtefield=CreatedAt"`
}

// Clone devuelve una copia sin punteros ni slices compartidos.
func (e Equipment) Clone() Equipment {
	e.AssignedTo = cloneString(e.AssignedTo)
	e.Specifications = e.Specifications.Clone()
	return e
}
