package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry       = "entry"       // entrada (compra, reposición)
	MovementTypeExit        = "exit"        // salida (consumo, baja)
	MovementTypeAssignment  = "assignment"  // asignación a un usuario o área
	MovementTypeReturn      = "return"      // devolución al almacén
	MovementTypeMaintenance = "maintenance" // envío a mantenimiento
)

// Movement representa un movimiento de stock sobre un Product.
// NewStock = PreviousStock ± Quantity según la dirección del tipo (ver StockDirection).
type Movement struct {
	ID            string    `json:"id" validate:"required"`
	ProductID     string    `json:"productId" validate:"required"`
	Type          string    `json:"type" validate:"allowed=movement.type"`
	Quantity      int       `json:"quantity" validate:"gt=0"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	Reason        string    `json:"reason"`
	Reference     string    `json:"reference"`
	UserID        string    `json:"userId" validate:"required"`
	FromLocation  *string   `json:"fromLocation,omitempty"`
	ToLocation    *string   `json:"toLocation,omitempty"`
	AssignedTo    *string   `json:"assignedTo,omitempty"`
	ReceivedBy    string    `json:"receivedBy"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StockDirection devuelve +1 para tipos que incrementan stock (entry, return),
// -1 para los que lo disminuyen (exit, assignment, maintenance) y 0 si el tipo es desconocido.
func StockDirection(movementType string) int {
	switch movementType {
	case MovementTypeEntry, MovementTypeReturn:
		return 1
	case MovementTypeExit, MovementTypeAssignment, MovementTypeMaintenance:
		return -1
	default:
		return 0
	}
}

// ExpectedNewStock calcula el stock resultante según el tipo. ok es false si el tipo es desconocido.
func (m Movement) ExpectedNewStock() (int, bool) {
	dir := StockDirection(m.Type)
	if dir == 0 {
		return 0, false
	}
	return m.PreviousStock + dir*m.Quantity, true
}

// Clone devuelve una copia sin punteros compartidos.
func (m Movement) Clone() Movement {
	m.FromLocation = cloneString(m.FromLocation)
	m.ToLocation = cloneString(m.ToLocation)
	m.AssignedTo = cloneString(m.AssignedTo)
	return m
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
