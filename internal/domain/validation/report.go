package validation

import "time"

// Collection nombre de una colección del fixture.
type Collection string

// Colecciones en el orden en que se validan y se reportan.
const (
	CollectionUsers      Collection = "users"
	CollectionAreas      Collection = "areas"
	CollectionCategories Collection = "categories"
	CollectionEquipment  Collection = "equipment"
	CollectionProducts   Collection = "products"
	CollectionMovements  Collection = "movements"
)

// Collections devuelve las colecciones en orden de reporte.
func Collections() []Collection {
	return []Collection{
		CollectionUsers, CollectionAreas, CollectionCategories,
		CollectionEquipment, CollectionProducts, CollectionMovements,
	}
}

// Rule identifica la regla que produjo una violación.
type Rule string

const (
	RuleUniqueID   Rule = "unique_id"   // id único dentro de la colección
	RuleUniqueKey  Rule = "unique_key"  // username / code / inventoryCode únicos
	RuleEnum       Rule = "enum"        // role, status, type dentro de los valores permitidos
	RuleReference  Rule = "reference"   // integridad referencial entre colecciones
	RuleRange      Rule = "range"       // invariantes numéricas
	RuleTemporal   Rule = "temporal"    // orden de fechas
	RuleStockDelta Rule = "stock_delta" // newStock = previousStock ± quantity
	RuleRequired   Rule = "required"
	RuleFormat     Rule = "format"
)

var ruleRank = map[Rule]int{
	RuleRequired:   0,
	RuleUniqueID:   1,
	RuleUniqueKey:  2,
	RuleEnum:       3,
	RuleFormat:     4,
	RuleReference:  5,
	RuleRange:      6,
	RuleTemporal:   7,
	RuleStockDelta: 8,
}

// Violation hallazgo estructurado: qué regla falló, en qué colección y para qué registro.
type Violation struct {
	Collection Collection `json:"collection"`
	RecordID   string     `json:"recordId"`
	Rule       Rule       `json:"rule"`
	Field      string     `json:"field,omitempty"`
	Message    string     `json:"message"`
}

// Report resultado de una corrida de validación. Sin violaciones = fixture válido.
type Report struct {
	RunID      string             `json:"runId"`
	CheckedAt  time.Time          `json:"checkedAt"`
	Counts     map[Collection]int `json:"counts"`
	Violations []Violation        `json:"violations"`
}

// Valid indica si no se encontró ninguna violación.
func (r Report) Valid() bool {
	return len(r.Violations) == 0
}

// ByRule filtra las violaciones de una regla.
func (r Report) ByRule(rule Rule) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}

// ByCollection filtra las violaciones de una colección.
func (r Report) ByCollection(c Collection) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Collection == c {
			out = append(out, v)
		}
	}
	return out
}

// Find devuelve las violaciones de un registro concreto.
func (r Report) Find(c Collection, recordID string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Collection == c && v.RecordID == recordID {
			out = append(out, v)
		}
	}
	return out
}
