package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

func TestStockDirection(t *testing.T) {
	assert.Equal(t, 1, entity.StockDirection(entity.MovementTypeEntry))
	assert.Equal(t, 1, entity.StockDirection(entity.MovementTypeReturn))
	assert.Equal(t, -1, entity.StockDirection(entity.MovementTypeExit))
	assert.Equal(t, -1, entity.StockDirection(entity.MovementTypeAssignment))
	assert.Equal(t, -1, entity.StockDirection(entity.MovementTypeMaintenance))
	assert.Equal(t, 0, entity.StockDirection("transfer"))
}

func TestExpectedNewStock(t *testing.T) {
	m := entity.Movement{Type: entity.MovementTypeAssignment, PreviousStock: 30, Quantity: 5}
	got, ok := m.ExpectedNewStock()
	require.True(t, ok)
	assert.Equal(t, 25, got)

	m = entity.Movement{Type: entity.MovementTypeEntry, PreviousStock: 3, Quantity: 15}
	got, ok = m.ExpectedNewStock()
	require.True(t, ok)
	assert.Equal(t, 18, got)

	_, ok = entity.Movement{Type: "desconocido"}.ExpectedNewStock()
	assert.False(t, ok)
}

func TestSpecifications_ConservaOrdenEnJSON(t *testing.T) {
	specs := entity.Specs("procesador", "Intel Core i7", "ram", "16GB", "almacenamiento", "512GB SSD")

	raw, err := json.Marshal(specs)
	require.NoError(t, err)
	assert.Equal(t, `{"procesador":"Intel Core i7","ram":"16GB","almacenamiento":"512GB SSD"}`, string(raw))

	var back entity.Specifications
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, specs, back)

	v, ok := back.Get("ram")
	assert.True(t, ok)
	assert.Equal(t, "16GB", v)
}

func TestSpecifications_RechazaNoObjeto(t *testing.T) {
	var s entity.Specifications
	assert.Error(t, json.Unmarshal([]byte(`["a","b"]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestClone_NoComparteMemoria(t *testing.T) {
	who := "Carlos Rodríguez"
	e := entity.Equipment{AssignedTo: &who, Specifications: entity.Specs("ram", "8GB")}
	c := e.Clone()
	*c.AssignedTo = "otro"
	c.Specifications[0].Value = "32GB"
	assert.Equal(t, "Carlos Rodríguez", *e.AssignedTo)
	assert.Equal(t, "8GB", e.Specifications[0].Value)

	p := entity.Product{SerialRange: &entity.SerialRange{From: "A", To: "B"}}
	pc := p.Clone()
	pc.SerialRange.From = "Z"
	assert.Equal(t, "A", p.SerialRange.From)
}

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, entity.Product{CurrentStock: 0, MinStock: 3, MaxStock: 10}.IsLowStock())
	assert.True(t, entity.Product{CurrentStock: 3, MinStock: 3, MaxStock: 10}.IsLowStock())
	assert.False(t, entity.Product{CurrentStock: 25, MinStock: 10, MaxStock: 50}.IsLowStock())
}
