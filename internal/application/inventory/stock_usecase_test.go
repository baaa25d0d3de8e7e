package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/fixtures"
)

func TestLowStock_SwitchPrimero(t *testing.T) {
	uc := inventory.NewStockUseCase(fixtures.Default())

	items := uc.LowStock()
	require.Len(t, items, 2)

	assert.Equal(t, "SWITCH-001", items[0].Code)
	assert.Equal(t, 1, items[0].Priority)
	assert.Equal(t, 3, items[0].Deficit)
	assert.Equal(t, 10, items[0].SuggestedOrderQty)
	assert.Equal(t, "Redes", items[0].CategoryName)

	assert.Equal(t, "DIADEMA-001", items[1].Code)
	assert.Equal(t, 2, items[1].Priority)
	assert.Equal(t, 1, items[1].Deficit)
	assert.Equal(t, 16, items[1].SuggestedOrderQty)
}

func TestProductMovements(t *testing.T) {
	uc := inventory.NewStockUseCase(fixtures.Default())

	out, err := uc.ProductMovements("1")
	require.NoError(t, err)
	assert.Equal(t, "MOUSE-001", out.Product.Code)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, 25, out.Movements[0].NewStock)

	_, err = uc.ProductMovements("404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
