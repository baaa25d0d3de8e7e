package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/fixtures"
)

func reportData(t *testing.T, store *fixtures.Store) fixture.StockReportData {
	t.Helper()
	cats := map[string]string{}
	for _, c := range store.Categories() {
		cats[c.ID] = c.Name
	}
	return fixture.StockReportData{
		Products:       store.Products(),
		LowStock:       inventory.NewStockUseCase(store).LowStock(),
		Report:         store.Validate(),
		Categories:     cats,
		EquipmentValue: decimal.NewFromInt(10890000),
	}
}

func TestGenerateStockReport(t *testing.T) {
	out, err := NewMarotoStockReport("").GenerateStockReport(context.Background(), reportData(t, fixtures.Default()))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "debe ser un documento PDF")
}

func TestGenerateStockReport_ConViolaciones(t *testing.T) {
	snap := fixtures.Default().Snapshot()
	for i := range snap.Movements {
		snap.Movements[i].NewStock = -1
		snap.Movements[i].UserID = "999"
	}
	data := reportData(t, fixtures.New(snap))
	require.False(t, data.Report.Valid())

	out, err := NewMarotoStockReport("Inventario TI").GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "950", formatMoney("950"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "10.890.000", formatMoney("10890000"))
}
