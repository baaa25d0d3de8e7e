package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fixtures/internal/application/auth"
	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/application/usecase"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/fixtures"
	apphttp "github.com/jhoicas/inventario-fixtures/internal/interfaces/http"
)

type stubPDF struct{}

func (stubPDF) GenerateStockReport(context.Context, fixture.StockReportData) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func buildAPI(t *testing.T, store *fixtures.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(store),
		StockUC:   inventory.NewStockUseCase(store),
		FixtureUC: fixture.NewFixtureUseCase(store, nil, stubPDF{}, nil),
		AuthUC: auth.NewAuthUseCase(store, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

// login obtiene un token real vía POST /api/auth/token.
func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"username":"`+username+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestToken_UsuarioInactivoYDesconocido(t *testing.T) {
	app := buildAPI(t, fixtures.Default())

	for username, status := range map[string]int{
		"amartinez": http.StatusForbidden,
		"nadie":     http.StatusUnauthorized,
		"":          http.StatusBadRequest,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"username":"`+username+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, status, resp.StatusCode, username)
	}
}

func TestCatalog_RequiereToken(t *testing.T) {
	app := buildAPI(t, fixtures.Default())
	resp := get(t, app, "/api/products", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCatalog_ListadosEnOrden(t *testing.T) {
	app := buildAPI(t, fixtures.Default())
	tok := login(t, app, "crodriguez")

	resp := get(t, app, "/api/products", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ListResponse[entity.Product]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 6, out.Total)
	assert.Equal(t, "MOUSE-001", out.Items[0].Code)
	assert.Equal(t, "SWITCH-001", out.Items[4].Code)

	for _, path := range []string{"/api/users", "/api/areas", "/api/categories", "/api/equipment", "/api/movements"} {
		r := get(t, app, path, tok)
		assert.Equal(t, http.StatusOK, r.StatusCode, path)
		r.Body.Close()
	}
}

func TestCatalog_GetPorID(t *testing.T) {
	app := buildAPI(t, fixtures.Default())
	tok := login(t, app, "crodriguez")

	resp := get(t, app, "/api/movements/1", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var m entity.Movement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	assert.Equal(t, entity.MovementTypeAssignment, m.Type)
	assert.Equal(t, 30, m.PreviousStock)
	assert.Equal(t, 25, m.NewStock)

	missing := get(t, app, "/api/categories/99", tok)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestInventory_LowStockYMovimientos(t *testing.T) {
	app := buildAPI(t, fixtures.Default())
	tok := login(t, app, "mgonzalez")

	resp := get(t, app, "/api/inventory/low-stock", tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var low dto.ListResponse[dto.LowStockItemDTO]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&low))
	require.NotEmpty(t, low.Items)
	assert.Equal(t, "SWITCH-001", low.Items[0].Code)

	hist := get(t, app, "/api/products/2/movements", tok)
	defer hist.Body.Close()
	require.Equal(t, http.StatusOK, hist.StatusCode)
	var pm dto.ProductMovementsResponse
	require.NoError(t, json.NewDecoder(hist.Body).Decode(&pm))
	assert.Equal(t, 2, pm.Total)
	assert.Equal(t, "TECLADO-001", pm.Product.Code)

	missing := get(t, app, "/api/products/99/movements", tok)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestFixtures_ValidacionPorRol(t *testing.T) {
	app := buildAPI(t, fixtures.Default())

	denied := get(t, app, "/api/fixtures/validation", login(t, app, "crodriguez"))
	defer denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	resp := get(t, app, "/api/fixtures/validation", login(t, app, "supervisor"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep validation.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.True(t, rep.Valid())
	assert.Equal(t, 6, rep.Counts[validation.CollectionProducts])
}

func TestFixtures_DumpSoloAdmin(t *testing.T) {
	app := buildAPI(t, fixtures.Default())

	denied := get(t, app, "/api/fixtures/dump", login(t, app, "supervisor"))
	defer denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	resp := get(t, app, "/api/fixtures/dump", login(t, app, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	want, err := fixtures.Default().MarshalIndent()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, body), "el dump HTTP debe ser el documento canónico")
}

func TestReports_StockPDF(t *testing.T) {
	app := buildAPI(t, fixtures.Default())

	resp := get(t, app, "/api/reports/stock.pdf", login(t, app, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
