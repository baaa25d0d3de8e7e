// Package pdf genera el reporte de stock del fixture de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha       │  Resumen de validación + QR  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Stock | Mín | Máx   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BAJO MÍNIMO: Prioridad | Código | Déficit | Pedido sugerido │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: violaciones (si las hay) + valor de equipos         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
)

// Cantidad máxima de violaciones listadas; el resto se resume en una línea.
const maxViolationRows = 25

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 20, Green: 120, Blue: 60}
)

var _ fixture.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa fixture.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	title string
}

// NewMarotoStockReport construye el generador. title aparece en el encabezado y en los metadatos del PDF.
func NewMarotoStockReport(title string) *MarotoStockReport {
	if title == "" {
		title = "Reporte de stock"
	}
	return &MarotoStockReport{title: title}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, data fixture.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, data.Report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("EXISTENCIAS"))
	m.AddRows(productHeaderRow())
	m.AddRows(productRows(data.Products, data.Categories)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow("PRODUCTOS EN O BAJO EL MÍNIMO"))
	if len(data.LowStock) == 0 {
		m.AddRows(noteRow("Ningún producto requiere reposición.", colorOK))
	} else {
		m.AddRows(lowStockHeaderRow())
		m.AddRows(lowStockRows(data.LowStock)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(violationRows(data.Report)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(noteRow("Valor de equipos en servicio: $"+formatMoney(data.EquipmentValue.StringFixed(0)), colorGray))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha de la validación (izq), estado + QR con el run id (der).
func headerRow(title string, rep validation.Report) core.Row {
	status, color := "FIXTURE VÁLIDO", colorOK
	if !rep.Valid() {
		status, color = fmt.Sprintf("%d VIOLACIONES", len(rep.Violations)), colorAlert
	}

	return row.New(24).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+rep.CheckedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 15, Color: color,
			}),
		),
		col.New(3).Add(
			text.New("Ejecución", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New(rep.RunID, props.Text{
				Size: 6, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
		col.New(2).Add(code.NewQr(rep.RunID, props.Rect{Percent: 95, Center: true})),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func noteRow(s string, color *props.Color) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: color, Top: 2}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
	}))
}

func cell(s string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
	}))
}

func productHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Código", 2, align.Left),
		headerCol("Producto", 4, align.Left),
		headerCol("Categoría", 2, align.Left),
		headerCol("Stock", 1, align.Right),
		headerCol("Mín.", 1, align.Right),
		headerCol("Máx.", 1, align.Right),
		headerCol("Estado", 1, align.Center),
	)
}

// productRows: una fila por producto; los que están en o bajo el mínimo van en rojo.
func productRows(products []entity.Product, categories map[string]string) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		var color *props.Color
		if p.IsLowStock() {
			color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			cell(p.Code, 2, align.Left, color),
			cell(p.Name, 4, align.Left, color),
			cell(nonEmpty(categories[p.CategoryID], p.CategoryID), 2, align.Left, color),
			cell(strconv.Itoa(p.CurrentStock), 1, align.Right, color),
			cell(strconv.Itoa(p.MinStock), 1, align.Right, color),
			cell(strconv.Itoa(p.MaxStock), 1, align.Right, color),
			cell(p.Status, 1, align.Center, color),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("#", 1, align.Center),
		headerCol("Código", 2, align.Left),
		headerCol("Producto", 4, align.Left),
		headerCol("Stock", 1, align.Right),
		headerCol("Déficit", 2, align.Right),
		headerCol("Pedido sugerido", 2, align.Right),
	)
}

func lowStockRows(items []dto.LowStockItemDTO) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			cell(strconv.Itoa(it.Priority), 1, align.Center, nil),
			cell(it.Code, 2, align.Left, nil),
			cell(it.Name, 4, align.Left, nil),
			cell(strconv.Itoa(it.CurrentStock), 1, align.Right, nil),
			cell(strconv.Itoa(it.Deficit), 2, align.Right, colorAlert),
			cell(strconv.Itoa(it.SuggestedOrderQty), 2, align.Right, nil),
		))
	}
	return rows
}

// violationRows: resumen de la validación; lista hasta maxViolationRows violaciones.
func violationRows(rep validation.Report) []core.Row {
	rows := []core.Row{sectionRow("VALIDACIÓN")}
	counts := ""
	for i, c := range validation.Collections() {
		if i > 0 {
			counts += "   |   "
		}
		counts += fmt.Sprintf("%s: %d", c, rep.Counts[c])
	}
	rows = append(rows, noteRow(counts, colorGray))

	if rep.Valid() {
		return append(rows, noteRow("Sin violaciones.", colorOK))
	}
	for i, v := range rep.Violations {
		if i == maxViolationRows {
			rows = append(rows, noteRow(fmt.Sprintf("... y %d más", len(rep.Violations)-maxViolationRows), colorGray))
			break
		}
		rows = append(rows, row.New(6).Add(
			cell(string(v.Collection)+" #"+v.RecordID, 3, align.Left, nil),
			cell(string(v.Rule), 2, align.Left, colorAlert),
			cell(v.Message, 7, align.Left, nil),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
