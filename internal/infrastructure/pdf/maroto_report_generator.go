// Package pdf renderiza el reporte de inventario como documento imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + ventana del reporte                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Entradas | Salidas | Neto   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades entradas / salidas / valor de compra      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/dto"
	"github.com/SarahAbdulmajeed/Stocker/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	rows []dto.InventoryReportRowDTO,
	start, end *time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(start, end))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y ventana del reporte (der).
func headerRow(start, end *time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Existencias y movimientos por producto", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+windowLabel(start, end), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Entradas", 1, align.Right),
		h("Salidas", 1, align.Right),
		h("Neto", 1, align.Right),
		h("Valor compra", 2, align.Right),
	)
}

// tableRows: una fila por producto, en el mismo orden que el reporte JSON.
func tableRows(rows []dto.InventoryReportRowDTO) []core.Row {
	num := func(v int64, a align.Type) core.Component {
		return text.New(fmt.Sprintf("%d", v), props.Text{Size: 8, Align: a, Top: 1, Right: 1})
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.SKU, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(num(r.CurrentStock, align.Right)),
			col.New(1).Add(num(r.InQty, align.Right)),
			col.New(1).Add(num(r.OutQty, align.Right)),
			col.New(1).Add(num(r.NetMovement, align.Right)),
			col.New(2).Add(text.New("$"+r.InValue.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: agregados del período al pie de la tabla.
func totalsRow(rows []dto.InventoryReportRowDTO) core.Row {
	var inTotal, outTotal int64
	inValue := decimal.Zero
	for _, r := range rows {
		inTotal += r.InQty
		outTotal += r.OutQty
		inValue = inValue.Add(r.InValue)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(4), // espacio izquierdo
		col.New(4).Add(
			label("Unidades recibidas:"),
			label("Unidades retiradas:"),
			label("Valor de compra del período:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", inTotal)),
			value(fmt.Sprintf("%d", outTotal)),
			value("$"+inValue.StringFixed(2)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// windowLabel describe la ventana inclusiva del reporte en formato legible.
func windowLabel(start, end *time.Time) string {
	const layout = "02/01/2006"
	switch {
	case start == nil && end == nil:
		return "histórico completo"
	case start == nil:
		return "hasta " + end.Format(layout)
	case end == nil:
		return "desde " + start.Format(layout)
	default:
		return start.Format(layout) + " – " + end.Format(layout)
	}
}
