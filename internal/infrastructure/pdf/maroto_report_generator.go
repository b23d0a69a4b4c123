// Package pdf genera los informes del almacén con Maroto v2.
//
// Layout de la página A4 (ambos informes):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTROS / TOTALES                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/application/report"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntry   = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorExit    = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; appName aparece como autor del PDF.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: appName}
}

// MovementsPDF genera el historial de movimientos (horizontal) con sus totales.
func (g *MarotoReportGenerator) MovementsPDF(_ context.Context, data report.MovementReport) ([]byte, error) {
	loc := locationOrLocal(data.Location)
	m := g.newDocument("Historial de movimientos", orientation.Horizontal)

	m.AddRows(headerRow("HISTORIAL DE MOVIMIENTOS", data.GeneratedAt.In(loc)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filterRow(describeFilter(data)))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"Fecha", 2, align.Left},
		{"Tipo", 1, align.Center},
		{"Producto", 3, align.Left},
		{"Cant.", 1, align.Right},
		{"Almacenista", 2, align.Left},
		{"Sector / Destinatario", 3, align.Left},
	}))
	if len(data.Movements) == 0 {
		m.AddRows(emptyRow("Sin movimientos para los filtros indicados."))
	}
	for _, mv := range data.Movements {
		m.AddRows(movementRow(mv, loc))
	}

	return generate(m)
}

// StockPDF genera la lista de productos con su cantidad actual.
func (g *MarotoReportGenerator) StockPDF(_ context.Context, data report.StockReport) ([]byte, error) {
	loc := locationOrLocal(data.Location)
	m := g.newDocument("Stock actual", orientation.Vertical)

	m.AddRows(headerRow("STOCK ACTUAL", data.GeneratedAt.In(loc)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filterRow(fmt.Sprintf("Productos registrados: %d", len(data.Products))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"Código", 1, align.Right},
		{"Descripción", 5, align.Left},
		{"Cantidad", 2, align.Right},
		{"Unidad", 1, align.Center},
		{"Proveedor", 3, align.Left},
	}))
	if len(data.Products) == 0 {
		m.AddRows(emptyRow("Sin productos registrados."))
	}
	for _, p := range data.Products {
		m.AddRows(productRow(p))
	}

	return generate(m)
}

func (g *MarotoReportGenerator) newDocument(title string, o orientation.Type) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(o).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(g.title, "almoxarifado-api"), true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func filterRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func summaryRow(data report.MovementReport) core.Row {
	s := data.Summary
	cell := func(label string, value int64, c *props.Color) core.Col {
		return col.New(4).Add(text.New(
			fmt.Sprintf("%s: %s", label, formatQuantity(value)),
			props.Text{Style: fontstyle.Bold, Size: 10, Color: c, Top: 1},
		))
	}
	return row.New(8).Add(
		cell("Entradas", s.TotalEntries, colorEntry),
		cell("Salidas", s.TotalExits, colorExit),
		cell("Saldo", s.Balance, colorPrimary),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func movementRow(mv *entity.MovementWithProduct, loc *time.Location) core.Row {
	typeLabel, typeColor := "Entrada", colorEntry
	if mv.Type == entity.MovementTypeExit {
		typeLabel, typeColor = "Salida", colorExit
	}
	product := inventory.ProductLabel(mv)
	if mv.Product != nil {
		product = fmt.Sprintf("%d - %s", mv.Product.Code, mv.Product.Description)
	}
	destination := strings.Trim(strings.Join([]string{mv.ResponsibleSector, mv.Recipient}, " / "), " /")

	return row.New(6).Add(
		col.New(2).Add(text.New(mv.OccurredAt.In(loc).Format("02/01/2006 15:04"), cellText(align.Left))),
		col.New(1).Add(text.New(typeLabel, props.Text{Size: 8, Align: align.Center, Top: 1, Color: typeColor, Style: fontstyle.Bold})),
		col.New(3).Add(text.New(product, cellText(align.Left))),
		col.New(1).Add(text.New(formatQuantity(mv.Quantity), cellText(align.Right))),
		col.New(2).Add(text.New(mv.WarehouseKeeper, cellText(align.Left))),
		col.New(3).Add(text.New(nonEmpty(destination, "-"), cellText(align.Left))),
	)
}

func productRow(p *entity.Product) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.FormatInt(p.Code, 10), cellText(align.Right))),
		col.New(5).Add(text.New(p.Description, cellText(align.Left))),
		col.New(2).Add(text.New(formatQuantity(p.Quantity), cellText(align.Right))),
		col.New(1).Add(text.New(nonEmpty(p.Unit, "-"), cellText(align.Center))),
		col.New(3).Add(text.New(nonEmpty(p.Supplier, "-"), cellText(align.Left))),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
	))
}

func cellText(a align.Type) props.Text {
	return props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func describeFilter(data report.MovementReport) string {
	f := data.Filter
	parts := make([]string, 0, 3)
	if f.Product != "" {
		parts = append(parts, "Producto: "+f.Product)
	}
	switch f.Type {
	case entity.MovementTypeEntry:
		parts = append(parts, "Tipo: entradas")
	case entity.MovementTypeExit:
		parts = append(parts, "Tipo: salidas")
	}
	switch {
	case f.From != "" && f.To != "":
		parts = append(parts, fmt.Sprintf("Período: %s a %s", f.From, f.To))
	case f.From != "":
		parts = append(parts, "Día: "+f.From)
	case f.To != "":
		parts = append(parts, "Hasta: "+f.To)
	}
	if len(parts) == 0 {
		return "Filtros: ninguno"
	}
	return "Filtros: " + strings.Join(parts, "   |   ")
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuantity inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatQuantity(v int64) string {
	s := strconv.FormatInt(v, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
