// Package pdf genera el reporte de stock de cervezas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de emisión                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Marca | Tipo | Cantidad | Máximo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cervezas registradas / unidades en stock          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/cervejaria-api/internal/application/dto"
	"github.com/jhoicas/cervejaria-api/internal/application/usecase"
)

var _ usecase.StockReportGenerator = (*StockReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 140, Green: 85, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// StockReportGenerator implementa usecase.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	now func() time.Time
}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator {
	return &StockReportGenerator{now: time.Now}
}

// GenerateStockReport genera el PDF y devuelve sus bytes. Una lista vacía produce un reporte sin filas.
func (g *StockReportGenerator) GenerateStockReport(_ context.Context, beers []dto.BeerResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(beers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(beers))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK DE CERVEZAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Nombre", 4, align.Left),
		h("Marca", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Máx.", 1, align.Right),
	)
}

// tableRows una fila por cerveza; la cantidad se resalta cuando el stock está vacío.
func tableRows(beers []dto.BeerResponse) []core.Row {
	rows := make([]core.Row, 0, len(beers))
	for _, b := range beers {
		qtyProps := props.Text{Size: 8, Align: align.Right, Top: 1}
		if b.Quantity == 0 {
			qtyProps.Color = colorAlert
			qtyProps.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.FormatInt(b.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(b.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(b.Brand, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(b.Type, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(b.Quantity), qtyProps)),
			col.New(1).Add(text.New(strconv.Itoa(b.Max), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalsRow(beers []dto.BeerResponse) core.Row {
	units := 0
	for _, b := range beers {
		units += b.Quantity
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cervezas registradas: %d   |   Unidades en stock: %d", len(beers), units),
				props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3}),
		),
	)
}
