// Package pdf genera el listado imprimible de una categoría del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la categoría  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Cantidad                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: artículos / unidades                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Bodega-api/internal/application/warehouse"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ warehouse.ListingGenerator = (*MarotoListingGenerator)(nil)

// MarotoListingGenerator implementa warehouse.ListingGenerator usando Maroto v2.
type MarotoListingGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoListingGenerator construye el generador; los números se formatean con
// separador de miles en español (1.000).
func NewMarotoListingGenerator() *MarotoListingGenerator {
	return &MarotoListingGenerator{
		printer: message.NewPrinter(language.Spanish),
		now:     time.Now,
	}
}

// GenerateListing genera el PDF de una sola categoría y devuelve sus bytes.
func (g *MarotoListingGenerator) GenerateListing(ctx context.Context, title string, rows []warehouse.ListingRow) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoListingGenerator) headerRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
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
		h("ID", 2, align.Center),
		h("Nombre", 7, align.Left),
		h("Cantidad", 3, align.Right),
	)
}

// tableRows: una fila por artículo; una lista vacía deja una fila informativa.
func (g *MarotoListingGenerator) tableRows(rows []warehouse.ListingRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin artículos registrados", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprint(r.ID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(7).Add(text.New(r.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(3).Add(text.New(g.printer.Sprintf("%d", r.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoListingGenerator) totalsRow(rows []warehouse.ListingRow) core.Row {
	units := 0
	for _, r := range rows {
		units += r.Quantity
	}
	return row.New(10).Add(
		col.New(6),
		col.New(6).Add(
			text.New(g.printer.Sprintf("Artículos: %d   |   Unidades: %d", len(rows), units), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}
