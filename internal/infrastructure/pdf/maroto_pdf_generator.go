// Package pdf genera los listados imprimibles de la consola (plantilla de empleados,
// inventario de dispositivos).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por RosterColumn (grilla de 12)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
)

const gridColumns = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.RosterPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.RosterPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRosterPDF(_ context.Context, roster dto.Roster) ([]byte, error) {
	if err := checkLayout(roster); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(roster.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(roster))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(roster.Columns))
	m.AddRows(tableRows(roster)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(roster.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// checkLayout valida que las columnas quepan en la grilla y que cada fila las cubra.
func checkLayout(roster dto.Roster) error {
	if len(roster.Columns) == 0 {
		return fmt.Errorf("pdf: listado sin columnas")
	}
	span := 0
	for _, c := range roster.Columns {
		if c.Span <= 0 {
			return fmt.Errorf("pdf: columna %q con ancho %d", c.Title, c.Span)
		}
		span += c.Span
	}
	if span > gridColumns {
		return fmt.Errorf("pdf: las columnas suman %d, máximo %d", span, gridColumns)
	}
	for i, r := range roster.Rows {
		if len(r) != len(roster.Columns) {
			return fmt.Errorf("pdf: fila %d tiene %d celdas, se esperaban %d", i, len(r), len(roster.Columns))
		}
	}
	return nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(roster dto.Roster) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(roster.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+roster.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(columns []dto.RosterColumn) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.Span).Add(text.New(c.Title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por registro, con franjas alternas.
func tableRows(roster dto.Roster) []core.Row {
	result := make([]core.Row, 0, len(roster.Rows))
	for i, cells := range roster.Rows {
		cols := make([]core.Col, 0, len(cells))
		for j, cell := range cells {
			cols = append(cols, col.New(roster.Columns[j].Span).Add(text.New(
				nonEmpty(cell, "—"),
				props.Text{Size: 8, Top: 1, Left: 1, Right: 1},
			)))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(gridColumns).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
