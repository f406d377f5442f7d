package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/infrastructure/pdf"
)

func sampleRoster() dto.Roster {
	return dto.Roster{
		Title: "Plantilla de empleados",
		Columns: []dto.RosterColumn{
			{Title: "ID", Span: 2},
			{Title: "Nombre", Span: 6},
			{Title: "Cargo", Span: 4},
		},
		Rows: [][]string{
			{"1", "Li Wei", "Backend"},
			{"2", "Wang Fang", ""},
			{"3", "Zhang Wei", "Controller"},
		},
		GeneratedAt: time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestGenerateRosterPDF_DevuelveUnPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("consola-admin")

	out, err := g.GenerateRosterPDF(context.Background(), sampleRoster())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe empezar con la firma PDF")
}

func TestGenerateRosterPDF_ListadoVacio(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("consola-admin")
	roster := sampleRoster()
	roster.Rows = nil

	out, err := g.GenerateRosterPDF(context.Background(), roster)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateRosterPDF_RechazaLayoutsInvalidos(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("consola-admin")

	cases := map[string]func(r *dto.Roster){
		"sin columnas":          func(r *dto.Roster) { r.Columns = nil },
		"ancho cero":            func(r *dto.Roster) { r.Columns[0].Span = 0 },
		"excede la grilla":      func(r *dto.Roster) { r.Columns[1].Span = 9 },
		"fila con menos celdas": func(r *dto.Roster) { r.Rows[1] = []string{"2"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			roster := sampleRoster()
			mutate(&roster)
			_, err := g.GenerateRosterPDF(context.Background(), roster)
			assert.Error(t, err)
		})
	}
}
