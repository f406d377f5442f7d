package dto

import "time"

// RosterColumn columna del listado; Span es el ancho en la grilla de 12 columnas del PDF.
type RosterColumn struct {
	Title string
	Span  int
}

// Roster listado tabular listo para imprimir. Cada fila tiene una celda por columna.
type Roster struct {
	Title       string
	Columns     []RosterColumn
	Rows        [][]string
	GeneratedAt time.Time
}
