package entity

import "fmt"

// EmployeeGrowth serie temporal de altas: Months[i] y NewHires[i] describen el mismo período.
type EmployeeGrowth struct {
	Months   []string `json:"months"`
	NewHires []int64  `json:"newHires"`
}

// Validate comprueba que ambas series estén alineadas.
func (g EmployeeGrowth) Validate() error {
	if len(g.Months) != len(g.NewHires) {
		return fmt.Errorf("serie desalineada: %d meses y %d valores", len(g.Months), len(g.NewHires))
	}
	for i, n := range g.NewHires {
		if n < 0 {
			return fmt.Errorf("valor negativo en %q: %d", g.Months[i], n)
		}
	}
	return nil
}

// DistributionItem par {name, value} de una distribución por categoría.
type DistributionItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Distribution distribución por categoría (sin orden garantizado).
type Distribution []DistributionItem

// Validate rechaza valores negativos. El nombre es una etiqueta libre y puede venir vacío.
func (d Distribution) Validate() error {
	for _, it := range d {
		if it.Value < 0 {
			return fmt.Errorf("valor negativo en %q: %d", it.Name, it.Value)
		}
	}
	return nil
}

// Total suma los valores de todas las categorías.
func (d Distribution) Total() int64 {
	var t int64
	for _, it := range d {
		t += it.Value
	}
	return t
}
