package dto

// EmployeeFilter filtros opcionales de la página de empleados.
type EmployeeFilter struct {
	Name string // coincidencia parcial
}

// DepartmentFilter filtros opcionales de la página de departamentos.
type DepartmentFilter struct {
	Name string
}

// DeviceFilter filtros opcionales de la página de dispositivos. Cero/vacío = sin filtro.
type DeviceFilter struct {
	Name         string
	DepartmentID int64
	Status       string
}
