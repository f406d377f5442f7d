package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// DashboardOverviewDTO agrega los contadores y las distribuciones del tablero.
type DashboardOverviewDTO struct {
	EmployeeCount   int64 `json:"employee_count"`
	DepartmentCount int64 `json:"department_count"`
	DeviceCount     int64 `json:"device_count"`

	EmployeeGrowth entity.EmployeeGrowth `json:"employee_growth"`

	Departments []ShareDTO `json:"departments"`
	DeviceTypes []ShareDTO `json:"device_types"`
	Positions   []ShareDTO `json:"positions"`
}

// ShareDTO una categoría con su peso sobre el total (0–100, dos decimales).
type ShareDTO struct {
	Name       string          `json:"name"`
	Value      int64           `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}
