package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// counter lo cumplen los tres módulos de recursos.
type counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardUseCase arma el resumen del tablero a partir de los contadores y agregados.
type DashboardUseCase struct {
	employees   counter
	departments counter
	devices     counter
	dashboard   ports.DashboardAPI
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(employees ports.EmployeeAPI, departments ports.DepartmentAPI, devices ports.DeviceAPI, dashboard ports.DashboardAPI) *DashboardUseCase {
	return &DashboardUseCase{employees: employees, departments: departments, devices: devices, dashboard: dashboard}
}

// Overview consulta los tres totales y los cuatro agregados. Devuelve el primer error tal cual.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	var out dto.DashboardOverviewDTO
	var err error

	if out.EmployeeCount, err = uc.employees.Count(ctx); err != nil {
		return nil, err
	}
	if out.DepartmentCount, err = uc.departments.Count(ctx); err != nil {
		return nil, err
	}
	if out.DeviceCount, err = uc.devices.Count(ctx); err != nil {
		return nil, err
	}

	growth, err := uc.dashboard.EmployeeGrowth(ctx)
	if err != nil {
		return nil, err
	}
	out.EmployeeGrowth = *growth

	depts, err := uc.dashboard.DepartmentDistribution(ctx)
	if err != nil {
		return nil, err
	}
	types, err := uc.dashboard.DeviceTypeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := uc.dashboard.EmployeePositionDistribution(ctx)
	if err != nil {
		return nil, err
	}
	out.Departments = Shares(depts)
	out.DeviceTypes = Shares(types)
	out.Positions = Shares(positions)
	return &out, nil
}

// Shares calcula el porcentaje de cada categoría sobre el total, redondeado a dos
// decimales. Con total cero todas quedan en 0.
func Shares(d entity.Distribution) []dto.ShareDTO {
	out := make([]dto.ShareDTO, 0, len(d))
	total := decimal.NewFromInt(d.Total())
	for _, it := range d {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = decimal.NewFromInt(it.Value).Mul(hundred).Div(total).Round(2)
		}
		out = append(out, dto.ShareDTO{Name: it.Name, Value: it.Value, Percentage: pct})
	}
	return out
}
