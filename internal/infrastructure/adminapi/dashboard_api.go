package adminapi

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
)

var _ ports.DashboardAPI = (*DashboardAPI)(nil)

const dashboardPrefix = "/dashboard"

// DashboardAPI consultas agregadas de solo lectura.
type DashboardAPI struct {
	c *httpclient.Client
}

// NewDashboardAPI construye el módulo sobre el cliente compartido.
func NewDashboardAPI(c *httpclient.Client) *DashboardAPI {
	return &DashboardAPI{c: c}
}

// EmployeeGrowth altas por mes del último año. Series desalineadas → DecodeError.
func (a *DashboardAPI) EmployeeGrowth(ctx context.Context) (*entity.EmployeeGrowth, error) {
	g, err := httpclient.Get[entity.EmployeeGrowth](ctx, a.c, dashboardPrefix+"/employeeGrowth", nil)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DepartmentDistribution empleados por departamento.
func (a *DashboardAPI) DepartmentDistribution(ctx context.Context) (entity.Distribution, error) {
	return httpclient.Get[entity.Distribution](ctx, a.c, dashboardPrefix+"/departmentDistribution", nil)
}

// DeviceTypeDistribution dispositivos por tipo.
func (a *DashboardAPI) DeviceTypeDistribution(ctx context.Context) (entity.Distribution, error) {
	return httpclient.Get[entity.Distribution](ctx, a.c, dashboardPrefix+"/deviceTypeDistribution", nil)
}

// EmployeePositionDistribution empleados por cargo.
func (a *DashboardAPI) EmployeePositionDistribution(ctx context.Context) (entity.Distribution, error) {
	return httpclient.Get[entity.Distribution](ctx, a.c, dashboardPrefix+"/employeePositionDistribution", nil)
}
