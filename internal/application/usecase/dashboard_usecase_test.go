package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

func TestShares_PorcentajesConDosDecimales(t *testing.T) {
	got := usecase.Shares(entity.Distribution{
		{Name: "laptop", Value: 2},
		{Name: "printer", Value: 1},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "66.67", got[0].Percentage.StringFixed(2))
	assert.Equal(t, "33.33", got[1].Percentage.StringFixed(2))
}

func TestShares_TotalCero(t *testing.T) {
	got := usecase.Shares(entity.Distribution{{Name: "Ventas", Value: 0}})

	require.Len(t, got, 1)
	assert.True(t, got[0].Percentage.IsZero())
}

func TestDashboardOverview_ArmaElResumen(t *testing.T) {
	dash := &fakeDashboard{
		growth:    &entity.EmployeeGrowth{Months: []string{"2026-02", "2026-03"}, NewHires: []int64{1, 3}},
		depts:     entity.Distribution{{Name: "Ingeniería", Value: 3}, {Name: "Ventas", Value: 1}},
		types:     entity.Distribution{{Name: "laptop", Value: 2}},
		positions: entity.Distribution{},
	}
	uc := usecase.NewDashboardUseCase(&fakeEmployees{count: 4}, &fakeDepartments{count: 2}, &fakeDevices{count: 2}, dash)

	out, err := uc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), out.EmployeeCount)
	assert.Equal(t, int64(2), out.DepartmentCount)
	assert.Equal(t, int64(2), out.DeviceCount)
	assert.Equal(t, []int64{1, 3}, out.EmployeeGrowth.NewHires)
	require.Len(t, out.Departments, 2)
	assert.Equal(t, "75", out.Departments[0].Percentage.String())
	assert.Equal(t, "100", out.DeviceTypes[0].Percentage.String())
	assert.Empty(t, out.Positions)
}

func TestDashboardOverview_PropagaErroresSinCambios(t *testing.T) {
	transport := &domain.TransportError{Method: "GET", Path: "/department/count", Err: context.DeadlineExceeded}
	uc := usecase.NewDashboardUseCase(&fakeEmployees{count: 1}, &fakeDepartments{err: transport}, &fakeDevices{}, &fakeDashboard{})

	_, err := uc.Overview(context.Background())

	assert.Same(t, transport, err)
}
