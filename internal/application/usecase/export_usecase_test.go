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

func newExport(t *testing.T, locale string, emp *fakeEmployees, dev *fakeDevices, gen *fakePDF) *usecase.ExportUseCase {
	t.Helper()
	depts := &fakeDepartments{list: []entity.Department{{ID: 1, Name: "Ingeniería"}, {ID: 2, Name: "Ventas"}}}
	uc, err := usecase.NewExportUseCase(emp, depts, dev, gen, locale, nil)
	require.NoError(t, err)
	return uc
}

func TestExport_LocaleInvalido(t *testing.T) {
	_, err := usecase.NewExportUseCase(&fakeEmployees{}, &fakeDepartments{}, &fakeDevices{}, &fakePDF{}, "no es un locale!", nil)

	assert.Error(t, err)
}

func TestExport_EmpleadosOrdenadosSegunElIdioma(t *testing.T) {
	emp := &fakeEmployees{list: []entity.Employee{
		{ID: 1, Name: "Zoe", DepartmentID: 2},
		{ID: 2, Name: "Álvaro", DepartmentID: 1, DepartmentName: "Ingeniería"},
		{ID: 3, Name: "beto", DepartmentID: 1},
	}}
	uc := newExport(t, "es", emp, &fakeDevices{}, &fakePDF{})

	roster, err := uc.EmployeeRoster(context.Background())

	require.NoError(t, err)
	require.Len(t, roster.Rows, 3)
	assert.Equal(t, "Álvaro", roster.Rows[0][1])
	assert.Equal(t, "beto", roster.Rows[1][1])
	assert.Equal(t, "Zoe", roster.Rows[2][1])
	assert.Equal(t, "Ingeniería", roster.Rows[1][3], "el departamento se resuelve por id si falta el nombre")
	assert.Equal(t, "Ventas", roster.Rows[2][3])
	for _, r := range roster.Rows {
		assert.Len(t, r, len(roster.Columns))
	}
}

func TestExport_DispositivosAPDF(t *testing.T) {
	dev := &fakeDevices{list: []entity.Device{
		{ID: 2, Name: "ThinkPad X1", Type: "laptop", DepartmentID: 2, Status: entity.DeviceStatusActive},
		{ID: 1, Name: "HP LaserJet", Type: "printer", DepartmentID: 9, Status: entity.DeviceStatusMaintenance},
	}}
	gen := &fakePDF{}
	uc := newExport(t, "zh", &fakeEmployees{}, dev, gen)

	out, err := uc.DevicesPDF(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "Inventario de dispositivos", gen.got.Title)
	require.Len(t, gen.got.Rows, 2)
	assert.Equal(t, "HP LaserJet", gen.got.Rows[0][1])
	assert.Equal(t, "", gen.got.Rows[0][3], "departamento desconocido queda vacío")
	assert.Equal(t, "Ventas", gen.got.Rows[1][3])
}

func TestExport_PropagaElErrorDelListado(t *testing.T) {
	biz := &domain.BusinessError{Code: 500, Message: "boom"}
	uc := newExport(t, "es", &fakeEmployees{err: biz}, &fakeDevices{}, &fakePDF{})

	_, err := uc.EmployeesPDF(context.Background())

	assert.Same(t, biz, err)
}
