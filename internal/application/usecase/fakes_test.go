package usecase_test

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de salida
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuth struct {
	resp *dto.LoginResponse
	err  error
	got  dto.LoginRequest
}

func (f *fakeAuth) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	out := *f.resp
	return &out, nil
}

func (f *fakeAuth) Register(context.Context, dto.RegisterRequest) (bool, error) { return true, nil }

func (f *fakeAuth) ResetPassword(context.Context, int64, dto.ResetPasswordRequest) (bool, error) {
	return true, nil
}

type fakeHolder struct {
	token   string
	cleared int
}

func (f *fakeHolder) SetBearerToken(token string) { f.token = token }
func (f *fakeHolder) ClearBearerToken() { f.token = ""; f.cleared++ }

type fakeEmployees struct {
	list  []entity.Employee
	count int64
	err   error
}

func (f *fakeEmployees) List(context.Context) ([]entity.Employee, error) {
	return append([]entity.Employee(nil), f.list...), f.err
}
func (f *fakeEmployees) Page(context.Context, dto.PageQuery, dto.EmployeeFilter) (*dto.PageResult[entity.Employee], error) {
	return nil, nil
}
func (f *fakeEmployees) GetByID(context.Context, int64) (*entity.Employee, error) { return nil, nil }
func (f *fakeEmployees) Create(context.Context, entity.Employee) (bool, error) { return true, nil }
func (f *fakeEmployees) Update(context.Context, entity.Employee) (bool, error) { return true, nil }
func (f *fakeEmployees) Delete(context.Context, int64) (bool, error) { return true, nil }
func (f *fakeEmployees) SearchByName(context.Context, string) ([]entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployees) SearchByPosition(context.Context, string) ([]entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployees) Count(context.Context) (int64, error) { return f.count, f.err }

type fakeDepartments struct {
	list  []entity.Department
	count int64
	err   error
}

func (f *fakeDepartments) List(context.Context) ([]entity.Department, error) { return f.list, f.err }
func (f *fakeDepartments) Page(context.Context, dto.PageQuery, dto.DepartmentFilter) (*dto.PageResult[entity.Department], error) {
	return nil, nil
}
func (f *fakeDepartments) GetByID(context.Context, int64) (*entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartments) Create(context.Context, entity.Department) (bool, error) { return true, nil }
func (f *fakeDepartments) Update(context.Context, entity.Department) (bool, error) { return true, nil }
func (f *fakeDepartments) Delete(context.Context, int64) (bool, error) { return true, nil }
func (f *fakeDepartments) SearchByName(context.Context, string) ([]entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartments) Count(context.Context) (int64, error) { return f.count, f.err }

type fakeDevices struct {
	list  []entity.Device
	count int64
	err   error
}

func (f *fakeDevices) List(context.Context) ([]entity.Device, error) {
	return append([]entity.Device(nil), f.list...), f.err
}
func (f *fakeDevices) Page(context.Context, dto.PageQuery, dto.DeviceFilter) (*dto.PageResult[entity.Device], error) {
	return nil, nil
}
func (f *fakeDevices) GetByID(context.Context, int64) (*entity.Device, error) { return nil, nil }
func (f *fakeDevices) Create(context.Context, entity.Device) (bool, error) { return true, nil }
func (f *fakeDevices) Update(context.Context, entity.Device) (bool, error) { return true, nil }
func (f *fakeDevices) Delete(context.Context, int64) (bool, error) { return true, nil }
func (f *fakeDevices) SearchByName(context.Context, string) ([]entity.Device, error) {
	return nil, nil
}
func (f *fakeDevices) SearchByType(context.Context, string) ([]entity.Device, error) {
	return nil, nil
}
func (f *fakeDevices) Count(context.Context) (int64, error) { return f.count, f.err }

type fakeDashboard struct {
	growth    *entity.EmployeeGrowth
	depts     entity.Distribution
	types     entity.Distribution
	positions entity.Distribution
	err       error
}

func (f *fakeDashboard) EmployeeGrowth(context.Context) (*entity.EmployeeGrowth, error) {
	return f.growth, f.err
}
func (f *fakeDashboard) DepartmentDistribution(context.Context) (entity.Distribution, error) {
	return f.depts, f.err
}
func (f *fakeDashboard) DeviceTypeDistribution(context.Context) (entity.Distribution, error) {
	return f.types, f.err
}
func (f *fakeDashboard) EmployeePositionDistribution(context.Context) (entity.Distribution, error) {
	return f.positions, f.err
}

type fakePDF struct {
	got dto.Roster
	err error
}

func (f *fakePDF) GenerateRosterPDF(_ context.Context, roster dto.Roster) ([]byte, error) {
	f.got = roster
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}
