package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
)

var _ ports.EmployeeAPI = (*EmployeeAPI)(nil)

const employeePrefix = "/employee"

// EmployeeAPI módulo del recurso /employee.
type EmployeeAPI struct {
	c *httpclient.Client
}

// NewEmployeeAPI construye el módulo sobre el cliente compartido.
func NewEmployeeAPI(c *httpclient.Client) *EmployeeAPI {
	return &EmployeeAPI{c: c}
}

// employeePayload lo que se envía al crear o actualizar: sin departmentName ni auditoría.
// departmentId viaja siempre, igual que en dispositivos: el update reemplaza el registro
// completo y 0 quita la asignación.
type employeePayload struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"departmentId"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

func toEmployeePayload(e entity.Employee, withID bool) employeePayload {
	p := employeePayload{
		Name:         e.Name,
		Gender:       e.Gender,
		Age:          e.Age,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
		Phone:        e.Phone,
		Email:        e.Email,
	}
	if withID {
		p.ID = e.ID
	}
	return p
}

// List todos los empleados sin paginar (exportación, desplegables).
func (a *EmployeeAPI) List(ctx context.Context) ([]entity.Employee, error) {
	return httpclient.Get[[]entity.Employee](ctx, a.c, employeePrefix+"/list", nil)
}

// Page página de empleados con búsqueda parcial opcional por nombre.
func (a *EmployeeAPI) Page(ctx context.Context, q dto.PageQuery, f dto.EmployeeFilter) (*dto.PageResult[entity.Employee], error) {
	q.DefaultPage()
	params := httpclient.NewQuery().
		Int("pageNum", q.PageNum).
		Int("pageSize", q.PageSize).
		String("name", f.Name)
	page, err := httpclient.Get[dto.PageResult[entity.Employee]](ctx, a.c, employeePrefix+"/page", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID obtiene un empleado.
func (a *EmployeeAPI) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	if err := checkID("employee", id); err != nil {
		return nil, err
	}
	e, err := httpclient.Get[entity.Employee](ctx, a.c, fmt.Sprintf("%s/%d", employeePrefix, id), nil)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create da de alta un empleado; el servidor asigna el id.
func (a *EmployeeAPI) Create(ctx context.Context, e entity.Employee) (bool, error) {
	return ack(ctx, a.c, http.MethodPost, employeePrefix+"/add", toEmployeePayload(e, false))
}

// Update reemplaza el empleado completo.
func (a *EmployeeAPI) Update(ctx context.Context, e entity.Employee) (bool, error) {
	if err := checkID("employee", e.ID); err != nil {
		return false, err
	}
	return ack(ctx, a.c, http.MethodPut, employeePrefix+"/update", toEmployeePayload(e, true))
}

// Delete borrado lógico.
func (a *EmployeeAPI) Delete(ctx context.Context, id int64) (bool, error) {
	if err := checkID("employee", id); err != nil {
		return false, err
	}
	return deleteByPath(ctx, a.c, fmt.Sprintf("%s/delete/%d", employeePrefix, id))
}

// SearchByName búsqueda parcial por nombre, sin paginar.
func (a *EmployeeAPI) SearchByName(ctx context.Context, name string) ([]entity.Employee, error) {
	return a.search(ctx, "/search/name", "name", name)
}

// SearchByPosition búsqueda por cargo, sin paginar.
func (a *EmployeeAPI) SearchByPosition(ctx context.Context, position string) ([]entity.Employee, error) {
	return a.search(ctx, "/search/position", "position", position)
}

func (a *EmployeeAPI) search(ctx context.Context, path, key, value string) ([]entity.Employee, error) {
	params := httpclient.NewQuery().String(key, value).Values()
	if len(params) == 0 {
		return nil, fmt.Errorf("employee: %s vacío: %w", key, domain.ErrInvalidInput)
	}
	return httpclient.Get[[]entity.Employee](ctx, a.c, employeePrefix+path, params)
}

// Count total de empleados, sin filtros.
func (a *EmployeeAPI) Count(ctx context.Context) (int64, error) {
	return count(ctx, a.c, employeePrefix+"/count")
}
