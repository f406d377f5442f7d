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

var _ ports.DepartmentAPI = (*DepartmentAPI)(nil)

const (
	departmentPrefix = "/department"

	// DepartmentDeletePath el backend expone el borrado bajo la ruta de actualización
	// (DELETE /department/updateDepartment/{id}). Se mantiene tal cual mientras el
	// servidor no publique otra.
	DepartmentDeletePath = departmentPrefix + "/updateDepartment/%d"
)

// DepartmentAPI módulo del recurso /department.
type DepartmentAPI struct {
	c *httpclient.Client
}

// NewDepartmentAPI construye el módulo sobre el cliente compartido.
func NewDepartmentAPI(c *httpclient.Client) *DepartmentAPI {
	return &DepartmentAPI{c: c}
}

// departmentPayload sin del, createTime ni updateTime: los gestiona el servidor.
type departmentPayload struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	ParentID    int64  `json:"parentId,omitempty"`
	Description string `json:"description,omitempty"`
}

func toDepartmentPayload(d entity.Department, withID bool) departmentPayload {
	p := departmentPayload{
		Name:        d.Name,
		ParentID:    d.ParentID,
		Description: d.Description,
	}
	if withID {
		p.ID = d.ID
	}
	return p
}

// List todos los departamentos (desplegables, árbol).
func (a *DepartmentAPI) List(ctx context.Context) ([]entity.Department, error) {
	return httpclient.Get[[]entity.Department](ctx, a.c, departmentPrefix+"/listDepartments", nil)
}

// Page página de departamentos con filtro opcional por nombre.
func (a *DepartmentAPI) Page(ctx context.Context, q dto.PageQuery, f dto.DepartmentFilter) (*dto.PageResult[entity.Department], error) {
	q.DefaultPage()
	params := httpclient.NewQuery().
		Int("pageNum", q.PageNum).
		Int("pageSize", q.PageSize).
		String("name", f.Name)
	page, err := httpclient.Get[dto.PageResult[entity.Department]](ctx, a.c, departmentPrefix+"/listDepartmentsByPage", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID obtiene un departamento (id como parámetro de consulta).
func (a *DepartmentAPI) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	if err := checkID("department", id); err != nil {
		return nil, err
	}
	params := httpclient.NewQuery().ID("id", id).Values()
	d, err := httpclient.Get[entity.Department](ctx, a.c, departmentPrefix+"/getDepartmentById", params)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create crea un departamento.
func (a *DepartmentAPI) Create(ctx context.Context, d entity.Department) (bool, error) {
	return ack(ctx, a.c, http.MethodPost, departmentPrefix+"/create", toDepartmentPayload(d, false))
}

// Update reemplaza el departamento completo.
func (a *DepartmentAPI) Update(ctx context.Context, d entity.Department) (bool, error) {
	if err := checkID("department", d.ID); err != nil {
		return false, err
	}
	return ack(ctx, a.c, http.MethodPut, departmentPrefix+"/updateDepartment", toDepartmentPayload(d, true))
}

// Delete borrado lógico.
func (a *DepartmentAPI) Delete(ctx context.Context, id int64) (bool, error) {
	if err := checkID("department", id); err != nil {
		return false, err
	}
	return deleteByPath(ctx, a.c, fmt.Sprintf(DepartmentDeletePath, id))
}

// SearchByName búsqueda parcial por nombre, sin paginar.
func (a *DepartmentAPI) SearchByName(ctx context.Context, name string) ([]entity.Department, error) {
	params := httpclient.NewQuery().String("name", name).Values()
	if len(params) == 0 {
		return nil, fmt.Errorf("department: name vacío: %w", domain.ErrInvalidInput)
	}
	return httpclient.Get[[]entity.Department](ctx, a.c, departmentPrefix+"/listDepartmentsByName", params)
}

// Count total de departamentos.
func (a *DepartmentAPI) Count(ctx context.Context) (int64, error) {
	return count(ctx, a.c, departmentPrefix+"/count")
}
