package memory

import (
	"time"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria de EmployeeRepository.
type EmployeeRepo struct {
	t   *table[entity.Employee]
	now func() time.Time
}

// NewEmployeeRepository construye el repositorio vacío.
func NewEmployeeRepository(now func() time.Time) *EmployeeRepo {
	if now == nil {
		now = time.Now
	}
	return &EmployeeRepo{
		t: newTable(accessor[entity.Employee]{
			id:          func(e entity.Employee) int64 { return e.ID },
			setID:       func(e *entity.Employee, id int64) { e.ID = id },
			deleted:     func(e entity.Employee) bool { return e.Del != 0 },
			markDeleted: func(e *entity.Employee) { e.Del = 1 },
		}),
		now: now,
	}
}

// Create persiste un nuevo empleado y le asigna id.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	e.Del = 0
	e.CreateTime = stamp(r.now)
	e.UpdateTime = e.CreateTime
	r.t.insert(e)
	return nil
}

// GetByID obtiene un empleado; nil si no existe o está borrado.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Update reemplaza el empleado conservando createTime.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	cur, ok := r.t.get(e.ID)
	if !ok {
		return domain.ErrNotFound
	}
	e.CreateTime = cur.CreateTime
	e.UpdateTime = stamp(r.now)
	e.Del = 0
	r.t.put(*e)
	return nil
}

// SoftDelete marca el empleado como borrado.
func (r *EmployeeRepo) SoftDelete(id int64) error {
	if !r.t.softDelete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los empleados vivos.
func (r *EmployeeRepo) List() ([]entity.Employee, error) {
	return r.t.filter(nil), nil
}

// Page filtra por nombre parcial y recorta.
func (r *EmployeeRepo) Page(name string, limit, offset int) ([]entity.Employee, int64, error) {
	rows := r.t.filter(func(e entity.Employee) bool { return contains(e.Name, name) })
	return window(rows, limit, offset), int64(len(rows)), nil
}

// SearchByName coincidencia parcial por nombre.
func (r *EmployeeRepo) SearchByName(name string) ([]entity.Employee, error) {
	return r.t.filter(func(e entity.Employee) bool { return contains(e.Name, name) }), nil
}

// SearchByPosition coincidencia parcial por cargo.
func (r *EmployeeRepo) SearchByPosition(position string) ([]entity.Employee, error) {
	return r.t.filter(func(e entity.Employee) bool { return contains(e.Position, position) }), nil
}

// Count empleados vivos.
func (r *EmployeeRepo) Count() (int64, error) {
	return r.t.count(nil), nil
}

// CountByDepartment empleados vivos asignados al departamento.
func (r *EmployeeRepo) CountByDepartment(departmentID int64) (int64, error) {
	return r.t.count(func(e entity.Employee) bool { return e.DepartmentID == departmentID }), nil
}
