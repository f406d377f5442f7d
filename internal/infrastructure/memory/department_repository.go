package memory

import (
	"strings"
	"time"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación en memoria de DepartmentRepository.
type DepartmentRepo struct {
	t   *table[entity.Department]
	now func() time.Time
}

// NewDepartmentRepository construye el repositorio vacío.
func NewDepartmentRepository(now func() time.Time) *DepartmentRepo {
	if now == nil {
		now = time.Now
	}
	return &DepartmentRepo{
		t: newTable(accessor[entity.Department]{
			id:          func(d entity.Department) int64 { return d.ID },
			setID:       func(d *entity.Department, id int64) { d.ID = id },
			deleted:     func(d entity.Department) bool { return d.Del != 0 },
			markDeleted: func(d *entity.Department) { d.Del = 1 },
		}),
		now: now,
	}
}

// Create persiste un departamento. El nombre debe ser único entre los vivos.
func (r *DepartmentRepo) Create(d *entity.Department) error {
	if existing, _ := r.GetByName(d.Name); existing != nil {
		return domain.ErrDuplicate
	}
	d.Del = 0
	d.CreateTime = stamp(r.now)
	d.UpdateTime = d.CreateTime
	r.t.insert(d)
	return nil
}

// GetByID obtiene un departamento; nil si no existe.
func (r *DepartmentRepo) GetByID(id int64) (*entity.Department, error) {
	d, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// GetByName búsqueda exacta (sin distinguir mayúsculas).
func (r *DepartmentRepo) GetByName(name string) (*entity.Department, error) {
	rows := r.t.filter(func(d entity.Department) bool {
		return strings.EqualFold(strings.TrimSpace(d.Name), strings.TrimSpace(name))
	})
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Update reemplaza el departamento.
func (r *DepartmentRepo) Update(d *entity.Department) error {
	cur, ok := r.t.get(d.ID)
	if !ok {
		return domain.ErrNotFound
	}
	if other, _ := r.GetByName(d.Name); other != nil && other.ID != d.ID {
		return domain.ErrDuplicate
	}
	d.CreateTime = cur.CreateTime
	d.UpdateTime = stamp(r.now)
	d.Del = 0
	r.t.put(*d)
	return nil
}

// SoftDelete marca el departamento como borrado.
func (r *DepartmentRepo) SoftDelete(id int64) error {
	if !r.t.softDelete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los departamentos vivos.
func (r *DepartmentRepo) List() ([]entity.Department, error) {
	return r.t.filter(nil), nil
}

// Page filtra por nombre parcial y recorta.
func (r *DepartmentRepo) Page(name string, limit, offset int) ([]entity.Department, int64, error) {
	rows := r.t.filter(func(d entity.Department) bool { return contains(d.Name, name) })
	return window(rows, limit, offset), int64(len(rows)), nil
}

// SearchByName coincidencia parcial por nombre.
func (r *DepartmentRepo) SearchByName(name string) ([]entity.Department, error) {
	return r.t.filter(func(d entity.Department) bool { return contains(d.Name, name) }), nil
}

// Count departamentos vivos.
func (r *DepartmentRepo) Count() (int64, error) {
	return r.t.count(nil), nil
}
