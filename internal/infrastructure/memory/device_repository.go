package memory

import (
	"strings"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación en memoria de DeviceRepository.
type DeviceRepo struct {
	t *table[entity.Device]
}

// NewDeviceRepository construye el repositorio vacío.
func NewDeviceRepository() *DeviceRepo {
	return &DeviceRepo{
		t: newTable(accessor[entity.Device]{
			id:          func(d entity.Device) int64 { return d.ID },
			setID:       func(d *entity.Device, id int64) { d.ID = id },
			deleted:     func(d entity.Device) bool { return d.Del != 0 },
			markDeleted: func(d *entity.Device) { d.Del = 1 },
		}),
	}
}

// Create persiste un dispositivo.
func (r *DeviceRepo) Create(d *entity.Device) error {
	d.Del = 0
	r.t.insert(d)
	return nil
}

// GetByID obtiene un dispositivo; nil si no existe.
func (r *DeviceRepo) GetByID(id int64) (*entity.Device, error) {
	d, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// Update reemplaza el dispositivo.
func (r *DeviceRepo) Update(d *entity.Device) error {
	d.Del = 0
	if !r.t.put(*d) {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el dispositivo como borrado.
func (r *DeviceRepo) SoftDelete(id int64) error {
	if !r.t.softDelete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los dispositivos vivos.
func (r *DeviceRepo) List() ([]entity.Device, error) {
	return r.t.filter(nil), nil
}

// Page aplica los criterios presentes y recorta.
func (r *DeviceRepo) Page(c repository.DeviceCriteria, limit, offset int) ([]entity.Device, int64, error) {
	rows := r.t.filter(func(d entity.Device) bool {
		if !contains(d.Name, c.Name) {
			return false
		}
		if c.DepartmentID > 0 && d.DepartmentID != c.DepartmentID {
			return false
		}
		if s := strings.TrimSpace(c.Status); s != "" && d.Status != s {
			return false
		}
		return true
	})
	return window(rows, limit, offset), int64(len(rows)), nil
}

// SearchByName coincidencia parcial por nombre.
func (r *DeviceRepo) SearchByName(name string) ([]entity.Device, error) {
	return r.t.filter(func(d entity.Device) bool { return contains(d.Name, name) }), nil
}

// SearchByType coincidencia exacta por tipo.
func (r *DeviceRepo) SearchByType(deviceType string) ([]entity.Device, error) {
	deviceType = strings.TrimSpace(deviceType)
	return r.t.filter(func(d entity.Device) bool { return d.Type == deviceType }), nil
}

// Count dispositivos vivos.
func (r *DeviceRepo) Count() (int64, error) {
	return r.t.count(nil), nil
}

// CountByDepartment dispositivos vivos del departamento.
func (r *DeviceRepo) CountByDepartment(departmentID int64) (int64, error) {
	return r.t.count(func(d entity.Device) bool { return d.DepartmentID == departmentID }), nil
}
