package repository

import "github.com/jhoicas/consola-admin/internal/domain/entity"

// DeviceCriteria filtros de la página de dispositivos; cero/vacío = sin filtro.
type DeviceCriteria struct {
	Name         string // coincidencia parcial
	DepartmentID int64
	Status       string // coincidencia exacta
}

// DeviceRepository define el puerto de persistencia para Device (DIP).
type DeviceRepository interface {
	Create(d *entity.Device) error
	GetByID(id int64) (*entity.Device, error)
	Update(d *entity.Device) error
	SoftDelete(id int64) error
	List() ([]entity.Device, error)
	Page(criteria DeviceCriteria, limit, offset int) ([]entity.Device, int64, error)
	SearchByName(name string) ([]entity.Device, error)
	SearchByType(deviceType string) ([]entity.Device, error)
	Count() (int64, error)
	CountByDepartment(departmentID int64) (int64, error)
}
