package repository

import "github.com/jhoicas/consola-admin/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department (DIP).
type DepartmentRepository interface {
	Create(d *entity.Department) error
	GetByID(id int64) (*entity.Department, error)
	GetByName(name string) (*entity.Department, error)
	Update(d *entity.Department) error
	SoftDelete(id int64) error
	List() ([]entity.Department, error)
	Page(name string, limit, offset int) ([]entity.Department, int64, error)
	SearchByName(name string) ([]entity.Department, error)
	Count() (int64, error)
}
