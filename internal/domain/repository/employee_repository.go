package repository

import "github.com/jhoicas/consola-admin/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los registros con borrado lógico no aparecen en ninguna consulta.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	Update(e *entity.Employee) error
	SoftDelete(id int64) error
	List() ([]entity.Employee, error)
	Page(name string, limit, offset int) ([]entity.Employee, int64, error)
	SearchByName(name string) ([]entity.Employee, error)
	SearchByPosition(position string) ([]entity.Employee, error)
	Count() (int64, error)
	CountByDepartment(departmentID int64) (int64, error)
}
