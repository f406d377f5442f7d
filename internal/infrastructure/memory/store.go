package memory

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// Store agrupa los repositorios del backend mock.
type Store struct {
	Employees   *EmployeeRepo
	Departments *DepartmentRepo
	Devices     *DeviceRepo
	Users       *UserRepo
}

// NewStore crea un almacén vacío. now permite fijar el reloj en tests.
func NewStore(now func() time.Time) *Store {
	return &Store{
		Employees:   NewEmployeeRepository(now),
		Departments: NewDepartmentRepository(now),
		Devices:     NewDeviceRepository(),
		Users:       NewUserRepository(now),
	}
}

// HashPassword hashea con bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compara una contraseña en claro con su hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Seed carga datos de demostración y el usuario admin con la contraseña indicada.
func (s *Store) Seed(adminPassword string) error {
	hash, err := HashPassword(adminPassword)
	if err != nil {
		return err
	}
	if err := s.Users.Create(&entity.User{
		Username:     "admin",
		PasswordHash: hash,
		Phone:        "13800001234",
		Email:        "admin@example.com",
		Status:       entity.UserStatusActive,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	depts := []entity.Department{
		{Name: "Ingeniería", Description: "Desarrollo y plataforma"},
		{Name: "Ventas", Description: "Comercial"},
		{Name: "Administración", Description: "Finanzas y personal"},
	}
	for i := range depts {
		if err := s.Departments.Create(&depts[i]); err != nil {
			return fmt.Errorf("seed department %q: %w", depts[i].Name, err)
		}
	}

	employees := []entity.Employee{
		{Name: "Li Wei", Gender: "M", Age: 31, Position: "Backend", DepartmentID: depts[0].ID, Phone: "13900000001", Email: "li.wei@example.com"},
		{Name: "Li Na", Gender: "F", Age: 28, Position: "Frontend", DepartmentID: depts[0].ID, Phone: "13900000002", Email: "li.na@example.com"},
		{Name: "Wang Fang", Gender: "F", Age: 35, Position: "Account Manager", DepartmentID: depts[1].ID, Phone: "13900000003", Email: "wang.fang@example.com"},
		{Name: "Zhang Wei", Gender: "M", Age: 42, Position: "Controller", DepartmentID: depts[2].ID, Phone: "13900000004", Email: "zhang.wei@example.com"},
	}
	for i := range employees {
		if err := s.Employees.Create(&employees[i]); err != nil {
			return fmt.Errorf("seed employee %q: %w", employees[i].Name, err)
		}
	}

	devices := []entity.Device{
		{Name: "MacBook Pro 14", Type: "laptop", DepartmentID: depts[0].ID, Status: entity.DeviceStatusActive, Description: "Equipo de desarrollo"},
		{Name: "ThinkPad X1", Type: "laptop", DepartmentID: depts[1].ID, Status: entity.DeviceStatusActive, Description: "Equipo comercial"},
		{Name: "HP LaserJet", Type: "printer", DepartmentID: depts[2].ID, Status: entity.DeviceStatusMaintenance, Description: "Impresora de planta"},
	}
	for i := range devices {
		if err := s.Devices.Create(&devices[i]); err != nil {
			return fmt.Errorf("seed device %q: %w", devices[i].Name, err)
		}
	}
	return nil
}
