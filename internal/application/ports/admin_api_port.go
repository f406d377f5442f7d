package ports

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// EmployeeAPI puerto de salida hacia el recurso /employee del backend.
// Todas las operaciones devuelven el data ya desempaquetado o un error de
// domain (TransportError, BusinessError, DecodeError).
type EmployeeAPI interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Page(ctx context.Context, q dto.PageQuery, f dto.EmployeeFilter) (*dto.PageResult[entity.Employee], error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Create(ctx context.Context, e entity.Employee) (bool, error)
	Update(ctx context.Context, e entity.Employee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]entity.Employee, error)
	SearchByPosition(ctx context.Context, position string) ([]entity.Employee, error)
	Count(ctx context.Context) (int64, error)
}

// DepartmentAPI puerto de salida hacia el recurso /department.
type DepartmentAPI interface {
	List(ctx context.Context) ([]entity.Department, error)
	Page(ctx context.Context, q dto.PageQuery, f dto.DepartmentFilter) (*dto.PageResult[entity.Department], error)
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	Create(ctx context.Context, d entity.Department) (bool, error)
	Update(ctx context.Context, d entity.Department) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]entity.Department, error)
	Count(ctx context.Context) (int64, error)
}

// DeviceAPI puerto de salida hacia el recurso /device.
type DeviceAPI interface {
	List(ctx context.Context) ([]entity.Device, error)
	Page(ctx context.Context, q dto.PageQuery, f dto.DeviceFilter) (*dto.PageResult[entity.Device], error)
	GetByID(ctx context.Context, id int64) (*entity.Device, error)
	Create(ctx context.Context, d entity.Device) (bool, error)
	Update(ctx context.Context, d entity.Device) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]entity.Device, error)
	SearchByType(ctx context.Context, deviceType string) ([]entity.Device, error)
	Count(ctx context.Context) (int64, error)
}

// DashboardAPI consultas de solo lectura del tablero.
type DashboardAPI interface {
	EmployeeGrowth(ctx context.Context) (*entity.EmployeeGrowth, error)
	DepartmentDistribution(ctx context.Context) (entity.Distribution, error)
	DeviceTypeDistribution(ctx context.Context) (entity.Distribution, error)
	EmployeePositionDistribution(ctx context.Context) (entity.Distribution, error)
}

// AuthAPI login, registro y reseteo de contraseña.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (bool, error)
	ResetPassword(ctx context.Context, userID int64, in dto.ResetPasswordRequest) (bool, error)
}

// SessionHolder recibe el token de sesión para adjuntarlo a las peticiones siguientes.
// Lo implementa el cliente HTTP compartido.
type SessionHolder interface {
	SetBearerToken(token string)
	ClearBearerToken()
}
