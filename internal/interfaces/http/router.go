package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/auth"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// JWTConfig configuración de emisión y validación de tokens.
type JWTConfig = auth.JWTConfig

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Employees   repository.EmployeeRepository
	Departments repository.DepartmentRepository
	Devices     repository.DeviceRepository
	Users       repository.UserRepository
	JWT         JWTConfig
	Log         *logger.Logger
	Now         func() time.Time
}

// Router registra las rutas del backend. /user es público; el resto exige Bearer Token
// cuando hay secreto configurado.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	var protect []fiber.Handler
	if deps.JWT.Secret != "" {
		protect = append(protect, AuthMiddleware(deps.JWT.Secret))
	}
	protect = append(protect, AuditMiddleware(log.Named("audit")))

	// Auth (público)
	users := app.Group("/user")
	authHandler := NewAuthHandler(auth.NewAuthUseCase(deps.Users, deps.JWT), log.Named("auth"))
	users.Post("/login", authHandler.Login)
	users.Post("/register", authHandler.Register)
	users.Put("/resetPassword/:id", authHandler.ResetPassword)

	// Employees. Las rutas fijas van antes que /:id.
	employees := app.Group("/employee", protect...)
	employeeHandler := NewEmployeeHandler(deps.Employees, deps.Departments)
	employees.Get("/list", employeeHandler.List)
	employees.Get("/page", employeeHandler.Page)
	employees.Get("/count", employeeHandler.Count)
	employees.Get("/search/name", employeeHandler.SearchByName)
	employees.Get("/search/position", employeeHandler.SearchByPosition)
	employees.Post("/add", employeeHandler.Create)
	employees.Put("/update", employeeHandler.Update)
	employees.Delete("/delete/:id", employeeHandler.Delete)
	employees.Get("/:id", employeeHandler.GetByID)

	// Departments
	departments := app.Group("/department", protect...)
	departmentHandler := NewDepartmentHandler(deps.Departments, deps.Employees, deps.Devices)
	departments.Get("/listDepartments", departmentHandler.List)
	departments.Get("/listDepartmentsByPage", departmentHandler.Page)
	departments.Get("/getDepartmentById", departmentHandler.GetByID)
	departments.Get("/listDepartmentsByName", departmentHandler.SearchByName)
	departments.Get("/count", departmentHandler.Count)
	departments.Post("/create", departmentHandler.Create)
	departments.Put("/updateDepartment", departmentHandler.Update)
	departments.Delete("/updateDepartment/:id", departmentHandler.Delete)

	// Devices
	devices := app.Group("/device", protect...)
	deviceHandler := NewDeviceHandler(deps.Devices, deps.Departments)
	devices.Get("/list", deviceHandler.List)
	devices.Get("/list/page/condition", deviceHandler.Page)
	devices.Get("/list/name", deviceHandler.SearchByName)
	devices.Get("/list/type", deviceHandler.SearchByType)
	devices.Get("/get/:id", deviceHandler.GetByID)
	devices.Get("/count", deviceHandler.Count)
	devices.Post("/create", deviceHandler.Create)
	devices.Put("/update", deviceHandler.Update)
	devices.Delete("/delete/:id", deviceHandler.Delete)

	// Dashboard
	dashboard := app.Group("/dashboard", protect...)
	dashboardHandler := NewDashboardHandler(deps.Employees, deps.Departments, deps.Devices, deps.Now)
	dashboard.Get("/employeeGrowth", dashboardHandler.EmployeeGrowth)
	dashboard.Get("/departmentDistribution", dashboardHandler.DepartmentDistribution)
	dashboard.Get("/deviceTypeDistribution", dashboardHandler.DeviceTypeDistribution)
	dashboard.Get("/employeePositionDistribution", dashboardHandler.EmployeePositionDistribution)
}
