package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// EmployeeHandler maneja /employee.
type EmployeeHandler struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(employees repository.EmployeeRepository, departments repository.DepartmentRepository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, departments: departments}
}

// withDepartmentName rellena el campo de presentación departmentName.
func (h *EmployeeHandler) withDepartmentName(rows []entity.Employee) []entity.Employee {
	names := map[int64]string{}
	for i := range rows {
		id := rows[i].DepartmentID
		if id == 0 {
			continue
		}
		name, seen := names[id]
		if !seen {
			if d, _ := h.departments.GetByID(id); d != nil {
				name = d.Name
			}
			names[id] = name
		}
		rows[i].DepartmentName = name
	}
	return rows
}

// List GET /employee/list
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	rows, err := h.employees.List()
	if err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, h.withDepartmentName(rows))
}

// Page GET /employee/page?pageNum=&pageSize=&name=
func (h *EmployeeHandler) Page(c *fiber.Ctx) error {
	num, size := pageParams(c)
	name := c.Query("name")
	page, err := pageOf(num, size, func(limit, offset int) ([]entity.Employee, int64, error) {
		return h.employees.Page(name, limit, offset)
	})
	if err != nil {
		return failDomain(c, "employee", err)
	}
	page.Records = h.withDepartmentName(page.Records)
	return ok(c, page)
}

// GetByID GET /employee/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	e, err := h.employees.GetByID(id)
	if err != nil {
		return failDomain(c, "employee", err)
	}
	if e == nil {
		return fail(c, CodeNotFound, "employee not found")
	}
	return ok(c, h.withDepartmentName([]entity.Employee{*e})[0])
}

// Create POST /employee/add
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in entity.Employee
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	if msg := h.validate(&in); msg != "" {
		return fail(c, CodeBadRequest, msg)
	}
	in.ID = 0
	if err := h.employees.Create(&in); err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, true)
}

// Update PUT /employee/update
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in entity.Employee
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	if in.ID <= 0 {
		return fail(c, CodeBadRequest, "id is required")
	}
	if msg := h.validate(&in); msg != "" {
		return fail(c, CodeBadRequest, msg)
	}
	if err := h.employees.Update(&in); err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, true)
}

// Delete DELETE /employee/delete/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	if err := h.employees.SoftDelete(id); err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, true)
}

// SearchByName GET /employee/search/name?name=
func (h *EmployeeHandler) SearchByName(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return fail(c, CodeBadRequest, "name is required")
	}
	rows, err := h.employees.SearchByName(name)
	if err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, h.withDepartmentName(rows))
}

// SearchByPosition GET /employee/search/position?position=
func (h *EmployeeHandler) SearchByPosition(c *fiber.Ctx) error {
	position := strings.TrimSpace(c.Query("position"))
	if position == "" {
		return fail(c, CodeBadRequest, "position is required")
	}
	rows, err := h.employees.SearchByPosition(position)
	if err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, h.withDepartmentName(rows))
}

// Count GET /employee/count
func (h *EmployeeHandler) Count(c *fiber.Ctx) error {
	n, err := h.employees.Count()
	if err != nil {
		return failDomain(c, "employee", err)
	}
	return ok(c, n)
}

// validate reglas mínimas de alta/edición; devuelve el mensaje para el envelope o "".
func (h *EmployeeHandler) validate(e *entity.Employee) string {
	e.Name = strings.TrimSpace(e.Name)
	e.DepartmentName = ""
	if e.Name == "" {
		return "name is required"
	}
	if e.Age < 0 {
		return "age must not be negative"
	}
	if e.DepartmentID > 0 {
		if d, _ := h.departments.GetByID(e.DepartmentID); d == nil {
			return "department not found"
		}
	}
	return ""
}
