package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// MsgDepartmentInUse mensaje al intentar borrar un departamento con personal o equipos.
const MsgDepartmentInUse = "department has active employees"

// DepartmentHandler maneja /department.
type DepartmentHandler struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	devices     repository.DeviceRepository
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(departments repository.DepartmentRepository, employees repository.EmployeeRepository, devices repository.DeviceRepository) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, employees: employees, devices: devices}
}

// List GET /department/listDepartments
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	rows, err := h.departments.List()
	if err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, rows)
}

// Page GET /department/listDepartmentsByPage?pageNum=&pageSize=&name=
func (h *DepartmentHandler) Page(c *fiber.Ctx) error {
	num, size := pageParams(c)
	name := c.Query("name")
	page, err := pageOf(num, size, func(limit, offset int) ([]entity.Department, int64, error) {
		return h.departments.Page(name, limit, offset)
	})
	if err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, page)
}

// GetByID GET /department/getDepartmentById?id=
func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	id := queryID(c, "id")
	if id == 0 {
		return fail(c, CodeBadRequest, "invalid id")
	}
	d, err := h.departments.GetByID(id)
	if err != nil {
		return failDomain(c, "department", err)
	}
	if d == nil {
		return fail(c, CodeNotFound, "department not found")
	}
	return ok(c, d)
}

// Create POST /department/create
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in entity.Department
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fail(c, CodeBadRequest, "name is required")
	}
	in.ID = 0
	if err := h.departments.Create(&in); err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, true)
}

// Update PUT /department/updateDepartment
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	var in entity.Department
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.ID <= 0 || in.Name == "" {
		return fail(c, CodeBadRequest, "id and name are required")
	}
	if in.ParentID == in.ID {
		return fail(c, CodeBadRequest, "department cannot be its own parent")
	}
	if err := h.departments.Update(&in); err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, true)
}

// Delete DELETE /department/updateDepartment/:id
// El backend real expone el borrado bajo la ruta de update; se conserva tal cual.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	d, err := h.departments.GetByID(id)
	if err != nil {
		return failDomain(c, "department", err)
	}
	if d == nil {
		return fail(c, CodeNotFound, "department not found")
	}
	staff, err := h.employees.CountByDepartment(id)
	if err != nil {
		return failDomain(c, "department", err)
	}
	equipment, err := h.devices.CountByDepartment(id)
	if err != nil {
		return failDomain(c, "department", err)
	}
	if staff > 0 || equipment > 0 {
		return fail(c, CodeServerError, MsgDepartmentInUse)
	}
	if err := h.departments.SoftDelete(id); err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, true)
}

// SearchByName GET /department/listDepartmentsByName?name=
func (h *DepartmentHandler) SearchByName(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return fail(c, CodeBadRequest, "name is required")
	}
	rows, err := h.departments.SearchByName(name)
	if err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, rows)
}

// Count GET /department/count
func (h *DepartmentHandler) Count(c *fiber.Ctx) error {
	n, err := h.departments.Count()
	if err != nil {
		return failDomain(c, "department", err)
	}
	return ok(c, n)
}
