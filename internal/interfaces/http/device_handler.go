package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// DeviceHandler maneja /device.
type DeviceHandler struct {
	devices     repository.DeviceRepository
	departments repository.DepartmentRepository
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(devices repository.DeviceRepository, departments repository.DepartmentRepository) *DeviceHandler {
	return &DeviceHandler{devices: devices, departments: departments}
}

// List GET /device/list
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	rows, err := h.devices.List()
	if err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, rows)
}

// Page GET /device/list/page/condition?pageNum=&pageSize=&name=&departmentId=&status=
func (h *DeviceHandler) Page(c *fiber.Ctx) error {
	num, size := pageParams(c)
	criteria := repository.DeviceCriteria{
		Name:         c.Query("name"),
		DepartmentID: queryID(c, "departmentId"),
		Status:       strings.TrimSpace(c.Query("status")),
	}
	page, err := pageOf(num, size, func(limit, offset int) ([]entity.Device, int64, error) {
		return h.devices.Page(criteria, limit, offset)
	})
	if err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, page)
}

// GetByID GET /device/get/:id
func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	d, err := h.devices.GetByID(id)
	if err != nil {
		return failDomain(c, "device", err)
	}
	if d == nil {
		return fail(c, CodeNotFound, "device not found")
	}
	return ok(c, d)
}

// Create POST /device/create
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in entity.Device
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	if msg := h.validate(&in); msg != "" {
		return fail(c, CodeBadRequest, msg)
	}
	in.ID = 0
	if err := h.devices.Create(&in); err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, true)
}

// Update PUT /device/update
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	var in entity.Device
	if err := c.BodyParser(&in); err != nil {
		return fail(c, CodeBadRequest, "invalid body")
	}
	if in.ID <= 0 {
		return fail(c, CodeBadRequest, "id is required")
	}
	if msg := h.validate(&in); msg != "" {
		return fail(c, CodeBadRequest, msg)
	}
	if err := h.devices.Update(&in); err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, true)
}

// Delete DELETE /device/delete/:id
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, CodeBadRequest, "invalid id")
	}
	if err := h.devices.SoftDelete(id); err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, true)
}

// SearchByName GET /device/list/name?name=
func (h *DeviceHandler) SearchByName(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return fail(c, CodeBadRequest, "name is required")
	}
	rows, err := h.devices.SearchByName(name)
	if err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, rows)
}

// SearchByType GET /device/list/type?type=
func (h *DeviceHandler) SearchByType(c *fiber.Ctx) error {
	deviceType := strings.TrimSpace(c.Query("type"))
	if deviceType == "" {
		return fail(c, CodeBadRequest, "type is required")
	}
	rows, err := h.devices.SearchByType(deviceType)
	if err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, rows)
}

// Count GET /device/count
func (h *DeviceHandler) Count(c *fiber.Ctx) error {
	n, err := h.devices.Count()
	if err != nil {
		return failDomain(c, "device", err)
	}
	return ok(c, n)
}

func (h *DeviceHandler) validate(d *entity.Device) string {
	d.Name = strings.TrimSpace(d.Name)
	d.Type = strings.TrimSpace(d.Type)
	if d.Name == "" || d.Type == "" {
		return "name and type are required"
	}
	if d.Status == "" {
		d.Status = entity.DeviceStatusActive
	}
	if d.DepartmentID > 0 {
		if dep, _ := h.departments.GetByID(d.DepartmentID); dep == nil {
			return "department not found"
		}
	}
	return ""
}
