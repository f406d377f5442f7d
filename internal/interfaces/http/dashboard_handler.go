package http

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

// growthMonths ventana de la serie de altas (mes en curso incluido).
const growthMonths = 12

// DashboardHandler maneja los agregados de /dashboard; se calculan en cada petición.
type DashboardHandler struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	devices     repository.DeviceRepository
	now         func() time.Time
}

// NewDashboardHandler construye el handler. now nil usa time.Now.
func NewDashboardHandler(employees repository.EmployeeRepository, departments repository.DepartmentRepository, devices repository.DeviceRepository, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{employees: employees, departments: departments, devices: devices, now: now}
}

// EmployeeGrowth GET /dashboard/employeeGrowth
//
// Altas por mes ("2006-01") de los últimos doce meses según createTime.
func (h *DashboardHandler) EmployeeGrowth(c *fiber.Ctx) error {
	rows, err := h.employees.List()
	if err != nil {
		return failDomain(c, "employee", err)
	}
	now := h.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(growthMonths - 1), 0)

	g := entity.EmployeeGrowth{
		Months:   make([]string, growthMonths),
		NewHires: make([]int64, growthMonths),
	}
	index := make(map[string]int, growthMonths)
	for i := 0; i < growthMonths; i++ {
		label := start.AddDate(0, i, 0).Format("2006-01")
		g.Months[i] = label
		index[label] = i
	}
	for _, e := range rows {
		t, err := time.ParseInLocation(entity.TimeLayout, e.CreateTime, now.Location())
		if err != nil {
			continue
		}
		if i, found := index[t.Format("2006-01")]; found {
			g.NewHires[i]++
		}
	}
	return ok(c, g)
}

// DepartmentDistribution GET /dashboard/departmentDistribution
func (h *DashboardHandler) DepartmentDistribution(c *fiber.Ctx) error {
	depts, err := h.departments.List()
	if err != nil {
		return failDomain(c, "department", err)
	}
	out := make(entity.Distribution, 0, len(depts))
	for _, d := range depts {
		n, err := h.employees.CountByDepartment(d.ID)
		if err != nil {
			return failDomain(c, "employee", err)
		}
		out = append(out, entity.DistributionItem{Name: d.Name, Value: n})
	}
	return ok(c, sorted(out))
}

// DeviceTypeDistribution GET /dashboard/deviceTypeDistribution
func (h *DashboardHandler) DeviceTypeDistribution(c *fiber.Ctx) error {
	rows, err := h.devices.List()
	if err != nil {
		return failDomain(c, "device", err)
	}
	keys := make([]string, len(rows))
	for i, d := range rows {
		keys[i] = d.Type
	}
	return ok(c, group(keys))
}

// EmployeePositionDistribution GET /dashboard/employeePositionDistribution
func (h *DashboardHandler) EmployeePositionDistribution(c *fiber.Ctx) error {
	rows, err := h.employees.List()
	if err != nil {
		return failDomain(c, "employee", err)
	}
	keys := make([]string, len(rows))
	for i, e := range rows {
		keys[i] = e.Position
	}
	return ok(c, group(keys))
}

// group cuenta ocurrencias por clave; las vacías se agrupan como "unknown".
func group(keys []string) entity.Distribution {
	counts := map[string]int64{}
	for _, k := range keys {
		if k == "" {
			k = "unknown"
		}
		counts[k]++
	}
	out := make(entity.Distribution, 0, len(counts))
	for k, n := range counts {
		out = append(out, entity.DistributionItem{Name: k, Value: n})
	}
	return sorted(out)
}

// sorted ordena por valor descendente y, a igualdad, por nombre.
func sorted(d entity.Distribution) entity.Distribution {
	sort.Slice(d, func(i, j int) bool {
		if d[i].Value != d[j].Value {
			return d[i].Value > d[j].Value
		}
		return d[i].Name < d[j].Name
	})
	return d
}
