package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

var (
	employeeColumns = []dto.RosterColumn{
		{Title: "ID", Span: 1},
		{Title: "Nombre", Span: 3},
		{Title: "Cargo", Span: 2},
		{Title: "Departamento", Span: 3},
		{Title: "Teléfono", Span: 3},
	}
	deviceColumns = []dto.RosterColumn{
		{Title: "ID", Span: 1},
		{Title: "Nombre", Span: 3},
		{Title: "Tipo", Span: 2},
		{Title: "Departamento", Span: 3},
		{Title: "Estado", Span: 3},
	}
)

// ExportUseCase genera listados imprimibles a partir de las operaciones list sin paginar.
type ExportUseCase struct {
	employees   ports.EmployeeAPI
	departments ports.DepartmentAPI
	devices     ports.DeviceAPI
	pdf         ports.RosterPDFGenerator
	tag         language.Tag
	log         *logger.Logger
	now         func() time.Time
}

// NewExportUseCase construye el caso de uso. locale es una etiqueta BCP 47 ("zh", "es")
// que decide el orden alfabético de los nombres.
func NewExportUseCase(
	employees ports.EmployeeAPI,
	departments ports.DepartmentAPI,
	devices ports.DeviceAPI,
	pdf ports.RosterPDFGenerator,
	locale string,
	log *logger.Logger,
) (*ExportUseCase, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("export: locale %q inválido: %w", locale, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ExportUseCase{
		employees:   employees,
		departments: departments,
		devices:     devices,
		pdf:         pdf,
		tag:         tag,
		log:         log,
		now:         time.Now,
	}, nil
}

// EmployeeRoster arma el listado de empleados ordenado por nombre.
func (uc *ExportUseCase) EmployeeRoster(ctx context.Context) (dto.Roster, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return dto.Roster{}, err
	}
	names, err := uc.departmentNames(ctx)
	if err != nil {
		return dto.Roster{}, err
	}
	c := collate.New(uc.tag)
	sort.SliceStable(list, func(i, j int) bool { return c.CompareString(list[i].Name, list[j].Name) < 0 })

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		dept := e.DepartmentName
		if dept == "" {
			dept = names[e.DepartmentID]
		}
		rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name, e.Position, dept, e.Phone})
	}
	return dto.Roster{Title: "Plantilla de empleados", Columns: employeeColumns, Rows: rows, GeneratedAt: uc.now()}, nil
}

// DeviceRoster arma el inventario de dispositivos ordenado por nombre.
func (uc *ExportUseCase) DeviceRoster(ctx context.Context) (dto.Roster, error) {
	list, err := uc.devices.List(ctx)
	if err != nil {
		return dto.Roster{}, err
	}
	names, err := uc.departmentNames(ctx)
	if err != nil {
		return dto.Roster{}, err
	}
	c := collate.New(uc.tag)
	sort.SliceStable(list, func(i, j int) bool { return c.CompareString(list[i].Name, list[j].Name) < 0 })

	rows := make([][]string, 0, len(list))
	for _, d := range list {
		rows = append(rows, []string{strconv.FormatInt(d.ID, 10), d.Name, d.Type, names[d.DepartmentID], d.Status})
	}
	return dto.Roster{Title: "Inventario de dispositivos", Columns: deviceColumns, Rows: rows, GeneratedAt: uc.now()}, nil
}

// EmployeesPDF genera el PDF de la plantilla.
func (uc *ExportUseCase) EmployeesPDF(ctx context.Context) ([]byte, error) {
	roster, err := uc.EmployeeRoster(ctx)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, roster)
}

// DevicesPDF genera el PDF del inventario.
func (uc *ExportUseCase) DevicesPDF(ctx context.Context) ([]byte, error) {
	roster, err := uc.DeviceRoster(ctx)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, roster)
}

func (uc *ExportUseCase) render(ctx context.Context, roster dto.Roster) ([]byte, error) {
	out, err := uc.pdf.GenerateRosterPDF(ctx, roster)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("title", roster.Title).Int("rows", len(roster.Rows)).Int("bytes", len(out)).Msg("listado exportado")
	return out, nil
}

func (uc *ExportUseCase) departmentNames(ctx context.Context) (map[int64]string, error) {
	depts, err := uc.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(depts))
	for _, d := range depts {
		names[d.ID] = d.Name
	}
	return names, nil
}
