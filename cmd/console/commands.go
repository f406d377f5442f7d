package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/adminapi"
)

var errUsage = errors.New("uso incorrecto")

// console despacha los subcomandos. Los resultados van a out como JSON indentado.
type console struct {
	api       *adminapi.API
	session   *usecase.SessionUseCase
	dashboard *usecase.DashboardUseCase
	exporter  *usecase.ExportUseCase
	out       io.Writer
}

func (c *console) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "employees":
		return c.employees(ctx, args[1:])
	case "departments":
		return c.departments(ctx, args[1:])
	case "devices":
		return c.devices(ctx, args[1:])
	case "dashboard":
		overview, err := c.dashboard.Overview(ctx)
		if err != nil {
			return err
		}
		return c.print(overview)
	case "session":
		sess, err := c.session.Current()
		if err != nil {
			return err
		}
		return c.print(sess)
	case "export":
		return c.export(ctx, args[1:])
	default:
		return fmt.Errorf("%w: recurso desconocido %q", errUsage, args[0])
	}
}

// pageFlags flags comunes de las acciones page.
type pageFlags struct {
	num  int
	size int
	name string
}

func (p *pageFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&p.num, "num", dto.DefaultPageNum, "número de página (desde 1)")
	fs.IntVar(&p.size, "size", dto.DefaultPageSize, "registros por página")
	fs.StringVar(&p.name, "name", "", "filtro por nombre")
}

func (p pageFlags) query() dto.PageQuery {
	return dto.PageQuery{PageNum: p.num, PageSize: p.size}
}

func (c *console) employees(ctx context.Context, args []string) error {
	action, rest, err := split(args)
	if err != nil {
		return err
	}
	api := c.api.Employees
	switch action {
	case "list":
		return c.emit(api.List(ctx))
	case "count":
		return c.emit(api.Count(ctx))
	case "get":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.GetByID(ctx, id))
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.Delete(ctx, id))
	case "page":
		var p pageFlags
		fs := newFlagSet("employees page")
		p.register(fs)
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return c.emit(api.Page(ctx, p.query(), dto.EmployeeFilter{Name: p.name}))
	case "search":
		fs := newFlagSet("employees search")
		name := fs.String("name", "", "nombre")
		position := fs.String("position", "", "cargo")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *position != "" {
			return c.emit(api.SearchByPosition(ctx, *position))
		}
		return c.emit(api.SearchByName(ctx, *name))
	case "create", "update":
		var e entity.Employee
		if err := readBody(rest, &e); err != nil {
			return err
		}
		if action == "create" {
			return c.emit(api.Create(ctx, e))
		}
		return c.emit(api.Update(ctx, e))
	}
	return fmt.Errorf("%w: acción desconocida %q", errUsage, action)
}

func (c *console) departments(ctx context.Context, args []string) error {
	action, rest, err := split(args)
	if err != nil {
		return err
	}
	api := c.api.Departments
	switch action {
	case "list":
		return c.emit(api.List(ctx))
	case "count":
		return c.emit(api.Count(ctx))
	case "get":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.GetByID(ctx, id))
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.Delete(ctx, id))
	case "page":
		var p pageFlags
		fs := newFlagSet("departments page")
		p.register(fs)
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return c.emit(api.Page(ctx, p.query(), dto.DepartmentFilter{Name: p.name}))
	case "search":
		fs := newFlagSet("departments search")
		name := fs.String("name", "", "nombre")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return c.emit(api.SearchByName(ctx, *name))
	case "create", "update":
		var d entity.Department
		if err := readBody(rest, &d); err != nil {
			return err
		}
		if action == "create" {
			return c.emit(api.Create(ctx, d))
		}
		return c.emit(api.Update(ctx, d))
	}
	return fmt.Errorf("%w: acción desconocida %q", errUsage, action)
}

func (c *console) devices(ctx context.Context, args []string) error {
	action, rest, err := split(args)
	if err != nil {
		return err
	}
	api := c.api.Devices
	switch action {
	case "list":
		return c.emit(api.List(ctx))
	case "count":
		return c.emit(api.Count(ctx))
	case "get":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.GetByID(ctx, id))
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return c.emit(api.Delete(ctx, id))
	case "page":
		var p pageFlags
		fs := newFlagSet("devices page")
		p.register(fs)
		department := fs.Int64("department", 0, "id de departamento")
		status := fs.String("status", "", "estado (active, maintenance, retired)")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		filter := dto.DeviceFilter{Name: p.name, DepartmentID: *department, Status: *status}
		return c.emit(api.Page(ctx, p.query(), filter))
	case "search":
		fs := newFlagSet("devices search")
		name := fs.String("name", "", "nombre")
		deviceType := fs.String("type", "", "tipo")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *deviceType != "" {
			return c.emit(api.SearchByType(ctx, *deviceType))
		}
		return c.emit(api.SearchByName(ctx, *name))
	case "create", "update":
		var d entity.Device
		if err := readBody(rest, &d); err != nil {
			return err
		}
		if action == "create" {
			return c.emit(api.Create(ctx, d))
		}
		return c.emit(api.Update(ctx, d))
	}
	return fmt.Errorf("%w: acción desconocida %q", errUsage, action)
}

func (c *console) export(ctx context.Context, args []string) error {
	what, rest, err := split(args)
	if err != nil {
		return err
	}
	fs := newFlagSet("export " + what)
	out := fs.String("out", what+".pdf", "archivo de salida")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var doc []byte
	switch what {
	case "employees":
		doc, err = c.exporter.EmployeesPDF(ctx)
	case "devices":
		doc, err = c.exporter.DevicesPDF(ctx)
	default:
		return fmt.Errorf("%w: no se puede exportar %q", errUsage, what)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", *out, err)
	}
	return c.print(map[string]any{"file": *out, "bytes": len(doc)})
}

func (c *console) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emit imprime el resultado de una operación o devuelve su error sin tocarlo.
func (c *console) emit(v any, err error) error {
	if err != nil {
		return err
	}
	return c.print(v)
}

func split(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: falta la acción", errUsage)
	}
	return args[0], args[1:], nil
}

func idArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: se espera un id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q no es un entero", errUsage, args[0])
	}
	return id, nil
}

// readBody lee -file con el JSON de la entidad ("-" lee stdin).
func readBody(args []string, v any) error {
	fs := newFlagSet("body")
	file := fs.String("file", "-", "archivo JSON con la entidad")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	var r io.Reader = os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("leer entidad: %w", err)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
