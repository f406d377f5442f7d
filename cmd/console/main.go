// Command console es la consola administrativa de línea de comandos: consulta y edita
// empleados, departamentos y dispositivos contra el backend y exporta listados en PDF.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/usecase"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/infrastructure/adminapi"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
	infrapdf "github.com/jhoicas/consola-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/consola-admin/pkg/config"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run ejecuta el comando y devuelve el código de salida. Los defers (cierre de sesión,
// señales) corren antes de que main llame a os.Exit.
func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return 1
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("crear cliente HTTP")
		return 1
	}
	api := adminapi.New(client)

	session := usecase.NewSessionUseCase(api.Auth, client, log.Named("session"), nil)
	if cfg.API.Username != "" {
		if _, err := session.Login(ctx, dto.LoginRequest{Username: cfg.API.Username, Password: cfg.API.Password}); err != nil {
			return report(err)
		}
		defer session.Logout()
	} else {
		log.Warn().Msg("API_USERNAME vacío: se continúa sin sesión")
	}

	exporter, err := usecase.NewExportUseCase(
		api.Employees, api.Departments, api.Devices,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		cfg.Export.Locale, log.Named("export"),
	)
	if err != nil {
		log.Error().Err(err).Msg("configurar exportación")
		return 1
	}

	app := &console{
		api:       api,
		session:   session,
		dashboard: usecase.NewDashboardUseCase(api.Employees, api.Departments, api.Devices, api.Dashboard),
		exporter:  exporter,
		out:       os.Stdout,
	}
	if err := app.run(ctx, args); err != nil {
		return report(err)
	}
	return 0
}

// report imprime el error y devuelve su código de salida.
func report(err error) int {
	fmt.Fprintln(os.Stderr, "error:", err)
	code := exitCode(err)
	if code == 2 {
		usage()
	}
	return code
}

// exitCode código de salida según el tipo de error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	case domain.IsBusiness(err):
		return 3
	case domain.IsTransport(err):
		return 4
	default:
		return 1
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `uso: console <recurso> <acción> [flags]

  employees   list | page [-num N -size N -name S] | get ID | count | search (-name S | -position S)
              | create -file F.json | update -file F.json | delete ID
  departments list | page [-num N -size N -name S] | get ID | count | search -name S
              | create -file F.json | update -file F.json | delete ID
  devices     list | page [-num N -size N -name S -department ID -status S] | get ID | count
              | search (-name S | -type S) | create -file F.json | update -file F.json | delete ID
  dashboard
  session
  export      employees | devices  -out archivo.pdf

Configuración por entorno: API_BASE_URL, API_TIMEOUT_MS, API_USERNAME, API_PASSWORD, EXPORT_LOCALE.
`)
}
