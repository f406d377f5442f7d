// Package adminapi implementa los módulos de recursos (empleados, departamentos,
// dispositivos, tablero y autenticación) sobre el cliente HTTP compartido.
package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
)

// API agrupa todos los módulos; todos comparten el mismo *httpclient.Client.
type API struct {
	Employees   *EmployeeAPI
	Departments *DepartmentAPI
	Devices     *DeviceAPI
	Dashboard   *DashboardAPI
	Auth        *AuthAPI
}

// New construye todos los módulos sobre el cliente indicado.
func New(c *httpclient.Client) *API {
	return &API{
		Employees:   NewEmployeeAPI(c),
		Departments: NewDepartmentAPI(c),
		Devices:     NewDeviceAPI(c),
		Dashboard:   NewDashboardAPI(c),
		Auth:        NewAuthAPI(c),
	}
}

func checkID(resource string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: id debe ser positivo, recibido %d: %w", resource, id, domain.ErrInvalidInput)
	}
	return nil
}

// count GET path → entero no negativo.
func count(ctx context.Context, c *httpclient.Client, path string) (int64, error) {
	n, err := httpclient.Get[int64](ctx, c, path, nil)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &domain.DecodeError{Path: path, Err: fmt.Errorf("conteo negativo: %d", n)}
	}
	return n, nil
}

func ack(ctx context.Context, c *httpclient.Client, method, path string, body any) (bool, error) {
	return httpclient.Ack(ctx, c, httpclient.Request{Method: method, Path: path, Body: body})
}

func deleteByPath(ctx context.Context, c *httpclient.Client, path string) (bool, error) {
	return ack(ctx, c, http.MethodDelete, path, nil)
}
