package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/application/ports"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
)

var _ ports.DeviceAPI = (*DeviceAPI)(nil)

const devicePrefix = "/device"

// DeviceAPI módulo del recurso /device.
type DeviceAPI struct {
	c *httpclient.Client
}

// NewDeviceAPI construye el módulo sobre el cliente compartido.
func NewDeviceAPI(c *httpclient.Client) *DeviceAPI {
	return &DeviceAPI{c: c}
}

type devicePayload struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DepartmentID int64  `json:"departmentId"`
	Status       string `json:"status"`
	Description  string `json:"description"`
}

func toDevicePayload(d entity.Device, withID bool) devicePayload {
	p := devicePayload{
		Name:         d.Name,
		Type:         d.Type,
		DepartmentID: d.DepartmentID,
		Status:       d.Status,
		Description:  d.Description,
	}
	if withID {
		p.ID = d.ID
	}
	return p
}

// Page página de dispositivos filtrada por nombre, departamento y estado.
func (a *DeviceAPI) Page(ctx context.Context, q dto.PageQuery, f dto.DeviceFilter) (*dto.PageResult[entity.Device], error) {
	q.DefaultPage()
	params := httpclient.NewQuery().
		Int("pageNum", q.PageNum).
		Int("pageSize", q.PageSize).
		String("name", f.Name).
		ID("departmentId", f.DepartmentID).
		String("status", f.Status)
	page, err := httpclient.Get[dto.PageResult[entity.Device]](ctx, a.c, devicePrefix+"/list/page/condition", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Create registra un dispositivo.
func (a *DeviceAPI) Create(ctx context.Context, d entity.Device) (bool, error) {
	return ack(ctx, a.c, http.MethodPost, devicePrefix+"/create", toDevicePayload(d, false))
}

// Update reemplaza el dispositivo completo.
func (a *DeviceAPI) Update(ctx context.Context, d entity.Device) (bool, error) {
	if err := checkID("device", d.ID); err != nil {
		return false, err
	}
	return ack(ctx, a.c, http.MethodPut, devicePrefix+"/update", toDevicePayload(d, true))
}

// Delete borrado lógico.
func (a *DeviceAPI) Delete(ctx context.Context, id int64) (bool, error) {
	if err := checkID("device", id); err != nil {
		return false, err
	}
	return deleteByPath(ctx, a.c, fmt.Sprintf("%s/delete/%d", devicePrefix, id))
}

// GetByID obtiene un dispositivo.
func (a *DeviceAPI) GetByID(ctx context.Context, id int64) (*entity.Device, error) {
	if err := checkID("device", id); err != nil {
		return nil, err
	}
	d, err := httpclient.Get[entity.Device](ctx, a.c, fmt.Sprintf("%s/get/%d", devicePrefix, id), nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List todos los dispositivos.
func (a *DeviceAPI) List(ctx context.Context) ([]entity.Device, error) {
	return httpclient.Get[[]entity.Device](ctx, a.c, devicePrefix+"/list", nil)
}

// SearchByName búsqueda parcial por nombre.
func (a *DeviceAPI) SearchByName(ctx context.Context, name string) ([]entity.Device, error) {
	return a.search(ctx, "/list/name", "name", name)
}

// SearchByType coincidencia exacta por tipo.
func (a *DeviceAPI) SearchByType(ctx context.Context, deviceType string) ([]entity.Device, error) {
	return a.search(ctx, "/list/type", "type", deviceType)
}

func (a *DeviceAPI) search(ctx context.Context, path, key, value string) ([]entity.Device, error) {
	params := httpclient.NewQuery().String(key, value).Values()
	if len(params) == 0 {
		return nil, fmt.Errorf("device: %s vacío: %w", key, domain.ErrInvalidInput)
	}
	return httpclient.Get[[]entity.Device](ctx, a.c, devicePrefix+path, params)
}

// Count total de dispositivos.
func (a *DeviceAPI) Count(ctx context.Context) (int64, error) {
	return count(ctx, a.c, devicePrefix+"/count")
}
