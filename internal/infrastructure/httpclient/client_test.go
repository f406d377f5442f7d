package httpclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/infrastructure/httpclient"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// recorder guarda la última petición recibida por el servidor de prueba.
type recorder struct {
	mu     sync.Mutex
	req    *http.Request
	body   []byte
	status int
	reply  string
}

func (rc *recorder) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rc.mu.Lock()
	rc.req = r
	rc.body = body
	status, reply := rc.status, rc.reply
	rc.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (rc *recorder) last() (*http.Request, []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.req, rc.body
}

func newServer(t *testing.T, reply string) (*httptest.Server, *recorder) {
	t.Helper()
	rc := &recorder{reply: reply}
	srv := httptest.NewServer(http.HandlerFunc(rc.handler))
	t.Cleanup(srv.Close)
	return srv, rc
}

func newClient(t *testing.T, baseURL string, logs io.Writer, opts ...httpclient.Option) *httpclient.Client {
	t.Helper()
	log := logger.Nop()
	if logs != nil {
		log = logger.NewWithWriter(logs, "debug")
	}
	c, err := httpclient.New(httpclient.Config{BaseURL: baseURL, Timeout: time.Second}, log, opts...)
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_ValidaLaBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "localhost:8081", "/solo/ruta"} {
		_, err := httpclient.New(httpclient.Config{BaseURL: raw}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}

func TestNew_TimeoutPorDefecto(t *testing.T) {
	c, err := httpclient.New(httpclient.Config{BaseURL: "http://localhost:8081/"}, nil)

	require.NoError(t, err)
	assert.Equal(t, httpclient.DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://localhost:8081", c.BaseURL())
}

func TestWithHTTPClient_NoModificaElClienteRecibido(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":7}`)
	propio := &http.Client{}

	c := newClient(t, srv.URL, nil, httpclient.WithHTTPClient(propio))

	assert.Zero(t, propio.Timeout)
	assert.Equal(t, time.Second, c.Timeout())
	n, err := httpclient.Get[int](context.Background(), c, "/n", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Interceptor del envelope
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_DesempaquetaData(t *testing.T) {
	srv, rc := newServer(t, `{"code":200,"message":"success","data":42}`)
	c := newClient(t, srv.URL, nil)

	n, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	req, _ := rc.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/employee/count", req.URL.Path)
}

func TestGet_PaginaCompleta(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"message":"success","data":{
		"records":[{"id":6,"name":"Li A"},{"id":7,"name":"Li B"},{"id":8,"name":"Li C"}],
		"total":13,"size":5,"current":2,"pages":3}}`)
	c := newClient(t, srv.URL, nil)

	page, err := httpclient.Get[dto.PageResult[entity.Employee]](context.Background(), c, "/employee/page", nil)

	require.NoError(t, err)
	assert.Len(t, page.Records, 3)
	assert.Equal(t, int64(13), page.Total)
	assert.Equal(t, 5, page.Size)
	assert.Equal(t, 2, page.Current)
	assert.Equal(t, 3, page.Pages)
}

func TestSend_CodigoDeNegocioDevuelveElMensajeDelServidor(t *testing.T) {
	srv, _ := newServer(t, `{"code":500,"message":"department has active employees","data":null}`)
	var logs bytes.Buffer
	c := newClient(t, srv.URL, &logs)

	_, err := httpclient.Ack(context.Background(), c, httpclient.Request{Method: http.MethodDelete, Path: "/department/updateDepartment/7"})

	require.Error(t, err)
	assert.Equal(t, "department has active employees", err.Error())
	code, ok := domain.BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, 500, code)
	assert.Contains(t, logs.String(), `"code":500`)
	assert.Contains(t, logs.String(), "petición rechazada")
}

func TestSend_AceptaMsgComoMensaje(t *testing.T) {
	srv, _ := newServer(t, `{"code":401,"msg":"invalid credentials","data":null}`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Post[entity.User](context.Background(), c, "/user/login", nil, nil)

	require.Error(t, err)
	assert.True(t, domain.IsBusiness(err))
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestSend_DataAusenteEsErrorDeContrato(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"message":"success"}`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[[]entity.Employee](context.Background(), c, "/employee/list", nil)

	assert.True(t, domain.IsDecode(err))
}

func TestSend_PayloadQueNoValidaEsErrorDeContrato(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":{"months":["2026-01","2026-02"],"newHires":[1]}}`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[entity.EmployeeGrowth](context.Background(), c, "/dashboard/employeeGrowth", nil)

	require.Error(t, err)
	var de *domain.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "/dashboard/employeeGrowth", de.Path)
}

func TestSend_JSONInvalido(t *testing.T) {
	srv, _ := newServer(t, `<html>ok</html>`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	assert.True(t, domain.IsDecode(err))
}

func TestSend_StatusDeErrorSinEnvelopeEsTransporte(t *testing.T) {
	srv, rc := newServer(t, `bad gateway`)
	rc.status = http.StatusBadGateway
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	assert.True(t, domain.IsTransport(err))
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestSend_StatusDeErrorConEnvelopeEsNegocio(t *testing.T) {
	srv, rc := newServer(t, `{"code":401,"message":"missing token"}`)
	rc.status = http.StatusUnauthorized
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	code, ok := domain.BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, 401, code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ack
// ──────────────────────────────────────────────────────────────────────────────

func TestAck(t *testing.T) {
	cases := map[string]struct {
		reply string
		want  bool
	}{
		"data true":    {`{"code":200,"data":true}`, true},
		"data false":   {`{"code":200,"data":false}`, false},
		"data null":    {`{"code":200,"data":null}`, true},
		"data ausente": {`{"code":200,"message":"success"}`, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newServer(t, tc.reply)
			c := newClient(t, srv.URL, nil)

			got, err := httpclient.Ack(context.Background(), c, httpclient.Request{Method: http.MethodPost, Path: "/department/create"})

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAck_DataNoBooleano(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":{"id":1}}`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Ack(context.Background(), c, httpclient.Request{Method: http.MethodPost, Path: "/device/create"})

	assert.True(t, domain.IsDecode(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transporte
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	var logs bytes.Buffer
	c := newClient(t, base, &logs)

	_, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	require.Error(t, err)
	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.MethodGet, te.Method)
	assert.Equal(t, "/employee/count", te.Path)
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestSend_TimeoutEsTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	c, err := httpclient.New(httpclient.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = httpclient.Get[int64](context.Background(), c, "/employee/count", nil)

	assert.True(t, domain.IsTransport(err))
}

func TestSend_ContextoCancelado(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":1}`)
	c := newClient(t, srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := httpclient.Get[int64](ctx, c, "/employee/count", nil)

	assert.True(t, domain.IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSend_NoFiltraCredencialesEnErroresNiLogs(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	var logs bytes.Buffer
	c := newClient(t, base, &logs)
	q := httpclient.NewQuery().Raw("username", "admin").Raw("password", "s3cr3t-pass").Values()

	_, err := httpclient.Post[entity.User](context.Background(), c, "/user/login", q, nil)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cr3t-pass")
	assert.NotContains(t, logs.String(), "s3cr3t-pass")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeceras y cuerpo
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_CabecerasPorDefectoYRequestID(t *testing.T) {
	srv, rc := newServer(t, `{"code":200,"data":true}`)
	c := newClient(t, srv.URL, nil, httpclient.WithHeader("X-Tenant", "demo"))
	c.SetBearerToken("tok-123")

	_, err := httpclient.Ack(context.Background(), c, httpclient.Request{
		Method: http.MethodPut,
		Path:   "/employee/update",
		Body:   map[string]any{"id": 1, "name": "Li Wei"},
		Header: http.Header{"X-Extra": []string{"1"}},
	})
	require.NoError(t, err)

	req, body := rc.last()
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
	assert.Equal(t, "demo", req.Header.Get("X-Tenant"))
	assert.Equal(t, "1", req.Header.Get("X-Extra"))
	assert.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "application/json"))
	assert.Len(t, req.Header.Get(httpclient.HeaderRequestID), 36)
	assert.JSONEq(t, `{"id":1,"name":"Li Wei"}`, string(body))

	c.ClearBearerToken()
	_, err = httpclient.Ack(context.Background(), c, httpclient.Request{Method: http.MethodGet, Path: "/x"})
	require.NoError(t, err)
	req, _ = rc.last()
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, c.Header("Authorization"))
}

func TestSend_RequestIDDistintoPorPeticion(t *testing.T) {
	srv, rc := newServer(t, `{"code":200,"data":1}`)
	c := newClient(t, srv.URL, nil)

	_, err := httpclient.Get[int64](context.Background(), c, "/a", nil)
	require.NoError(t, err)
	first, _ := rc.last()
	firstID := first.Header.Get(httpclient.HeaderRequestID)

	_, err = httpclient.Get[int64](context.Background(), c, "/a", nil)
	require.NoError(t, err)
	second, _ := rc.last()

	assert.NotEqual(t, firstID, second.Header.Get(httpclient.HeaderRequestID))
}

func TestSend_LogDeExitoEnDebug(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":1}`)
	var logs bytes.Buffer
	c := newClient(t, srv.URL, &logs)

	_, err := httpclient.Get[int64](context.Background(), c, "/employee/count", nil)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "/employee/count", entry["path"])
	assert.Equal(t, "httpclient", entry["component"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestClient_CabecerasConcurrentes(t *testing.T) {
	srv, _ := newServer(t, `{"code":200,"data":1}`)
	c := newClient(t, srv.URL, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SetBearerToken("t")
			c.ClearBearerToken()
		}()
		go func() {
			defer wg.Done()
			_, _ = httpclient.Get[int64](context.Background(), c, "/employee/count", nil)
		}()
	}
	wg.Wait()
}
