// Package httpclient contiene el único cliente HTTP de la consola y el interceptor que
// desempaqueta el envelope {code, message, data} de todas las respuestas del backend.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/pkg/logger"
)

const (
	// SuccessCode code del envelope que indica éxito.
	SuccessCode = 200

	// DefaultTimeout timeout por petición si la configuración no trae uno.
	DefaultTimeout = 5000 * time.Millisecond

	// HeaderRequestID cabecera de correlación que se envía en cada petición.
	HeaderRequestID = "X-Request-Id"

	contentTypeJSON = "application/json;charset=utf-8"
	maxBodyBytes    = 4 << 20
)

// Config configuración del cliente compartido.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente HTTP compartido por todos los módulos de recursos.
// Es seguro para uso concurrente.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	log        *logger.Logger

	mu      sync.RWMutex
	headers http.Header
}

// Option ajusta el cliente al construirlo.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client subyacente (transportes de prueba, proxies).
// Si hc no trae Timeout se conserva el configurado. Se usa una copia: hc no se modifica.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.httpClient.Timeout
		}
		c.httpClient = &cp
	}
}

// WithHeader agrega una cabecera por defecto.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New construye el cliente. Debe existir una sola instancia por proceso, inyectada en los módulos.
func New(cfg Config, log *logger.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("httpclient: base URL vacía: %w", domain.ErrInvalidInput)
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("httpclient: base URL inválida: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("httpclient: base URL sin esquema o host %q: %w", cfg.BaseURL, domain.ErrInvalidInput)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		base:       base,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("httpclient"),
		headers:    http.Header{},
	}
	c.headers.Set("Content-Type", contentTypeJSON)
	c.headers.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL devuelve el origen configurado.
func (c *Client) BaseURL() string { return c.base.String() }

// Timeout devuelve el timeout por petición.
func (c *Client) Timeout() time.Duration { return c.httpClient.Timeout }

// SetHeader fija una cabecera por defecto para todas las peticiones siguientes.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Set(key, value)
}

// DelHeader elimina una cabecera por defecto.
func (c *Client) DelHeader(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Del(key)
}

// Header devuelve el valor actual de una cabecera por defecto.
func (c *Client) Header(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Get(key)
}

// SetBearerToken adjunta el token de sesión a todas las peticiones siguientes.
func (c *Client) SetBearerToken(token string) {
	c.SetHeader("Authorization", "Bearer "+token)
}

// ClearBearerToken quita el token de sesión.
func (c *Client) ClearBearerToken() {
	c.DelHeader("Authorization")
}

// Request describe una petición contra el backend. Path es relativo a la base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header // cabeceras adicionales solo para esta petición
}

// envelope formato de todas las respuestas. El endpoint de login histórico usa "msg".
type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// roundTrip envía la petición y aplica el interceptor: devuelve el data crudo si code == 200
// o el error tipado correspondiente. Todos los fallos quedan registrados.
func (c *Client) roundTrip(ctx context.Context, r Request) (json.RawMessage, string, error) {
	reqID := uuid.NewString()
	start := time.Now()

	req, err := c.newRequest(ctx, r, reqID)
	if err != nil {
		return nil, reqID, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error incluye la URL completa; el login lleva credenciales en la query.
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = redactQuery(ue.URL)
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		c.log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.Path).
			Str("request_id", reqID).
			Dur("elapsed", time.Since(start)).
			Msg("error de red")
		return nil, reqID, &domain.TransportError{Method: r.Method, Path: r.Path, Err: err}
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Error().Err(err).Str("path", r.Path).Str("request_id", reqID).Msg("error leyendo respuesta")
		return nil, reqID, &domain.TransportError{Method: r.Method, Path: r.Path, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	var env envelope
	if jsonErr := json.Unmarshal(rawBody, &env); jsonErr != nil || env.Code == nil {
		// Sin envelope: un status HTTP de error significa que el backend no llegó a responder
		// (proxy, gateway caído); con 2xx el servidor mandó algo que no cumple el contrato.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			err := fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(rawBody, 200))
			c.log.Error().Err(err).Str("method", r.Method).Str("path", r.Path).Str("request_id", reqID).Msg("error de red")
			return nil, reqID, &domain.TransportError{Method: r.Method, Path: r.Path, Err: err}
		}
		if jsonErr == nil {
			jsonErr = errors.New("envelope sin campo code")
		}
		return nil, reqID, c.decodeFailure(r, reqID, jsonErr)
	}

	if *env.Code != SuccessCode {
		c.log.Warn().
			Str("method", r.Method).
			Str("path", r.Path).
			Str("request_id", reqID).
			Int("code", *env.Code).
			Str("message", env.message()).
			Msg("petición rechazada")
		return nil, reqID, &domain.BusinessError{Code: *env.Code, Message: env.message()}
	}

	c.log.Debug().
		Str("method", r.Method).
		Str("path", r.Path).
		Str("request_id", reqID).
		Dur("elapsed", time.Since(start)).
		Msg("petición completada")
	return env.Data, reqID, nil
}

func (c *Client) newRequest(ctx context.Context, r Request, reqID string) (*http.Request, error) {
	u := *c.base
	u.Path = c.base.Path + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: serializar body de %s: %w", r.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: crear request: %w", err)
	}

	c.mu.RLock()
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	c.mu.RUnlock()
	for k, vs := range r.Header {
		req.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	req.Header.Set(HeaderRequestID, reqID)
	return req, nil
}

func (c *Client) decodeFailure(r Request, reqID string, err error) error {
	c.log.Error().Err(err).
		Str("method", r.Method).
		Str("path", r.Path).
		Str("request_id", reqID).
		Msg("respuesta no cumple el contrato")
	return &domain.DecodeError{Path: r.Path, Err: err}
}

func redactQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
