package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// validator lo implementan los payloads con invariantes propias (páginas, series del tablero).
type validator interface {
	Validate() error
}

// Send envía la petición y devuelve el data desempaquetado como T.
// Un data ausente o que no valida es un DecodeError: estos endpoints siempre traen datos.
func Send[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var zero T
	raw, reqID, err := c.roundTrip(ctx, r)
	if err != nil {
		return zero, err
	}
	if absent(raw) {
		return zero, c.decodeFailure(r, reqID, errors.New("data ausente"))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, c.decodeFailure(r, reqID, fmt.Errorf("deserializar data: %w", err))
	}
	if v, ok := any(out).(validator); ok {
		if err := v.Validate(); err != nil {
			return zero, c.decodeFailure(r, reqID, err)
		}
	}
	return out, nil
}

// Ack envía una petición de tipo "operación realizada". El éxito del envelope ya es la
// respuesta: si data viene ausente resuelve true; si trae un booleano, devuelve ese valor.
func Ack(ctx context.Context, c *Client, r Request) (bool, error) {
	raw, reqID, err := c.roundTrip(ctx, r)
	if err != nil {
		return false, err
	}
	if absent(raw) {
		return true, nil
	}
	var ok bool
	if err := json.Unmarshal(raw, &ok); err != nil {
		return false, c.decodeFailure(r, reqID, fmt.Errorf("se esperaba booleano: %w", err))
	}
	return ok, nil
}

// Get GET path?query → T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return Send[T](ctx, c, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post POST path con body JSON → T.
func Post[T any](ctx context.Context, c *Client, path string, query url.Values, body any) (T, error) {
	return Send[T](ctx, c, Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put PUT path con body JSON → T.
func Put[T any](ctx context.Context, c *Client, path string, query url.Values, body any) (T, error) {
	return Send[T](ctx, c, Request{Method: http.MethodPut, Path: path, Query: query, Body: body})
}

// Delete DELETE path → T.
func Delete[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return Send[T](ctx, c, Request{Method: http.MethodDelete, Path: path, Query: query})
}

func absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
