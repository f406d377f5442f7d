package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNoSession    = errors.New("no hay sesión activa")
)

// TransportError la petición no obtuvo respuesta (error de red, timeout, cancelación).
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transporte: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BusinessError el servidor respondió con un envelope cuyo code no es de éxito.
// Error() devuelve el mensaje del servidor sin adornos: es lo que ve el usuario.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("código de negocio %d", e.Code)
	}
	return e.Message
}

// DecodeError la respuesta llegó pero no respeta el contrato (JSON inválido, campos
// faltantes, invariantes rotas). Es un error de programación, no un "no" del servidor.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("respuesta inválida de %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport indica si err (o alguno que envuelva) es un TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsBusiness indica si err es un BusinessError.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// IsDecode indica si err es un DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// BusinessCode devuelve el code del envelope si err es un BusinessError.
func BusinessCode(err error) (int, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return 0, false
}
