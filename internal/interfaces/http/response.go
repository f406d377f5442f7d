package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
)

// Códigos de envelope que usa el backend.
const (
	CodeSuccess      = 200
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
)

// envelope respuesta uniforme {code, message, data}. El status HTTP es 200 salvo en auth:
// el resultado de negocio viaja en code.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{Code: CodeSuccess, Message: "success", Data: data})
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.JSON(envelope{Code: code, Message: message})
}

// failDomain traduce errores de repositorio a códigos de envelope.
func failDomain(c *fiber.Ctx, resource string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, CodeNotFound, resource+" not found")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, CodeConflict, resource+" already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, CodeBadRequest, err.Error())
	default:
		return fail(c, CodeServerError, err.Error())
	}
}

// pathID lee :id y exige que sea positivo.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID lee un id de la query; 0 si falta o no es válido.
func queryID(c *fiber.Ctx, key string) int64 {
	id, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// pageParams lee pageNum/pageSize con valores por defecto y tope de 100 por página.
func pageParams(c *fiber.Ctx) (num, size int) {
	num = c.QueryInt("pageNum", 1)
	size = c.QueryInt("pageSize", 10)
	if num <= 0 {
		num = 1
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return num, size
}

// pageOf pide la página num y, si se sale del rango, devuelve la última. Así current
// nunca supera pages.
func pageOf[T any](num, size int, fetch func(limit, offset int) ([]T, int64, error)) (dto.PageResult[T], error) {
	rows, total, err := fetch(size, (num-1)*size)
	if err != nil {
		return dto.PageResult[T]{}, err
	}
	if last := int((total + int64(size) - 1) / int64(size)); last > 0 && num > last {
		num = last
		if rows, total, err = fetch(size, (num-1)*size); err != nil {
			return dto.PageResult[T]{}, err
		}
	}
	return dto.NewPageResult(rows, total, dto.PageQuery{PageNum: num, PageSize: size}), nil
}
