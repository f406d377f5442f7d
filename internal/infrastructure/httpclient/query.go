package httpclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query construye parámetros de consulta omitiendo los filtros vacíos: un name="" enviado
// al servidor restringe la búsqueda en lugar de desactivarla.
type Query struct {
	v url.Values
}

// NewQuery crea un constructor vacío.
func NewQuery() *Query {
	return &Query{v: url.Values{}}
}

// Int fija siempre el parámetro (pageNum, pageSize).
func (q *Query) Int(key string, n int) *Query {
	q.v.Set(key, strconv.Itoa(n))
	return q
}

// String fija el filtro recortado; si queda vacío se omite.
func (q *Query) String(key, s string) *Query {
	if s = strings.TrimSpace(s); s != "" {
		q.v.Set(key, s)
	}
	return q
}

// ID fija una clave foránea; cero o negativo se omite.
func (q *Query) ID(key string, id int64) *Query {
	if id > 0 {
		q.v.Set(key, strconv.FormatInt(id, 10))
	}
	return q
}

// Raw fija el valor tal cual, incluso vacío (credenciales).
func (q *Query) Raw(key, s string) *Query {
	q.v.Set(key, s)
	return q
}

// Values devuelve los parámetros acumulados.
func (q *Query) Values() url.Values {
	return q.v
}
