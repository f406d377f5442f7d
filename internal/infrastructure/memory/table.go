// Package memory implementa los repositorios del backend mock en memoria, con borrado lógico.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

// accessor le dice a table cómo leer y escribir los campos comunes de cada entidad.
type accessor[T any] struct {
	id          func(T) int64
	setID       func(*T, int64)
	deleted     func(T) bool
	markDeleted func(*T)
}

// table almacén genérico con ids autoincrementales. Los borrados son lógicos: la fila
// sigue guardada pero ninguna consulta la devuelve.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
	acc    accessor[T]
}

func newTable[T any](acc accessor[T]) *table[T] {
	return &table[T]{rows: map[int64]T{}, acc: acc}
}

func (t *table[T]) insert(v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	t.acc.setID(v, t.nextID)
	t.rows[t.nextID] = *v
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok || t.acc.deleted(v) {
		var zero T
		return zero, false
	}
	return v, true
}

// put reemplaza la fila si existe y no está borrada.
func (t *table[T]) put(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.acc.id(v)
	cur, ok := t.rows[id]
	if !ok || t.acc.deleted(cur) {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) softDelete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok || t.acc.deleted(v) {
		return false
	}
	t.acc.markDeleted(&v)
	t.rows[id] = v
	return true
}

// filter devuelve las filas vivas que cumplen pred, ordenadas por id.
func (t *table[T]) filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if t.acc.deleted(v) {
			continue
		}
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.acc.id(out[i]) < t.acc.id(out[j]) })
	return out
}

func (t *table[T]) count(pred func(T) bool) int64 {
	return int64(len(t.filter(pred)))
}

// window recorta rows a [offset, offset+limit).
func window[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func stamp(now func() time.Time) string {
	return now().Format(entity.TimeLayout)
}
