package dto

import "fmt"

// Valores por defecto de paginación.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// PageQuery página solicitada (pageNum empieza en 1).
type PageQuery struct {
	PageNum  int
	PageSize int
}

// DefaultPage aplica valores por defecto si PageNum/PageSize no son positivos.
func (p *PageQuery) DefaultPage() {
	if p.PageNum <= 0 {
		p.PageNum = DefaultPageNum
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
}

// PageResult una página de una colección ordenada más los metadatos del total.
// Coincide con el Page<T> que devuelve el backend.
type PageResult[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int   `json:"size"`
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
}

// Validate comprueba las invariantes de la página.
func (p PageResult[T]) Validate() error {
	if p.Total < 0 {
		return fmt.Errorf("total negativo: %d", p.Total)
	}
	if p.Size <= 0 {
		return fmt.Errorf("size debe ser positivo: %d", p.Size)
	}
	if len(p.Records) > p.Size {
		return fmt.Errorf("%d registros superan size=%d", len(p.Records), p.Size)
	}
	if p.Current < 1 {
		return fmt.Errorf("current debe ser >= 1: %d", p.Current)
	}
	if p.Pages > 0 && p.Current > p.Pages {
		return fmt.Errorf("current=%d supera pages=%d", p.Current, p.Pages)
	}
	return nil
}

// NewPageResult arma una página a partir de los registros ya recortados y el total.
func NewPageResult[T any](records []T, total int64, q PageQuery) PageResult[T] {
	q.DefaultPage()
	if records == nil {
		records = []T{}
	}
	pages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	return PageResult[T]{
		Records: records,
		Total:   total,
		Size:    q.PageSize,
		Current: q.PageNum,
		Pages:   pages,
	}
}
