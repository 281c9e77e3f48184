package model

import "math"

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
	// MaxOffset bounds the number of rows a page may skip.
	MaxOffset = math.MaxInt32
)

type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// InRange reports whether the offset of a normalized request stays within MaxOffset.
func (p PageRequest) InRange() bool {
	return p.Page-1 <= MaxOffset/p.Size
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is one page of a listing; Next and Previous are page numbers or null.
type Page[T any] struct {
	Count    int  `json:"count"`
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
	Results  []T  `json:"results"`
}

func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}
	p := Page[T]{Count: total, Results: items}
	if req.Page*req.Size < total {
		next := req.Page + 1
		p.Next = &next
	}
	if req.Page > 1 {
		prev := req.Page - 1
		p.Previous = &prev
	}
	return p
}
