package grid

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal は幅・高さ・全要素が等しい場合にtrueを返す
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	return slices.Equal(a.cells, b.cells)
}

// EqualFunc は比較関数 eq で要素を比較する Equal
func EqualFunc[T any](a, b *Grid[T], eq func(T, T) bool) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	return slices.EqualFunc(a.cells, b.cells, eq)
}

// Map は各要素に fn を適用した同じサイズのグリッドを返す
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	out := NewSized[U](g.width, g.height)
	for i, v := range g.cells {
		out.cells[i] = fn(v)
	}
	return out
}

// Sum は全要素の合計を返す
func Sum[T constraints.Integer | constraints.Float](g *Grid[T]) T {
	var total T
	for _, v := range g.cells {
		total += v
	}
	return total
}
