package grid

import "golang.org/x/exp/slices"

// View はグリッドの読み取り専用ビュー
// 元のグリッドへの変更はビューからも見える
type View[T any] struct {
	g *Grid[T]
}

// View は読み取り専用ビューを返す
func (g *Grid[T]) View() View[T] {
	return View[T]{g: g}
}

func (v View[T]) Width() int {
	return v.g.width
}

func (v View[T]) Height() int {
	return v.g.height
}

func (v View[T]) Empty() bool {
	return v.g.Empty()
}

func (v View[T]) Contains(x, y int) bool {
	return v.g.Contains(x, y)
}

func (v View[T]) ContainsPosition(p Position) bool {
	return v.g.ContainsPosition(p)
}

// Value は (x, y) の値を返す（範囲チェックは Grid.Get と同じ）
func (v View[T]) Value(x, y int) T {
	return *v.g.Get(x, y)
}

func (v View[T]) ValueAt(p Position) T {
	return *v.g.GetPosition(p)
}

// Data はバッファのコピーを返す
func (v View[T]) Data() []T {
	return slices.Clone(v.g.cells)
}
