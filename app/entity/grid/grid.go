package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Grid は行優先（row-major）で要素を保持する2次元配列
// (x, y) の要素はバッファの y*width+x 番目に格納される
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New は空のグリッドを作成する
func New[T any]() *Grid[T] {
	return &Grid[T]{}
}

// NewSized は全要素がゼロ値の width x height のグリッドを作成する
func NewSized[T any](width, height int) *Grid[T] {
	checkDimension(width, height)
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// NewWithDimension は Dimension からグリッドを作成する
func NewWithDimension[T any](d Dimension) *Grid[T] {
	return NewSized[T](d.Width, d.Height)
}

// NewFilled は全要素を fill で埋めたグリッドを作成する
func NewFilled[T any](width, height int, fill T) *Grid[T] {
	g := NewSized[T](width, height)
	g.Fill(fill)
	return g
}

func (g *Grid[T]) Width() int {
	return g.width
}

func (g *Grid[T]) Height() int {
	return g.height
}

func (g *Grid[T]) Dimension() Dimension {
	return Dimension{Width: g.width, Height: g.height}
}

// Empty は幅または高さが0の場合にtrueを返す
func (g *Grid[T]) Empty() bool {
	return g.width == 0 || g.height == 0
}

// Contains は (x, y) がグリッド内にあるかどうかを返す
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) ContainsPosition(p Position) bool {
	return g.Contains(p.X, p.Y)
}

// Index は (x, y) のバッファ上のインデックスを返す
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// PositionOf はバッファ上のインデックスに対応する座標を返す
func (g *Grid[T]) PositionOf(i int) Position {
	return Position{X: i % g.width, Y: i / g.width}
}

// Get は (x, y) の要素へのポインタを返す
//
// 範囲チェックは行わない。呼び出し側が Contains で確認すること。
// 範囲外の座標がバッファ内に写像される場合は別のセルを指し、
// バッファ外に写像される場合はパニックする。
func (g *Grid[T]) Get(x, y int) *T {
	return &g.cells[y*g.width+x]
}

func (g *Grid[T]) GetPosition(p Position) *T {
	return g.Get(p.X, p.Y)
}

// At は GetPosition と同じ（インデックス演算子に相当）
func (g *Grid[T]) At(p Position) *T {
	return g.Get(p.X, p.Y)
}

// Set は (x, y) に値を設定する
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[y*g.width+x] = v
}

// Data は内部バッファを返す
// &Data()[i] は行優先で i 番目のセルを指す
func (g *Grid[T]) Data() []T {
	return g.cells
}

// Advance は p を行優先の走査順で次の位置に進める
// 最後のセルから進めると (0, height) になり、Contains は false を返す
func (g *Grid[T]) Advance(p *Position) {
	p.X++
	if p.X >= g.width {
		p.X = 0
		p.Y++
	}
}

// AdvanceBackward は Advance の逆操作
// (0, 0) から戻すと (width-1, -1) になる
func (g *Grid[T]) AdvanceBackward(p *Position) {
	p.X--
	if p.X < 0 {
		p.X = g.width - 1
		p.Y--
	}
}

// Resize はゼロ値で新しいセルを埋めながらサイズを変更する
func (g *Grid[T]) Resize(width, height int) {
	var zero T
	g.ResizeFill(width, height, zero)
}

// ResizeFill はサイズを変更する
// 旧サイズと新サイズの重なる矩形の値は同じ座標に保持され、
// 新しく増えたセルだけが fill で埋められる
func (g *Grid[T]) ResizeFill(width, height int, fill T) {
	checkDimension(width, height)
	if width == g.width && height == g.height {
		return
	}

	cells := make([]T, width*height)
	keepWidth := min(g.width, width)
	keepHeight := min(g.height, height)

	// 行の境界がずれるため、1行ずつコピーする
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		x := 0
		if y < keepHeight {
			src := g.cells[y*g.width : y*g.width+keepWidth]
			x = copy(row, src)
		}
		for ; x < width; x++ {
			row[x] = fill
		}
	}

	g.width = width
	g.height = height
	if len(cells) == 0 {
		cells = nil
	}
	g.cells = cells
}

// Fill は全セルを v で埋める
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clear はグリッドを空の状態に戻す
func (g *Grid[T]) Clear() {
	*g = Grid[T]{}
}

// Swap は other と内部状態を交換する
// 要素のコピーは行わず、バッファの所有権だけが移る
func (g *Grid[T]) Swap(other *Grid[T]) {
	g.width, other.width = other.width, g.width
	g.height, other.height = other.height, g.height
	g.cells, other.cells = other.cells, g.cells
}

// Clone はバッファを複製した独立したグリッドを返す
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}

// Each は行優先の順で全セルを訪れる
func (g *Grid[T]) Each(fn func(p Position, v *T)) {
	for p := (Position{}); g.ContainsPosition(p); g.Advance(&p) {
		fn(p, g.GetPosition(p))
	}
}

func (g *Grid[T]) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, cells: %v}", g.width, g.height, g.cells)
}

func checkDimension(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimension %dx%d", width, height))
	}
}
