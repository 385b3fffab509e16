package grid

import "fmt"

// Position はグリッド上の座標を表す
// 走査の終端を示すため、範囲外や負の値も取り得る
type Position struct {
	X, Y int
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dimension はグリッドの幅と高さを表す
type Dimension struct {
	Width, Height int
}

func NewDimension(width, height int) Dimension {
	return Dimension{Width: width, Height: height}
}

// Area はセルの総数を返す
func (d Dimension) Area() int {
	if d.Empty() {
		return 0
	}
	return d.Width * d.Height
}

// Empty は幅または高さが0の場合にtrueを返す
func (d Dimension) Empty() bool {
	return d.Width == 0 || d.Height == 0
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
