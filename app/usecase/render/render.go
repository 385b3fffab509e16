package render

import (
	"fmt"
	"strings"

	"github.com/wasya-io/go-grid/app/entity/grid"
)

const defaultSeparator = " "

// Renderer はグリッドを列揃えしたテキストに変換する
type Renderer struct {
	separator string
	builder   *Builder
}

func NewRenderer(separator string) *Renderer {
	if separator == "" {
		separator = defaultSeparator
	}
	return &Renderer{
		separator: separator,
		builder:   NewBuilder(),
	}
}

// Render は1行に1行分のセルを出力する
// 各列は、その列で最も表示幅の大きいセルに合わせて揃える
func Render[T any](r *Renderer, g *grid.Grid[T], format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}

	texts := grid.Map(g, format)
	widths := make([]int, g.Width())
	texts.Each(func(p grid.Position, s *string) {
		widths[p.X] = max(widths[p.X], StringWidth(*s))
	})

	r.builder.Clear()
	for p := (grid.Position{}); texts.ContainsPosition(p); texts.Advance(&p) {
		s := *texts.GetPosition(p)
		if p.X == g.Width()-1 {
			// 行末には余計な空白を付けない
			r.builder.Write(s)
			r.builder.Write("\n")
			continue
		}
		r.builder.WritePadded(s, widths[p.X])
		r.builder.Write(r.separator)
	}
	return r.builder.Build()
}

// RenderStrings は文字列グリッドをそのまま描画する
func (r *Renderer) RenderStrings(g *grid.Grid[string]) string {
	return Render(r, g, func(s string) string { return s })
}

// Header はグリッドのサイズを示す見出し行を返す
func (r *Renderer) Header(d grid.Dimension) string {
	title := fmt.Sprintf("grid %s", d)
	return title + "\n" + strings.Repeat("-", StringWidth(title)) + "\n"
}
