package main

import (
	"fmt"
	"os"

	"github.com/wasya-io/go-grid/app/boundary/logger"
	"github.com/wasya-io/go-grid/app/boundary/writer"
	"github.com/wasya-io/go-grid/app/config"
	"github.com/wasya-io/go-grid/app/entity/core/term"
	"github.com/wasya-io/go-grid/app/entity/grid"
	"github.com/wasya-io/go-grid/app/usecase/parser"
	"github.com/wasya-io/go-grid/app/usecase/render"
	"github.com/wasya-io/go-grid/app/usecase/viewer"
)

func main() {
	conf := config.LoadConfig()
	log := logger.New(conf.DebugMode)

	// コマンドライン引数の処理
	ops, err := parser.ParseOperations(os.Args[1:])
	if err != nil {
		die(err)
	}

	width := conf.Width
	if conf.FitTerminal {
		width = fitWidth(conf, log)
	}

	g := newLabeledGrid(width, conf.Height)
	v := viewer.NewViewer(g, log, writer.NewStandardScreenWriter(), render.NewRenderer(conf.Separator), conf.Fill)

	if err := v.Run(ops); err != nil {
		die(err)
	}
}

// fitWidth は端末幅に収まる列数まで幅を縮める
func fitWidth(conf *config.Config, log *logger.Logger) int {
	_, screenCols, err := term.GetWinSize()
	if err != nil {
		log.Log("warning", fmt.Sprintf("Terminal size unavailable: %v", err))
		return conf.Width
	}

	// ラベルの最大幅と区切り文字の幅から1セル分の幅を見積もる
	cellWidth := render.StringWidth(label(conf.Width*conf.Height-1)) + render.StringWidth(conf.Separator)
	return min(conf.Width, term.FitColumns(screenCols, cellWidth))
}

// newLabeledGrid は行優先の順に番号を振ったグリッドを作る
func newLabeledGrid(width, height int) *grid.Grid[string] {
	g := grid.NewSized[string](width, height)
	g.Each(func(p grid.Position, v *string) {
		*v = label(g.Index(p.X, p.Y))
	})
	return g
}

func label(i int) string {
	return fmt.Sprintf("c%02d", i)
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
