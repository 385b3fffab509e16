package viewer

import (
	"fmt"

	"github.com/wasya-io/go-grid/app/boundary/writer"
	"github.com/wasya-io/go-grid/app/entity/core"
	"github.com/wasya-io/go-grid/app/entity/grid"
	"github.com/wasya-io/go-grid/app/usecase/command"
	"github.com/wasya-io/go-grid/app/usecase/parser"
	"github.com/wasya-io/go-grid/app/usecase/render"
)

// Viewer は文字列グリッドに操作を適用し、結果を画面に書き出す
type Viewer struct {
	grid     *grid.Grid[string]
	scratch  *grid.Grid[string] // swap の相手
	logger   core.Logger
	writer   writer.ScreenWriter
	renderer *render.Renderer
	fill     string // 操作でfillが省略された場合に使う値
}

func NewViewer(
	g *grid.Grid[string],
	logger core.Logger,
	writer writer.ScreenWriter,
	renderer *render.Renderer,
	fill string,
) *Viewer {
	return &Viewer{
		grid:     g,
		scratch:  grid.New[string](),
		logger:   logger,
		writer:   writer,
		renderer: renderer,
		fill:     fill,
	}
}

// Grid は表示中のグリッドを返す
func (v *Viewer) Grid() *grid.Grid[string] {
	return v.grid
}

// Scratch は swap で入れ替わる控えのグリッドを返す
func (v *Viewer) Scratch() *grid.Grid[string] {
	return v.scratch
}

// Show は見出しとグリッドを書き出す
func (v *Viewer) Show() error {
	v.logger.Log("screen", fmt.Sprintf("Showing grid %s", v.grid.Dimension()))
	out := v.renderer.Header(v.grid.Dimension()) + v.renderer.RenderStrings(v.grid)
	if err := v.writer.Write(out); err != nil {
		v.logger.Log("error", fmt.Sprintf("Failed to write grid: %v", err))
		return fmt.Errorf("show grid: %w", err)
	}
	return nil
}

// Apply は操作を1つグリッドに適用する
func (v *Viewer) Apply(op parser.Operation) error {
	switch op.Type {
	case parser.OperationResize:
		return v.resize(op.Dimension, v.fillFor(op))
	case parser.OperationClear:
		v.logger.Log("grid", fmt.Sprintf("Clear %s", v.grid.Dimension()))
		v.grid.Clear()
		return nil
	case parser.OperationSwap:
		v.logger.Log("grid", fmt.Sprintf("Swap %s <-> %s", v.grid.Dimension(), v.scratch.Dimension()))
		v.grid.Swap(v.scratch)
		return nil
	}
	return fmt.Errorf("%w: %v", parser.ErrUnknownOperation, op.Type)
}

func (v *Viewer) resize(d grid.Dimension, fill string) error {
	v.logger.Log("grid", fmt.Sprintf("Resize %s -> %s fill=%q", v.grid.Dimension(), d, fill))
	v.grid.ResizeFill(d.Width, d.Height, fill)
	return nil
}

func (v *Viewer) fillFor(op parser.Operation) string {
	if op.HasFill {
		return op.Fill
	}
	return v.fill
}

// Commands は操作ごとに「適用して表示する」コマンドを作る
func (v *Viewer) Commands(ops []parser.Operation) []command.Command {
	commands := make([]command.Command, 0, len(ops))
	for _, op := range ops {
		op := op
		if op.Type == parser.OperationResize {
			commands = append(commands, command.NewResizeCommand(op.Dimension, v.fillFor(op), func(d grid.Dimension, fill string) error {
				if err := v.resize(d, fill); err != nil {
					return err
				}
				return v.Show()
			}))
			continue
		}

		commands = append(commands, command.NewCommand(func() error {
			if err := v.Apply(op); err != nil {
				return err
			}
			return v.Show()
		}))
	}
	return commands
}

// Run は初期状態を表示したあと、操作を順に適用して表示する
func (v *Viewer) Run(ops []parser.Operation) error {
	v.logger.Log("system", "Viewer starting")
	defer v.logger.Flush()

	if err := v.Show(); err != nil {
		return err
	}
	if err := command.RunAll(v.Commands(ops)); err != nil {
		v.logger.Log("error", fmt.Sprintf("Run failed: %v", err))
		return err
	}
	return nil
}
