package command

import "github.com/wasya-io/go-grid/app/entity/grid"

type (
	Command interface {
		Execute() error
	}

	StandardCommand struct {
		fn func() error
	}

	ResizeCommand struct {
		dimension grid.Dimension
		fill      string
		fn        func(grid.Dimension, string) error
	}
)

func NewCommand(execute func() error) StandardCommand {
	return StandardCommand{fn: execute}
}

func (c StandardCommand) Execute() error {
	return c.fn()
}

func NewResizeCommand(d grid.Dimension, fill string, execute func(grid.Dimension, string) error) ResizeCommand {
	return ResizeCommand{dimension: d, fill: fill, fn: execute}
}

func (c ResizeCommand) Execute() error {
	return c.fn(c.dimension, c.fill)
}

// RunAll はコマンドを順に実行し、最初のエラーで止まる
func RunAll(commands []Command) error {
	for _, c := range commands {
		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}
