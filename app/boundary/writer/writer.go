package writer

import (
	"io"
	"os"
)

//go:generate mockgen -source=writer.go -destination=mock_writer.go -package=writer

type ScreenWriter interface {
	Write(s string) error
}

type StandardScreenWriter struct {
	out io.Writer
}

func NewStandardScreenWriter() *StandardScreenWriter {
	return &StandardScreenWriter{out: os.Stdout}
}

// NewScreenWriterTo は出力先を指定してWriterを作成する
func NewScreenWriterTo(out io.Writer) *StandardScreenWriter {
	return &StandardScreenWriter{out: out}
}

func (w *StandardScreenWriter) Write(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}
