package render

import (
	"strings"
)

// Builder は描画結果を組み立てるバッファ
type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{
		buffer: strings.Builder{},
	}
}

func (b *Builder) Clear() {
	b.buffer.Reset()
}

func (b *Builder) Write(s string) {
	b.buffer.WriteString(s)
}

// WritePadded は表示幅が w になるよう右側を空白で埋めて書き込む
func (b *Builder) WritePadded(s string, w int) {
	b.buffer.WriteString(s)
	for n := StringWidth(s); n < w; n++ {
		b.buffer.WriteByte(' ')
	}
}

func (b *Builder) Build() string {
	return b.buffer.String()
}
