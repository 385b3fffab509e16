package render

import "golang.org/x/text/width"

// CharWidth は文字の表示幅を返す
func CharWidth(ch rune) int {
	p := width.LookupRune(ch)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

// StringWidth は文字列の表示幅を返す
func StringWidth(s string) int {
	w := 0
	for _, ch := range s {
		w += CharWidth(ch)
	}
	return w
}
