package term

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ErrNotTerminal は出力先が端末ではない場合のエラー
var ErrNotTerminal = errors.New("stdout is not a terminal")

// GetWinSize は標準出力の端末サイズを返す
func GetWinSize() (screenRows, screenCols int, err error) {
	return getWinSize(int(os.Stdout.Fd()))
}

func getWinSize(fd int) (screenRows, screenCols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		if errors.Is(err, unix.ENOTTY) {
			return 0, 0, ErrNotTerminal
		}
		return 0, 0, err
	}

	return int(ws.Row), int(ws.Col), nil
}

// FitColumns は1セルあたり cellWidth 桁を使う場合に、
// 端末幅 screenCols に収まる列数を返す（最低1列）
func FitColumns(screenCols, cellWidth int) int {
	if cellWidth <= 0 {
		return max(screenCols, 1)
	}
	return max(screenCols/cellWidth, 1)
}
