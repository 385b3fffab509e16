package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultWidth     = 3
	defaultHeight    = 2
	defaultFill      = "."
	defaultSeparator = " "
)

// Config はグリッド表示の設定を保持する構造体
type Config struct {
	Width       int
	Height      int
	Fill        string
	Separator   string
	FitTerminal bool // 端末幅に収まるよう初期の幅を縮める
	DebugMode   bool
}

// LoadConfig は.envファイルと環境変数から設定を読み込む
func LoadConfig(filenames ...string) *Config {
	// .envファイルが無くてもエラーにしない
	godotenv.Load(filenames...)

	config := &Config{
		Width:       defaultWidth,
		Height:      defaultHeight,
		Fill:        defaultFill,
		Separator:   defaultSeparator,
		FitTerminal: false,
		DebugMode:   false,
	}

	// GRID_WIDTH / GRID_HEIGHT は0以上の整数のみ受け付ける
	if v, ok := nonNegativeInt("GRID_WIDTH"); ok {
		config.Width = v
	}
	if v, ok := nonNegativeInt("GRID_HEIGHT"); ok {
		config.Height = v
	}

	if fill, ok := os.LookupEnv("GRID_FILL"); ok {
		config.Fill = fill
	}
	if sep, ok := os.LookupEnv("GRID_SEPARATOR"); ok && sep != "" {
		config.Separator = sep
	}

	if fit := os.Getenv("GRID_FIT_TERMINAL"); fit != "" {
		config.FitTerminal = fit != "0" && fit != "false"
	}

	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	return config
}

func nonNegativeInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
