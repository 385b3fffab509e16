package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultMaxBuffer = 100

// LogEntry はログのエントリを表す構造体
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}

// Logger はデバッグモードの時だけエントリを貯め、JSONファイルへ書き出す
type Logger struct {
	debugMode bool
	entries   []LogEntry
	flushed   []LogEntry
	filePath  string
	maxBuffer int
	lastErr   error
}

// New はカレントディレクトリに書き出すLoggerを作成する
func New(debugMode bool) *Logger {
	return NewInDir(debugMode, ".")
}

// NewInDir は dir 配下の log-<開始時刻>.json に書き出すLoggerを作成する
func NewInDir(debugMode bool, dir string) *Logger {
	startTime := time.Now()
	return &Logger{
		debugMode: debugMode,
		entries:   make([]LogEntry, 0),
		filePath:  filepath.Join(dir, fmt.Sprintf("log-%s.json", startTime.Format("20060102-150405"))),
		maxBuffer: defaultMaxBuffer,
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	if !l.debugMode {
		return
	}

	l.entries = append(l.entries, LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   message,
		Type:      messageType,
	})

	// バッファが一定量に達したらフラッシュ
	if len(l.entries) >= l.maxBuffer {
		l.Flush()
	}
}

// Flush はこれまでのエントリをファイル全体として書き出す
// 書き込みエラーは LastError で確認できる
func (l *Logger) Flush() {
	if len(l.entries) == 0 {
		return
	}

	all := append(l.flushed, l.entries...)
	data, err := json.MarshalIndent(all, "", "  ")
	if err == nil {
		err = os.WriteFile(l.filePath, data, 0644)
	}
	l.lastErr = err
	if err != nil {
		return
	}

	l.flushed = all
	l.entries = []LogEntry{}
}

// SetDebugMode はデバッグモードの状態を設定する
func (l *Logger) SetDebugMode(enabled bool) {
	l.debugMode = enabled
}

func (l *Logger) FilePath() string {
	return l.filePath
}

func (l *Logger) LastError() error {
	return l.lastErr
}
