package parser

import "errors"

var (
	// ErrInvalidDimension は "WxH" 形式として解釈できない場合のエラー
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrUnknownOperation は未知の操作が指定された場合のエラー
	ErrUnknownOperation = errors.New("unknown operation")
)
