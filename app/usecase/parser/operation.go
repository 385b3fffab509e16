package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wasya-io/go-grid/app/entity/grid"
)

// OperationType はグリッドに対する操作の種類
type OperationType int

const (
	OperationResize OperationType = iota
	OperationClear
	OperationSwap
)

func (t OperationType) String() string {
	switch t {
	case OperationResize:
		return "resize"
	case OperationClear:
		return "clear"
	case OperationSwap:
		return "swap"
	}
	return fmt.Sprintf("OperationType(%d)", int(t))
}

// Operation はコマンドライン引数1つ分の操作
type Operation struct {
	Type      OperationType
	Dimension grid.Dimension
	Fill      string
	HasFill   bool
}

// ParseDimension は "WxH" 形式の文字列を解析する
func ParseDimension(s string) (grid.Dimension, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return grid.Dimension{}, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}

	width, err := parseSide(w)
	if err != nil {
		return grid.Dimension{}, fmt.Errorf("%w: %q: width: %v", ErrInvalidDimension, s, err)
	}
	height, err := parseSide(h)
	if err != nil {
		return grid.Dimension{}, fmt.Errorf("%w: %q: height: %v", ErrInvalidDimension, s, err)
	}

	return grid.NewDimension(width, height), nil
}

func parseSide(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}
	return v, nil
}

// ParseOperation は引数を操作に変換する
// 受け付ける形式: "WxH", "WxH:fill", "clear", "swap"
func ParseOperation(arg string) (Operation, error) {
	switch arg {
	case "clear":
		return Operation{Type: OperationClear}, nil
	case "swap":
		return Operation{Type: OperationSwap}, nil
	}

	dim, fill, hasFill := strings.Cut(arg, ":")
	d, err := ParseDimension(dim)
	if err != nil {
		if !strings.ContainsAny(dim, "xX") {
			return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, arg)
		}
		return Operation{}, err
	}

	return Operation{
		Type:      OperationResize,
		Dimension: d,
		Fill:      fill,
		HasFill:   hasFill,
	}, nil
}

// ParseOperations は全ての引数を解析し、最初のエラーで止まる
func ParseOperations(args []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(args))
	for i, arg := range args {
		op, err := ParseOperation(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
