package core

import (
	"bufio"
	"io"
	"strconv"
)

// Writer 按 DXF 文本格式输出组码/值对，出错后后续写入全部忽略
type Writer struct {
	writer *bufio.Writer
	err    error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: bufio.NewWriter(w)}
}

// Tag 写入一组原始标签
func (w *Writer) Tag(code int, value string) {
	if w.err != nil {
		return
	}
	// 组码按 DXF 习惯右对齐到 3 位
	if _, err := w.writer.WriteString(padCode(code) + "\n" + value + "\n"); err != nil {
		w.err = err
	}
}

func (w *Writer) String(code int, value string) {
	w.Tag(code, value)
}

func (w *Writer) Int(code int, value int) {
	w.Tag(code, strconv.Itoa(value))
}

func (w *Writer) Float(code int, value float64) {
	w.Tag(code, strconv.FormatFloat(value, 'f', -1, 64))
}

// Point 写入三维点，code 为 X 的组码 (10, 11 ...)，Y/Z 依次 +10
func (w *Writer) Point(code int, p Point) {
	w.Float(code, p.X)
	w.Float(code+10, p.Y)
	w.Float(code+20, p.Z)
}

// Point2D 写入二维点
func (w *Writer) Point2D(code int, p Point2D) {
	w.Float(code, p.X)
	w.Float(code+10, p.Y)
}

// Flush 刷新缓冲并返回第一个错误
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.writer.Flush()
	return w.err
}

func (w *Writer) Err() error {
	return w.err
}

func padCode(code int) string {
	s := strconv.Itoa(code)
	for len(s) < 3 {
		s = " " + s
	}
	return s
}
