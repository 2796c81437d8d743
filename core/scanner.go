package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(codeLine) == "") {
		if err != io.EOF {
			s.err = errors.Wrapf(err, "第 %d 行", s.line+1)
		}
		return false
	}
	s.line++

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = errors.Wrapf(err, "第 %d 行: 无效组码 %q", s.line, codeStr)
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || valueLine == "") {
		// Value 行如果 EOF 也是不完整的
		s.err = errors.Errorf("第 %d 行: 组码 %d 缺少值", s.line, code)
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

// Line 返回最近一次读取的值所在行号
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}
