package parser

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrFileOpen = errors.New("unable to open input file")
	ErrParse    = errors.New("bad value in input")
)

// LineError reports the first line that failed to parse. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) Is(target error) bool { return target == ErrParse }

// ReadFile loads the whole input in one read.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(fmt.Errorf("%w: %w", ErrFileOpen, err))
	}
	return data, nil
}

// Unsigned parses one non-negative integer per line.
func Unsigned(data []byte) ([]uint64, error) {
	return parseLines(data, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// Signed parses one integer per line; a leading '+' or '-' is accepted.
func Signed(data []byte) ([]int64, error) {
	return parseLines(data, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// parseLines stops at the first bad line. A single trailing newline does not
// yield an empty line, any other blank line is an error. Lines have no length
// limit since the whole file is already in memory.
func parseLines[T any](data []byte, parse func(string) (T, error)) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lines := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	values := make([]T, 0, len(lines))
	for i, raw := range lines {
		text := string(bytes.TrimSuffix(raw, []byte("\r")))
		v, err := parse(text)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, errors.WithStack(&LineError{Line: i + 1, Text: text, Err: err})
		}
		values = append(values, v)
	}

	return values, nil
}
