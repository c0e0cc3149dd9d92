package model

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrInitializationIO is returned when the startup file cannot be opened or read
	ErrInitializationIO = errors.New("startup file unreadable")
	// ErrInitializationFormat is returned when the startup file holds too few cells
	ErrInitializationFormat = errors.New("startup file malformed")
)

const (
	cellAlive = '1'
	cellDead  = '0'
)

// initError ties an underlying failure to one of the initialization sentinels
type initError struct {
	kind  error
	cause error
	msg   string
}

func (e *initError) Error() string {
	return e.msg + ": " + e.cause.Error()
}

func (e *initError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func ioError(cause error, format string, args ...interface{}) error {
	return errors.WithStack(&initError{
		kind:  ErrInitializationIO,
		cause: cause,
		msg:   fmt.Sprintf(format, args...),
	})
}

// isSpace matches the bytes C's isspace accepts in the default locale
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// RandomBoard fills a new board, each cell alive with probability density
func RandomBoard(height, width int, density float64, rng *rand.Rand) *Board {
	b := NewBoard(height, width)
	for row := range height {
		for col := range width {
			b.cells[row][col] = rng.Float64() < density
		}
	}
	return b
}

// GliderBoard returns a board holding a single glider with its bounding box at (1,1)
func GliderBoard(height, width int) *Board {
	b := NewBoard(height, width)
	AddGlider(b, 1, 1)
	return b
}

// AddGlider adds a glider pattern with its top-left corner at the specified position
func AddGlider(b *Board, startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, cell := range line {
			b.Set(wrap(startRow+dr, b.height), wrap(startCol+dc, b.width), cell)
		}
	}
}

// ReadBoard reads height*width cells in row-major order.
// Every non-whitespace byte is one cell: '1' is alive, anything else is dead,
// so a multi-byte character fills one cell per byte.
func ReadBoard(r io.Reader, height, width int) (*Board, error) {
	var (
		b        = NewBoard(height, width)
		br       = bufio.NewReader(r)
		expected = height * width
	)

	for found := 0; found < expected; {
		c, err := br.ReadByte()
		if err == io.EOF {
			return nil, errors.Wrapf(ErrInitializationFormat,
				"[ReadBoard] invalid number of cells (only found %d out of %d)", found, expected)
		}
		if err != nil {
			return nil, ioError(err, "[ReadBoard] failed to read cell %d", found)
		}
		if isSpace(c) {
			continue
		}
		b.cells[found/width][found%width] = c == cellAlive
		found++
	}
	return b, nil
}

// ReadBoardFile opens filename and reads a board from it
func ReadBoardFile(filename string, height, width int) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, ioError(err, "[ReadBoardFile] unable to open %s", filename)
	}
	defer f.Close()

	b, err := ReadBoard(f, height, width)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadBoardFile] %s", filename)
	}
	return b, nil
}

// WriteBoard writes the board in the startup file format, one row per line
func WriteBoard(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for row := range b.height {
		for col := range b.width {
			if col > 0 {
				bw.WriteByte(' ')
			}
			if b.cells[row][col] {
				bw.WriteByte(cellAlive)
			} else {
				bw.WriteByte(cellDead)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[WriteBoard] failed to write board")
	}
	return nil
}

// WriteBoardFile creates filename and writes the board to it
func WriteBoardFile(filename string, b *Board) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[WriteBoardFile] failed to create file: %+v", filename)
	}
	if err = WriteBoard(f, b); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "[WriteBoardFile] failed to close file: %+v", filename)
}
