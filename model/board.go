package model

import "fmt"

// Board is a fixed-size grid of cells whose opposite edges are adjacent
type Board struct {
	height int
	width  int
	cells  [][]bool
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(height, width int) *Board {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("model: invalid board dimensions %dx%d", height, width))
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Board{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// GetHeight returns the number of rows of the board
func (b *Board) GetHeight() int {
	return b.height
}

// GetWidth returns the number of columns of the board
func (b *Board) GetWidth() int {
	return b.width
}

func (b *Board) mustContain(row, col int) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d board", row, col, b.height, b.width))
	}
}

// Get returns the state of a cell
func (b *Board) Get(row, col int) bool {
	b.mustContain(row, col)
	return b.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(row, col int, alive bool) {
	b.mustContain(row, col)
	b.cells[row][col] = alive
}

// Clear kills every cell
func (b *Board) Clear() {
	for row := range b.height {
		for col := range b.width {
			b.cells[row][col] = false
		}
	}
}

// CopyFrom overwrites the board with the cells of src
func (b *Board) CopyFrom(src *Board) {
	b.mustMatch(src)
	for row := range b.height {
		copy(b.cells[row], src.cells[row])
	}
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if b.height != other.height || b.width != other.width {
		return false
	}
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

func (b *Board) mustMatch(other *Board) {
	if b.height != other.height || b.width != other.width {
		panic(fmt.Sprintf("model: board dimensions differ: %dx%d vs %dx%d",
			b.height, b.width, other.height, other.width))
	}
}

// wrap is a modulo that never returns a negative index
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// CountNeighbors counts living cells among the 8 neighbors of (row, col).
// Neighbors wrap around the edges, so on boards narrower than 3 cells the
// same cell can be counted more than once, the cell itself included.
func (b *Board) CountNeighbors(row, col int) int {
	b.mustContain(row, col)

	count := 0
	for dh := -1; dh <= 1; dh++ {
		for dw := -1; dw <= 1; dw++ {
			if dh == 0 && dw == 0 {
				continue
			}
			if b.cells[wrap(row+dh, b.height)][wrap(col+dw, b.width)] {
				count++
			}
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] {
				count++
			}
		}
	}
	return
}
