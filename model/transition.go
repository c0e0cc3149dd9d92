package model

import "github.com/sheikhrachel/go-torus/rules"

// NextGeneration writes the generation following prev into next.
// prev is only read; both boards must have the same dimensions.
func NextGeneration(next, prev *Board, r rules.Rules) {
	next.mustMatch(prev)
	for row := range prev.height {
		for col := range prev.width {
			next.cells[row][col] = r.Next(prev.cells[row][col], prev.CountNeighbors(row, col))
		}
	}
}
