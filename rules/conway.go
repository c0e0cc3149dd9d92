package rules

// Rules holds the neighbor-count thresholds that drive a generation change.
type Rules struct {
	// Underpopulation is the highest neighbor count at which a live cell dies.
	Underpopulation int `json:"underpopulation"`
	// Overpopulation is the lowest neighbor count at which a live cell dies.
	Overpopulation int `json:"overpopulation"`
	// Reproduction is the exact neighbor count that brings a dead cell to life.
	Reproduction int `json:"reproduction"`
}

// Default returns the classic thresholds: die at <=1 or >=4, birth at 3.
func Default() Rules {
	return Rules{
		Underpopulation: 1,
		Overpopulation:  4,
		Reproduction:    3,
	}
}

/*
Next decides the state of a cell in the following generation.

A live cell dies when neighbors <= Underpopulation or neighbors >= Overpopulation,
a dead cell is born when neighbors == Reproduction, and any other cell keeps its state.
*/
func (r Rules) Next(alive bool, neighbors int) bool {
	if alive && (neighbors <= r.Underpopulation || neighbors >= r.Overpopulation) {
		return false
	}
	if !alive && neighbors == r.Reproduction {
		return true
	}
	return alive
}
