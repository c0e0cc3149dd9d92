package model

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosDead  = "░░"
	gridPosEmpty = "  "

	clearCmd = "clear"

	statsFormat = "There are %d cells alive on game step %d"
)

// Renderer draws one generation of a board
type Renderer interface {
	Render(b *Board, step int) error
}

// StatsLine returns the stats header shown above a rendered board
func StatsLine(b *Board, step int) string {
	return fmt.Sprintf(statsFormat, b.CountLivingCells(), step)
}

// TextRenderer writes each generation as plain text
type TextRenderer struct {
	Out           io.Writer
	ShowDeadCells bool
	DisplayStats  bool
	// ClearScreen runs the terminal clear command, bound to Out, before each frame
	ClearScreen bool
	// Logger receives clear failures; nil means log.Default
	Logger *log.Logger
}

// Render writes the stats line and the board to Out in a single write
func (r *TextRenderer) Render(b *Board, step int) error {
	if r.ClearScreen {
		if err := r.Clear(); err != nil {
			// Out is not a terminal the clear command understands; keep frames plain from now on
			r.ClearScreen = false
			r.logger().Printf("disabling screen clearing: %v", err)
		}
	}

	var buf bytes.Buffer
	if r.DisplayStats {
		buf.WriteString(StatsLine(b, step))
		buf.WriteByte('\n')
	}
	for row := range b.height {
		for col := range b.width {
			switch {
			case b.cells[row][col]:
				buf.WriteString(gridPosBlock)
			case r.ShowDeadCells:
				buf.WriteString(gridPosDead)
			default:
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}

	if _, err := r.Out.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[TextRenderer.Render] failed to write step %d", step)
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[TextRenderer.Clear] clearing terminal")
}

func (r *TextRenderer) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
