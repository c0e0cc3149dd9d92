package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	runeBlock = '█'
	runeDead  = '░'
)

// ScreenRenderer draws generations on a full-screen terminal
type ScreenRenderer struct {
	screen        tcell.Screen
	showDeadCells bool
	displayStats  bool
	style         tcell.Style
}

// NewScreenRenderer initializes the terminal screen
func NewScreenRenderer(showDeadCells, displayStats bool) (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] creating screen")
	}
	return NewScreenRendererOn(screen, showDeadCells, displayStats)
}

// NewScreenRendererOn initializes the given screen and draws on it
func NewScreenRendererOn(screen tcell.Screen, showDeadCells, displayStats bool) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRendererOn] initializing screen")
	}
	screen.Clear()
	return &ScreenRenderer{
		screen:        screen,
		showDeadCells: showDeadCells,
		displayStats:  displayStats,
		style:         tcell.StyleDefault,
	}, nil
}

// Render redraws the whole screen for one generation
func (r *ScreenRenderer) Render(b *Board, step int) error {
	r.screen.Clear()

	y := 0
	if r.displayStats {
		for x, ch := range []rune(StatsLine(b, step)) {
			r.screen.SetContent(x, y, ch, nil, r.style)
		}
		y++
	}

	for row := range b.height {
		for col := range b.width {
			ch := ' '
			switch {
			case b.cells[row][col]:
				ch = runeBlock
			case r.showDeadCells:
				ch = runeDead
			}
			r.screen.SetContent(col*2, y+row, ch, nil, r.style)
			r.screen.SetContent(col*2+1, y+row, ch, nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}

// WatchKeys blocks on terminal events until the screen is closed.
// q, Esc and Ctrl+C call quit; resizes redraw the screen.
func (r *ScreenRenderer) WatchKeys(quit func()) {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
