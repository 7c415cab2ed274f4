// Package terminal runs the game in a text terminal with mouse support.
package terminal

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	cellWidth  = 11
	cellHeight = 5

	// top-left corner of the board on screen
	originX = 2
	originY = 1
)

type session interface {
	PointerPressed(x, y int)
	Tick()
	Quit()
	Running() bool
	Screen() usecase.Screen
	Board() entity.Board
	Title() string
	Message() string
	Grid() layout.Grid
	Prompt() layout.Prompt
}

type Terminal struct {
	logger  *slog.Logger
	session session
	screen  tcell.Screen

	pressed bool
	cursor  image.Point
}

func NewGrid() layout.Grid {
	return layout.NewGrid(cellWidth, cellHeight)
}

// NewPrompt - lays out the play-again prompt in character cells.
func NewPrompt(grid layout.Grid) layout.Prompt {
	return grid.Prompt(image.Pt(len("Yes"), 1), image.Pt(len("No"), 1), image.Pt(1, 0))
}

// New - wraps screen, which must not be initialised yet.
func New(logger *slog.Logger, session session, screen tcell.Screen) *Terminal {
	return &Terminal{
		logger:  logger.With("component", "terminal"),
		session: session,
		screen:  screen,
		cursor:  image.Pt(-1, -1),
	}
}

// Run - takes over the terminal until the player quits or ctx is done.
func (that *Terminal) Run(ctx context.Context, fps int) error {
	if err := that.screen.Init(); err != nil {
		return fmt.Errorf("could not initialise terminal: %w", err)
	}
	defer that.screen.Fini()

	that.screen.EnableMouse()
	that.screen.HideCursor()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go that.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	that.logger.Info("terminal ui started", "fps", fps)
	that.draw()

	for that.session.Running() {
		select {
		case <-ctx.Done():
			that.logger.Info("terminal ui cancelled")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			that.handleEvent(ev)
		case <-ticker.C:
			that.session.Tick()
			that.draw()
		}
	}

	that.logger.Info("terminal ui stopped")

	return nil
}

// handleEvent - forwards quit keys and Button1 presses to the session.
func (that *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			that.session.Quit()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		that.cursor = image.Pt(x-originX, y-originY)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !that.pressed {
			that.session.PointerPressed(that.cursor.X, that.cursor.Y)
		}
		that.pressed = down
	case *tcell.EventResize:
		that.screen.Sync()
	}
}
