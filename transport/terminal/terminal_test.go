package terminal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

func newTestTerminal(t *testing.T) (*Terminal, *usecase.Session, tcell.SimulationScreen) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	grid := NewGrid()
	session := usecase.NewSession(logger, entity.NewGame(), grid, NewPrompt(grid))

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	return New(logger, session, screen), session, screen
}

// press clicks the centre of (row, col) on screen and releases.
func press(term *Terminal, row, col int) {
	x := originX + col*cellWidth + cellWidth/2
	y := originY + row*cellHeight + cellHeight/2
	term.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	term.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	term.session.Tick()
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminal_HandleEvent(t *testing.T) {
	t.Run("A click places a mark and it is drawn", func(t *testing.T) {
		// Given: a fresh terminal ui
		term, session, screen := newTestTerminal(t)

		// When: clicking the centre cell
		press(term, 1, 1)
		term.draw()

		// Then: Cross owns it and an X is on screen
		assert.Equal(t, entity.Cross, session.Board()[1][1])
		assert.Equal(t, 'X', runeAt(screen, originX+16, originY+7))
	})

	t.Run("Dragging with the button held plays only once", func(t *testing.T) {
		term, session, _ := newTestTerminal(t)

		term.handleEvent(tcell.NewEventMouse(originX+5, originY+2, tcell.Button1, tcell.ModNone))
		term.handleEvent(tcell.NewEventMouse(originX+16, originY+2, tcell.Button1, tcell.ModNone))

		assert.Equal(t, entity.Cross, session.Board()[0][0])
		assert.Equal(t, entity.Empty, session.Board()[0][1])
		assert.Equal(t, entity.Circle, session.Turn())
	})

	t.Run("Other buttons are ignored", func(t *testing.T) {
		term, session, _ := newTestTerminal(t)

		term.handleEvent(tcell.NewEventMouse(originX+5, originY+2, tcell.Button2, tcell.ModNone))

		assert.Equal(t, entity.Board{}, session.Board())
	})

	t.Run("q quits", func(t *testing.T) {
		term, session, _ := newTestTerminal(t)

		term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

		assert.False(t, session.Running())
	})

	t.Run("Escape quits", func(t *testing.T) {
		term, session, _ := newTestTerminal(t)

		term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

		assert.False(t, session.Running())
	})
}

func TestTerminal_GameOver(t *testing.T) {
	// Given: Cross wins along the top row
	term, session, screen := newTestTerminal(t)
	for _, move := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}} {
		press(term, move[0], move[1])
	}
	require.Equal(t, usecase.ScreenGameOver, session.Screen())

	// When: drawing
	term.draw()

	// Then: the prompt buttons are shown
	assert.Equal(t, 'Y', runeAt(screen, originX+12, originY+8))
	assert.Equal(t, 'N', runeAt(screen, originX+18, originY+8))

	// When: clicking Yes
	term.handleEvent(tcell.NewEventMouse(originX+13, originY+8, tcell.Button1, tcell.ModNone))

	// Then: a new round starts
	assert.Equal(t, usecase.ScreenPlaying, session.Screen())
	assert.Equal(t, entity.Board{}, session.Board())
}

func TestTerminal_Run(t *testing.T) {
	t.Run("Returns when the context is cancelled", func(t *testing.T) {
		// Given: a terminal ui on an uninitialised simulation screen
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		grid := NewGrid()
		session := usecase.NewSession(logger, entity.NewGame(), grid, NewPrompt(grid))
		term := New(logger, session, tcell.NewSimulationScreen("UTF-8"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// When: running until the deadline
		err := term.Run(ctx, 60)

		// Then: it stops cleanly
		require.NoError(t, err)
		assert.True(t, session.Running())
	})

	t.Run("Returns when the session stops", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		grid := NewGrid()
		session := usecase.NewSession(logger, entity.NewGame(), grid, NewPrompt(grid))
		screen := tcell.NewSimulationScreen("UTF-8")
		term := New(logger, session, screen)

		go func() {
			time.Sleep(20 * time.Millisecond)
			screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, term.Run(ctx, 60))
		assert.False(t, session.Running())
	})
}
