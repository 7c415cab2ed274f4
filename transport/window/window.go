// Package window runs the game in a desktop window.
package window

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	lineThickness = 10
	borderWidth   = 2
	buttonPadding = 10

	messageScale = 3
	buttonScale  = 2
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

type Window struct {
	logger  *slog.Logger
	session session
	ctx     context.Context
	title   string
}

// NewGrid - returns a square grid of cellSize pixels.
func NewGrid(cellSize int) layout.Grid {
	return layout.NewGrid(cellSize, cellSize)
}

// NewPrompt - lays out the play-again prompt for the labels this window draws.
func NewPrompt(grid layout.Grid) layout.Prompt {
	return grid.Prompt(
		labelSize("Yes", buttonScale),
		labelSize("No", buttonScale),
		image.Pt(buttonPadding, buttonPadding),
	)
}

func New(logger *slog.Logger, session session) *Window {
	return &Window{
		logger:  logger.With("component", "window"),
		session: session,
	}
}

// Run - opens the window and blocks until the player quits, the window is closed or ctx is done.
// It must be called from the main goroutine.
func (that *Window) Run(ctx context.Context, fps int) error {
	that.ctx = ctx
	that.title = that.session.Title()

	bounds := that.session.Grid().Bounds()
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	ebiten.SetWindowTitle(that.title)
	ebiten.SetTPS(fps)

	that.logger.Info("opening window", "width", bounds.Dx(), "height", bounds.Dy(), "fps", fps)

	if err := ebiten.RunGame(that); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}

	that.session.Quit()
	that.logger.Info("window closed")

	return nil
}

func (that *Window) Update() error {
	if that.ctx != nil && that.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		that.session.PointerPressed(x, y)
	}

	that.session.Tick()

	if !that.session.Running() {
		return ebiten.Termination
	}

	if title := that.session.Title(); title != that.title {
		that.title = title
		ebiten.SetWindowTitle(title)
	}

	return nil
}

func (that *Window) Draw(screen *ebiten.Image) {
	screen.Fill(white)

	if that.session.Screen() == usecase.ScreenGameOver {
		drawPrompt(screen, that.session.Message(), that.session.Prompt())
		return
	}

	drawBoard(screen, that.session.Grid(), that.session.Board(), image.Pt(ebiten.CursorPosition()))
}

func (that *Window) Layout(_, _ int) (int, int) {
	bounds := that.session.Grid().Bounds()
	return bounds.Dx(), bounds.Dy()
}
