package usecase

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

const titlePrefix = "Tic Tac Toe"

// Screen is what the host shows: the board, or the end-of-game prompt.
type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenGameOver
)

type gameEngine interface {
	ApplyMove(row, col int) (entity.Phase, error)
	CheckOutcome() entity.Phase
	Reset()
	Board() entity.Board
	Turn() entity.Cell
}

// Session drives one local match from the host loop. All methods except Snapshot
// must be called from that loop.
type Session struct {
	logger *slog.Logger
	engine gameEngine
	grid   layout.Grid
	prompt layout.Prompt

	roundID string
	screen  Screen
	phase   entity.Phase
	running bool

	snapshot atomic.Pointer[entity.Snapshot]
}

func NewSession(logger *slog.Logger, engine gameEngine, grid layout.Grid, prompt layout.Prompt) *Session {
	session := &Session{
		logger:  logger.With("component", "session"),
		engine:  engine,
		grid:    grid,
		prompt:  prompt,
		running: true,
	}

	session.startRound()

	return session
}

// PointerPressed - handles a primary-button press at (x, y).
func (that *Session) PointerPressed(x, y int) {
	log := that.logger.With("method", "PointerPressed", "round_id", that.roundID)
	point := image.Pt(x, y)

	if that.screen == ScreenGameOver {
		switch that.prompt.Hit(point) {
		case layout.ChoiceYes:
			log.Info("play again")
			that.engine.Reset()
			that.startRound()
		case layout.ChoiceNo:
			log.Info("player declined another round")
			that.running = false
		case layout.ChoiceNone:
		}
		return
	}

	row, col, ok := that.grid.CellAt(point)
	if !ok {
		log.Debug("press outside the board", "x", x, "y", y)
		return
	}

	mark := that.engine.Turn()
	if _, err := that.engine.ApplyMove(row, col); err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return
	}

	log.Debug("move accepted", "mark", mark.String(), "row", row, "col", col)
	that.publish()
}

// Tick - runs once per frame and switches to the game-over screen when the board is decided.
func (that *Session) Tick() {
	if that.screen != ScreenPlaying {
		return
	}

	phase := that.engine.CheckOutcome()
	if !phase.IsOver() {
		return
	}

	that.phase = phase
	that.screen = ScreenGameOver
	that.publish()

	log := that.logger.With("method", "Tick", "round_id", that.roundID)
	if phase.Status == entity.StatusWon {
		log.Info("game won", "winner", phase.Winner.String())
	} else {
		log.Info("game tied")
	}
}

// Quit - stops the session, as when the window is closed.
func (that *Session) Quit() {
	that.running = false
}

func (that *Session) Running() bool {
	return that.running
}

func (that *Session) Screen() Screen {
	return that.screen
}

func (that *Session) Board() entity.Board {
	return that.engine.Board()
}

func (that *Session) Turn() entity.Cell {
	return that.engine.Turn()
}

// Phase - returns the latched phase: it leaves InProgress only on a Tick.
func (that *Session) Phase() entity.Phase {
	return that.phase
}

func (that *Session) RoundID() string {
	return that.roundID
}

func (that *Session) Grid() layout.Grid {
	return that.grid
}

func (that *Session) Prompt() layout.Prompt {
	return that.prompt
}

func (that *Session) Title() string {
	return fmt.Sprintf("%s - Current Turn: %q", titlePrefix, that.engine.Turn().String())
}

// Message - returns the end-of-game text, empty while playing.
func (that *Session) Message() string {
	switch that.phase.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Player: '%s' has won!", that.phase.Winner)
	case entity.StatusTied:
		return "The game has ended in a tie!"
	default:
		return ""
	}
}

// Snapshot - returns the last published state. Safe for concurrent use.
func (that *Session) Snapshot() *entity.Snapshot {
	return that.snapshot.Load()
}

func (that *Session) startRound() {
	that.roundID = uuid.NewString()
	that.screen = ScreenPlaying
	that.phase = entity.InProgress
	that.publish()

	that.logger.Info("round started", "round_id", that.roundID)
}

func (that *Session) publish() {
	that.snapshot.Store(entity.NewSnapshot(that.roundID, that.engine.Board(), that.engine.Turn(), that.phase))
}
