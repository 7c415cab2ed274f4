package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const BoardSize = 3

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	Cross
	Circle
)

func (that Cell) String() string {
	switch that {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return Empty
	}
}

// Board is stored row-major: Board[row][col].
type Board [BoardSize][BoardSize]Cell

// Count - returns how many cells hold the given value.
func (that Board) Count(cell Cell) int {
	n := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}
	return n
}

func (that Board) Full() bool {
	return that.Count(Empty) == 0
}

// Cells - returns the board flattened row by row.
func (that Board) Cells() [BoardSize * BoardSize]Cell {
	var out [BoardSize * BoardSize]Cell
	for row := range that {
		for col := range that[row] {
			out[row*BoardSize+col] = that[row][col]
		}
	}
	return out
}

// WinLines - every triple, in the order they are checked: rows, columns, diagonals.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

// Phase is the overall state of a game. Winner is set only when Status is StatusWon.
type Phase struct {
	Status Status
	Winner Cell
}

var (
	InProgress = Phase{Status: StatusInProgress}
	Tied       = Phase{Status: StatusTied}
)

func Won(mark Cell) Phase {
	return Phase{Status: StatusWon, Winner: mark}
}

func (that Phase) IsOver() bool {
	return that.Status != StatusInProgress
}

// Game owns the board and the turn of a single match.
type Game struct {
	board Board
	turn  Cell
}

func NewGame() *Game {
	return &Game{turn: Cross}
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Turn() Cell {
	return that.turn
}

// ApplyMove - places the current turn's mark at (row, col) and passes the turn.
// It returns the outcome of the resulting board. A rejected move leaves the game untouched.
func (that *Game) ApplyMove(row, col int) (Phase, error) {
	if phase := that.CheckOutcome(); phase.IsOver() {
		return phase, apperror.ErrGameOver
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return InProgress, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCoordinate, row, col)
	}

	if that.board[row][col] != Empty {
		return InProgress, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.board[row][col] = that.turn
	that.turn = that.turn.Opponent()

	return that.CheckOutcome(), nil
}

// CheckOutcome - evaluates the board without changing it.
func (that *Game) CheckOutcome() Phase {
	for _, line := range WinLines {
		a := that.board[line[0][0]][line[0][1]]
		b := that.board[line[1][0]][line[1][1]]
		c := that.board[line[2][0]][line[2][1]]
		if a != Empty && a == b && b == c {
			return Won(a)
		}
	}

	if that.board.Full() {
		return Tied
	}

	return InProgress
}

// Reset - starts a new match on the same game.
func (that *Game) Reset() {
	that.board = Board{}
	that.turn = Cross
}
