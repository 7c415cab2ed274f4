// Package layout maps pointer positions onto the board and the play-again prompt.
// Units are whatever the host draws in: pixels for a window, character cells for a terminal.
package layout

import (
	"image"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type Grid struct {
	CellWidth  int
	CellHeight int
}

func NewGrid(cellWidth, cellHeight int) Grid {
	return Grid{CellWidth: cellWidth, CellHeight: cellHeight}
}

// Bounds - returns the area covered by the whole board.
func (that Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, that.CellWidth*entity.BoardSize, that.CellHeight*entity.BoardSize)
}

func (that Grid) CellRect(row, col int) image.Rectangle {
	x, y := col*that.CellWidth, row*that.CellHeight
	return image.Rect(x, y, x+that.CellWidth, y+that.CellHeight)
}

// CellAt - translates a pointer position into cell indices. ok is false outside the board.
func (that Grid) CellAt(p image.Point) (row, col int, ok bool) {
	if that.CellWidth <= 0 || that.CellHeight <= 0 || !p.In(that.Bounds()) {
		return 0, 0, false
	}
	return p.Y / that.CellHeight, p.X / that.CellWidth, true
}

type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceYes
	ChoiceNo
)

// Prompt holds the game-over screen geometry. Message and Question are text centres;
// Yes and No are button areas with padding included.
type Prompt struct {
	Message  image.Point
	Question image.Point
	Yes      image.Rectangle
	No       image.Rectangle
}

// Prompt - places the end-of-game message above the board centre, the question at the
// centre and the two buttons side by side below it. yes and no are the label sizes.
func (that Grid) Prompt(yes, no, padding image.Point) Prompt {
	bounds := that.Bounds()
	center := image.Pt(bounds.Dx()/2, bounds.Dy()/2)

	gap := bounds.Dx() / 12
	if minGap := max(yes.X, no.X)/2 + padding.X + 1; gap < minGap {
		gap = minGap
	}

	buttonsY := center.Y + bounds.Dy()/8

	return Prompt{
		Message:  image.Pt(center.X, center.Y-bounds.Dy()/6),
		Question: center,
		Yes:      padded(centered(image.Pt(center.X-gap, buttonsY), yes), padding),
		No:       padded(centered(image.Pt(center.X+gap, buttonsY), no), padding),
	}
}

// Hit - reports which button, if any, contains p.
func (that Prompt) Hit(p image.Point) Choice {
	switch {
	case p.In(that.Yes):
		return ChoiceYes
	case p.In(that.No):
		return ChoiceNo
	default:
		return ChoiceNone
	}
}

func centered(center, size image.Point) image.Rectangle {
	origin := center.Sub(size.Div(2))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

func padded(r image.Rectangle, padding image.Point) image.Rectangle {
	return image.Rectangle{Min: r.Min.Sub(padding), Max: r.Max.Add(padding)}
}
