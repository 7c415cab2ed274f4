package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

var (
	baseStyle      = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	highlightStyle = baseStyle.Foreground(tcell.ColorSilver)
	crossStyle     = baseStyle.Foreground(tcell.ColorRed).Bold(true)
	circleStyle    = baseStyle.Foreground(tcell.ColorBlue).Bold(true)
	yesStyle       = baseStyle.Background(tcell.ColorGreen)
	noStyle        = baseStyle.Background(tcell.ColorRed)
)

func (that *Terminal) draw() {
	that.screen.Clear()

	grid := that.session.Grid()
	bounds := grid.Bounds()
	that.fill(bounds, baseStyle)

	if that.session.Screen() == usecase.ScreenGameOver {
		that.drawPrompt(that.session.Message(), that.session.Prompt())
	} else {
		that.drawBoard(grid, that.session.Board())
		that.drawText(image.Pt(0, bounds.Max.Y+1), that.session.Title()+"  (q to quit)", tcell.StyleDefault)
	}

	that.screen.Show()
}

func (that *Terminal) drawBoard(grid layout.Grid, board entity.Board) {
	for row := range board {
		for col, cell := range board[row] {
			rect := grid.CellRect(row, col)

			border := baseStyle
			if cell == entity.Empty && that.cursor.In(rect) {
				border = highlightStyle
			}
			that.box(rect, border)

			center := rect.Min.Add(rect.Size().Div(2))
			switch cell {
			case entity.Cross:
				that.set(center, 'X', crossStyle)
			case entity.Circle:
				that.set(center, 'O', circleStyle)
			case entity.Empty:
			}
		}
	}
}

func (that *Terminal) drawPrompt(message string, prompt layout.Prompt) {
	that.drawCentered(prompt.Message, message, baseStyle)
	that.drawCentered(prompt.Question, "Play Again?", baseStyle)

	that.fill(prompt.Yes, yesStyle)
	that.drawCentered(prompt.Yes.Min.Add(prompt.Yes.Size().Div(2)), "Yes", yesStyle)

	that.fill(prompt.No, noStyle)
	that.drawCentered(prompt.No.Min.Add(prompt.No.Size().Div(2)), "No", noStyle)
}

func (that *Terminal) box(rect image.Rectangle, style tcell.Style) {
	last := rect.Max.Sub(image.Pt(1, 1))

	for x := rect.Min.X + 1; x < last.X; x++ {
		that.set(image.Pt(x, rect.Min.Y), tcell.RuneHLine, style)
		that.set(image.Pt(x, last.Y), tcell.RuneHLine, style)
	}
	for y := rect.Min.Y + 1; y < last.Y; y++ {
		that.set(image.Pt(rect.Min.X, y), tcell.RuneVLine, style)
		that.set(image.Pt(last.X, y), tcell.RuneVLine, style)
	}

	that.set(rect.Min, tcell.RuneULCorner, style)
	that.set(image.Pt(last.X, rect.Min.Y), tcell.RuneURCorner, style)
	that.set(image.Pt(rect.Min.X, last.Y), tcell.RuneLLCorner, style)
	that.set(last, tcell.RuneLRCorner, style)
}

func (that *Terminal) fill(rect image.Rectangle, style tcell.Style) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			that.set(image.Pt(x, y), ' ', style)
		}
	}
}

func (that *Terminal) drawCentered(center image.Point, s string, style tcell.Style) {
	that.drawText(image.Pt(center.X-len(s)/2, center.Y), s, style)
}

// drawText - writes s from p to the right. s is ASCII.
func (that *Terminal) drawText(p image.Point, s string, style tcell.Style) {
	for i, r := range s {
		that.set(image.Pt(p.X+i, p.Y), r, style)
	}
}

// set - draws r at board coordinates p.
func (that *Terminal) set(p image.Point, r rune, style tcell.Style) {
	that.screen.SetContent(originX+p.X, originY+p.Y, r, nil, style)
}
