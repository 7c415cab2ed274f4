package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

var (
	black      = color.RGBA{A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	highlight  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	crossRed   = color.RGBA{R: 255, A: 255}
	circleBlue = color.RGBA{B: 255, A: 255}
	yesGreen   = color.RGBA{G: 255, A: 255}
	noRed      = color.RGBA{R: 255, A: 255}

	face font.Face = basicfont.Face7x13
)

func drawBoard(screen *ebiten.Image, grid layout.Grid, board entity.Board, cursor image.Point) {
	for row := range board {
		for col, cell := range board[row] {
			rect := grid.CellRect(row, col)
			strokeRect(screen, rect, black)

			switch cell {
			case entity.Cross:
				drawCross(screen, rect)
			case entity.Circle:
				drawCircle(screen, rect)
			case entity.Empty:
				if cursor.In(rect) {
					strokeRect(screen, rect, highlight)
				}
			}
		}
	}
}

func drawCross(screen *ebiten.Image, rect image.Rectangle) {
	r := rect.Inset(lineThickness)
	x1, y1, x2, y2 := float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)

	vector.StrokeLine(screen, x1, y1, x2, y2, lineThickness, crossRed, true)
	vector.StrokeLine(screen, x2, y1, x1, y2, lineThickness, crossRed, true)
}

func drawCircle(screen *ebiten.Image, rect image.Rectangle) {
	center := rect.Min.Add(rect.Size().Div(2))
	radius := float32(rect.Dx()/2 - lineThickness)

	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, lineThickness, circleBlue, true)
}

func strokeRect(screen *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), borderWidth, clr, false)
}

func drawPrompt(screen *ebiten.Image, message string, prompt layout.Prompt) {
	drawText(screen, message, prompt.Message, messageScale, black)
	drawText(screen, "Play Again?", prompt.Question, messageScale, black)

	drawButton(screen, "Yes", prompt.Yes, yesGreen)
	drawButton(screen, "No", prompt.No, noRed)
}

func drawButton(screen *ebiten.Image, label string, rect image.Rectangle, fill color.Color) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), fill, false)
	drawText(screen, label, rect.Min.Add(rect.Size().Div(2)), buttonScale, black)
}

func drawText(screen *ebiten.Image, s string, center image.Point, scale int, clr color.Color) {
	x, y := textOrigin(text.BoundString(face, s), center, scale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)

	text.DrawWithOptions(screen, s, face, op)
}

// textOrigin - returns the dot position that centres bounds, drawn at scale, on center.
// bounds is relative to the dot, so Min.Y is negative for glyphs above the baseline.
func textOrigin(bounds image.Rectangle, center image.Point, scale int) (int, int) {
	mid := bounds.Min.Add(bounds.Size().Div(2)).Mul(scale)
	return center.X - mid.X, center.Y - mid.Y
}

func labelSize(s string, scale int) image.Point {
	return text.BoundString(face, s).Size().Mul(scale)
}
