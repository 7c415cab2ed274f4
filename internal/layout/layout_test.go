package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_CellAt(t *testing.T) {
	t.Run("Every cell centre maps back to its own cell", func(t *testing.T) {
		// Given: a window sized grid
		grid := NewGrid(200, 200)

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				// When: pointing at the centre of a cell
				center := grid.CellRect(row, col).Min.Add(image.Pt(100, 100))
				gotRow, gotCol, ok := grid.CellAt(center)

				// Then: the same cell is reported
				assert.True(t, ok)
				assert.Equal(t, row, gotRow)
				assert.Equal(t, col, gotCol)
			}
		}
	})

	t.Run("x selects the column and y selects the row", func(t *testing.T) {
		grid := NewGrid(7, 3)

		row, col, ok := grid.CellAt(image.Pt(15, 1))

		assert.True(t, ok)
		assert.Equal(t, 0, row)
		assert.Equal(t, 2, col)
	})

	t.Run("Points outside the board are rejected", func(t *testing.T) {
		grid := NewGrid(200, 200)

		for _, p := range []image.Point{{-1, 0}, {0, -1}, {600, 10}, {10, 600}, {600, 600}} {
			_, _, ok := grid.CellAt(p)
			assert.False(t, ok, "point %v", p)
		}
	})

	t.Run("A zero grid never hits", func(t *testing.T) {
		_, _, ok := Grid{}.CellAt(image.Pt(0, 0))

		assert.False(t, ok)
	})
}

func TestGrid_Bounds(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 600, 600), NewGrid(200, 200).Bounds())
	assert.Equal(t, image.Rect(0, 0, 21, 9), NewGrid(7, 3).Bounds())
	assert.Equal(t, image.Rect(400, 200, 600, 400), NewGrid(200, 200).CellRect(1, 2))
}

func TestGrid_Prompt(t *testing.T) {
	t.Run("Places the prompt like the window layout", func(t *testing.T) {
		// Given: a 600x600 board and 7x13 glyph labels
		grid := NewGrid(200, 200)

		// When: laying out the prompt
		prompt := grid.Prompt(image.Pt(21, 13), image.Pt(14, 13), image.Pt(10, 10))

		// Then: message above centre, question at centre, buttons below
		assert.Equal(t, image.Pt(300, 200), prompt.Message)
		assert.Equal(t, image.Pt(300, 300), prompt.Question)
		assert.Equal(t, image.Rect(230, 359, 271, 392), prompt.Yes)
		assert.Equal(t, image.Rect(333, 359, 367, 392), prompt.No)
	})

	t.Run("Keeps terminal buttons apart", func(t *testing.T) {
		grid := NewGrid(7, 3)

		prompt := grid.Prompt(image.Pt(3, 1), image.Pt(2, 1), image.Pt(1, 0))

		assert.Equal(t, image.Pt(10, 3), prompt.Message)
		assert.Equal(t, image.Rect(5, 5, 10, 6), prompt.Yes)
		assert.Equal(t, image.Rect(11, 5, 15, 6), prompt.No)
		assert.False(t, prompt.Yes.Overlaps(prompt.No))
	})
}

func TestPrompt_Hit(t *testing.T) {
	prompt := NewGrid(200, 200).Prompt(image.Pt(21, 13), image.Pt(14, 13), image.Pt(10, 10))

	assert.Equal(t, ChoiceYes, prompt.Hit(image.Pt(250, 375)))
	assert.Equal(t, ChoiceYes, prompt.Hit(image.Pt(230, 359)))
	assert.Equal(t, ChoiceNo, prompt.Hit(image.Pt(350, 375)))
	assert.Equal(t, ChoiceNone, prompt.Hit(image.Pt(300, 375)))
	assert.Equal(t, ChoiceNone, prompt.Hit(image.Pt(0, 0)))
}
