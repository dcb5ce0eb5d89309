package terminal

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
)

// state is everything drawn on screen, accumulated from render batches.
type state struct {
	marks      [entity.CellCount]string
	panels     []entity.PlayerPanel
	emphasis   *entity.Emphasis
	showInvite bool
}

func (that *state) apply(batch entity.RenderBatch) {
	if batch.Reset {
		*that = state{}
	}

	for _, placement := range batch.Placements {
		that.marks[placement.Cell] = placement.Mark
	}

	if batch.Panels != nil {
		that.panels = batch.Panels
	}

	that.emphasis = batch.Emphasis
	that.showInvite = batch.ShowInvite
}

type glyph struct {
	x, y int
	ch   rune
	bold bool
}

// layout turns the state into terminal cells.
func (that *state) layout(geometry tictactoe.Geometry) []glyph {
	var glyphs []glyph

	left := int(math.Round(geometry.Origin.X))
	top := int(math.Round(geometry.Origin.Y))
	size := int(math.Round(geometry.Size()))
	cellSize := int(math.Round(geometry.CellSize))

	for i := 1; i < entity.BoardSide; i++ {
		for d := 0; d < size; d++ {
			glyphs = append(glyphs,
				glyph{x: left + i*cellSize, y: top + d, ch: '│'},
				glyph{x: left + d, y: top + i*cellSize, ch: '─'},
			)
		}
	}

	for i, mark := range that.marks {
		if mark == "" {
			continue
		}

		center, err := geometry.CellCenter(entity.CellIndex(i))
		if err != nil {
			continue
		}

		glyphs = append(glyphs, glyph{x: int(center.X), y: int(center.Y), ch: rune(mark[0]), bold: true})
	}

	if that.showInvite {
		glyphs = append(glyphs, text(left, top+size+1, inviteText, true)...)
	}

	for i, panel := range that.panels {
		glyphs = append(glyphs, text(left, top+size+3+i, panelLine(panel), that.emphasized(i))...)
	}

	return glyphs
}

func (that *state) emphasized(panel int) bool {
	if that.emphasis == nil {
		return false
	}

	if panel == 0 {
		return that.emphasis.First == entity.AlphaEmphasized
	}

	return that.emphasis.Second == entity.AlphaEmphasized
}

func panelLine(panel entity.PlayerPanel) string {
	line := panel.Mark + " " + panel.DisplayName
	if panel.DisplayName == "" {
		line = panel.Mark + " " + string(panel.PlayerID)
	}

	if panel.IsLocal {
		line += " (You)"
	}

	return line
}

func text(x, y int, s string, bold bool) []glyph {
	glyphs := make([]glyph, 0, len(s))
	for _, ch := range s {
		glyphs = append(glyphs, glyph{x: x, y: y, ch: ch, bold: bold})
		x++
	}

	return glyphs
}
