package tictactoe

import "github.com/rocketscienceinc/tictactoe-client/internal/entity"

// Diff returns the placements needed to bring rendered up to date with
// cells, in ascending cell order. Rendered cells are never revisited, so
// the result contains no removals or changes of owner.
func Diff(rendered entity.CellSet, cells entity.Board) []entity.Placement {
	var placements []entity.Placement

	for i, owner := range cells {
		cell := entity.CellIndex(i)
		if !owner.IsSet() || rendered.Has(cell) {
			continue
		}

		placements = append(placements, entity.Placement{
			Cell:   cell,
			Player: owner,
			Sound:  entity.SoundSelect,
		})
	}

	return placements
}

// MarkFor returns the mark drawn for a player: X for the first bound
// player, O for the second. Unknown players get no mark.
func MarkFor(player, first, second entity.PlayerID) (string, bool) {
	switch {
	case !player.IsSet():
		return "", false
	case player == first:
		return entity.MarkX, true
	case player == second:
		return entity.MarkO, true
	default:
		return "", false
	}
}
