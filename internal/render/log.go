package render

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// LogRenderer writes every render batch to the log. It is the default
// collaborator when no terminal is attached.
type LogRenderer struct {
	logger *slog.Logger
}

func NewLogRenderer(logger *slog.Logger) *LogRenderer {
	return &LogRenderer{
		logger: logger.With("component", "renderer"),
	}
}

func (that *LogRenderer) Render(batch entity.RenderBatch) {
	log := that.logger.With("session", batch.Session)

	if batch.Reset {
		log.Info("board cleared")
	}

	for _, placement := range batch.Placements {
		log.Info("mark placed",
			"cell", placement.Cell,
			"mark", placement.Mark,
			"player", placement.Player,
			"sound", placement.Sound,
		)
	}

	for _, panel := range batch.Panels {
		log.Info("player panel",
			"player", panel.PlayerID,
			"name", panel.DisplayName,
			"mark", panel.Mark,
			"local", panel.IsLocal,
			"avatar_bytes", avatarSize(panel.Avatar),
		)
	}

	attrs := []any{
		"current_mover", batch.CurrentMover,
		"local_turn", batch.IsLocalTurn,
		"invite", batch.ShowInvite,
	}
	if batch.Emphasis != nil {
		attrs = append(attrs, "emphasis_first", batch.Emphasis.First, "emphasis_second", batch.Emphasis.Second)
	}

	log.Debug("turn state", attrs...)
}

func avatarSize(asset *entity.Asset) int {
	if asset == nil {
		return 0
	}

	return len(asset.Data)
}
