package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type assetLoader interface {
	Load(ctx context.Context, requests []entity.AssetRequest, done func(entity.PlayerAssets, error))
}

type profileSource interface {
	GetPlayerProfile(id entity.PlayerID) (entity.PlayerProfile, bool)
}

// PlayerBinder captures the two players of a session and starts loading
// their avatars.
type PlayerBinder struct {
	logger   *slog.Logger
	loader   assetLoader
	profiles profileSource
}

func NewPlayerBinder(logger *slog.Logger, loader assetLoader, profiles profileSource) *PlayerBinder {
	return &PlayerBinder{
		logger:   logger,
		loader:   loader,
		profiles: profiles,
	}
}

// BindOnce binds the players of update into session and starts one asset
// load batch. It does nothing if the session is already bound and reports
// whether it bound.
func (that *PlayerBinder) BindOnce(ctx context.Context, session *Session, update entity.Update, done func(entity.PlayerAssets, error)) bool {
	if session.PlayersBound {
		return false
	}

	session.PlayersBound = true
	session.FirstPlayer = update.AllPlayerIDs[0]
	session.SecondPlayer = update.AllPlayerIDs[1]
	session.LocalViewer = update.LocalViewerID

	requests := make([]entity.AssetRequest, 0, len(update.AllPlayerIDs))
	for _, id := range session.Players() {
		profile, _ := that.profiles.GetPlayerProfile(id)
		requests = append(requests, entity.AssetRequest{
			PlayerID:        id,
			AvatarReference: profile.AvatarReference,
		})
	}

	that.logger.Info("players bound",
		"method", "BindOnce",
		"session", session.ID,
		"first", session.FirstPlayer,
		"second", session.SecondPlayer,
		"local", session.LocalViewer,
	)

	that.loader.Load(ctx, requests, done)

	return true
}

// Panels builds the identity panels of both bound players.
func (that *PlayerBinder) Panels(session *Session, assets entity.PlayerAssets) []entity.PlayerPanel {
	panels := make([]entity.PlayerPanel, 0, 2)

	for i, id := range session.Players() {
		profile, _ := that.profiles.GetPlayerProfile(id)

		mark := entity.MarkX
		if i == 1 {
			mark = entity.MarkO
		}

		panels = append(panels, entity.PlayerPanel{
			PlayerID:    id,
			DisplayName: profile.DisplayName,
			Mark:        mark,
			Avatar:      assets[id],
			IsLocal:     session.LocalViewer.IsSet() && session.LocalViewer == id,
		})
	}

	return panels
}
