package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfiles = fakeProfiles{
	"alice": {DisplayName: "Alice", AvatarReference: "http://avatars/alice.png"},
	"bob":   {DisplayName: "Bob", AvatarReference: "http://avatars/bob.png"},
}

func newTestBinder(loader *fakeLoader) *PlayerBinder {
	return NewPlayerBinder(slog.New(slog.NewTextHandler(io.Discard, nil)), loader, testProfiles)
}

func TestPlayerBinder_BindOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Binds players and starts one load batch", func(t *testing.T) {
		// Given: an unbound session
		loader := &fakeLoader{}
		binder := newTestBinder(loader)
		session := &Session{ID: 1}

		update := entity.Update{AllPlayerIDs: [2]entity.PlayerID{"alice", "bob"}, LocalViewerID: "bob"}

		// When: binding
		bound := binder.BindOnce(ctx, session, update, func(entity.PlayerAssets, error) {})

		// Then: the players are captured and their avatars requested
		require.True(t, bound)
		assert.True(t, session.PlayersBound)
		assert.Equal(t, entity.PlayerID("alice"), session.FirstPlayer)
		assert.Equal(t, entity.PlayerID("bob"), session.SecondPlayer)
		assert.Equal(t, entity.PlayerID("bob"), session.LocalViewer)

		calls := loader.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, []entity.AssetRequest{
			{PlayerID: "alice", AvatarReference: "http://avatars/alice.png"},
			{PlayerID: "bob", AvatarReference: "http://avatars/bob.png"},
		}, calls[0].requests)
	})

	t.Run("Second call in the same session is a no-op", func(t *testing.T) {
		// Given: a session bound by a first snapshot
		loader := &fakeLoader{}
		binder := newTestBinder(loader)
		session := &Session{ID: 1}

		binder.BindOnce(ctx, session, entity.Update{AllPlayerIDs: [2]entity.PlayerID{"alice", "bob"}}, func(entity.PlayerAssets, error) {})

		// When: binding again with a different snapshot
		bound := binder.BindOnce(ctx, session, entity.Update{AllPlayerIDs: [2]entity.PlayerID{"carol", "dave"}}, func(entity.PlayerAssets, error) {})

		// Then: nothing changes and no second batch starts
		assert.False(t, bound)
		assert.Equal(t, entity.PlayerID("alice"), session.FirstPlayer)
		assert.Len(t, loader.Calls(), 1)
	})
}

func TestPlayerBinder_Panels(t *testing.T) {
	// Given: a bound session where the local viewer is the second player
	binder := newTestBinder(&fakeLoader{})
	session := &Session{FirstPlayer: "alice", SecondPlayer: "bob", LocalViewer: "bob", PlayersBound: true}
	avatar := &entity.Asset{PlayerID: "alice", ContentType: "image/png", Data: []byte{1}}

	// When: building the panels
	panels := binder.Panels(session, entity.PlayerAssets{"alice": avatar})

	// Then: X goes to the first player, O and the local tag to the second
	require.Len(t, panels, 2)
	assert.Equal(t, entity.PlayerPanel{PlayerID: "alice", DisplayName: "Alice", Mark: entity.MarkX, Avatar: avatar}, panels[0])
	assert.Equal(t, entity.PlayerPanel{PlayerID: "bob", DisplayName: "Bob", Mark: entity.MarkO, IsLocal: true}, panels[1])
}

func TestSession_Reset(t *testing.T) {
	// Given: a session with bound players and three rendered cells
	session := &Session{
		ID:           3,
		FirstPlayer:  "alice",
		SecondPlayer: "bob",
		PlayersBound: true,
		Rendered:     entity.CellSet(0).With(0).With(1).With(2),
		AssetsReady:  true,
	}

	// When: resetting
	session.Reset()

	// Then: everything derived is gone and the id moves on
	assert.Equal(t, Session{ID: 4}, *session)
	assert.False(t, session.IsBound("alice"))
}
