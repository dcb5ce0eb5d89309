package usecase

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockMoveSender struct {
	mock.Mock
}

func (that *mockMoveSender) SendMoveRequest(ctx context.Context, cell entity.CellIndex) error {
	args := that.Called(ctx, cell)
	return args.Error(0)
}

type loadCall struct {
	requests []entity.AssetRequest
	done     func(entity.PlayerAssets, error)
}

type fakeLoader struct {
	mu    sync.Mutex
	calls []loadCall
}

func (that *fakeLoader) Load(_ context.Context, requests []entity.AssetRequest, done func(entity.PlayerAssets, error)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.calls = append(that.calls, loadCall{requests: requests, done: done})
}

func (that *fakeLoader) Calls() []loadCall {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]loadCall(nil), that.calls...)
}

type fakeProfiles map[entity.PlayerID]entity.PlayerProfile

func (that fakeProfiles) GetPlayerProfile(id entity.PlayerID) (entity.PlayerProfile, bool) {
	profile, ok := that[id]
	return profile, ok
}

type recordingRenderer struct {
	mu      sync.Mutex
	batches []entity.RenderBatch
}

func (that *recordingRenderer) Render(batch entity.RenderBatch) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.batches = append(that.batches, batch)
}

func (that *recordingRenderer) Batches() []entity.RenderBatch {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.RenderBatch(nil), that.batches...)
}

func (that *recordingRenderer) Last() entity.RenderBatch {
	batches := that.Batches()
	return batches[len(batches)-1]
}
