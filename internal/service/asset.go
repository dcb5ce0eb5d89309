package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const maxAvatarBytes = 1 << 20

var ErrAvatarFetch = errors.New("failed to fetch avatar")

type assetRepo interface {
	CreateOrUpdate(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, playerID entity.PlayerID) (*entity.Asset, error)
}

type AssetService struct {
	logger     *slog.Logger
	assetRepo  assetRepo
	httpClient *http.Client
}

func NewAssetService(logger *slog.Logger, assetRepo assetRepo, httpClient *http.Client) *AssetService {
	return &AssetService{
		logger:     logger.With("component", "assets"),
		assetRepo:  assetRepo,
		httpClient: httpClient,
	}
}

// Load fetches the avatars of one binding batch in the background and calls
// done exactly once when all of them are settled.
func (that *AssetService) Load(ctx context.Context, requests []entity.AssetRequest, done func(entity.PlayerAssets, error)) {
	go func() {
		assets, err := that.LoadAll(ctx, requests)
		done(assets, err)
	}()
}

// LoadAll fetches the avatars of requests in parallel. A player whose avatar
// cannot be fetched is left out of the result; only a canceled ctx fails the
// batch.
func (that *AssetService) LoadAll(ctx context.Context, requests []entity.AssetRequest) (entity.PlayerAssets, error) {
	log := that.logger.With("method", "LoadAll")

	results := make([]*entity.Asset, len(requests))

	var group errgroup.Group
	for i, request := range requests {
		group.Go(func() error {
			asset, err := that.load(ctx, request)
			if err != nil {
				log.Warn("avatar not loaded", "playerID", request.PlayerID, "error", err)
				return nil
			}

			results[i] = asset

			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("avatar batch canceled: %w", err)
	}

	assets := make(entity.PlayerAssets, len(requests))
	for i, request := range requests {
		if results[i] != nil {
			assets[request.PlayerID] = results[i]
		}
	}

	return assets, nil
}

func (that *AssetService) load(ctx context.Context, request entity.AssetRequest) (*entity.Asset, error) {
	log := that.logger.With("method", "load", "playerID", request.PlayerID)

	cached, err := that.assetRepo.GetByID(ctx, request.PlayerID)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, apperror.ErrAssetNotFound) {
		log.Warn("avatar cache unavailable", "error", err)
	}

	// players without an avatar still get a panel
	if request.AvatarReference == "" {
		return nil, nil
	}

	asset, err := that.fetch(ctx, request)
	if err != nil {
		return nil, err
	}

	if err = that.assetRepo.CreateOrUpdate(ctx, asset); err != nil {
		log.Warn("failed to cache avatar", "error", err)
	}

	return asset, nil
}

func (that *AssetService) fetch(ctx context.Context, request entity.AssetRequest) (*entity.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, request.AvatarReference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build avatar request: %w", err)
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAvatarFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarFetch, err)
	}

	return &entity.Asset{
		PlayerID:    request.PlayerID,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
