package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type AssetRepository interface {
	CreateOrUpdate(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, playerID entity.PlayerID) (*entity.Asset, error)
	DeleteByID(ctx context.Context, playerID entity.PlayerID) error
}

type dbAsset struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssetRepository caches player avatars in Redis. A zero ttl keeps them
// forever.
func NewAssetRepository(client *redis.Client, ttl time.Duration) AssetRepository {
	return &dbAsset{
		client: client,
		ttl:    ttl,
	}
}

func assetKey(playerID entity.PlayerID) string {
	return "avatar:" + string(playerID)
}

func (that *dbAsset) CreateOrUpdate(ctx context.Context, asset *entity.Asset) error {
	assetJSON, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("could not marshal asset: %w", err)
	}

	if err = that.client.Set(ctx, assetKey(asset.PlayerID), assetJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set asset: %w", err)
	}

	return nil
}

func (that *dbAsset) GetByID(ctx context.Context, playerID entity.PlayerID) (*entity.Asset, error) {
	response, err := that.client.Get(ctx, assetKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrAssetNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get asset by id: %w", err)
	}

	var asset entity.Asset
	if err = json.Unmarshal([]byte(response), &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset: %w", err)
	}

	return &asset, nil
}

func (that *dbAsset) DeleteByID(ctx context.Context, playerID entity.PlayerID) error {
	deleted, err := that.client.Del(ctx, assetKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete asset by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrAssetNotFound
	}

	return nil
}
