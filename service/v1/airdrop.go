package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xzap"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GetAirdrops 获取空投列表，目录为空时写入初始数据
func GetAirdrops(ctx context.Context, s *svc.ServerCtx, blockchain string, status string, limit int) ([]types.Airdrop, error) {
	if limit <= 0 {
		limit = defaultListLimit
	} else if limit > maxListLimit {
		limit = maxListLimit
	}

	airdrops, err := s.Dao.ListAirdrops(ctx, blockchain, status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list airdrops")
	}
	if len(airdrops) > 0 {
		return airdrops, nil
	}

	count, err := s.Dao.CountAirdrops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed on count airdrops")
	}
	if count > 0 {
		// 目录有数据，只是过滤条件没命中
		return airdrops, nil
	}

	samples := SampleAirdrops(time.Now().UTC())
	if err := s.Dao.BatchCreateAirdrops(ctx, samples); err != nil {
		return nil, errors.Wrap(err, "failed on seed airdrops")
	}
	xzap.WithContext(ctx).Info("seeded sample airdrops", zap.Int("count", len(samples)))

	return s.Dao.ListAirdrops(ctx, blockchain, status, limit)
}

func GetAirdrop(ctx context.Context, s *svc.ServerCtx, airdropID string) (*types.Airdrop, error) {
	airdrop, err := s.Dao.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("Airdrop not found")
		}
		return nil, errors.Wrap(err, "failed on get airdrop")
	}
	return airdrop, nil
}
