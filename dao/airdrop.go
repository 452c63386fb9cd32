package dao

import (
	"context"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// ListAirdrops 按链/状态过滤，按创建时间倒序
func (d *Dao) ListAirdrops(c context.Context, blockchain string, status string, limit int) ([]types.Airdrop, error) {
	tx := d.DB.WithContext(c).Model(&types.Airdrop{})
	if blockchain != "" {
		tx = tx.Where("blockchain = ?", blockchain)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	// 空结果也要序列化成[]而不是null
	airdrops := make([]types.Airdrop, 0)
	err := tx.Order("created_at DESC").Limit(limit).Find(&airdrops).Error
	return airdrops, err
}

func (d *Dao) GetAirdropByID(c context.Context, airdropID string) (*types.Airdrop, error) {
	var airdrop types.Airdrop
	err := d.DB.WithContext(c).
		Where("id = ?", airdropID).First(&airdrop).Error
	if err != nil {
		return nil, err
	}
	return &airdrop, nil
}

func (d *Dao) CountAirdrops(c context.Context) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&types.Airdrop{}).Count(&count).Error
	return count, err
}

// BatchCreateAirdrops 批量写入目录数据
func (d *Dao) BatchCreateAirdrops(c context.Context, airdrops []types.Airdrop) error {
	return d.DB.WithContext(c).CreateInBatches(airdrops, 100).Error
}
