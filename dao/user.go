package dao

import (
	"context"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

func (d *Dao) GetUserByID(c context.Context, userID string) (*types.User, error) {
	var user types.User
	err := d.DB.WithContext(c).
		Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Dao) CreateUser(c context.Context, user *types.User) error {
	return d.DB.WithContext(c).Create(user).Error
}

func (d *Dao) UpdateUser(c context.Context, user *types.User) error {
	return d.DB.WithContext(c).Save(user).Error
}

// ListUserAirdrops 用户全部跟踪记录
func (d *Dao) ListUserAirdrops(c context.Context, userID string) ([]types.UserAirdropStatus, error) {
	// 空结果也要序列化成[]而不是null
	statuses := make([]types.UserAirdropStatus, 0)
	err := d.DB.WithContext(c).
		Where("user_id = ?", userID).Find(&statuses).Error
	return statuses, err
}

func (d *Dao) GetUserAirdrop(c context.Context, userID string, airdropID string) (*types.UserAirdropStatus, error) {
	var status types.UserAirdropStatus
	err := d.DB.WithContext(c).
		Where("user_id = ? and airdrop_id = ?", userID, airdropID).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (d *Dao) CreateUserAirdrop(c context.Context, status *types.UserAirdropStatus) error {
	return d.DB.WithContext(c).Create(status).Error
}

func (d *Dao) UpdateUserAirdrop(c context.Context, status *types.UserAirdropStatus) error {
	return d.DB.WithContext(c).Save(status).Error
}
