package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

const (
	checkinBasePoints     = 10
	checkinMaxStreakBonus = 50
)

// GetOrCreateUser 首次访问时建档
func GetOrCreateUser(ctx context.Context, s *svc.ServerCtx, userID string) (*types.User, error) {
	user, err := s.Dao.GetUserByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed on get user")
	}

	created := &types.User{
		ID:              userID,
		WalletAddresses: []string{},
		Preferences:     types.DefaultPreferences(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Dao.CreateUser(ctx, created); err != nil {
		return nil, errors.Wrap(err, "failed on create user")
	}
	return created, nil
}

func GetUserAirdrops(ctx context.Context, s *svc.ServerCtx, userID string) ([]types.UserAirdropStatus, error) {
	statuses, err := s.Dao.ListUserAirdrops(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list user airdrops")
	}
	return statuses, nil
}

// TrackAirdrop 开始跟踪某个空投，重复跟踪直接返回提示
func TrackAirdrop(ctx context.Context, s *svc.ServerCtx, userID string, airdropID string) (*types.TrackResult, error) {
	_, err := s.Dao.GetUserAirdrop(ctx, userID, airdropID)
	if err == nil {
		return &types.TrackResult{Message: "Already tracking this airdrop"}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed on get user airdrop")
	}

	now := time.Now().UTC()
	status := &types.UserAirdropStatus{
		ID:              uuid.NewString(),
		UserID:          userID,
		AirdropID:       airdropID,
		Status:          types.TrackStatusNotStarted,
		CompletedTasks:  []string{},
		ReminderEnabled: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Dao.CreateUserAirdrop(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed on create user airdrop")
	}

	return &types.TrackResult{Message: "Airdrop tracking started"}, nil
}

// CompleteTask 记录任务完成并重算进度百分比
func CompleteTask(ctx context.Context, s *svc.ServerCtx, userID string, airdropID string, taskID string) (*types.CompleteTaskResult, error) {
	status, err := s.Dao.GetUserAirdrop(ctx, userID, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("Airdrop tracking not found")
		}
		return nil, errors.Wrap(err, "failed on get user airdrop")
	}

	done := false
	for _, id := range status.CompletedTasks {
		if id == taskID {
			done = true
			break
		}
	}
	if !done {
		status.CompletedTasks = append(status.CompletedTasks, taskID)
	}

	airdrop, err := s.Dao.GetAirdropByID(ctx, airdropID)
	if err == nil && len(airdrop.Tasks) > 0 {
		status.ProgressPercentage = len(status.CompletedTasks) * 100 / len(airdrop.Tasks)
		if status.ProgressPercentage == 100 {
			status.Status = types.TrackStatusCompleted
		} else if status.ProgressPercentage > 0 {
			status.Status = types.TrackStatusInProgress
		}
	}

	status.UpdatedAt = time.Now().UTC()
	if err := s.Dao.UpdateUserAirdrop(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed on update user airdrop")
	}

	return &types.CompleteTaskResult{
		Message:  "Task completed",
		Progress: status.ProgressPercentage,
	}, nil
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Checkin 每日签到：同一UTC日期内重复签到不计分，连续日期递增streak
func Checkin(ctx context.Context, s *svc.ServerCtx, userID string) (*types.CheckinResult, error) {
	user, err := GetOrCreateUser(ctx, s, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if user.LastCheckin != nil && sameUTCDate(*user.LastCheckin, now) {
		return &types.CheckinResult{
			Message:     "Already checked in today",
			Streak:      user.DailyStreak,
			TotalPoints: user.TotalPoints,
		}, nil
	}

	yesterday := now.AddDate(0, 0, -1)
	if user.LastCheckin != nil && sameUTCDate(*user.LastCheckin, yesterday) {
		user.DailyStreak++
	} else {
		user.DailyStreak = 1
	}

	streakBonus := user.DailyStreak * 2
	if streakBonus > checkinMaxStreakBonus {
		streakBonus = checkinMaxStreakBonus
	}
	earned := checkinBasePoints + streakBonus

	user.TotalPoints += earned
	user.LastCheckin = &now

	if err := s.Dao.UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed on update user")
	}

	return &types.CheckinResult{
		Message:      "Check-in successful!",
		PointsEarned: earned,
		StreakBonus:  streakBonus,
		Streak:       user.DailyStreak,
		TotalPoints:  user.TotalPoints,
	}, nil
}
