package tracker

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/mr"
	"go.uber.org/zap"

	"github.com/anoman-dev/Airdrop-tracker/client"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xzap"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// Loader 负责各屏幕的数据装配：并发拉取、容忍部分失败、产出view model。
// 不做重试也不设超时，取消通过ctx传入。
type Loader struct {
	api *client.Client
}

func NewLoader(api *client.Client) *Loader {
	return &Loader{api: api}
}

// TrackedScreen 跟踪页数据
type TrackedScreen struct {
	ViewModels []AirdropViewModel `json:"view_models"`
	Summary    Summary            `json:"summary"`
}

// LoadTracked 先取用户的跟踪记录，再对每个airdrop_id并发拉详情。
// 单个详情失败只记日志并让该条目缺席，不影响其它条目（settle all,
// collect successes）。缺席的条目会被Join静默跳过。
func (l *Loader) LoadTracked(ctx context.Context, userID string) (*TrackedScreen, error) {
	statuses, err := l.api.ListUserAirdrops(ctx, userID)
	if err != nil {
		xzap.WithContext(ctx).Error("load tracked airdrops failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	details, err := l.fetchDetails(ctx, statuses)
	if err != nil {
		return nil, err
	}

	vms := Join(statuses, details)
	return &TrackedScreen{
		ViewModels: vms,
		Summary:    Summarize(vms),
	}, nil
}

func (l *Loader) fetchDetails(ctx context.Context, statuses []types.UserAirdropStatus) (map[string]types.Airdrop, error) {
	ids := make([]string, 0, len(statuses))
	seen := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		if seen[st.AirdropID] {
			continue
		}
		seen[st.AirdropID] = true
		ids = append(ids, st.AirdropID)
	}
	if len(ids) == 0 {
		return map[string]types.Airdrop{}, nil
	}

	return mr.MapReduce(
		func(source chan<- string) {
			for _, id := range ids {
				source <- id
			}
		},
		func(id string, writer mr.Writer[types.Airdrop], cancel func(error)) {
			airdrop, err := l.api.GetAirdrop(ctx, id)
			if err != nil {
				// 失败条目缺席即可，不取消整批
				xzap.WithContext(ctx).Warn("fetch airdrop detail failed", zap.String("airdrop_id", id), zap.Error(err))
				return
			}
			writer.Write(*airdrop)
		},
		func(pipe <-chan types.Airdrop, writer mr.Writer[map[string]types.Airdrop], cancel func(error)) {
			details := make(map[string]types.Airdrop, len(ids))
			for airdrop := range pipe {
				details[airdrop.ID] = airdrop
			}
			writer.Write(details)
		},
		mr.WithContext(ctx),
	)
}

// LoadCatalog 目录页：整页拉取后客户端过滤、按信誉分排序
func (l *Loader) LoadCatalog(ctx context.Context, filter LifecycleFilter) ([]types.Airdrop, error) {
	airdrops, err := l.api.ListAirdrops(ctx, client.ListAirdropsOptions{})
	if err != nil {
		xzap.WithContext(ctx).Error("load catalog failed", zap.Error(err))
		return nil, err
	}
	return SortByReputation(FilterByLifecycle(airdrops, filter)), nil
}

// ProfileScreen 个人页数据
type ProfileScreen struct {
	User       types.User `json:"user"`
	CanCheckin bool       `json:"can_checkin"`
}

func (l *Loader) LoadProfile(ctx context.Context, userID string, now time.Time) (*ProfileScreen, error) {
	user, err := l.api.GetUser(ctx, userID)
	if err != nil {
		xzap.WithContext(ctx).Error("load profile failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &ProfileScreen{
		User:       *user,
		CanCheckin: CanCheckinToday(user.LastCheckin, now),
	}, nil
}

func (l *Loader) CheckIn(ctx context.Context, userID string) (*types.CheckinResult, error) {
	res, err := l.api.Checkin(ctx, userID)
	if err != nil {
		xzap.WithContext(ctx).Error("checkin failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (l *Loader) Track(ctx context.Context, userID string, airdropID string) (*types.TrackResult, error) {
	res, err := l.api.TrackAirdrop(ctx, userID, airdropID)
	if err != nil {
		xzap.WithContext(ctx).Error("track airdrop failed", zap.String("airdrop_id", airdropID), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (l *Loader) CompleteTask(ctx context.Context, userID string, airdropID string, taskID string) (*types.CompleteTaskResult, error) {
	res, err := l.api.CompleteTask(ctx, userID, airdropID, taskID)
	if err != nil {
		xzap.WithContext(ctx).Error("complete task failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (l *Loader) CheckEligibility(ctx context.Context, req types.EligibilityCheckReq) (*types.EligibilityResult, error) {
	res, err := l.api.CheckEligibility(ctx, req)
	if err != nil {
		xzap.WithContext(ctx).Error("eligibility check failed", zap.String("airdrop_id", req.AirdropID), zap.Error(err))
		return nil, err
	}
	return res, nil
}
