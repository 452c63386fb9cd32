// Package tracker derives the view models the tracker screens render:
// it joins per-user tracking records with catalog entries and computes
// display attributes. Everything in this file is pure.
package tracker

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// ProgressTier 进度条颜色档位
type ProgressTier string

const (
	TierComplete ProgressTier = "complete"
	TierWarn     ProgressTier = "warn"
	TierDefault  ProgressTier = "default"
)

// AirdropViewModel 跟踪记录与目录记录合并后的渲染数据。
// Progress直接采用服务端返回的百分比，客户端不重算。
type AirdropViewModel struct {
	Tracking   types.UserAirdropStatus `json:"tracking"`
	Airdrop    types.Airdrop           `json:"airdrop"`
	Progress   int                     `json:"progress"`
	Tier       ProgressTier            `json:"tier"`
	RewardText string                  `json:"reward_text"`
}

// Join 按airdrop_id把跟踪记录和目录合并。目录里缺失的记录说明详情
// 还没拉回来（目录和状态是并发获取的），静默丢弃而不是报错。
// 输入顺序保留。
func Join(statuses []types.UserAirdropStatus, catalog map[string]types.Airdrop) []AirdropViewModel {
	vms := make([]AirdropViewModel, 0, len(statuses))
	for _, st := range statuses {
		airdrop, ok := catalog[st.AirdropID]
		if !ok {
			continue
		}
		vms = append(vms, AirdropViewModel{
			Tracking:   st,
			Airdrop:    airdrop,
			Progress:   st.ProgressPercentage,
			Tier:       ProgressColor(st.ProgressPercentage),
			RewardText: RewardText(airdrop),
		})
	}
	return vms
}

// TrackFilter 跟踪页过滤项
type TrackFilter string

const (
	TrackFilterAll        TrackFilter = "all"
	TrackFilterNotStarted TrackFilter = "not_started"
	TrackFilterInProgress TrackFilter = "in_progress"
	TrackFilterCompleted  TrackFilter = "completed"
)

// FilterByStatus 按跟踪状态过滤，稳定，不重排
func FilterByStatus(vms []AirdropViewModel, filter TrackFilter) []AirdropViewModel {
	if filter == TrackFilterAll || filter == "" {
		return vms
	}
	out := make([]AirdropViewModel, 0, len(vms))
	for _, vm := range vms {
		if string(vm.Tracking.Status) == string(filter) {
			out = append(out, vm)
		}
	}
	return out
}

// LifecycleFilter 目录页过滤项
type LifecycleFilter string

const (
	LifecycleFilterAll      LifecycleFilter = "all"
	LifecycleFilterActive   LifecycleFilter = "active"
	LifecycleFilterUpcoming LifecycleFilter = "upcoming"
	LifecycleFilterExpired  LifecycleFilter = "expired"
)

// FilterByLifecycle 按目录生命周期状态过滤，稳定，不重排
func FilterByLifecycle(airdrops []types.Airdrop, filter LifecycleFilter) []types.Airdrop {
	if filter == LifecycleFilterAll || filter == "" {
		return airdrops
	}
	out := make([]types.Airdrop, 0, len(airdrops))
	for _, a := range airdrops {
		if string(a.Status) == string(filter) {
			out = append(out, a)
		}
	}
	return out
}

// Summary 跟踪页头部统计
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

func Summarize(vms []AirdropViewModel) Summary {
	s := Summary{Total: len(vms)}
	for _, vm := range vms {
		switch vm.Tracking.Status {
		case types.TrackStatusCompleted:
			s.Completed++
		case types.TrackStatusInProgress:
			s.InProgress++
		}
	}
	return s
}

// ProgressColor 百分比到颜色档位，边界精确：100是complete，[50,100)是warn
func ProgressColor(percentage int) ProgressTier {
	switch {
	case percentage == 100:
		return TierComplete
	case percentage >= 50:
		return TierWarn
	default:
		return TierDefault
	}
}

// RewardText 奖励展示文本。数值型金额用decimal规整（"100.50"→"100.5"），
// 区间型金额（"500-10000"）原样保留。金额里已经带了单位
// （"1000-5000 ZRO"、"100-2000 tokens"）就不再拼token。
func RewardText(a types.Airdrop) string {
	amount := a.RewardAmount
	if amount == "" {
		if a.RewardToken == "" {
			return "TBA"
		}
		return a.RewardToken
	}

	if d, err := decimal.NewFromString(amount); err == nil {
		amount = d.String()
	}

	if a.RewardToken == "" || strings.Contains(amount, " ") || strings.HasSuffix(amount, a.RewardToken) {
		return amount
	}
	return amount + " " + a.RewardToken
}

// SortByReputation 目录按信誉分降序，稳定排序保留并列项的服务端顺序
func SortByReputation(airdrops []types.Airdrop) []types.Airdrop {
	out := slices.Clone(airdrops)
	slices.SortStableFunc(out, func(a, b types.Airdrop) int {
		return b.ReputationScore - a.ReputationScore
	})
	return out
}
