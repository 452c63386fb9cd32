package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

func status(id, airdropID string, st types.TrackStatus, progress int) types.UserAirdropStatus {
	return types.UserAirdropStatus{
		ID:                 id,
		UserID:             "u1",
		AirdropID:          airdropID,
		Status:             st,
		ProgressPercentage: progress,
	}
}

func TestJoinDropsUnresolvedStatuses(t *testing.T) {
	statuses := []types.UserAirdropStatus{
		status("s1", "a1", types.TrackStatusInProgress, 30),
		status("s2", "a2", types.TrackStatusCompleted, 100),
		status("s3", "a3", types.TrackStatusNotStarted, 0),
	}
	catalog := map[string]types.Airdrop{
		"a1": {ID: "a1", Name: "One"},
		"a3": {ID: "a3", Name: "Three"},
	}

	vms := Join(statuses, catalog)

	// a2还没有目录详情，静默跳过，顺序保持
	require.Len(t, vms, 2)
	assert.Equal(t, "a1", vms[0].Airdrop.ID)
	assert.Equal(t, "a3", vms[1].Airdrop.ID)
}

func TestJoinEmptyInputs(t *testing.T) {
	assert.Empty(t, Join(nil, nil))
	assert.Empty(t, Join([]types.UserAirdropStatus{status("s1", "a1", types.TrackStatusCompleted, 100)}, nil))
	assert.Empty(t, Join(nil, map[string]types.Airdrop{"a1": {ID: "a1"}}))
}

func TestJoinDerivesViewModel(t *testing.T) {
	statuses := []types.UserAirdropStatus{
		{
			ID:                 "u1",
			AirdropID:          "a1",
			Status:             types.TrackStatusInProgress,
			CompletedTasks:     []string{"t1"},
			ProgressPercentage: 60,
		},
	}
	catalog := map[string]types.Airdrop{
		"a1": {
			ID:           "a1",
			Status:       types.AirdropStatusActive,
			RewardAmount: "100",
			RewardToken:  "USDC",
		},
	}

	vms := Join(statuses, catalog)

	require.Len(t, vms, 1)
	assert.Equal(t, 60, vms[0].Progress)
	assert.Equal(t, TierWarn, vms[0].Tier)
	assert.Equal(t, "100 USDC", vms[0].RewardText)
}

// 客户端不重算进度：即使completed_tasks与百分比对不上也展示服务端数字
func TestJoinTrustsServerProgress(t *testing.T) {
	statuses := []types.UserAirdropStatus{
		{
			ID:                 "u1",
			AirdropID:          "a1",
			Status:             types.TrackStatusInProgress,
			CompletedTasks:     []string{"t1", "t2", "t3"},
			ProgressPercentage: 10,
		},
	}
	catalog := map[string]types.Airdrop{
		"a1": {ID: "a1", Tasks: []types.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}},
	}

	vms := Join(statuses, catalog)
	require.Len(t, vms, 1)
	assert.Equal(t, 10, vms[0].Progress)
}

func TestFilterByStatus(t *testing.T) {
	vms := Join(
		[]types.UserAirdropStatus{
			status("s1", "a1", types.TrackStatusCompleted, 100),
			status("s2", "a2", types.TrackStatusInProgress, 40),
			status("s3", "a3", types.TrackStatusCompleted, 100),
			status("s4", "a4", types.TrackStatusNotStarted, 0),
		},
		map[string]types.Airdrop{
			"a1": {ID: "a1"}, "a2": {ID: "a2"}, "a3": {ID: "a3"}, "a4": {ID: "a4"},
		},
	)

	all := FilterByStatus(vms, TrackFilterAll)
	assert.Equal(t, vms, all)

	completed := FilterByStatus(vms, TrackFilterCompleted)
	require.Len(t, completed, 2)
	// 稳定过滤，不重排
	assert.Equal(t, "a1", completed[0].Airdrop.ID)
	assert.Equal(t, "a3", completed[1].Airdrop.ID)
	for _, vm := range completed {
		assert.Equal(t, types.TrackStatusCompleted, vm.Tracking.Status)
	}

	assert.Len(t, FilterByStatus(vms, TrackFilterInProgress), 1)
	assert.Len(t, FilterByStatus(vms, TrackFilterNotStarted), 1)
}

func TestFilterByLifecycle(t *testing.T) {
	airdrops := []types.Airdrop{
		{ID: "a1", Status: types.AirdropStatusActive},
		{ID: "a2", Status: types.AirdropStatusExpired},
		{ID: "a3", Status: types.AirdropStatusActive},
		{ID: "a4", Status: types.AirdropStatusUpcoming},
	}

	assert.Equal(t, airdrops, FilterByLifecycle(airdrops, LifecycleFilterAll))

	active := FilterByLifecycle(airdrops, LifecycleFilterActive)
	require.Len(t, active, 2)
	assert.Equal(t, "a1", active[0].ID)
	assert.Equal(t, "a3", active[1].ID)

	assert.Len(t, FilterByLifecycle(airdrops, LifecycleFilterUpcoming), 1)
	assert.Len(t, FilterByLifecycle(airdrops, LifecycleFilterExpired), 1)
}

func TestSummarize(t *testing.T) {
	vms := Join(
		[]types.UserAirdropStatus{
			status("s1", "a1", types.TrackStatusCompleted, 100),
			status("s2", "a2", types.TrackStatusInProgress, 40),
			status("s3", "a3", types.TrackStatusNotStarted, 0),
			status("s4", "a4", types.TrackStatusInProgress, 70),
		},
		map[string]types.Airdrop{
			"a1": {ID: "a1"}, "a2": {ID: "a2"}, "a3": {ID: "a3"}, "a4": {ID: "a4"},
		},
	)

	s := Summarize(vms)
	assert.Equal(t, len(vms), s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 2, s.InProgress)
	// 三种状态是一个划分：completed + in_progress + not_started == total
	assert.LessOrEqual(t, s.Completed+s.InProgress, s.Total)
	notStarted := len(FilterByStatus(vms, TrackFilterNotStarted))
	assert.Equal(t, s.Total, s.Completed+s.InProgress+notStarted)
}

func TestProgressColorBoundaries(t *testing.T) {
	cases := []struct {
		percentage int
		want       ProgressTier
	}{
		{0, TierDefault},
		{49, TierDefault},
		{50, TierWarn},
		{99, TierWarn},
		{100, TierComplete},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ProgressColor(tc.percentage), "percentage=%d", tc.percentage)
	}
}

func TestRewardText(t *testing.T) {
	assert.Equal(t, "100 USDC", RewardText(types.Airdrop{RewardAmount: "100", RewardToken: "USDC"}))
	assert.Equal(t, "100.5 ARB", RewardText(types.Airdrop{RewardAmount: "100.50", RewardToken: "ARB"}))
	// 区间金额不是数值，原样展示
	assert.Equal(t, "500-10000 ARB", RewardText(types.Airdrop{RewardAmount: "500-10000", RewardToken: "ARB"}))
	assert.Equal(t, "1000-5000 ZRO", RewardText(types.Airdrop{RewardAmount: "1000-5000 ZRO", RewardToken: ""}))
	// 金额本身已经带单位时不重复拼token
	assert.Equal(t, "1000-5000 ZRO", RewardText(types.Airdrop{RewardAmount: "1000-5000 ZRO", RewardToken: "ZRO"}))
	assert.Equal(t, "100-2000 tokens", RewardText(types.Airdrop{RewardAmount: "100-2000 tokens", RewardToken: "Various"}))
	assert.Equal(t, "ZRO", RewardText(types.Airdrop{RewardToken: "ZRO"}))
	assert.Equal(t, "TBA", RewardText(types.Airdrop{}))
}

func TestBadgesFallBackToNeutral(t *testing.T) {
	assert.Equal(t, "success", TrackingBadge(types.TrackStatusCompleted).Color)
	assert.Equal(t, "secondary", TrackingBadge(types.TrackStatus("claimed")).Color)
	assert.Equal(t, "claimed", TrackingBadge(types.TrackStatus("claimed")).Label)

	assert.Equal(t, "danger", LifecycleBadge(types.AirdropStatusExpired).Color)
	assert.Equal(t, "secondary", LifecycleBadge(types.AirdropStatus("paused")).Color)
}

func TestSortByReputationStable(t *testing.T) {
	airdrops := []types.Airdrop{
		{ID: "low", ReputationScore: 10},
		{ID: "tie1", ReputationScore: 90},
		{ID: "tie2", ReputationScore: 90},
		{ID: "top", ReputationScore: 95},
	}

	sorted := SortByReputation(airdrops)
	require.Len(t, sorted, 4)
	assert.Equal(t, "top", sorted[0].ID)
	assert.Equal(t, "tie1", sorted[1].ID)
	assert.Equal(t, "tie2", sorted[2].ID)
	assert.Equal(t, "low", sorted[3].ID)
	// 原切片不动
	assert.Equal(t, "low", airdrops[0].ID)
}
