package tracker

import (
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// Badge 状态标签，颜色值是主题里的语义色名
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// TrackingBadge 跟踪状态到标签。后端返回的任何状态值都接受，
// 未识别的落到中性色。
func TrackingBadge(status types.TrackStatus) Badge {
	switch status {
	case types.TrackStatusCompleted:
		return Badge{Label: "Completed", Color: "success"}
	case types.TrackStatusInProgress:
		return Badge{Label: "In Progress", Color: "warning"}
	case types.TrackStatusNotStarted:
		return Badge{Label: "Not Started", Color: "secondary"}
	default:
		return Badge{Label: string(status), Color: "secondary"}
	}
}

// LifecycleBadge 目录状态到标签，同样对未识别值回退中性色
func LifecycleBadge(status types.AirdropStatus) Badge {
	switch status {
	case types.AirdropStatusActive:
		return Badge{Label: "Active", Color: "success"}
	case types.AirdropStatusUpcoming:
		return Badge{Label: "Upcoming", Color: "info"}
	case types.AirdropStatusExpired:
		return Badge{Label: "Expired", Color: "danger"}
	default:
		return Badge{Label: string(status), Color: "secondary"}
	}
}
