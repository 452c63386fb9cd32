package types

import "time"

type TrackStatus string

const (
	TrackStatusNotStarted TrackStatus = "not_started"
	TrackStatusInProgress TrackStatus = "in_progress"
	TrackStatusCompleted  TrackStatus = "completed"
)

// UserAirdropStatus 用户对某个空投的跟踪记录，(user_id, airdrop_id)唯一
type UserAirdropStatus struct {
	ID                 string      `gorm:"primaryKey;size:64" json:"id"`
	UserID             string      `gorm:"size:64;not null;index:idx_user_airdrop,unique" json:"user_id"`
	AirdropID          string      `gorm:"size:64;not null;index:idx_user_airdrop,unique" json:"airdrop_id"`
	Status             TrackStatus `gorm:"size:20;default:not_started" json:"status"`
	CompletedTasks     []string    `gorm:"serializer:json" json:"completed_tasks"`
	ProgressPercentage int         `gorm:"default:0" json:"progress_percentage"`
	WalletAddress      string      `gorm:"size:100" json:"wallet_address,omitempty"`
	EligibilityChecked bool        `gorm:"default:false" json:"eligibility_checked"`
	IsEligible         *bool       `json:"is_eligible,omitempty"`
	ReminderEnabled    bool        `gorm:"default:true" json:"reminder_enabled"`
	Notes              string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func (UserAirdropStatus) TableName() string {
	return "user_airdrop_status"
}

// Preferences 用户偏好设置
type Preferences struct {
	Theme                string   `json:"theme"`
	Notifications        bool     `json:"notifications"`
	PreferredBlockchains []string `json:"preferred_blockchains"`
}

// User 用户档案，check-in相关字段由后端原子更新
type User struct {
	ID              string      `gorm:"primaryKey;size:64" json:"id"`
	WalletAddresses []string    `gorm:"serializer:json" json:"wallet_addresses"`
	DailyStreak     int         `gorm:"default:0" json:"daily_streak"`
	TotalPoints     int         `gorm:"default:0" json:"total_points"`
	LastCheckin     *time.Time  `json:"last_checkin,omitempty"`
	Preferences     Preferences `gorm:"serializer:json" json:"preferences"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// DefaultPreferences 新用户默认偏好
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                "dark",
		Notifications:        true,
		PreferredBlockchains: []string{"ethereum", "bsc", "solana"},
	}
}

// CheckinResult 每日签到结果
type CheckinResult struct {
	Message      string `json:"message"`
	PointsEarned int    `json:"points_earned"`
	StreakBonus  int    `json:"streak_bonus"`
	Streak       int    `json:"streak"`
	TotalPoints  int    `json:"total_points"`
}

// TrackResult track/complete task操作的响应
type TrackResult struct {
	Message string `json:"message"`
}

type CompleteTaskResult struct {
	Message  string `json:"message"`
	Progress int    `json:"progress"`
}
