package types

import "time"

type AirdropStatus string

const (
	AirdropStatusActive   AirdropStatus = "active"
	AirdropStatusUpcoming AirdropStatus = "upcoming"
	AirdropStatusExpired  AirdropStatus = "expired"
)

type TaskType string

const (
	TaskTypeSocial   TaskType = "social"
	TaskTypeStaking  TaskType = "staking"
	TaskTypeSnapshot TaskType = "snapshot"
	TaskTypeTrading  TaskType = "trading"
	TaskTypeOther    TaskType = "other"
)

// Task 空投任务，属于唯一一个Airdrop
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        TaskType `json:"type"`
	URL         string   `json:"url,omitempty"`
	Required    bool     `json:"required"`
}

// Airdrop 空投活动目录记录
type Airdrop struct {
	ID              string            `gorm:"primaryKey;size:64" json:"id"`
	Name            string            `gorm:"size:200;not null" json:"name"`
	Description     string            `gorm:"type:text" json:"description"`
	Blockchain      string            `gorm:"size:50;index" json:"blockchain"`
	Status          AirdropStatus     `gorm:"size:20;index" json:"status"`
	RewardAmount    string            `gorm:"size:100" json:"reward_amount,omitempty"`
	RewardToken     string            `gorm:"size:50" json:"reward_token,omitempty"`
	Deadline        *time.Time        `json:"deadline,omitempty"`
	SnapshotDate    *time.Time        `json:"snapshot_date,omitempty"`
	ListingDate     *time.Time        `json:"listing_date,omitempty"`
	OfficialURL     string            `gorm:"size:500" json:"official_url"`
	LogoURL         string            `gorm:"size:500" json:"logo_url,omitempty"`
	Tasks           []Task            `gorm:"serializer:json" json:"tasks"`
	Requirements    []string          `gorm:"serializer:json" json:"requirements"`
	SocialLinks     map[string]string `gorm:"serializer:json" json:"social_links"`
	ReputationScore int               `gorm:"default:0" json:"reputation_score"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Airdrop) TableName() string {
	return "airdrops"
}

// Blockchain 支持的链
type Blockchain struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
