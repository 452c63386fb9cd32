package types

import "time"

// EligibilityCheckReq 资格检查请求，只转发钱包地址，不做任何链上校验
type EligibilityCheckReq struct {
	WalletAddress string `json:"wallet_address" binding:"required" validate:"required"`
	AirdropID     string `json:"airdrop_id" binding:"required" validate:"required"`
}

type EligibilityDetails struct {
	WalletAddress   string   `json:"wallet_address"`
	Blockchain      string   `json:"blockchain"`
	CheckDate       string   `json:"check_date"`
	CriteriaMet     []string `json:"criteria_met"`
	EstimatedReward string   `json:"estimated_reward"`
}

// EligibilityResult 每次检查生成，不在客户端持久化
type EligibilityResult struct {
	AirdropID     string             `json:"airdrop_id"`
	WalletAddress string             `json:"wallet_address"`
	IsEligible    bool               `json:"is_eligible"`
	Details       EligibilityDetails `json:"details"`
	CheckedAt     time.Time          `json:"checked_at"`
}
