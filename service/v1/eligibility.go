package service

import (
	"context"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// EVM链上地址要求0x十六进制格式，solana等非EVM链只做非空校验
var evmBlockchains = map[string]bool{
	"ethereum":  true,
	"bsc":       true,
	"polygon":   true,
	"arbitrum":  true,
	"optimism":  true,
	"avalanche": true,
	"fantom":    true,
}

func validWalletAddress(blockchain string, address string) bool {
	if address == "" {
		return false
	}
	if evmBlockchains[blockchain] {
		return ethcommon.IsHexAddress(address)
	}
	return true
}

// CheckEligibility 资格检查。链上校验不在本服务范围内，这里按固定规则模拟：
// 地址长度能被3整除视为不合格，其余合格。
func CheckEligibility(ctx context.Context, s *svc.ServerCtx, req types.EligibilityCheckReq) (*types.EligibilityResult, error) {
	wallet := strings.TrimSpace(req.WalletAddress)
	if wallet == "" {
		return nil, errcode.NewParamsErr("Invalid wallet address")
	}

	airdrop, err := GetAirdrop(ctx, s, req.AirdropID)
	if err != nil {
		return nil, err
	}

	if !validWalletAddress(airdrop.Blockchain, wallet) {
		return nil, errcode.NewParamsErr("Invalid wallet address")
	}

	now := time.Now().UTC()
	estimated := airdrop.RewardAmount
	if estimated == "" {
		estimated = "Unknown"
	}

	result := &types.EligibilityResult{
		AirdropID:     req.AirdropID,
		WalletAddress: wallet,
		IsEligible:    true,
		Details: types.EligibilityDetails{
			WalletAddress: wallet,
			Blockchain:    airdrop.Blockchain,
			CheckDate:     now.Format(time.RFC3339),
			CriteriaMet: []string{
				"Wallet has transaction history",
				"Meets minimum balance requirement",
				"Active before snapshot date",
			},
			EstimatedReward: estimated,
		},
		CheckedAt: now,
	}

	if len(wallet)%3 == 0 {
		result.IsEligible = false
		result.Details.CriteriaMet = []string{
			"Wallet found but doesn't meet minimum requirements",
		}
	}

	return result, nil
}
