package service

import (
	"time"

	"github.com/google/uuid"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

// SampleAirdrops 空目录时的初始数据
func SampleAirdrops(now time.Time) []types.Airdrop {
	return []types.Airdrop{
		{
			ID:           uuid.NewString(),
			Name:         "LayerZero Airdrop",
			Description:  "LayerZero is a protocol that enables omnichain applications. Users who have bridged assets using LayerZero protocol may be eligible for the airdrop.",
			Blockchain:   "ethereum",
			Status:       types.AirdropStatusUpcoming,
			RewardToken:  "ZRO",
			RewardAmount: "1000-5000 ZRO",
			OfficialURL:  "https://layerzero.network",
			LogoURL:      "https://cryptologos.cc/logos/layerzero-zro-logo.png",
			Tasks: []types.Task{
				{
					ID:          uuid.NewString(),
					Title:       "Bridge Assets",
					Description: "Use LayerZero protocol to bridge assets between chains",
					Type:        types.TaskTypeTrading,
					URL:         "https://layerzero.network/bridge",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Follow Twitter",
					Description: "Follow @LayerZero_Labs on Twitter",
					Type:        types.TaskTypeSocial,
					URL:         "https://twitter.com/LayerZero_Labs",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Join Discord",
					Description: "Join LayerZero Discord community",
					Type:        types.TaskTypeSocial,
					URL:         "https://discord.gg/layerzero",
					Required:    true,
				},
			},
			Requirements: []string{
				"Used LayerZero protocol for bridging",
				"Minimum 5 transactions",
				"Active wallet for 30+ days",
			},
			SocialLinks: map[string]string{
				"website": "https://layerzero.network",
				"twitter": "https://twitter.com/LayerZero_Labs",
				"discord": "https://discord.gg/layerzero",
			},
			ReputationScore: 90,
			Deadline:        timePtr(now.AddDate(0, 0, 45)),
			SnapshotDate:    timePtr(now.AddDate(0, 0, 30)),
			ListingDate:     timePtr(now.AddDate(0, 0, 60)),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Arbitrum ARB Airdrop",
			Description:  "Arbitrum is a Layer 2 scaling solution for Ethereum. Users who have used Arbitrum One before the snapshot may be eligible.",
			Blockchain:   "arbitrum",
			Status:       types.AirdropStatusActive,
			RewardToken:  "ARB",
			RewardAmount: "500-10000 ARB",
			OfficialURL:  "https://arbitrum.foundation",
			LogoURL:      "https://cryptologos.cc/logos/arbitrum-arb-logo.png",
			Tasks: []types.Task{
				{
					ID:          uuid.NewString(),
					Title:       "Use Arbitrum One",
					Description: "Make transactions on Arbitrum One network",
					Type:        types.TaskTypeTrading,
					URL:         "https://bridge.arbitrum.io",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Follow @arbitrum",
					Description: "Follow official Arbitrum Twitter",
					Type:        types.TaskTypeSocial,
					URL:         "https://twitter.com/arbitrum",
					Required:    true,
				},
			},
			Requirements: []string{
				"Used Arbitrum One before snapshot",
				"Minimum transaction volume",
				"Active for multiple months",
			},
			SocialLinks: map[string]string{
				"website": "https://arbitrum.foundation",
				"twitter": "https://twitter.com/arbitrum",
			},
			ReputationScore: 95,
			Deadline:        timePtr(now.AddDate(0, 0, 15)),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Solana Ecosystem Airdrop",
			Description:  "Various Solana ecosystem projects are distributing tokens to active users of the Solana network.",
			Blockchain:   "solana",
			Status:       types.AirdropStatusActive,
			RewardToken:  "Various",
			RewardAmount: "100-2000 tokens",
			OfficialURL:  "https://solana.com",
			LogoURL:      "https://cryptologos.cc/logos/solana-sol-logo.png",
			Tasks: []types.Task{
				{
					ID:          uuid.NewString(),
					Title:       "Use Solana DeFi",
					Description: "Interact with Solana DeFi protocols",
					Type:        types.TaskTypeTrading,
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					Title:       "Hold SOL",
					Description: "Hold minimum 1 SOL in wallet",
					Type:        types.TaskTypeStaking,
					Required:    true,
				},
			},
			Requirements: []string{
				"Active Solana wallet",
				"Used DeFi protocols",
				"Minimum SOL balance",
			},
			SocialLinks: map[string]string{
				"website": "https://solana.com",
				"twitter": "https://twitter.com/solana",
			},
			ReputationScore: 85,
			Deadline:        timePtr(now.AddDate(0, 0, 20)),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// SupportedBlockchains 静态链列表
func SupportedBlockchains() []types.Blockchain {
	return []types.Blockchain{
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH"},
		{ID: "bsc", Name: "Binance Smart Chain", Symbol: "BNB"},
		{ID: "solana", Name: "Solana", Symbol: "SOL"},
		{ID: "polygon", Name: "Polygon", Symbol: "MATIC"},
		{ID: "arbitrum", Name: "Arbitrum", Symbol: "ARB"},
		{ID: "optimism", Name: "Optimism", Symbol: "OP"},
		{ID: "avalanche", Name: "Avalanche", Symbol: "AVAX"},
		{ID: "fantom", Name: "Fantom", Symbol: "FTM"},
	}
}
