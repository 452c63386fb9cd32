package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// ListAirdropsOptions 目录过滤参数，零值表示不过滤
type ListAirdropsOptions struct {
	Blockchain string
	Status     string
	Limit      int
}

func (o ListAirdropsOptions) query() string {
	q := url.Values{}
	if o.Blockchain != "" {
		q.Set("blockchain", o.Blockchain)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) ListAirdrops(ctx context.Context, opts ListAirdropsOptions) ([]types.Airdrop, error) {
	var airdrops []types.Airdrop
	if err := c.doJSON(ctx, http.MethodGet, "/api/airdrops"+opts.query(), nil, &airdrops); err != nil {
		return nil, err
	}
	return airdrops, nil
}

func (c *Client) GetAirdrop(ctx context.Context, airdropID string) (*types.Airdrop, error) {
	var airdrop types.Airdrop
	if err := c.doJSON(ctx, http.MethodGet, "/api/airdrops/"+url.PathEscape(airdropID), nil, &airdrop); err != nil {
		return nil, err
	}
	return &airdrop, nil
}

func (c *Client) ListBlockchains(ctx context.Context) ([]types.Blockchain, error) {
	var chains []types.Blockchain
	if err := c.doJSON(ctx, http.MethodGet, "/api/blockchains", nil, &chains); err != nil {
		return nil, err
	}
	return chains, nil
}
