package client

import (
	"context"
	"net/http"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/pkg/kit/validator"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// CheckEligibility 只转发地址字符串，资格判定完全由服务端完成
func (c *Client) CheckEligibility(ctx context.Context, req types.EligibilityCheckReq) (*types.EligibilityResult, error) {
	if err := validator.Verify(&req); err != nil {
		return nil, errcode.NewParamsErr(err.Error())
	}

	var res types.EligibilityResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/eligibility/check", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
