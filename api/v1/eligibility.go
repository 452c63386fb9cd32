package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/pkg/kit/validator"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xhttp"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	service "github.com/anoman-dev/Airdrop-tracker/service/v1"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

// 检查钱包资格
func CheckEligibility(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.EligibilityCheckReq{}
		if err := c.ShouldBindBodyWithJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewParamsErr("invalid eligibility request"))
			return
		}

		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewParamsErr(err.Error()))
			return
		}

		res, err := service.CheckEligibility(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}
