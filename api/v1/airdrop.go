package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xhttp"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	service "github.com/anoman-dev/Airdrop-tracker/service/v1"
)

// 获取空投列表，支持blockchain/status/limit过滤
func ListAirdrops(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		blockchain := c.Query("blockchain")
		status := c.Query("status")

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				xhttp.Error(c, errcode.NewParamsErr("invalid limit"))
				return
			}
			limit = parsed
		}

		res, err := service.GetAirdrops(c.Request.Context(), svcCtx, blockchain, status, limit)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 获取空投详情
func GetAirdrop(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		airdropID := c.Params.ByName("id")
		if airdropID == "" {
			xhttp.Error(c, errcode.NewParamsErr("airdrop id is null"))
			return
		}

		res, err := service.GetAirdrop(c.Request.Context(), svcCtx, airdropID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 获取支持的链列表
func ListBlockchains(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		xhttp.OkJson(c, service.SupportedBlockchains())
	}
}
