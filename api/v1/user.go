package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xhttp"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	service "github.com/anoman-dev/Airdrop-tracker/service/v1"
)

// 获取用户档案，不存在则创建
func GetUser(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("userId")
		if userID == "" {
			xhttp.Error(c, errcode.NewParamsErr("user id is null"))
			return
		}

		res, err := service.GetOrCreateUser(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 获取用户跟踪的空投列表
func GetUserAirdrops(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("userId")
		if userID == "" {
			xhttp.Error(c, errcode.NewParamsErr("user id is null"))
			return
		}

		res, err := service.GetUserAirdrops(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 开始跟踪空投
func TrackAirdrop(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("userId")
		airdropID := c.Params.ByName("airdropId")
		if userID == "" || airdropID == "" {
			xhttp.Error(c, errcode.NewParamsErr("user id or airdrop id is null"))
			return
		}

		res, err := service.TrackAirdrop(c.Request.Context(), svcCtx, userID, airdropID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 完成任务并返回最新进度
func CompleteTask(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("userId")
		airdropID := c.Params.ByName("airdropId")
		taskID := c.Params.ByName("taskId")
		if userID == "" || airdropID == "" || taskID == "" {
			xhttp.Error(c, errcode.NewParamsErr("missing path params"))
			return
		}

		res, err := service.CompleteTask(c.Request.Context(), svcCtx, userID, airdropID, taskID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 每日签到
func Checkin(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("userId")
		if userID == "" {
			xhttp.Error(c, errcode.NewParamsErr("user id is null"))
			return
		}

		res, err := service.Checkin(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}
