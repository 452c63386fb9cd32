package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/anoman-dev/Airdrop-tracker/api/v1"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
)

// NewRouter 注册全部/api路由
func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		api.GET("/airdrops", v1.ListAirdrops(svcCtx))
		api.GET("/airdrops/:id", v1.GetAirdrop(svcCtx))
		api.GET("/blockchains", v1.ListBlockchains(svcCtx))

		api.POST("/eligibility/check", v1.CheckEligibility(svcCtx))

		users := api.Group("/users")
		{
			users.GET("/:userId", v1.GetUser(svcCtx))
			users.GET("/:userId/airdrops", v1.GetUserAirdrops(svcCtx))
			users.POST("/:userId/checkin", v1.Checkin(svcCtx))
			users.POST("/:userId/airdrops/:airdropId/track", v1.TrackAirdrop(svcCtx))
			users.POST("/:userId/airdrops/:airdropId/tasks/:taskId/complete", v1.CompleteTask(svcCtx))
		}
	}

	return r
}
