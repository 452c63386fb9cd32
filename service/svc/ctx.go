package svc

import (
	"github.com/anoman-dev/Airdrop-tracker/config"
	"github.com/anoman-dev/Airdrop-tracker/dao"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xzap"
)

type ServerCtx struct {
	C   *config.Config
	Dao *dao.Dao
}

// NewServiceContext 初始化日志、存储
func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	if err := xzap.SetUp(c.Log.Level, c.Log.Env); err != nil {
		return nil, err
	}

	d, err := dao.New(c.Db.Path)
	if err != nil {
		return nil, err
	}

	return &ServerCtx{C: c, Dao: d}, nil
}
