package dao

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

type Dao struct {
	DB *gorm.DB
}

// New 打开sqlite并迁移表结构
func New(path string) (*Dao, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open sqlite")
	}

	if err := db.AutoMigrate(
		&types.Airdrop{},
		&types.UserAirdropStatus{},
		&types.User{},
	); err != nil {
		return nil, errors.Wrap(err, "failed on auto migrate")
	}

	return &Dao{DB: db}, nil
}
