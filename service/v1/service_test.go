package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anoman-dev/Airdrop-tracker/dao"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
)

func newTestCtx(t *testing.T) *svc.ServerCtx {
	t.Helper()
	d, err := dao.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return &svc.ServerCtx{Dao: d}
}
