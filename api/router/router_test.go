package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoman-dev/Airdrop-tracker/client"
	"github.com/anoman-dev/Airdrop-tracker/config"
	"github.com/anoman-dev/Airdrop-tracker/dao"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
	"github.com/anoman-dev/Airdrop-tracker/tracker"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d, err := dao.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	serverCtx := &svc.ServerCtx{C: &config.Config{}, Dao: d}
	srv := httptest.NewServer(NewRouter(serverCtx))
	t.Cleanup(srv.Close)
	return srv
}

// 整条链路：目录 → track → 完成任务 → 跟踪页 → 签到 → 资格检查
func TestEndToEndFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	api := client.New(srv.URL)
	loader := tracker.NewLoader(api)

	catalog, err := loader.LoadCatalog(ctx, tracker.LifecycleFilterActive)
	require.NoError(t, err)
	require.NotEmpty(t, catalog)
	target := catalog[0]

	trackRes, err := loader.Track(ctx, "u1", target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Airdrop tracking started", trackRes.Message)

	require.NotEmpty(t, target.Tasks)
	completeRes, err := loader.CompleteTask(ctx, "u1", target.ID, target.Tasks[0].ID)
	require.NoError(t, err)
	assert.Greater(t, completeRes.Progress, 0)

	screen, err := loader.LoadTracked(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, screen.ViewModels, 1)
	vm := screen.ViewModels[0]
	assert.Equal(t, target.ID, vm.Airdrop.ID)
	assert.Equal(t, types.TrackStatusInProgress, vm.Tracking.Status)
	assert.Equal(t, completeRes.Progress, vm.Progress)
	assert.Equal(t, tracker.Summary{Total: 1, InProgress: 1}, screen.Summary)

	checkinRes, err := loader.CheckIn(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, checkinRes.Streak)
	assert.Equal(t, 12, checkinRes.PointsEarned)

	profile, err := loader.LoadProfile(ctx, "u1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, profile.User.DailyStreak)
	assert.False(t, profile.CanCheckin)

	elig, err := loader.CheckEligibility(ctx, types.EligibilityCheckReq{
		WalletAddress: "0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE",
		AirdropID:     target.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID, elig.AirdropID)
	assert.NotEmpty(t, elig.Details.CriteriaMet)
}

func TestNotFoundShape(t *testing.T) {
	srv := newTestServer(t)
	api := client.New(srv.URL)

	_, err := api.GetAirdrop(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Airdrop not found", apiErr.Message)
}

func TestEligibilityBadRequestShape(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/eligibility/check", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// 空列表要序列化成[]，不能是null
func TestEmptyListsMarshalAsArrays(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/airdrops?blockchain=bitcoin")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))

	resp, err = http.Get(srv.URL + "/api/users/u1/airdrops")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestBlockchainsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	api := client.New(srv.URL)

	chains, err := api.ListBlockchains(context.Background())
	require.NoError(t, err)
	assert.Len(t, chains, 8)
}
