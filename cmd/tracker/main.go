// tracker命令行入口：用client+tracker走一遍各个屏幕的数据流，
// 渲染层不在本仓库范围内，这里直接输出JSON。
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anoman-dev/Airdrop-tracker/client"
	"github.com/anoman-dev/Airdrop-tracker/config"
	"github.com/anoman-dev/Airdrop-tracker/pkg/xzap"
	"github.com/anoman-dev/Airdrop-tracker/tracker"
	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	screen := flag.String("screen", "catalog", "screen to load: catalog | tracked | profile | blockchains")
	filter := flag.String("filter", "all", "status filter for the selected screen")
	user := flag.String("user", "", "user id, defaults to the configured one")
	checkin := flag.Bool("checkin", false, "perform daily check-in")
	track := flag.String("track", "", "airdrop id to start tracking")
	complete := flag.String("complete", "", "complete a task, format airdropId/taskId")
	eligibility := flag.String("eligibility", "", "airdrop id for an eligibility check (requires -wallet)")
	wallet := flag.String("wallet", "", "wallet address for the eligibility check")
	flag.Parse()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		fatal(err)
	}
	if err := xzap.SetUp(c.Log.Level, c.Log.Env); err != nil {
		fatal(err)
	}

	userID := c.Client.UserID
	if *user != "" {
		userID = *user
	}

	loader := tracker.NewLoader(client.New(c.Client.BaseURL))
	ctx := context.Background()

	switch {
	case *checkin:
		res, err := loader.CheckIn(ctx, userID)
		if err != nil {
			fatal(err)
		}
		printJSON(res)
		return
	case *track != "":
		res, err := loader.Track(ctx, userID, *track)
		if err != nil {
			fatal(err)
		}
		printJSON(res)
		return
	case *complete != "":
		airdropID, taskID, ok := strings.Cut(*complete, "/")
		if !ok {
			fatal(fmt.Errorf("-complete expects airdropId/taskId, got %q", *complete))
		}
		res, err := loader.CompleteTask(ctx, userID, airdropID, taskID)
		if err != nil {
			fatal(err)
		}
		printJSON(res)
		return
	case *eligibility != "":
		res, err := loader.CheckEligibility(ctx, types.EligibilityCheckReq{
			WalletAddress: *wallet,
			AirdropID:     *eligibility,
		})
		if err != nil {
			fatal(err)
		}
		printJSON(res)
		return
	}

	switch *screen {
	case "catalog":
		res, err := loader.LoadCatalog(ctx, tracker.LifecycleFilter(*filter))
		if err != nil {
			fatal(err)
		}
		printJSON(res)
	case "tracked":
		res, err := loader.LoadTracked(ctx, userID)
		if err != nil {
			fatal(err)
		}
		res.ViewModels = tracker.FilterByStatus(res.ViewModels, tracker.TrackFilter(*filter))
		printJSON(res)
	case "profile":
		res, err := loader.LoadProfile(ctx, userID, time.Now())
		if err != nil {
			fatal(err)
		}
		printJSON(res)
	case "blockchains":
		res, err := client.New(c.Client.BaseURL).ListBlockchains(ctx)
		if err != nil {
			fatal(err)
		}
		printJSON(res)
	default:
		fatal(fmt.Errorf("unknown screen %q", *screen))
	}
}

func printJSON(v interface{}) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(raw))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
