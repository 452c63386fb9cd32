package main

import (
	"flag"
	_ "net/http/pprof"

	"github.com/anoman-dev/Airdrop-tracker/api/router"
	"github.com/anoman-dev/Airdrop-tracker/app"
	"github.com/anoman-dev/Airdrop-tracker/config"
	"github.com/anoman-dev/Airdrop-tracker/service/svc"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)

	platform, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	platform.Start()
}
