package main

import (
	"context"
	"log"
	"os"

	"github.com/eaterapp/eaterauth/internal/buildinfo"
	"github.com/eaterapp/eaterauth/internal/cli"
	"github.com/eaterapp/eaterauth/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
