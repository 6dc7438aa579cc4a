package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/shopadmin/internal/buildinfo"
	"github.com/dmitrijs2005/shopadmin/internal/cli"
	"github.com/dmitrijs2005/shopadmin/internal/config"
	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
