package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/akazakov/jobtrack/internal/buildinfo"
	"github.com/akazakov/jobtrack/internal/client/cli"
	"github.com/akazakov/jobtrack/internal/client/config"
	"github.com/akazakov/jobtrack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
