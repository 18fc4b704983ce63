package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dragonchain-go/internal/logger"
	"github.com/MKhiriev/dragonchain-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("dcctl")

	cli := &app{
		out:       os.Stdout,
		log:       log,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}

	if err := newRootCommand(cli).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
