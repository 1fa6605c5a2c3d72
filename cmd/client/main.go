// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-payload-client/internal/cache"
	"github.com/MKhiriev/go-payload-client/internal/client"
	"github.com/MKhiriev/go-payload-client/internal/config"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/internal/payload"
	"github.com/MKhiriev/go-payload-client/internal/secrets"
	"github.com/MKhiriev/go-payload-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfoOrNA(buildVersion, buildDate, buildCommit)

	log := logger.NewCLILogger("payload-client")
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if secretID := cfg.Secrets.AWS.SecretID; secretID != "" {
		manager, err := secrets.NewAWSManager(ctx, cfg.Secrets.AWS)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating secrets manager client")
		}
		if _, err = secrets.ExportFromAWS(ctx, manager, secretID, config.SecretEnvKey, log); err != nil {
			log.Fatal().Err(err).Msg("error loading cms secret")
		}
	}

	clients := cache.New(payload.NewInitializer(cfg.CMS, log), secrets.NewEnvSource(), log)

	app, err := client.NewApp(clients, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	err = app.Run(ctx, flag.Args())
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
