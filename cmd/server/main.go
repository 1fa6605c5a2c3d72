// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-payload-client/internal/cache"
	"github.com/MKhiriev/go-payload-client/internal/config"
	handler "github.com/MKhiriev/go-payload-client/internal/handler/http"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/internal/payload"
	"github.com/MKhiriev/go-payload-client/internal/secrets"
	"github.com/MKhiriev/go-payload-client/internal/server"
	"github.com/MKhiriev/go-payload-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfoOrNA(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("payload-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("cms_url", cfg.CMS.URL).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

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

	router := chi.NewRouter()
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	router.Get("/healthz", handler.Health(func() string { return clients.State().String() }))
	router.Get("/version", handler.Version(buildInfo))

	if _, err = clients.Get(ctx, cache.WithExpress(router)); err != nil {
		log.Fatal().Err(err).Msg("error initializing cms client")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
