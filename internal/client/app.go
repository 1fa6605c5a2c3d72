// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-payload-client/internal/cache"
	handler "github.com/MKhiriev/go-payload-client/internal/handler/http"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/models"
)

// App reads documents from the CMS and writes them to out.
type App struct {
	connect func(ctx context.Context) (handler.DocumentReader, error)
	out     io.Writer

	logger *logger.Logger
}

// NewApp returns an App that obtains its CMS client from clients in local
// mode.
func NewApp(clients *cache.ClientCache, out io.Writer, logger *logger.Logger) (*App, error) {
	if clients == nil {
		return nil, fmt.Errorf("client cache is required")
	}

	return &App{
		connect: func(ctx context.Context) (handler.DocumentReader, error) {
			return clients.Get(ctx, cache.WithLocal(true))
		},
		out:    out,
		logger: logger,
	}, nil
}

// Run executes "<collection> [id] [key=value ...]". Without an id the
// collection is listed; key=value pairs use the same names as the embedded
// routes (limit, page, depth, sort, where[field]).
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, err := parseArgs(args)
	if err != nil {
		return err
	}

	reader, err := a.connect(ctx)
	if err != nil {
		return fmt.Errorf("connect to cms: %w", err)
	}

	var result any
	if cmd.id != "" {
		a.logger.Debug().Str("collection", cmd.collection).Str("id", cmd.id).Msg("find by id")
		result, err = reader.FindByID(ctx, cmd.collection, cmd.id, cmd.query.Depth)
	} else {
		a.logger.Debug().Str("collection", cmd.collection).Msg("find")
		result, err = reader.Find(ctx, cmd.collection, cmd.query)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.collection, err)
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

type command struct {
	collection string
	id         string
	query      models.Query
}

func parseArgs(args []string) (command, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return command{}, ErrUsage
	}

	cmd := command{collection: args[0]}
	rest := args[1:]
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		cmd.id = rest[0]
		rest = rest[1:]
	}

	values := url.Values{}
	for _, arg := range rest {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return command{}, fmt.Errorf("%w: %q", ErrUsage, arg)
		}
		values.Add(key, value)
	}

	q, err := models.ParseQuery(values)
	if err != nil {
		return command{}, err
	}
	cmd.query = q

	return cmd, nil
}
