// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-payload-client/internal/config"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/MKhiriev/go-payload-client/internal/utils"
	"github.com/MKhiriev/go-payload-client/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

// apiPrefix is the mount point of the CMS REST API.
const apiPrefix = "/api"

type httpCMSAdapter struct {
	client *utils.HTTPClient
	tokens *tokenSource

	retries       int
	retryInterval time.Duration

	logger *logger.Logger
}

// NewHTTPCMSAdapter constructs a REST implementation of [CMSAdapter].
// It normalises and validates the base URL from cfg.URL, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// authenticates every request with a token signed with secret.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL, or
// if secret is empty.
func NewHTTPCMSAdapter(cfg config.CMS, secret string, logger *logger.Logger) (CMSAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid cms url: %w", err)
	}
	if secret == "" {
		return nil, errors.New("empty cms secret")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}

	a := &httpCMSAdapter{
		client:        utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens:        newTokenSource(secret, ttl),
		retries:       max(cfg.InitRetries, 0),
		retryInterval: cfg.InitRetryInterval,
		logger:        logger.WithComponent("cms-adapter"),
	}

	a.client.
		OnBeforeRequest(a.authorize).
		OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCMSAdapter) authorize(_ *resty.Client, r *resty.Request) error {
	token, err := h.tokens.Token()
	if err != nil {
		return fmt.Errorf("mint cms token: %w", err)
	}
	r.SetHeader("Authorization", utils.AuthorizationHeader(token))
	return nil
}

func (h *httpCMSAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("cms response")
	return nil
}

// Handshake implements [CMSAdapter]. It GETs /api/access, retrying transient
// failures up to the configured number of times.
func (h *httpCMSAdapter) Handshake(ctx context.Context) (models.AccessInfo, error) {
	var info models.AccessInfo

	operation := func() error {
		resp, err := h.client.R().
			SetContext(ctx).
			SetResult(&info).
			Get(apiPrefix + "/access")
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("access request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			if retryable(resp) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		h.logger.Warn().Err(err).Dur("retry_in", next).Msg("cms handshake attempt failed")
	}

	if err := backoff.RetryNotify(operation, h.newBackOff(ctx), notify); err != nil {
		return models.AccessInfo{}, fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
	}

	h.logger.Info().
		Bool("can_access_admin", info.CanAccessAdmin).
		Strs("collections", info.CollectionNames()).
		Msg("cms handshake succeeded")

	return info, nil
}

func (h *httpCMSAdapter) newBackOff(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = h.retryInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(h.retries)), ctx)
}

// Find implements [CMSAdapter]. It GETs /api/{collection} with q encoded as
// query parameters.
func (h *httpCMSAdapter) Find(ctx context.Context, collection string, q models.Query) (models.FindResult, error) {
	if collection == "" {
		return models.FindResult{}, ErrEmptyCollection
	}

	var result models.FindResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("collection", collection).
		SetQueryParamsFromValues(q.Params()).
		SetResult(&result).
		Get(apiPrefix + "/{collection}")
	if err != nil {
		return models.FindResult{}, fmt.Errorf("find request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FindResult{}, err
	}

	return result, nil
}

// FindByID implements [CMSAdapter]. It GETs /api/{collection}/{id}.
func (h *httpCMSAdapter) FindByID(ctx context.Context, collection, id string, depth int) (models.Document, error) {
	req, err := h.documentRequest(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if depth > 0 {
		req.SetQueryParam("depth", strconv.Itoa(depth))
	}

	var doc models.Document
	resp, err := req.SetResult(&doc).Get(apiPrefix + "/{collection}/{id}")
	if err != nil {
		return nil, fmt.Errorf("find by id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return doc, nil
}

// Create implements [CMSAdapter]. It POSTs doc to /api/{collection}.
func (h *httpCMSAdapter) Create(ctx context.Context, collection string, doc models.Document) (models.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("collection", collection).
		SetBody(doc).
		Post(apiPrefix + "/{collection}")
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeMutation(resp.Body())
}

// Update implements [CMSAdapter]. It PATCHes /api/{collection}/{id}.
func (h *httpCMSAdapter) Update(ctx context.Context, collection, id string, patch models.Document) (models.Document, error) {
	req, err := h.documentRequest(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(apiPrefix + "/{collection}/{id}")
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeMutation(resp.Body())
}

// Delete implements [CMSAdapter]. It DELETEs /api/{collection}/{id}.
func (h *httpCMSAdapter) Delete(ctx context.Context, collection, id string) (models.Document, error) {
	req, err := h.documentRequest(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	resp, err := req.Delete(apiPrefix + "/{collection}/{id}")
	if err != nil {
		return nil, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeMutation(resp.Body())
}

func (h *httpCMSAdapter) documentRequest(ctx context.Context, collection, id string) (*resty.Request, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if id == "" {
		return nil, ErrEmptyID
	}

	return h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"collection": collection,
			"id":         id,
		}), nil
}

// decodeMutation accepts both the {"doc": ..., "message": ...} envelope and a
// bare document, which older CMS versions return from delete.
func decodeMutation(body []byte) (models.Document, error) {
	var result models.MutationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode cms response: %w", err)
	}
	if result.Doc != nil {
		return result.Doc, nil
	}

	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode cms response: %w", err)
	}
	return doc, nil
}
