// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-payload-client/internal/config"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
)

// AWS error codes mapped to package errors.
const (
	resourceNotFoundException = "ResourceNotFoundException"
	accessDeniedException     = "AccessDeniedException"
)

// ManagerAPI is the subset of the Secrets Manager client used here.
type ManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// NewAWSManager builds a Secrets Manager client from the default AWS config
// chain, optionally pinned to cfg.Region and cfg.Endpoint (e.g. LocalStack).
func NewAWSManager(ctx context.Context, cfg config.AWSSecrets) (ManagerAPI, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return secretsmanager.NewFromConfig(awsCfg, func(o *secretsmanager.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Fetch returns the secret value stored under secretID. When the stored
// value is a JSON object, the string field named key is returned instead of
// the whole object.
func Fetch(ctx context.Context, api ManagerAPI, secretID, key string) (string, error) {
	out, err := api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", mapAWSError(secretID, err)
	}

	var raw string
	switch {
	case out.SecretString != nil:
		raw = *out.SecretString
	case len(out.SecretBinary) > 0:
		raw = string(out.SecretBinary)
	}

	value := extractKey(strings.TrimSpace(raw), key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretEmpty, secretID)
	}
	return value, nil
}

func extractKey(raw, key string) string {
	if !strings.HasPrefix(raw, "{") {
		return raw
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return raw
	}
	value, _ := fields[key].(string)
	return value
}

func mapAWSError(secretID string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case resourceNotFoundException:
			return fmt.Errorf("%w: %s", ErrSecretNotFound, secretID)
		case accessDeniedException:
			return fmt.Errorf("%w: %s", ErrAccessDenied, secretID)
		}
	}
	return fmt.Errorf("get secret value %s: %w", secretID, err)
}

// ExportFromAWS fetches secretID and exports it as envKey unless envKey is
// already set. It reports whether the environment was changed. The secret
// value itself is never logged.
func ExportFromAWS(ctx context.Context, api ManagerAPI, secretID, envKey string, log *logger.Logger) (bool, error) {
	if os.Getenv(envKey) != "" {
		log.Debug().Str("env", envKey).Msg("secret already present in environment, skipping aws lookup")
		return false, nil
	}

	value, err := Fetch(ctx, api, secretID, envKey)
	if err != nil {
		return false, err
	}

	if err = os.Setenv(envKey, value); err != nil {
		return false, fmt.Errorf("export %s: %w", envKey, err)
	}

	log.Info().Str("env", envKey).Str("secret_id", secretID).Msg("secret exported from aws secrets manager")
	return true, nil
}
