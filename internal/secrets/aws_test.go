// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/MKhiriev/go-payload-client/internal/config"
	"github.com/MKhiriev/go-payload-client/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockManagerAPI implements ManagerAPI for testing
type mockManagerAPI struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	calls              int
}

func (m *mockManagerAPI) GetSecretValue(
	ctx context.Context,
	params *secretsmanager.GetSecretValueInput,
	optFns ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	m.calls++
	return m.getSecretValueFunc(ctx, params, optFns...)
}

func returning(out *secretsmanager.GetSecretValueOutput, err error) *mockManagerAPI {
	return &mockManagerAPI{
		getSecretValueFunc: func(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return out, err
		},
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { _ = os.Setenv(key, old) })
	} else {
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	require.NoError(t, os.Unsetenv(key))
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		out     *secretsmanager.GetSecretValueOutput
		err     error
		want    string
		wantErr error
	}{
		{
			name: "plain string",
			out:  &secretsmanager.GetSecretValueOutput{SecretString: aws.String("  plain-secret\n")},
			want: "plain-secret",
		},
		{
			name: "json object",
			out:  &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"PAYLOAD_SECRET":"from-json","OTHER":"x"}`)},
			want: "from-json",
		},
		{
			name:    "json object without key",
			out:     &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"OTHER":"x"}`)},
			wantErr: ErrSecretEmpty,
		},
		{
			name: "binary",
			out:  &secretsmanager.GetSecretValueOutput{SecretBinary: []byte("bin-secret")},
			want: "bin-secret",
		},
		{
			name:    "empty",
			out:     &secretsmanager.GetSecretValueOutput{},
			wantErr: ErrSecretEmpty,
		},
		{
			name:    "not found",
			err:     &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "nope"},
			wantErr: ErrSecretNotFound,
		},
		{
			name:    "access denied",
			err:     &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"},
			wantErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fetch(context.Background(), returning(tt.out, tt.err), "prod/payload", config.SecretEnvKey)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetch_PassesSecretID(t *testing.T) {
	api := &mockManagerAPI{
		getSecretValueFunc: func(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			assert.Equal(t, "arn:aws:secretsmanager:eu-west-1:1:secret:cms", aws.ToString(params.SecretId))
			return &secretsmanager.GetSecretValueOutput{SecretString: aws.String("v")}, nil
		},
	}

	_, err := Fetch(context.Background(), api, "arn:aws:secretsmanager:eu-west-1:1:secret:cms", config.SecretEnvKey)
	require.NoError(t, err)
}

func TestFetch_UnknownErrorIsWrapped(t *testing.T) {
	cause := errors.New("network down")

	_, err := Fetch(context.Background(), returning(nil, cause), "id", config.SecretEnvKey)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSecretNotFound)
}

// ── ExportFromAWS ───────────────────────────────────────────────────────────

func TestExportFromAWS_SetsMissingVariable(t *testing.T) {
	const key = "PAYLOAD_SECRET_TEST_EXPORT"
	unsetEnv(t, key)
	api := returning(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("exported")}, nil)

	changed, err := ExportFromAWS(context.Background(), api, "id", key, logger.Nop())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "exported", os.Getenv(key))
	assert.Equal(t, "exported", EnvSource{Key: key}.Secret())
}

func TestExportFromAWS_KeepsExistingVariable(t *testing.T) {
	const key = "PAYLOAD_SECRET_TEST_KEEP"
	t.Setenv(key, "local")
	api := returning(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("remote")}, nil)

	changed, err := ExportFromAWS(context.Background(), api, "id", key, logger.Nop())

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "local", os.Getenv(key))
	assert.Zero(t, api.calls)
}

func TestExportFromAWS_FetchError(t *testing.T) {
	const key = "PAYLOAD_SECRET_TEST_ERR"
	unsetEnv(t, key)
	api := returning(nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException"})

	changed, err := ExportFromAWS(context.Background(), api, "id", key, logger.Nop())

	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.False(t, changed)
	_, set := os.LookupEnv(key)
	assert.False(t, set)
}

// ── sources ─────────────────────────────────────────────────────────────────

func TestEnvSource_ReadsOnEveryCall(t *testing.T) {
	src := NewEnvSource()
	assert.Equal(t, config.SecretEnvKey, src.Key)

	t.Setenv(config.SecretEnvKey, "first")
	assert.Equal(t, "first", src.Secret())

	t.Setenv(config.SecretEnvKey, "second")
	assert.Equal(t, "second", src.Secret())
}

func TestStaticSource(t *testing.T) {
	assert.Equal(t, "s3cr3t", StaticSource("s3cr3t").Secret())
	assert.Empty(t, StaticSource("").Secret())
}
