// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	CMS struct {
		URL               string   `json:"url"`
		RequestTimeout    Duration `json:"request_timeout"`
		InitRetries       int      `json:"init_retries"`
		InitRetryInterval Duration `json:"init_retry_interval"`
		TokenTTL          Duration `json:"token_ttl"`
	} `json:"cms,omitempty"`
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
	Secrets struct {
		AWS struct {
			SecretID string `json:"secret_id"`
			Region   string `json:"region"`
			Endpoint string `json:"endpoint"`
		} `json:"aws,omitempty"`
	} `json:"secrets,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		CMS: CMS{
			URL:               jsonCfg.CMS.URL,
			RequestTimeout:    time.Duration(jsonCfg.CMS.RequestTimeout),
			InitRetries:       jsonCfg.CMS.InitRetries,
			InitRetryInterval: time.Duration(jsonCfg.CMS.InitRetryInterval),
			TokenTTL:          time.Duration(jsonCfg.CMS.TokenTTL),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Secrets: Secrets{
			AWS: AWSSecrets{
				SecretID: jsonCfg.Secrets.AWS.SecretID,
				Region:   jsonCfg.Secrets.AWS.Region,
				Endpoint: jsonCfg.Secrets.AWS.Endpoint,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
