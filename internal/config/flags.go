// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a host server address in format [host]:[port]
//	-u CMS base URL
//	-request-timeout CMS request timeout (e.g., "15s", "1m")
//	-init-retries handshake retries per initialization
//	-token-ttl lifetime of minted CMS tokens (e.g., "2h")
//	-aws-secret-id AWS Secrets Manager secret holding PAYLOAD_SECRET
//	-c/-config json file path with configs
//
// Positional arguments are left in flag.Args for the caller.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var cmsURL string
	var requestTimeout time.Duration
	var initRetries int
	var tokenTTL time.Duration
	var awsSecretID string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&cmsURL, "u", "", "CMS base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "CMS request timeout (e.g., 15s, 1m)")
	flag.IntVar(&initRetries, "init-retries", 0, "Handshake retries per initialization (0 = default, -1 = none)")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Lifetime of minted CMS tokens (e.g., 2h)")
	flag.StringVar(&awsSecretID, "aws-secret-id", "", "AWS Secrets Manager secret id")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		CMS: CMS{
			URL:            cmsURL,
			RequestTimeout: requestTimeout,
			InitRetries:    initRetries,
			TokenTTL:       tokenTTL,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Secrets: Secrets{
			AWS: AWSSecrets{SecretID: awsSecretID},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. The port must be positive; hosts other
// than "localhost" must be IP addresses.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
