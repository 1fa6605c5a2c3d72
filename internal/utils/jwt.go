// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CMSTokenIssuer is the iss claim of every token minted by this module.
const CMSTokenIssuer = "go-payload-client"

// CMSAuthScheme is the Authorization scheme the CMS expects for JWTs.
const CMSAuthScheme = "JWT"

// CMSSigningKey derives the HMAC key the CMS verifies tokens with: the first
// 32 hex characters of the SHA-256 digest of the configured secret.
func CMSSigningKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(hex.EncodeToString(sum[:])[:32])
}

// GenerateCMSToken creates a signed HMAC-SHA256 JWT for requests to the CMS.
//
// The token includes the following standard claims:
//   - Issuer    (iss): [CMSTokenIssuer]
//   - Subject   (sub): subject
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// The token is signed with [CMSSigningKey] of secret.
// Returns an error if secret or subject is empty or ttl is not positive.
func GenerateCMSToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" || subject == "" || ttl <= 0 {
		return "", errors.New("invalid params for generating CMS token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    CMSTokenIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(CMSSigningKey(secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing CMS token: %w", err)
	}

	return signed, nil
}

// ValidateCMSToken verifies the signature, issuer and expiry of tokenString
// and returns its registered claims.
func ValidateCMSToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return CMSSigningKey(secret), nil
	}, jwt.WithIssuer(CMSTokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating CMS token: %w", err)
	}

	return claims, nil
}

// AuthorizationHeader formats token for the Authorization header.
func AuthorizationHeader(token string) string {
	return CMSAuthScheme + " " + token
}

// ParseAuthorizationHeader extracts the token from a "<scheme> <token>"
// header value. The scheme is matched case-insensitively.
func ParseAuthorizationHeader(header, scheme string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
