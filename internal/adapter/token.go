// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-payload-client/internal/utils"
)

// tokenSubject is the sub claim of tokens minted by the adapter.
const tokenSubject = "go-payload-client"

// tokenSource mints CMS tokens and reuses them until the last tenth of their
// lifetime.
type tokenSource struct {
	secret string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(secret string, ttl time.Duration) *tokenSource {
	return &tokenSource{secret: secret, ttl: ttl, now: time.Now}
}

func (s *tokenSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && s.expires.Sub(now) > s.ttl/10 {
		return s.token, nil
	}

	token, err := utils.GenerateCMSToken(s.secret, tokenSubject, s.ttl)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = now.Add(s.ttl)

	return s.token, nil
}
