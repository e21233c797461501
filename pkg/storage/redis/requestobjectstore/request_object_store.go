/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package requestobjectstore holds the signed Request Object JWTs a Verifier
// publishes for Wallets to fetch by reference (the `request_uri` parameter
// of the authorization request), backed by Redis with a TTL matched to the
// transaction's own lifetime.
package requestobjectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/oidc4vp/pkg/event/spi"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis"
)

const keyPrefix = "requestobject"

// ErrDataNotFound is returned when a request object has expired or was never published.
var ErrDataNotFound = errors.New("data not found")

type document struct {
	Content  string    `json:"content"`
	ExpireAt time.Time `json:"expireAt"`
}

func (d *document) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

// Store publishes and serves Request Object JWTs by an opaque, unguessable ID.
type Store struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
	baseURL     string
}

// New creates a Store. baseURL is the externally reachable prefix the retrieval
// endpoint is mounted under, e.g. "https://verifier.example.com/request-object".
func New(redisClient *redis.Client, ttlSec int32, baseURL string) *Store {
	return &Store{
		redisClient: redisClient,
		defaultTTL:  time.Duration(ttlSec) * time.Second,
		baseURL:     baseURL,
	}
}

// Publish stores requestObject and returns the `request_uri` a Wallet dereferences to fetch it.
// The accessRequestObjectEvent parameter is accepted to satisfy the oidc4vp service's
// requestObjectPublicStore port; this store does not itself emit that event, since it has no
// eventService dependency and firing "QR scanned" only belongs at actual retrieval time.
func (s *Store) Publish(ctx context.Context, requestObject string, _ *spi.Event) (string, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	id := uuid.NewString()

	doc := &document{
		Content:  requestObject,
		ExpireAt: time.Now().Add(s.defaultTTL),
	}

	if err := s.redisClient.API().Set(ctxWithTimeout, resolveRedisKey(id), doc, s.defaultTTL).Err(); err != nil {
		return "", fmt.Errorf("request object set: %w", err)
	}

	requestURI, err := url.JoinPath(s.baseURL, id)
	if err != nil {
		return "", fmt.Errorf("request object uri: %w", err)
	}

	_ = ctx // retained for interface symmetry with the rest of the storage layer

	return requestURI, nil
}

// Get retrieves a previously published Request Object JWT by ID (the trailing
// path segment of the URI returned from Publish).
func (s *Store) Get(id string) (string, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout()
	defer cancel()

	b, err := s.redisClient.API().Get(ctxWithTimeout, resolveRedisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return "", ErrDataNotFound
		}

		return "", fmt.Errorf("request object get: %w", err)
	}

	doc := &document{}
	if err = json.Unmarshal(b, doc); err != nil {
		return "", fmt.Errorf("request object decode: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return "", ErrDataNotFound
	}

	return doc.Content, nil
}

func resolveRedisKey(id string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
