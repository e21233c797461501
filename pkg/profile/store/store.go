/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package store holds the Verifier profile(s) this process serves. Unlike
// the teacher's multi-tenant Mongo-backed profile store, this module runs
// single-tenant: profiles are loaded once from process configuration at
// startup and never mutated afterward, so a small read-only in-memory
// registry is all `pkg/service/oidc4vp`'s profileService port needs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
)

const defaultVersion = "v1"

// ErrProfileNotFound is returned when no profile matches the requested ID/version.
var ErrProfileNotFound = fmt.Errorf("profile not found")

// Store is a static verifier profile registry.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*profileapi.Verifier
}

// New builds a Store seeded with the given profiles, keyed by profile.Name.
func New(profiles ...*profileapi.Verifier) *Store {
	s := &Store{profiles: make(map[string]*profileapi.Verifier, len(profiles))}

	for _, p := range profiles {
		s.profiles[key(p.Name, defaultVersion)] = p
	}

	return s
}

// GetProfile retrieves a profile by ID (its Name) and version.
func (s *Store) GetProfile(profileID, profileVersion string) (*profileapi.Verifier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[key(profileID, profileVersion)]
	if !ok {
		return nil, fmt.Errorf("verifier profile %q (version %q): %w", profileID, profileVersion, ErrProfileNotFound)
	}

	return p, nil
}

// LoadFromFile reads a JSON array of Verifier profiles from path and builds a Store
// over them. This is how a single-tenant process turns its static profile
// configuration into the profileService port pkg/service/oidc4vp depends on.
func LoadFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read profile file %q: %w", path, err)
	}

	var profiles []*profileapi.Verifier

	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("parse profile file %q: %w", path, err)
	}

	return New(profiles...), nil
}

func key(profileID, profileVersion string) string {
	if profileVersion == "" {
		profileVersion = defaultVersion
	}

	return profileID + "_" + profileVersion
}
