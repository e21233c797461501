/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"fmt"
	"sync"

	ariesmem "github.com/hyperledger/aries-framework-go/component/storageutil/mem"
)

// Registry resolves a Config to the VCSKeyManager that backs it, constructing each
// concrete manager once and reusing it for every profile that shares a Config.
type Registry struct {
	defaultCfg *Config

	mutex    sync.Mutex
	local    VCSKeyManager
	localErr error
}

// NewRegistry returns a Registry that falls back to defaultCfg when GetKeyManager is
// called with a nil Config.
func NewRegistry(defaultCfg *Config) *Registry {
	return &Registry{defaultCfg: defaultCfg}
}

// GetKeyManager returns the VCSKeyManager for config, or for the registry's default
// Config if config is nil.
func (r *Registry) GetKeyManager(config *Config) (VCSKeyManager, error) {
	if config == nil {
		config = r.defaultCfg
	}

	if config == nil {
		return nil, fmt.Errorf("no kms config provided and no default configured")
	}

	switch config.KMSType {
	case Local:
		return r.localKeyManager()
	default:
		return nil, fmt.Errorf("unsupported kms type %q", config.KMSType)
	}
}

// localKeyManager lazily builds the single Local manager this process uses, so that keys
// created against one profile's Config stay visible to later lookups against another
// profile sharing the same Local Config.
func (r *Registry) localKeyManager() (VCSKeyManager, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.local != nil || r.localErr != nil {
		return r.local, r.localErr
	}

	r.local, r.localErr = NewLocalKMS(ariesmem.NewProvider())
	if r.localErr != nil {
		r.localErr = fmt.Errorf("build local key manager: %w", r.localErr)
	}

	return r.local, r.localErr
}
