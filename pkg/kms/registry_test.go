/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms_test

import (
	"testing"

	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/oidc4vp/pkg/kms"
)

func TestRegistry_GetKeyManager(t *testing.T) {
	registry := kms.NewRegistry(&kms.Config{KMSType: kms.Local})

	t.Run("nil config falls back to default", func(t *testing.T) {
		km, err := registry.GetKeyManager(nil)
		require.NoError(t, err)
		require.NotNil(t, km)
	})

	t.Run("same local manager is reused across calls", func(t *testing.T) {
		km1, err := registry.GetKeyManager(&kms.Config{KMSType: kms.Local})
		require.NoError(t, err)

		keyID, _, err := km1.Create(arieskms.ED25519Type)
		require.NoError(t, err)

		km2, err := registry.GetKeyManager(&kms.Config{KMSType: kms.Local})
		require.NoError(t, err)

		_, err = km2.NewSigner(keyID, "EdDSA")
		require.NoError(t, err, "key created via one lookup must be visible to another sharing the same Local config")
	})

	t.Run("unsupported kms type", func(t *testing.T) {
		_, err := registry.GetKeyManager(&kms.Config{KMSType: kms.AWS})
		require.Error(t, err)
	})
}

func TestRegistry_GetKeyManager_NoDefault(t *testing.T) {
	registry := kms.NewRegistry(nil)

	_, err := registry.GetKeyManager(nil)
	require.Error(t, err)
}
