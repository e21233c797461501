/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms_test

import (
	"testing"

	ariesmem "github.com/hyperledger/aries-framework-go/component/storageutil/mem"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	"github.com/trustbloc/oidc4vp/pkg/kms"
)

func TestLocalKMS_CreateAndSign(t *testing.T) {
	localKMS, err := kms.NewLocalKMS(ariesmem.NewProvider())
	require.NoError(t, err)

	require.Contains(t, localKMS.SupportedKeyTypes(), arieskms.ED25519Type)

	keyID, pubKeyBytes, err := localKMS.Create(arieskms.ED25519Type)
	require.NoError(t, err)
	require.NotEmpty(t, keyID)
	require.Len(t, pubKeyBytes, 32)

	signer, err := localKMS.NewSigner(keyID, verifiable.EdDSA)
	require.NoError(t, err)
	require.Equal(t, "EdDSA", signer.Alg())

	sig, err := signer.Sign([]byte("hello"))
	require.NoError(t, err)
	require.NotEmpty(t, sig)
}

func TestLocalKMS_NewSigner_UnknownKey(t *testing.T) {
	localKMS, err := kms.NewLocalKMS(ariesmem.NewProvider())
	require.NoError(t, err)

	_, err = localKMS.NewSigner("does-not-exist", verifiable.EdDSA)
	require.Error(t, err)
}
