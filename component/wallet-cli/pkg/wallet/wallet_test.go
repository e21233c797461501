/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"errors"
	"testing"

	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
)

var errSignerUnavailable = errors.New("signer unavailable")

type mockKeyManager struct {
	signer    vcskms.Signer
	signerErr error
	keyID     string
	sigType   verifiable.SignatureType
}

func (m *mockKeyManager) SupportedKeyTypes() []arieskms.KeyType {
	return []arieskms.KeyType{arieskms.ED25519Type}
}

func (m *mockKeyManager) Create(arieskms.KeyType) (string, []byte, error) {
	return "key-1", []byte("pub"), nil
}

func (m *mockKeyManager) NewSigner(keyID string, sigType verifiable.SignatureType) (vcskms.Signer, error) {
	m.keyID = keyID
	m.sigType = sigType

	return m.signer, m.signerErr
}

type mockSigner struct{}

func (mockSigner) Sign([]byte) ([]byte, error) { return []byte("sig"), nil }
func (mockSigner) Alg() string                 { return "EdDSA" }

func TestWallet(t *testing.T) {
	km := &mockKeyManager{signer: mockSigner{}}

	w := New(&Config{
		DID:                "did:web:wallet.example.com",
		VerificationMethod: "did:web:wallet.example.com#key-1",
		KeyID:              "key-1",
		KeyType:            arieskms.ED25519Type,
		KeyManager:         km,
	})

	require.Equal(t, "did:web:wallet.example.com", w.DID())
	require.Equal(t, "did:web:wallet.example.com#key-1", w.VerificationMethod())
	require.Equal(t, arieskms.ED25519Type, w.KeyType())
	require.Empty(t, w.Credentials())

	cs := &verifiable.ClaimSource{Format: verifiable.JwtVC, RawBytes: []byte("header.payload.sig")}
	w.AddCredential(cs)
	require.Equal(t, []*verifiable.ClaimSource{cs}, w.Credentials())

	signer, err := w.Signer(verifiable.EdDSA)
	require.NoError(t, err)
	require.Equal(t, "key-1", km.keyID)
	require.Equal(t, verifiable.EdDSA, km.sigType)

	sig, err := signer.Sign([]byte("data"))
	require.NoError(t, err)
	require.Equal(t, []byte("sig"), sig)
}

func TestWallet_SignerError(t *testing.T) {
	km := &mockKeyManager{signerErr: errSignerUnavailable}

	w := New(&Config{KeyID: "key-1", KeyManager: km})

	_, err := w.Signer(verifiable.EdDSA)
	require.ErrorIs(t, err, errSignerUnavailable)
}
