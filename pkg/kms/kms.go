/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination mocks/kms_mocks.go -self_package mocks -package mocks -source=kms.go -mock_names VCSKeyManager=MockVCSKeyManager

// Package kms wraps key management as a thin collaborator: this Verifier only needs
// to sign request objects and, on the Wallet side, Verifiable Presentations. The
// cryptographic primitives themselves are aries-framework-go's, not reimplemented here.
package kms

import (
	"fmt"

	ariescrypto "github.com/hyperledger/aries-framework-go/spi/crypto"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// Type names where signing keys are kept.
type Type string

const (
	Local Type = "local"
	AWS   Type = "aws"
	Web   Type = "web"
)

// Config configures the key store backing a VCSKeyManager.
type Config struct {
	KMSType     Type `json:"kmsType"`
	Endpoint    string
	AliasPrefix string
}

// Signer signs data with one key and reports the JOSE/LDP algorithm it produces.
type Signer interface {
	Sign(data []byte) ([]byte, error)
	Alg() string
}

// VCSKeyManager is the collaborator surface this module needs from a key store: create a
// signing key and obtain a Signer bound to it.
type VCSKeyManager interface {
	SupportedKeyTypes() []arieskms.KeyType
	Create(keyType arieskms.KeyType) (keyID string, pubKeyBytes []byte, err error)
	NewSigner(keyID string, signatureType vcsverifiable.SignatureType) (Signer, error)
}

// ariesSigner adapts aries-framework-go's kms.KeyManager + crypto.Crypto pair, the
// signing primitive every other credential/wallet library in this module's dependency
// pack builds on, to the narrower Signer surface this module needs.
type ariesSigner struct {
	km            arieskms.KeyManager
	crypto        ariescrypto.Crypto
	keyID         string
	kh            interface{}
	signatureType vcsverifiable.SignatureType
}

// NewAriesSigner builds a Signer around a key already resolved from km.
func NewAriesSigner(km arieskms.KeyManager, crypto ariescrypto.Crypto, keyID string,
	signatureType vcsverifiable.SignatureType,
) (Signer, error) {
	kh, err := km.Get(keyID)
	if err != nil {
		return nil, fmt.Errorf("resolve signing key %q: %w", keyID, err)
	}

	return &ariesSigner{km: km, crypto: crypto, keyID: keyID, kh: kh, signatureType: signatureType}, nil
}

func (s *ariesSigner) Sign(data []byte) ([]byte, error) {
	return s.crypto.Sign(data, s.kh)
}

func (s *ariesSigner) Alg() string {
	return s.signatureType.Name()
}
