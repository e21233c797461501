/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/crypto/tinkcrypto"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/kms/localkms"
	mockkms "github.com/hyperledger/aries-framework-go/component/kmscrypto/mock/kms"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/secretlock/noop"
	ariescrypto "github.com/hyperledger/aries-framework-go/spi/crypto"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	ariesstorage "github.com/hyperledger/aries-framework-go/spi/storage"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// LocalKMS is an in-process VCSKeyManager backed by aries-framework-go's localkms, the
// same key-storage primitive the rest of this dependency pack's wallet and issuer
// tooling builds on. It is meant for single-process deployments and tests; an AWS- or
// web-backed VCSKeyManager is an external collaborator this module does not implement.
type LocalKMS struct {
	km     arieskms.KeyManager
	crypto ariescrypto.Crypto
}

// NewLocalKMS creates a LocalKMS over storageProvider, with no secret lock, suitable
// for a single verifier process or tests.
func NewLocalKMS(storageProvider ariesstorage.Provider) (*LocalKMS, error) {
	provider, err := mockkms.NewProviderForKMS(storageProvider, &noop.NoLock{})
	if err != nil {
		return nil, fmt.Errorf("build local kms provider: %w", err)
	}

	km, err := localkms.New("local-lock://oidc4vp-verifier", provider)
	if err != nil {
		return nil, fmt.Errorf("create local kms: %w", err)
	}

	crypto, err := tinkcrypto.New()
	if err != nil {
		return nil, fmt.Errorf("create tink crypto: %w", err)
	}

	return &LocalKMS{km: km, crypto: crypto}, nil
}

func (k *LocalKMS) SupportedKeyTypes() []arieskms.KeyType {
	return []arieskms.KeyType{
		arieskms.ED25519Type,
		arieskms.ECDSAP256TypeDER,
		arieskms.ECDSAP384TypeDER,
	}
}

func (k *LocalKMS) Create(keyType arieskms.KeyType) (string, []byte, error) {
	keyID, pubKeyBytes, err := k.km.CreateAndExportPubKeyBytes(keyType)
	if err != nil {
		return "", nil, fmt.Errorf("create signing key: %w", err)
	}

	return keyID, pubKeyBytes, nil
}

func (k *LocalKMS) NewSigner(keyID string, signatureType vcsverifiable.SignatureType) (Signer, error) {
	return NewAriesSigner(k.km, k.crypto, keyID, signatureType)
}
