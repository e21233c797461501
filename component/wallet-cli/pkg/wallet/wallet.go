/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package wallet is a minimal, in-memory stand-in for a Holder's credential store: it
// keeps the claim sources a Wallet-side flow can present and the single signing key it
// authenticates responses with. A production wallet would back this with a secure
// enclave/keystore; this is what a CLI driving the Wallet side of an exchange needs.
package wallet

import (
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
)

// Wallet holds the credentials a Presentation Exchange query can be run against and the
// key material a matched presentation is signed with.
type Wallet struct {
	did                string
	verificationMethod string
	keyID              string
	keyType            arieskms.KeyType
	km                 vcskms.VCSKeyManager
	credentials        []*verifiable.ClaimSource
}

// Config identifies the DID and key a Wallet signs Authorization Responses with.
type Config struct {
	DID                string
	VerificationMethod string
	KeyID              string
	KeyType            arieskms.KeyType
	KeyManager         vcskms.VCSKeyManager
}

// New builds a Wallet from cfg, with no credentials loaded yet.
func New(cfg *Config) *Wallet {
	return &Wallet{
		did:                cfg.DID,
		verificationMethod: cfg.VerificationMethod,
		keyID:              cfg.KeyID,
		keyType:            cfg.KeyType,
		km:                 cfg.KeyManager,
	}
}

// DID is the Wallet's own identifier, used as the Authorization Response's issuer/subject.
func (w *Wallet) DID() string {
	return w.did
}

// VerificationMethod is the `did#key` identifier a signed JWT's "kid" header carries.
func (w *Wallet) VerificationMethod() string {
	return w.verificationMethod
}

// AddCredential loads one claim source (a parsed jwt_vc/ldp_vc) into the Wallet.
func (w *Wallet) AddCredential(cs *verifiable.ClaimSource) {
	w.credentials = append(w.credentials, cs)
}

// Credentials returns every claim source currently held, in load order.
func (w *Wallet) Credentials() []*verifiable.ClaimSource {
	return w.credentials
}

// Signer returns a Signer bound to the Wallet's own key, producing signatureType-shaped
// signatures (spec.md's Wallet role: sign whatever the Verifier's vp_formats accept).
func (w *Wallet) Signer(signatureType verifiable.SignatureType) (vcskms.Signer, error) {
	return w.km.NewSigner(w.keyID, signatureType)
}

// KeyType is the Wallet key's algorithm family, used to pick a signatureType via
// verifiable.SignatureTypesByKeyType.
func (w *Wallet) KeyType() arieskms.KeyType {
	return w.keyType
}
