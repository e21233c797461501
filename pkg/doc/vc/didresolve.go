/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"crypto"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
)

// DIDResolver resolves a DID to its DID Document, the sole external dependency the
// KeyResolver adapters below need to check a Wallet-authored proof's verification method.
type DIDResolver interface {
	Resolve(did string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error)
}

// SplitVerificationMethod splits a `did:example:123#key-1` verification method identifier
// into its DID and key fragment.
func SplitVerificationMethod(verificationMethod string) (string, string, error) {
	parts := strings.SplitN(verificationMethod, "#", 2) //nolint:gomnd
	if len(parts) != 2 {                                //nolint:gomnd
		return "", "", fmt.Errorf("verification method %q is not in did#keyID format", verificationMethod)
	}

	return parts[0], parts[1], nil
}

// ResolvePublicKeyValue resolves verificationMethod to the raw public key bytes of the
// matching entry in the DID Document's publicKey set.
func ResolvePublicKeyValue(resolver DIDResolver, verificationMethod string) ([]byte, error) {
	docDID, _, err := SplitVerificationMethod(verificationMethod)
	if err != nil {
		return nil, err
	}

	docResolution, err := resolver.Resolve(docDID)
	if err != nil {
		return nil, fmt.Errorf("resolve DID %s: %w", docDID, err)
	}

	for _, pk := range docResolution.DIDDocument.VerificationMethod {
		if pk.ID == verificationMethod {
			return pk.Value, nil
		}
	}

	return nil, fmt.Errorf("verification method %q not found in DID document", verificationMethod)
}

// NewLDPKeyResolver builds a verifiable.LDPKeyResolver over a VDR: it only supports raw
// (non-JWK) public key material, matching the Ed25519Signature2018 suite VerifyLDP checks.
func NewLDPKeyResolver(resolver DIDResolver) func(proofType, verificationMethod string) ([]byte, error) {
	return func(_, verificationMethod string) ([]byte, error) {
		return ResolvePublicKeyValue(resolver, verificationMethod)
	}
}

// NewJWTKeyResolver builds a verifiable.KeyResolver over a VDR for EdDSA-signed JWTs, whose
// kid is a DID verification method identifier (`did:example:123#key-1`).
func NewJWTKeyResolver(resolver DIDResolver) func(alg, kid, iss string) (crypto.PublicKey, error) {
	return func(alg, kid, iss string) (crypto.PublicKey, error) {
		verificationMethod := kid
		if verificationMethod == "" {
			verificationMethod = iss
		}

		value, err := ResolvePublicKeyValue(resolver, verificationMethod)
		if err != nil {
			return nil, err
		}

		if alg != "EdDSA" {
			return nil, fmt.Errorf("unsupported jwt alg for DID-resolved key: %s", alg)
		}

		return ed25519.PublicKey(value), nil
	}
}
