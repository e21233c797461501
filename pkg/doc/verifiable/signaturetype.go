/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import arieskms "github.com/hyperledger/aries-framework-go/spi/kms"

// SignatureType names the JOSE algorithm or Linked Data Proof suite a key produces,
// independent of the credential Format it is embedded in.
type SignatureType string

const (
	EdDSA                       SignatureType = "EdDSA"
	ES256                       SignatureType = "ES256"
	ES384                       SignatureType = "ES384"
	PS256                       SignatureType = "PS256"
	JSONWebSignature2020        SignatureType = "JsonWebSignature2020"
	Ed25519Signature2018        SignatureType = "Ed25519Signature2018"
	EcdsaSecp256k1Signature2019 SignatureType = "EcdsaSecp256k1Signature2019"
)

// Name returns the wire form of the signature type, as used in a proof's "type" field
// or a JOSE header's "alg".
func (s SignatureType) Name() string {
	return string(s)
}

// IsJWSAlg reports whether s names a JOSE "alg" rather than a Linked Data Proof suite.
func (s SignatureType) IsJWSAlg() bool {
	switch s {
	case EdDSA, ES256, ES384, PS256:
		return true
	default:
		return false
	}
}

// SignatureTypesByKeyType returns the JWT alg and LDP proof type a key of keyType can
// produce. ok is false for key types this module has no signature suite mapping for
// (e.g. key agreement types, which never sign anything).
func SignatureTypesByKeyType(keyType arieskms.KeyType) (jwtAlg, ldpProofType SignatureType, ok bool) {
	switch keyType {
	case arieskms.ED25519Type:
		return EdDSA, Ed25519Signature2018, true
	case arieskms.ECDSAP256TypeDER, arieskms.ECDSAP256TypeIEEEP1363:
		return ES256, JSONWebSignature2020, true
	case arieskms.ECDSAP384TypeDER, arieskms.ECDSAP384TypeIEEEP1363:
		return ES384, JSONWebSignature2020, true
	case arieskms.ECDSASecp256k1TypeDER, arieskms.ECDSASecp256k1TypeIEEEP1363:
		return "", EcdsaSecp256k1Signature2019, true
	case arieskms.RSAPS256Type:
		return PS256, JSONWebSignature2020, true
	default:
		return "", "", false
	}
}
