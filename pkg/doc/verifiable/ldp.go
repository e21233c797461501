/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/piprate/json-gold/ld"
)

// ldpHandle is the VerificationHandle a ParseLDPVC/ParseLDPVP call attaches to a
// ClaimSource, carrying the parsed document (with its proof stripped) for canonicalization
// at verify time.
type ldpHandle struct {
	document map[string]interface{}
	proof    map[string]interface{}
}

// LDPKeyResolver resolves the raw public key bytes a Data Integrity proof's verificationMethod
// names, for the given proof suite type.
type LDPKeyResolver func(proofType, verificationMethod string) ([]byte, error)

// ParseLDPVC decodes an ldp_vc JSON-LD document into a ClaimSource.
func ParseLDPVC(raw []byte) (*ClaimSource, error) {
	return parseLDPDocument(raw, LdpVC)
}

// ParseLDPVP decodes an ldp_vp JSON-LD document into a ClaimSource.
func ParseLDPVP(raw []byte) (*ClaimSource, error) {
	return parseLDPDocument(raw, LdpVP)
}

func parseLDPDocument(raw []byte, format Format) (*ClaimSource, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s document: %w", format, err)
	}

	proof, ok := doc["proof"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s document has no proof object", format)
	}

	unsigned := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "proof" {
			continue
		}

		unsigned[k] = v
	}

	return &ClaimSource{
		Format:   format,
		RawBytes: raw,
		Claims:   doc,
		VerificationHandle: &ldpHandle{
			document: unsigned,
			proof:    proof,
		},
	}, nil
}

// VerifyLDP checks cs's Data Integrity proof by canonicalizing the document with URDNA2015
// (the same RDF dataset normalization algorithm the Linked Data proof suites are defined
// over) and verifying the signature over the resulting hash.
func VerifyLDP(cs *ClaimSource, resolve LDPKeyResolver) error {
	if !cs.Format.IsLDP() {
		return fmt.Errorf("claim source format %s is not a Linked Data Proof envelope", cs.Format)
	}

	handle, ok := cs.VerificationHandle.(*ldpHandle)
	if !ok {
		return fmt.Errorf("claim source has no Linked Data Proof verification handle")
	}

	proofType, _ := handle.proof["type"].(string)
	verificationMethod, _ := handle.proof["verificationMethod"].(string)
	proofValueB64, _ := handle.proof["proofValue"].(string)

	if proofType == "" || verificationMethod == "" {
		return fmt.Errorf("proof missing type or verificationMethod")
	}

	pubKey, err := resolve(proofType, verificationMethod)
	if err != nil {
		return fmt.Errorf("resolve verification method %q: %w", verificationMethod, err)
	}

	digest, err := CanonicalizeDigest(handle.document)
	if err != nil {
		return fmt.Errorf("canonicalize document: %w", err)
	}

	switch SignatureType(proofType) {
	case Ed25519Signature2018:
		sig, decErr := base58.Decode(proofValueB64)
		if decErr != nil {
			return fmt.Errorf("decode proofValue: %w", decErr)
		}

		if len(pubKey) != ed25519.PublicKeySize {
			return fmt.Errorf("invalid ed25519 public key length %d", len(pubKey))
		}

		if !ed25519.Verify(pubKey, digest, sig) {
			return fmt.Errorf("ed25519 signature verification failed")
		}

		return nil
	default:
		return fmt.Errorf("unsupported Linked Data Proof suite: %s", proofType)
	}
}

// CanonicalizeDigest reduces document to its URDNA2015 RDF dataset normal form and returns
// the SHA-256 digest of that form: the byte string every Linked Data proof suite this
// package supports signs and verifies over.
func CanonicalizeDigest(document map[string]interface{}) ([]byte, error) {
	proc := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")
	options.Format = "application/n-quads"
	options.Algorithm = ld.AlgorithmURDNA2015

	normalized, err := proc.Normalize(document, options)
	if err != nil {
		return nil, fmt.Errorf("URDNA2015 normalize: %w", err)
	}

	nquads, ok := normalized.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected normalized document type %T", normalized)
	}

	sum := sha256.Sum256([]byte(nquads))

	return sum[:], nil
}
