/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// mdocNamespace is a mobile document namespace, e.g. "org.iso.18013.5.1".
type mdocNamespace string

// mdocDocument is a single ISO/IEC 18013-5 mdoc Document. Only the issuer-signed side is
// modeled: this Verifier checks credential claims and the issuer's signature over them,
// not device binding, so DeviceSigned is not decoded.
type mdocDocument struct {
	DocType      string           `cbor:"docType"`
	IssuerSigned mdocIssuerSigned `cbor:"issuerSigned"`
}

type mdocIssuerSigned struct {
	NameSpaces map[mdocNamespace][]cbor.RawMessage `cbor:"nameSpaces"`
	IssuerAuth cose.UntaggedSign1Message           `cbor:"issuerAuth"`
}

type mdocIssuerSignedItem struct {
	DigestID          int         `cbor:"digestID"`
	Random            []byte      `cbor:"random"`
	ElementIdentifier string      `cbor:"elementIdentifier"`
	ElementValue      interface{} `cbor:"elementValue"`
}

type mdocMSO struct {
	DocType      string           `cbor:"docType"`
	ValidityInfo mdocValidityInfo `cbor:"validityInfo"`
}

type mdocValidityInfo struct {
	Signed     interface{} `cbor:"signed"`
	ValidFrom  interface{} `cbor:"validFrom"`
	ValidUntil interface{} `cbor:"validUntil"`
}

// mdocHandle is the VerificationHandle a ParseMdoc call attaches to a ClaimSource, carrying
// what a later Verify call needs without re-parsing the CBOR.
type mdocHandle struct {
	issuerAuth cose.UntaggedSign1Message
	docType    string
}

// ParseMdoc decodes a base64url (RFC 4648, no padding) CBOR-encoded IssuerSigned mdoc
// document into a ClaimSource. namespace.elementIdentifier pairs become dotted claim keys
// (e.g. "org.iso.18013.5.1.given_name") so the presentation-exchange evaluator's JSONPath
// filters can address individual mdoc elements the same way they address JSON-LD or JWT claims.
func ParseMdoc(rawB64 string) (*ClaimSource, error) {
	raw, err := base64.RawURLEncoding.DecodeString(rawB64)
	if err != nil {
		return nil, fmt.Errorf("decode mdoc base64url: %w", err)
	}

	var doc mdocDocument
	if err := cbor.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode mdoc CBOR: %w", err)
	}

	claims := map[string]interface{}{
		"docType": doc.DocType,
	}

	mso, err := decodeMSO(doc.IssuerSigned.IssuerAuth.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode mobile security object: %w", err)
	}

	claims["validityInfo"] = mso.ValidityInfo

	for ns, items := range doc.IssuerSigned.NameSpaces {
		for _, itemBytes := range items {
			var item mdocIssuerSignedItem
			if err := cbor.Unmarshal(itemBytes, &item); err != nil {
				return nil, fmt.Errorf("decode issuer-signed item in namespace %s: %w", ns, err)
			}

			claims[string(ns)+"."+item.ElementIdentifier] = item.ElementValue
		}
	}

	return &ClaimSource{
		Format:   MsoMdoc,
		RawBytes: raw,
		Claims:   claims,
		VerificationHandle: &mdocHandle{
			issuerAuth: doc.IssuerSigned.IssuerAuth,
			docType:    doc.DocType,
		},
	}, nil
}

// VerifyMdoc checks the mdoc's issuerAuth COSE_Sign1 signature against the public key
// in issuerCert, and that issuerCert itself was issued by one of trustedRoots.
func VerifyMdoc(cs *ClaimSource, issuerCert *x509.Certificate, trustedRoots *x509.CertPool) error {
	handle, ok := cs.VerificationHandle.(*mdocHandle)
	if !ok {
		return fmt.Errorf("claim source is not an mdoc document")
	}

	if _, err := issuerCert.Verify(x509.VerifyOptions{Roots: trustedRoots}); err != nil {
		return fmt.Errorf("issuer certificate not trusted: %w", err)
	}

	pubKey, ok := issuerCert.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("unsupported issuer key type %T, expected *ecdsa.PublicKey", issuerCert.PublicKey)
	}

	verifier, err := cose.NewVerifier(coseAlgFor(pubKey.Curve), pubKey)
	if err != nil {
		return fmt.Errorf("build cose verifier: %w", err)
	}

	if err := handle.issuerAuth.Verify(nil, verifier); err != nil {
		return fmt.Errorf("verify issuerAuth signature: %w", err)
	}

	return nil
}

// decodeMSO unwraps the CBOR tag 24 (encoded CBOR data item) wrapping issuerAuth's payload
// and decodes the MobileSecurityObject inside it.
func decodeMSO(payload []byte) (*mdocMSO, error) {
	var tagged cbor.Tag
	if err := cbor.Unmarshal(payload, &tagged); err != nil {
		return nil, fmt.Errorf("unmarshal tagged payload: %w", err)
	}

	content, ok := tagged.Content.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected tagged content type %T", tagged.Content)
	}

	var mso mdocMSO
	if err := cbor.Unmarshal(content, &mso); err != nil {
		return nil, fmt.Errorf("unmarshal MSO: %w", err)
	}

	return &mso, nil
}

func coseAlgFor(curve elliptic.Curve) cose.Algorithm {
	switch curve.Params().BitSize {
	case 384:
		return cose.AlgorithmES384
	case 521:
		return cose.AlgorithmES512
	default:
		return cose.AlgorithmES256
	}
}
