/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"math/big"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"

	. "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

func selfSignedIssuerCert(t *testing.T, priv *ecdsa.PrivateKey) *x509.Certificate {
	t.Helper()

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "mdoc issuer"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return cert
}

func TestParseAndVerifyMdoc(t *testing.T) {
	issuerKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	issuerCert := selfSignedIssuerCert(t, issuerKey)

	roots := x509.NewCertPool()
	roots.AddCert(issuerCert)

	item, err := cbor.Marshal(map[string]interface{}{
		"digestID":          0,
		"random":            []byte("nonce"),
		"elementIdentifier": "given_name",
		"elementValue":      "Alice",
	})
	require.NoError(t, err)

	mso, err := cbor.Marshal(map[string]interface{}{
		"docType": "org.iso.18013.5.1.mDL",
		"validityInfo": map[string]interface{}{
			"signed":     "2026-01-01T00:00:00Z",
			"validFrom":  "2026-01-01T00:00:00Z",
			"validUntil": "2027-01-01T00:00:00Z",
		},
	})
	require.NoError(t, err)

	taggedMSO, err := cbor.Marshal(cbor.Tag{Number: 24, Content: mso})
	require.NoError(t, err)

	signer, err := cose.NewSigner(cose.AlgorithmES256, issuerKey)
	require.NoError(t, err)

	untagged := cose.UntaggedSign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{cose.HeaderLabelAlgorithm: cose.AlgorithmES256},
		},
		Payload: taggedMSO,
	}

	require.NoError(t, untagged.Sign(rand.Reader, nil, signer))

	doc, err := cbor.Marshal(map[string]interface{}{
		"docType": "org.iso.18013.5.1.mDL",
		"issuerSigned": map[string]interface{}{
			"nameSpaces": map[string]interface{}{
				"org.iso.18013.5.1": []cbor.RawMessage{item},
			},
			"issuerAuth": untagged,
		},
	})
	require.NoError(t, err)

	rawB64 := base64.RawURLEncoding.EncodeToString(doc)

	cs, err := ParseMdoc(rawB64)
	require.NoError(t, err)
	require.Equal(t, MsoMdoc, cs.Format)

	claims, ok := cs.Claims.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Alice", claims["org.iso.18013.5.1.given_name"])

	require.NoError(t, VerifyMdoc(cs, issuerCert, roots))
}
