/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package profile describes the Verifier's static configuration: the trust rules it
// applies per client_id_scheme, the credential checks it runs, and the DID it signs
// request objects with.
package profile

import (
	"github.com/hyperledger/aries-framework-go/spi/kms"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
)

// ClientIDScheme names one of the OpenID4VP client_id_scheme trust models.
type ClientIDScheme string

const (
	DIDScheme           ClientIDScheme = "did"
	X509SANDNSScheme    ClientIDScheme = "x509_san_dns"
	RedirectURIScheme   ClientIDScheme = "redirect_uri"
	VerifierAttestation ClientIDScheme = "verifier_attestation"
	PreRegistered       ClientIDScheme = "pre-registered"
)

// Verifier is the single Verifier's static profile: its identity, the client_id_scheme
// it presents itself under, and the checks it applies to incoming presentations.
type Verifier struct {
	Name       string              `json:"name,omitempty"`
	URL        string              `json:"url,omitempty"`
	Checks     *VerificationChecks `json:"checks,omitempty"`
	OIDCConfig *OIDC4VPConfig      `json:"oidcConfig,omitempty"`
	KMSConfig  *vcskms.Config      `json:"kmsConfig,omitempty"`
	SigningDID *SigningDID         `json:"signingDID,omitempty"`
}

// OIDC4VPConfig configures how this Verifier builds and signs Authorization Requests.
type OIDC4VPConfig struct {
	ClientIDScheme     ClientIDScheme              `json:"clientIdScheme,omitempty"`
	ROSigningAlgorithm vcsverifiable.SignatureType `json:"roSigningAlgorithm,omitempty"`
	KeyType            kms.KeyType                 `json:"keyType,omitempty"`
	// AttestationJWT is required when ClientIDScheme is VerifierAttestation: a JWT
	// issued to this Verifier by a trust framework, presented alongside the request object.
	AttestationJWT string `json:"attestationJWT,omitempty"`
	// TrustedCAs, when ClientIDScheme is X509SANDNSScheme, are the PEM-encoded roots the
	// Wallet's chain-of-trust check is anchored on.
	TrustedCAs []string `json:"trustedCAs,omitempty"`
}

// VerificationChecks are checks to be performed for verifying credentials and presentations.
type VerificationChecks struct {
	Credential   CredentialChecks    `json:"credential,omitempty"`
	Presentation *PresentationChecks `json:"presentation,omitempty"`
}

// PresentationChecks are checks to be performed during presentation verification.
type PresentationChecks struct {
	Proof  bool                   `json:"proof,omitempty"`
	Format []vcsverifiable.Format `json:"format,omitempty"`
	// VCSubject requires each disclosed credential's subject to be the same DID that
	// signed the presentation, so a Wallet cannot forward a credential issued to someone else.
	VCSubject bool `json:"vcSubject,omitempty"`
}

// CredentialChecks are checks to be performed during credential verification.
type CredentialChecks struct {
	Proof  bool                   `json:"proof,omitempty"`
	Format []vcsverifiable.Format `json:"format,omitempty"`
	Status bool                   `json:"status,omitempty"`
}

// SigningDID contains information about the DID this Verifier signs request objects with.
type SigningDID struct {
	DID     string `json:"did,omitempty"`
	Creator string `json:"creator,omitempty"`
}
