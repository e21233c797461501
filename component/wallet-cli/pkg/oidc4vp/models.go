/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"time"

	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
)

// RequestObject is the signed JWT payload a Verifier publishes at the request_uri a
// Wallet is sent to.
type RequestObject struct {
	JTI                    string                           `json:"jti"`
	IAT                    int64                            `json:"iat"`
	ISS                    string                           `json:"iss"`
	ResponseType           string                           `json:"response_type"`
	ResponseMode           string                           `json:"response_mode"`
	ResponseURI            string                           `json:"response_uri"`
	Scope                  string                           `json:"scope"`
	Nonce                  string                           `json:"nonce"`
	ClientID               string                           `json:"client_id"`
	ClientIDScheme         string                           `json:"client_id_scheme"`
	RedirectURI            string                           `json:"redirect_uri"`
	State                  string                           `json:"state"`
	Exp                    int64                            `json:"exp"`
	ClientMetadata         *ClientMetadata                  `json:"client_metadata"`
	PresentationDefinition *presexch.PresentationDefinition `json:"presentation_definition"`
}

// ClientMetadata carries the Verifier's supported vp_formats and, when it presents itself
// under the x509_san_dns client_id_scheme, the PEM roots its certificate chain is anchored on.
type ClientMetadata struct {
	ClientName                  string           `json:"client_name"`
	ClientPurpose               string           `json:"client_purpose"`
	SubjectSyntaxTypesSupported []string         `json:"subject_syntax_types_supported"`
	VPFormats                   *presexch.Format `json:"vp_formats"`
	TrustedCAs                  []string         `json:"trusted_cas,omitempty"`
}

// Claims is an arbitrary claim set, as returned by a custom scope.
type Claims = map[string]interface{}

// IDTokenClaims is the id_token half of the Authorization Response (OpenID Connect
// self-issued profile, minus the attestation/attachment extensions this flow doesn't
// produce).
type IDTokenClaims struct {
	ScopeAdditionalClaims map[string]Claims `json:"_scope,omitempty"`
	Nonce                 string            `json:"nonce"`
	Exp                   int64             `json:"exp"`
	Iss                   string            `json:"iss"`
	Aud                   string            `json:"aud"`
	Sub                   string            `json:"sub"`
	Nbf                   int64             `json:"nbf"`
	Iat                   int64             `json:"iat"`
	Jti                   string            `json:"jti"`
}

// VPTokenClaims wraps a Verifiable Presentation for jwt_vp transport.
type VPTokenClaims struct {
	VP    map[string]interface{} `json:"vp"`
	Nonce string                 `json:"nonce"`
	Exp   int64                  `json:"exp"`
	Iss   string                 `json:"iss"`
	Aud   string                 `json:"aud"`
	Nbf   int64                  `json:"nbf"`
	Iat   int64                  `json:"iat"`
	Jti   string                 `json:"jti"`
}

// PerfInfo breaks a Run call down by phase, for the same kind of latency reporting the
// teacher's wallet-cli prints after a flow completes.
type PerfInfo struct {
	FetchRequestObject        time.Duration `json:"vp_fetch_request_object"`
	VerifyRequestObject       time.Duration `json:"vp_verify_request_object"`
	QueryCredentialFromWallet time.Duration `json:"vp_query_credential_from_wallet"`
	CreateAuthorizedResponse  time.Duration `json:"vp_create_authorized_response"`
	SendAuthorizedResponse    time.Duration `json:"vp_send_authorized_response"`
	FlowDuration              time.Duration `json:"_flow_duration"`
}
