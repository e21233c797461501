/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package oidc4vp drives the Wallet side of one OID4VP exchange: fetch the Verifier's
// signed Authorization Request, match it against the Wallet's credentials, and post back
// a signed Authorization Response.
package oidc4vp

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ariesjwt "github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/component/wallet-cli/pkg/wallet"
	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	"github.com/trustbloc/oidc4vp/pkg/doc/vc"
	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	verifieroidc4vp "github.com/trustbloc/oidc4vp/pkg/service/oidc4vp"
)

var logger = log.New("wallet-cli/oidc4vp")

const (
	tokenLifetimeSeconds = 600
)

// provider is the collaborator surface NewFlow needs from whatever composes the CLI.
type provider interface {
	HTTPClient() *http.Client
	DIDResolver() vc.DIDResolver
	Wallet() *wallet.Wallet
}

// Flow runs one Wallet-side OID4VP exchange against a single request_uri.
type Flow struct {
	httpClient  *http.Client
	didResolver vc.DIDResolver
	wallet      *wallet.Wallet
	requestURI  string
	perfInfo    *PerfInfo
}

// Opt configures a Flow at construction time.
type Opt func(*Flow)

// WithRequestURI sets the request_uri the flow fetches the Authorization Request from.
func WithRequestURI(uri string) Opt {
	return func(f *Flow) {
		f.requestURI = uri
	}
}

// NewFlow builds a Flow from p, applying opts on top of its defaults.
func NewFlow(p provider, opts ...Opt) (*Flow, error) {
	f := &Flow{
		httpClient:  p.HTTPClient(),
		didResolver: p.DIDResolver(),
		wallet:      p.Wallet(),
		perfInfo:    &PerfInfo{},
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.requestURI == "" {
		return nil, fmt.Errorf("request uri is required")
	}

	return f, nil
}

// PerfInfo reports how long the last Run call spent in each phase.
func (f *Flow) PerfInfo() *PerfInfo {
	return f.perfInfo
}

// Run fetches the Authorization Request, matches it against the Wallet's credentials,
// and posts the resulting Authorization Response.
func (f *Flow) Run(ctx context.Context) error {
	startTime := time.Now()
	defer func() { f.perfInfo.FlowDuration = time.Since(startTime) }()

	requestObject, err := f.fetchRequestObject(ctx)
	if err != nil {
		return fmt.Errorf("fetch request object: %w", err)
	}

	selection, err := f.queryWallet(requestObject.PresentationDefinition)
	if err != nil {
		return fmt.Errorf("query wallet: %w", err)
	}

	if err := f.sendAuthorizationResponse(ctx, requestObject, selection); err != nil {
		return fmt.Errorf("send authorization response: %w", err)
	}

	logger.Debug("oidc4vp flow completed")

	return nil
}

// fetchRequestObject retrieves and verifies the signed Authorization Request found at
// the flow's request_uri.
func (f *Flow) fetchRequestObject(ctx context.Context) (*RequestObject, error) {
	startTime := time.Now()
	defer func() { f.perfInfo.FetchRequestObject = time.Since(startTime) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.requestURI, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching request object: %s", resp.StatusCode, body)
	}

	claims, err := verifiable.ParseJWTVC(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse request object jwt: %w", err)
	}

	claimBytes, err := json.Marshal(claims.Claims)
	if err != nil {
		return nil, fmt.Errorf("marshal request object claims: %w", err)
	}

	var requestObject RequestObject

	if err := json.Unmarshal(claimBytes, &requestObject); err != nil {
		return nil, fmt.Errorf("decode request object: %w", err)
	}

	verifyStart := time.Now()

	if err := f.verifyRequestObject(claims, &requestObject); err != nil {
		return nil, fmt.Errorf("verify request object signature: %w", err)
	}

	f.perfInfo.VerifyRequestObject = time.Since(verifyStart)

	return &requestObject, nil
}

// verifyRequestObject checks the request object's signature under the trust model its
// client_id_scheme names: "did" and "pre-registered" resolve the signing key through the
// Wallet's DID resolver, "redirect_uri" is the unsigned-request scheme and only checks
// client_id binds to redirect_uri, "x509_san_dns" resolves the key from the request's x5c
// certificate chain, and "verifier_attestation" resolves it from the confirmation key of a
// DID-signed attestation JWT carried in the request's jwt header.
func (f *Flow) verifyRequestObject(claims *verifiable.ClaimSource, requestObject *RequestObject) error {
	switch requestObject.ClientIDScheme {
	case "", "did", "pre-registered":
		return verifiable.VerifyJWT(claims, vc.NewJWTKeyResolver(f.didResolver))
	case "redirect_uri":
		if requestObject.ClientID != requestObject.RedirectURI {
			return fmt.Errorf("redirect_uri scheme requires client_id to equal redirect_uri")
		}

		return nil
	case "x509_san_dns":
		return verifyX509SANDNS(claims, requestObject)
	case "verifier_attestation":
		return f.verifyVerifierAttestation(claims, requestObject)
	default:
		return fmt.Errorf("unsupported client_id_scheme %q", requestObject.ClientIDScheme)
	}
}

// verifyX509SANDNS resolves the request object's signing key from the leaf certificate of
// its JWS x5c header, checks the chain builds to one of the Verifier's declared TrustedCAs,
// and that client_id names a SAN dNSName entry of the leaf.
func verifyX509SANDNS(claims *verifiable.ClaimSource, requestObject *RequestObject) error {
	rawChain, ok := verifiable.JWTHeaderAt(claims, "x5c")
	if !ok {
		return fmt.Errorf("x509_san_dns request object is missing an x5c header")
	}

	chain, ok := rawChain.([]interface{})
	if !ok || len(chain) == 0 {
		return fmt.Errorf("x509_san_dns x5c header is empty")
	}

	leafDER, err := decodeX5CEntry(chain[0])
	if err != nil {
		return fmt.Errorf("decode x5c leaf certificate: %w", err)
	}

	leaf, err := x509.ParseCertificate(leafDER)
	if err != nil {
		return fmt.Errorf("parse x5c leaf certificate: %w", err)
	}

	if !dnsNameMatches(leaf, requestObject.ClientID) {
		return fmt.Errorf("client_id %q is not among the leaf certificate's SAN dNSName entries",
			requestObject.ClientID)
	}

	if requestObject.ClientMetadata == nil || len(requestObject.ClientMetadata.TrustedCAs) == 0 {
		return fmt.Errorf("x509_san_dns request object declares no trusted_cas to anchor the chain")
	}

	roots := x509.NewCertPool()

	for _, pemCA := range requestObject.ClientMetadata.TrustedCAs {
		if !roots.AppendCertsFromPEM([]byte(pemCA)) {
			return fmt.Errorf("parse trusted_cas entry")
		}
	}

	intermediates := x509.NewCertPool()

	for _, entry := range chain[1:] {
		der, err := decodeX5CEntry(entry)
		if err != nil {
			return fmt.Errorf("decode x5c intermediate certificate: %w", err)
		}

		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return fmt.Errorf("parse x5c intermediate certificate: %w", err)
		}

		intermediates.AddCert(cert)
	}

	if _, err := leaf.Verify(x509.VerifyOptions{Roots: roots, Intermediates: intermediates}); err != nil {
		return fmt.Errorf("verify x5c certificate chain: %w", err)
	}

	return verifiable.VerifyJWT(claims, func(string, string, string) (crypto.PublicKey, error) {
		return leaf.PublicKey, nil
	})
}

func decodeX5CEntry(entry interface{}) ([]byte, error) {
	s, ok := entry.(string)
	if !ok {
		return nil, fmt.Errorf("x5c entry is not a string")
	}

	return base64.StdEncoding.DecodeString(s)
}

func dnsNameMatches(cert *x509.Certificate, clientID string) bool {
	for _, name := range cert.DNSNames {
		if name == clientID {
			return true
		}
	}

	return false
}

// verifyVerifierAttestation resolves the request object's signing key from the confirmation
// key ("cnf.jwk") of the attestation JWT carried in the request's jwt header, after checking
// that attestation is itself DID-signed and names client_id as its subject.
func (f *Flow) verifyVerifierAttestation(claims *verifiable.ClaimSource, requestObject *RequestObject) error {
	rawAttestation, ok := verifiable.JWTHeaderAt(claims, "jwt")
	if !ok {
		return fmt.Errorf("verifier_attestation request object is missing a jwt header")
	}

	attestationJWT, ok := rawAttestation.(string)
	if !ok || attestationJWT == "" {
		return fmt.Errorf("verifier_attestation jwt header is not a compact JWS")
	}

	attestation, err := verifiable.ParseJWTVC(attestationJWT)
	if err != nil {
		return fmt.Errorf("parse verifier attestation: %w", err)
	}

	if err := verifiable.VerifyJWT(attestation, vc.NewJWTKeyResolver(f.didResolver)); err != nil {
		return fmt.Errorf("verify verifier attestation signature: %w", err)
	}

	sub, _ := attestation.ClaimAt("sub")
	if subStr, _ := sub.(string); subStr != requestObject.ClientID {
		return fmt.Errorf("verifier attestation subject does not match client_id")
	}

	cnfKey, err := confirmationKey(attestation)
	if err != nil {
		return fmt.Errorf("read verifier attestation confirmation key: %w", err)
	}

	return verifiable.VerifyJWT(claims, func(string, string, string) (crypto.PublicKey, error) {
		return cnfKey, nil
	})
}

// confirmationKey decodes the "cnf.jwk" claim RFC 7800 confirmation claims use to bind a
// JWT to a public key, supporting the Ed25519 and P-256 key types this module signs with.
func confirmationKey(attestation *verifiable.ClaimSource) (crypto.PublicKey, error) {
	cnfClaim, ok := attestation.ClaimAt("cnf")
	if !ok {
		return nil, fmt.Errorf("missing cnf claim")
	}

	cnf, ok := cnfClaim.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("cnf claim is not an object")
	}

	jwk, ok := cnf["jwk"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("cnf.jwk is missing or not an object")
	}

	kty, _ := jwk["kty"].(string)
	crv, _ := jwk["crv"].(string)

	x, err := decodeJWKCoordinate(jwk, "x")
	if err != nil {
		return nil, err
	}

	switch {
	case kty == "OKP" && crv == "Ed25519":
		return ed25519.PublicKey(x), nil
	case kty == "EC" && crv == "P-256":
		y, err := decodeJWKCoordinate(jwk, "y")
		if err != nil {
			return nil, err
		}

		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: new(big.Int).SetBytes(x), Y: new(big.Int).SetBytes(y)}, nil
	default:
		return nil, fmt.Errorf("unsupported cnf.jwk kty/crv %q/%q", kty, crv)
	}
}

func decodeJWKCoordinate(jwk map[string]interface{}, member string) ([]byte, error) {
	s, ok := jwk[member].(string)
	if !ok {
		return nil, fmt.Errorf("cnf.jwk.%s is missing", member)
	}

	v, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode cnf.jwk.%s: %w", member, err)
	}

	return v, nil
}

// queryWallet matches pd against the Wallet's held credentials.
func (f *Flow) queryWallet(pd *presexch.PresentationDefinition) (*presexch.Selection, error) {
	startTime := time.Now()
	defer func() { f.perfInfo.QueryCredentialFromWallet = time.Since(startTime) }()

	selection, err := presexch.Evaluate(pd, f.wallet.Credentials())
	if err != nil {
		return nil, fmt.Errorf("evaluate presentation definition: %w", err)
	}

	return selection, nil
}

// sendAuthorizationResponse signs the vp_token/id_token pair and posts them to the
// Verifier's response_uri as a direct_post form body.
func (f *Flow) sendAuthorizationResponse(
	ctx context.Context,
	requestObject *RequestObject,
	selection *presexch.Selection,
) error {
	startTime := time.Now()

	vpToken, err := f.createVPToken(requestObject, selection)
	if err != nil {
		f.perfInfo.CreateAuthorizedResponse = time.Since(startTime)

		return fmt.Errorf("create vp_token: %w", err)
	}

	idToken, err := f.createIDToken(requestObject)
	if err != nil {
		f.perfInfo.CreateAuthorizedResponse = time.Since(startTime)

		return fmt.Errorf("create id_token: %w", err)
	}

	f.perfInfo.CreateAuthorizedResponse = time.Since(startTime)

	submission, err := json.Marshal(selection.Submission)
	if err != nil {
		return fmt.Errorf("marshal presentation submission: %w", err)
	}

	form := url.Values{
		"id_token":                {idToken},
		"vp_token":                {vpToken},
		"presentation_submission": {string(submission)},
		"state":                   {requestObject.State},
	}

	return f.postAuthorizationResponse(ctx, requestObject.ResponseURI, form)
}

// createVPToken embeds every credential the Wallet holds (in the same order Evaluate saw
// them, so the Presentation Submission's "$[N]" paths still resolve) into one Verifiable
// Presentation and signs it as a jwt_vp.
func (f *Flow) createVPToken(requestObject *RequestObject, selection *presexch.Selection) (string, error) {
	credentials := make([]interface{}, len(f.wallet.Credentials()))

	for i, cs := range f.wallet.Credentials() {
		embedded, err := credentialForEmbedding(cs)
		if err != nil {
			return "", fmt.Errorf("embed credential %d: %w", i, err)
		}

		credentials[i] = embedded
	}

	vp := map[string]interface{}{
		"@context":                []string{"https://www.w3.org/2018/credentials/v1"},
		"type":                    []string{"VerifiablePresentation"},
		"verifiableCredential":    credentials,
		"presentation_submission": selection.Submission,
	}

	claims := VPTokenClaims{
		VP:    vp,
		Nonce: requestObject.Nonce,
		Exp:   time.Now().Unix() + tokenLifetimeSeconds,
		Iss:   f.wallet.DID(),
		Aud:   requestObject.ClientID,
		Nbf:   time.Now().Unix(),
		Iat:   time.Now().Unix(),
		Jti:   uuid.NewString(),
	}

	return f.signClaims(claims)
}

// credentialForEmbedding renders a claim source the way it belongs inside a
// verifiableCredential array: a bare compact JWS for jwt_vc/jwt_vp, the parsed document
// for everything else.
func credentialForEmbedding(cs *verifiable.ClaimSource) (interface{}, error) {
	if cs.Format.IsJWT() {
		return string(cs.RawBytes), nil
	}

	var doc interface{}

	if err := json.Unmarshal(cs.RawBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode credential document: %w", err)
	}

	return doc, nil
}

// createIDToken builds and signs the self-issued id_token half of the response.
func (f *Flow) createIDToken(requestObject *RequestObject) (string, error) {
	claims := IDTokenClaims{
		Nonce: requestObject.Nonce,
		Exp:   time.Now().Unix() + tokenLifetimeSeconds,
		Iss:   f.wallet.DID(),
		Aud:   requestObject.ClientID,
		Sub:   f.wallet.DID(),
		Nbf:   time.Now().Unix(),
		Iat:   time.Now().Unix(),
		Jti:   uuid.NewString(),
	}

	return f.signClaims(claims)
}

// signClaims signs claims with the Wallet's key, choosing the JWS alg its key type
// produces.
func (f *Flow) signClaims(claims interface{}) (string, error) {
	jwtAlg, _, ok := verifiable.SignatureTypesByKeyType(f.wallet.KeyType())
	if !ok || jwtAlg == "" {
		return "", fmt.Errorf("unsupported jwt key type %s", f.wallet.KeyType())
	}

	signer, err := f.wallet.Signer(jwtAlg)
	if err != nil {
		return "", fmt.Errorf("build signer: %w", err)
	}

	jwsSigner := verifieroidc4vp.NewJWSSigner(f.wallet.VerificationMethod(), signer)

	token, err := ariesjwt.NewSigned(claims, nil, jwsSigner)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}

	jws, err := token.Serialize(false)
	if err != nil {
		return "", fmt.Errorf("serialize jwt: %w", err)
	}

	return jws, nil
}

// postAuthorizationResponse posts the direct_post form body to responseURI.
func (f *Flow) postAuthorizationResponse(ctx context.Context, responseURI string, form url.Values) error {
	startTime := time.Now()
	defer func() { f.perfInfo.SendAuthorizedResponse = time.Since(startTime) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responseURI, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck

		return fmt.Errorf("unexpected status %s posting authorization response: %s",
			strconv.Itoa(resp.StatusCode), body)
	}

	return nil
}
