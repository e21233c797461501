/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination oidc4vp_service_mocks_test.go -self_package mocks -package oidc4vp_test -source=oidc4vp_service.go -mock_names transactionManager=MockTransactionManager,events=MockEvents,kmsRegistry=MockKMSRegistry,requestObjectPublicStore=MockRequestObjectPublicStore,profileService=MockProfileService,presentationVerifier=MockPresentationVerifier

package oidc4vp

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/doc/jose"
	"github.com/hyperledger/aries-framework-go/pkg/doc/jwt"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/internal/logfields"
	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	"github.com/trustbloc/oidc4vp/pkg/event/spi"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
	noopMetricsProvider "github.com/trustbloc/oidc4vp/pkg/observability/metrics/noop"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	"github.com/trustbloc/oidc4vp/pkg/service/verifypresentation"
)

var logger = log.New("oidc4vp-service")

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type transactionManager interface {
	CreateTx(pd *presexch.PresentationDefinition, profileID, profileVersion string,
		customScopes []string) (*Transaction, string, error)
	StoreReceivedClaims(txID TxID, claims *ReceivedClaims) error
	DeleteReceivedClaims(claimsID string) error
	GetByOneTimeToken(nonce string) (*Transaction, bool, error)
	Get(txID TxID) (*Transaction, error)
	Delete(txID TxID) error
}

type requestObjectPublicStore interface {
	Publish(ctx context.Context, requestObject string, accessRequestObjectEvent *spi.Event) (string, error)
}

type kmsRegistry interface {
	GetKeyManager(config *vcskms.Config) (vcskms.VCSKeyManager, error)
}

type profileService interface {
	GetProfile(profileID, profileVersion string) (*profileapi.Verifier, error)
}

type presentationVerifier interface {
	VerifyPresentation(
		ctx context.Context,
		presentation *vcsverifiable.ClaimSource,
		opts *verifypresentation.Options,
		profile *profileapi.Verifier) ([]verifypresentation.PresentationVerificationCheckResult, error)
}

type attachmentService interface {
	PrepareAttachments(ctx context.Context, credential *vcsverifiable.ClaimSource) []*Attachment
}

type Config struct {
	TransactionManager       transactionManager
	RequestObjectPublicStore requestObjectPublicStore
	KMSRegistry              kmsRegistry
	ProfileService           profileService
	EventSvc                 eventService
	EventTopic               string
	PresentationVerifier     presentationVerifier
	AttachmentService        attachmentService

	RedirectURL   string
	TokenLifetime time.Duration
	Metrics       metricsProvider
}

type metricsProvider interface {
	VerifyOIDCVerifiablePresentationTime(value time.Duration)
}

type Service struct {
	eventSvc                 eventService
	eventTopic               string
	transactionManager       transactionManager
	requestObjectPublicStore requestObjectPublicStore
	kmsRegistry              kmsRegistry
	profileService           profileService
	presentationVerifier     presentationVerifier
	attachmentService        attachmentService

	redirectURL   string
	tokenLifetime time.Duration

	metrics metricsProvider
}

func NewService(cfg *Config) *Service {
	metrics := cfg.Metrics

	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	return &Service{
		eventSvc:                 cfg.EventSvc,
		eventTopic:               cfg.EventTopic,
		transactionManager:       cfg.TransactionManager,
		requestObjectPublicStore: cfg.RequestObjectPublicStore,
		kmsRegistry:              cfg.KMSRegistry,
		profileService:           cfg.ProfileService,
		presentationVerifier:     cfg.PresentationVerifier,
		attachmentService:        cfg.AttachmentService,
		redirectURL:              cfg.RedirectURL,
		tokenLifetime:            cfg.TokenLifetime,
		metrics:                  metrics,
	}
}

func (s *Service) InitiateOidcInteraction(
	ctx context.Context,
	presentationDefinition *presexch.PresentationDefinition,
	purpose string,
	customScopes []string,
	customURLScheme string,
	profile *profileapi.Verifier,
) (*InteractionInfo, error) {
	logger.Debugc(ctx, "InitiateOidcInteraction begin")

	if profile.SigningDID == nil {
		return nil, errors.New("profile signing did can't be nil")
	}

	// The caller's presentation definition is often the profile's stored template,
	// reused across many interactions. Snapshot it before it is persisted to the tx
	// store and embedded in the request object, so a later mutation of the caller's
	// copy can never retroactively change a transaction already handed to a Wallet.
	presentationDefinition, err := clonePresentationDefinition(presentationDefinition)
	if err != nil {
		return nil, fmt.Errorf("clone presentation definition: %w", err)
	}

	tx, nonce, err := s.transactionManager.CreateTx(presentationDefinition, profile.Name, "", customScopes)
	if err != nil {
		return nil, fmt.Errorf("fail to create oidc tx: %w", err)
	}

	logger.Debugc(ctx, "InitiateOidcInteraction tx created", log.WithTxID(string(tx.ID)))

	token, err := s.createRequestObjectJWT(presentationDefinition, tx, nonce, purpose, profile)
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "InitiateOidcInteraction request object created")

	accessRequestObjectEvent, err := CreateEvent(spi.VerifierOIDCInteractionQRScanned, tx.ID,
		createBaseTxEventPayload(tx, profile))
	if err != nil {
		return nil, err
	}

	requestURI, err := s.requestObjectPublicStore.Publish(ctx, token, accessRequestObjectEvent)
	if err != nil {
		return nil, fmt.Errorf("fail publish request object: %w", err)
	}

	logger.Debugc(ctx, "InitiateOidcInteraction request object published")

	scheme := customURLScheme
	if scheme == "" {
		scheme = "openid-vc"
	}

	authorizationRequest := scheme + "://?request_uri=" + requestURI

	if err := s.sendOIDCInteractionInitiatedEvent(ctx, tx, profile, authorizationRequest); err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "InitiateOidcInteraction succeed")

	return &InteractionInfo{
		AuthorizationRequest: authorizationRequest,
		TxID:                 tx.ID,
	}, nil
}

// clonePresentationDefinition deep-copies pd, including its nested input descriptors
// and constraint fields, so the returned value shares no memory with pd.
func clonePresentationDefinition(
	pd *presexch.PresentationDefinition,
) (*presexch.PresentationDefinition, error) {
	if pd == nil {
		return nil, nil
	}

	cloned := &presexch.PresentationDefinition{}

	if err := copier.CopyWithOption(cloned, pd, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return cloned, nil
}

func (s *Service) verifyTokens(
	ctx context.Context,
	tx *Transaction,
	profile *profileapi.Verifier,
	tokens []*ProcessedVPToken,
) (map[string]*ProcessedVPToken, error) {
	verifiedPresentations := make(map[string]*ProcessedVPToken)

	var validationErrors []error
	mut := sync.Mutex{}
	wg := sync.WaitGroup{}
	for _, token2 := range tokens {
		token := token2
		wg.Add(1)

		go func() {
			defer wg.Done()

			if profile.Checks != nil && profile.Checks.Presentation != nil &&
				!lo.Contains(profile.Checks.Presentation.Format, token.VpTokenFormat) {
				e := fmt.Errorf("profile does not support %s vp_token format", token.VpTokenFormat)
				s.sendFailedTransactionEvent(ctx, tx, profile, e)

				mut.Lock()
				validationErrors = append(validationErrors, e)
				mut.Unlock()
				return
			}

			vr, innerErr := s.presentationVerifier.VerifyPresentation(ctx, token.Presentation, &verifypresentation.Options{
				Domain:    token.ClientID,
				Challenge: token.Nonce,
			}, profile)
			if innerErr != nil {
				e := fmt.Errorf("presentation verification failed: %w", innerErr)
				s.sendFailedTransactionEvent(ctx, tx, profile, e)

				mut.Lock()
				validationErrors = append(validationErrors, e)
				mut.Unlock()
				return
			}

			if len(vr) > 0 {
				e := fmt.Errorf("presentation verification checks failed: %s", vr[0].Error)
				s.sendFailedTransactionEvent(ctx, tx, profile, e)

				mut.Lock()
				validationErrors = append(validationErrors, e)
				mut.Unlock()
				return
			}

			key := presentationDedupKey(token.Presentation)

			mut.Lock()
			defer mut.Unlock()
			if _, ok := verifiedPresentations[key]; !ok {
				verifiedPresentations[key] = token
			} else {
				e := fmt.Errorf("duplicate presentation in vp_token")
				s.sendFailedTransactionEvent(ctx, tx, profile, e)

				validationErrors = append(validationErrors, e)
				return
			}
		}()
		logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation verified")
	}
	wg.Wait()

	if len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	return verifiedPresentations, nil
}

// presentationDedupKey identifies a presentation for duplicate-submission detection.
// ClaimSource carries no wire-format-independent ID, so the raw bytes it was parsed
// from stand in for one.
func presentationDedupKey(presentation *vcsverifiable.ClaimSource) string {
	sum := sha256.Sum256(presentation.RawBytes)
	return string(sum[:])
}

func (s *Service) VerifyOIDCVerifiablePresentation(
	ctx context.Context, txID TxID, authResponse *AuthorizationResponseParsed) error {
	logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation begin")
	startTime := time.Now()

	defer func() {
		s.metrics.VerifyOIDCVerifiablePresentationTime(time.Since(startTime))
		logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation", log.WithDuration(time.Since(startTime)))
	}()

	tokens := authResponse.VPTokens

	if len(tokens) == 0 {
		return fmt.Errorf("must have at least one token")
	}

	// All tokens have same nonce
	tx, validNonce, err := s.transactionManager.GetByOneTimeToken(tokens[0].Nonce)
	if err != nil {
		return fmt.Errorf("get tx by nonce failed: %w", err)
	}

	if !validNonce || tx.ID != txID {
		return fmt.Errorf("invalid nonce")
	}

	logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation nonce verified")

	profile, err := s.profileService.GetProfile(tx.ProfileID, tx.ProfileVersion)
	if err != nil {
		return fmt.Errorf("inconsistent transaction state %w", err)
	}

	logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation profile fetched", logfields.WithProfileID(profile.Name))

	logger.Debugc(ctx, fmt.Sprintf("VerifyOIDCVerifiablePresentation count of tokens is %v", len(tokens)))

	verifiedPresentations, err := s.verifyTokens(ctx, tx, profile, tokens)
	if err != nil {
		return err
	}

	receivedClaims, err := s.extractClaimData(ctx, tx, authResponse, profile, verifiedPresentations)
	if err != nil {
		s.sendFailedTransactionEvent(ctx, tx, profile, err)

		return err
	}

	logger.Debugc(ctx, "extractClaimData claims stored")

	if err := s.sendOIDCInteractionSucceededEvent(ctx, tx, profile, receivedClaims, nil); err != nil {
		return err
	}

	logger.Debugc(ctx, "VerifyOIDCVerifiablePresentation succeed")
	return nil
}

func (s *Service) GetTx(_ context.Context, id TxID) (*Transaction, error) {
	return s.transactionManager.Get(id)
}

// RetrieveClaims builds display metadata for every credential a completed transaction
// received, walking each ClaimSource's claim tree generically since the concrete shape
// varies by credential Format.
func (s *Service) RetrieveClaims(
	ctx context.Context, tx *Transaction, profile *profileapi.Verifier) map[string]CredentialMetadata {
	logger.Debugc(ctx, "RetrieveClaims begin")
	result := map[string]CredentialMetadata{}

	if tx.ReceivedClaims == nil {
		return result
	}

	for descriptorID, cred := range tx.ReceivedClaims.Credentials {
		metadata := CredentialMetadata{
			Format: cred.Format,
			Type:   claimStringSlice(cred, "type"),
		}

		if subject, ok := cred.ClaimAt("credentialSubject"); ok {
			metadata.SubjectData = subject
		}

		if issuer, ok := cred.ClaimAt("issuer"); ok {
			metadata.Issuer = issuer
		}

		metadata.IssuanceDate = claimTime(cred, "issuanceDate")
		metadata.ExpirationDate = claimTime(cred, "expirationDate")
		metadata.ValidFrom = claimTime(cred, "validFrom")
		metadata.ValidUntil = claimTime(cred, "validUntil")

		if name, ok := cred.ClaimAt("name"); ok {
			metadata.Name = name
		}

		if desc, ok := cred.ClaimAt("description"); ok {
			metadata.Description = desc
		}

		if s.attachmentService != nil {
			metadata.Attachments = s.attachmentService.PrepareAttachments(ctx, cred)
		}

		result[descriptorID] = metadata
	}

	logger.Debugc(ctx, "RetrieveClaims succeed")

	return result
}

func claimStringSlice(cred *vcsverifiable.ClaimSource, key string) []string {
	raw, ok := cred.ClaimAt(key)
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func claimTime(cred *vcsverifiable.ClaimSource, key string) *time.Time {
	raw, ok := cred.ClaimAt(key)
	if !ok {
		return nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}

	return &t
}

func (s *Service) DeleteClaims(_ context.Context, claimsID string) error {
	return s.transactionManager.DeleteReceivedClaims(claimsID)
}

// extractClaimData replays the Wallet's own Presentation Submission against the pooled
// credentials extracted from its vp_token(s), confirming it genuinely satisfies the
// transaction's Presentation Definition before trusting any of it, then stores the
// credentials it names.
func (s *Service) extractClaimData(
	ctx context.Context,
	tx *Transaction,
	authResponse *AuthorizationResponseParsed,
	profile *profileapi.Verifier,
	verifiedPresentations map[string]*ProcessedVPToken,
) (*ReceivedClaims, error) {
	var pool []*vcsverifiable.ClaimSource

	sourceTokens := make(map[int]*ProcessedVPToken)

	for _, token := range authResponse.VPTokens {
		if _, ok := verifiedPresentations[presentationDedupKey(token.Presentation)]; !ok {
			continue
		}

		credentials, err := vcsverifiable.ExtractCredentials(token.Presentation)
		if err != nil {
			return nil, fmt.Errorf("extract credentials: %w", err)
		}

		for _, cred := range credentials {
			sourceTokens[len(pool)] = token
			pool = append(pool, cred)
		}
	}

	err := presexch.Validate(tx.PresentationDefinition, authResponse.PresentationSubmission, submissionPathResolver(pool))
	if err != nil {
		return nil, fmt.Errorf("presentation submission validation: %w", err)
	}

	storeCredentials := make(map[string]*vcsverifiable.ClaimSource, len(authResponse.PresentationSubmission.DescriptorMap))

	for _, mapping := range authResponse.PresentationSubmission.DescriptorMap {
		idx, pathErr := vpTokenPathIndex(mapping.Path, len(pool))
		if pathErr != nil {
			return nil, fmt.Errorf("resolve descriptor %s: %w", mapping.ID, pathErr)
		}

		cred := pool[idx]

		if profile.Checks != nil && profile.Checks.Presentation != nil && profile.Checks.Presentation.VCSubject {
			token, ok := sourceTokens[idx]
			if !ok {
				return nil, fmt.Errorf("missing source token for descriptor %s", mapping.ID)
			}

			if err := checkVCSubject(cred, token); err != nil {
				return nil, fmt.Errorf("extractClaimData vc subject: %w", err)
			}

			logger.Debugc(ctx, "vc subject verified")
		}

		storeCredentials[mapping.ID] = cred
	}

	receivedClaims := &ReceivedClaims{
		Credentials:       storeCredentials,
		CustomScopeClaims: authResponse.CustomScopeClaims,
	}

	if err := s.transactionManager.StoreReceivedClaims(tx.ID, receivedClaims); err != nil {
		return nil, fmt.Errorf("store received claims: %w", err)
	}

	return receivedClaims, nil
}

// submissionPathResolver resolves a descriptor_map path ("$" for a bare vp_token, "$[N]"
// for the Nth of a pooled array, the addressing scheme presexch's submission builder
// emits on the Wallet side) against the credentials pooled from the submitted vp_token(s).
func submissionPathResolver(pool []*vcsverifiable.ClaimSource) func(path string) (*vcsverifiable.ClaimSource, error) {
	return func(path string) (*vcsverifiable.ClaimSource, error) {
		idx, err := vpTokenPathIndex(path, len(pool))
		if err != nil {
			return nil, presexch.JSONPathError(path, err)
		}

		if idx < 0 || idx >= len(pool) {
			return nil, presexch.JSONPathError(path, fmt.Errorf("index %d out of range", idx))
		}

		return pool[idx], nil
	}
}

// vpTokenPathIndex parses a descriptor_map path into a pool index.
func vpTokenPathIndex(path string, poolLen int) (int, error) {
	if path == "$" {
		if poolLen == 0 {
			return 0, fmt.Errorf("empty credential pool")
		}

		return 0, nil
	}

	var idx int

	if _, err := fmt.Sscanf(path, "$[%d]", &idx); err != nil {
		return 0, fmt.Errorf("unsupported presentation_submission path %q", path)
	}

	return idx, nil
}

func checkVCSubject(cred *vcsverifiable.ClaimSource, token *ProcessedVPToken) error {
	subjectID, ok := credentialSubjectID(cred)
	if !ok {
		return fmt.Errorf("credential has no credentialSubject.id")
	}

	if token.SignerDIDID != subjectID {
		return fmt.Errorf("vc subject(%s) does not match with vp signer(%s)",
			subjectID, token.SignerDIDID)
	}

	return nil
}

func credentialSubjectID(cred *vcsverifiable.ClaimSource) (string, bool) {
	subject, ok := cred.ClaimAt("credentialSubject")
	if !ok {
		return "", false
	}

	switch s := subject.(type) {
	case map[string]interface{}:
		id, ok := s["id"].(string)
		return id, ok
	case []interface{}:
		if len(s) == 0 {
			return "", false
		}

		m, ok := s[0].(map[string]interface{})
		if !ok {
			return "", false
		}

		id, ok := m["id"].(string)

		return id, ok
	default:
		return "", false
	}
}

func (s *Service) createRequestObjectJWT(presentationDefinition *presexch.PresentationDefinition,
	tx *Transaction,
	nonce string,
	purpose string,
	profile *profileapi.Verifier) (string, error) {
	km, err := s.kmsRegistry.GetKeyManager(profile.KMSConfig)
	if err != nil {
		return "", fmt.Errorf("initiate oidc interaction: get key manager failed: %w", err)
	}

	vpFormats := GetSupportedVPFormats(
		km.SupportedKeyTypes(), profile.Checks.Presentation.Format, profile.Checks.Credential.Format)

	ro := s.createRequestObject(presentationDefinition, vpFormats, tx, nonce, purpose, profile)

	jwtAlg, _, ok := vcsverifiable.SignatureTypesByKeyType(profile.OIDCConfig.KeyType)
	if !ok || jwtAlg == "" {
		return "", fmt.Errorf("unsupported jwt key type %s", profile.OIDCConfig.KeyType)
	}

	vcsSigner, err := km.NewSigner(profile.SigningDID.Creator, jwtAlg)
	if err != nil {
		return "", fmt.Errorf("initiate oidc interaction: get create signer failed: %w", err)
	}

	return signRequestObject(ro, profile, vcsSigner)
}

func signRequestObject(ro *RequestObject, profile *profileapi.Verifier, vcsSigner vcskms.Signer) (string, error) {
	signer := NewJWSSigner(profile.SigningDID.Creator, vcsSigner)

	var headers jose.Headers

	if profile.OIDCConfig.ClientIDScheme == profileapi.VerifierAttestation {
		if profile.OIDCConfig.AttestationJWT == "" {
			return "", fmt.Errorf("client_id_scheme verifier_attestation requires an attestation jwt")
		}

		headers = jose.Headers{"jwt": profile.OIDCConfig.AttestationJWT}
	}

	token, err := jwt.NewSigned(ro, headers, signer)
	if err != nil {
		return "", fmt.Errorf("initiate oidc interaction: sign token failed: %w", err)
	}

	tokenBytes, err := token.Serialize(false)
	if err != nil {
		return "", fmt.Errorf("initiate oidc interaction: serialize token failed: %w", err)
	}

	return tokenBytes, nil
}

// GetSupportedVPFormats reports, per credential Format the profile has enabled, which
// JOSE algs / LDP proof types the configured KMS can actually produce.
func GetSupportedVPFormats(
	kmsSupportedKeyTypes []arieskms.KeyType,
	supportedVPFormats,
	supportedVCFormats []vcsverifiable.Format) *presexch.Format {
	jwtAlgs := make(map[string]struct{})
	ldpProofTypes := make(map[string]struct{})

	for _, keyType := range kmsSupportedKeyTypes {
		jwtAlg, ldpProofType, ok := vcsverifiable.SignatureTypesByKeyType(keyType)
		if !ok {
			continue
		}

		if jwtAlg != "" {
			jwtAlgs[jwtAlg.Name()] = struct{}{}
		}

		if ldpProofType != "" {
			ldpProofTypes[ldpProofType.Name()] = struct{}{}
		}
	}

	jwtAlgNames := make([]string, 0, len(jwtAlgs))
	for alg := range jwtAlgs {
		jwtAlgNames = append(jwtAlgNames, alg)
	}

	ldpProofTypeNames := make([]string, 0, len(ldpProofTypes))
	for pt := range ldpProofTypes {
		ldpProofTypeNames = append(ldpProofTypeNames, pt)
	}

	formats := &presexch.Format{}

	for _, vpFormat := range supportedVPFormats {
		switch vpFormat {
		case vcsverifiable.JwtVP:
			formats.JwtVP = &presexch.JwtType{Alg: jwtAlgNames}
		case vcsverifiable.LdpVP:
			formats.LdpVP = &presexch.LdpType{ProofType: ldpProofTypeNames}
		}
	}

	for _, vcFormat := range supportedVCFormats {
		switch vcFormat {
		case vcsverifiable.JwtVC:
			formats.JwtVC = &presexch.JwtType{Alg: jwtAlgNames}
		case vcsverifiable.LdpVC:
			formats.LdpVC = &presexch.LdpType{ProofType: ldpProofTypeNames}
		}
	}

	return formats
}

func (s *Service) createRequestObject(
	presentationDefinition *presexch.PresentationDefinition,
	vpFormats *presexch.Format,
	tx *Transaction,
	nonce string,
	purpose string,
	profile *profileapi.Verifier) *RequestObject {
	tokenLifetime := s.tokenLifetime
	now := time.Now()

	scheme := profile.OIDCConfig.ClientIDScheme

	return &RequestObject{
		JTI:            uuid.New().String(),
		IAT:            now.Unix(),
		ISS:            profile.SigningDID.DID,
		ResponseType:   "vp_token",
		ResponseMode:   "direct_post",
		ResponseURI:    s.redirectURL,
		Scope:          "openid",
		Nonce:          nonce,
		ClientID:       clientIDForScheme(scheme, profile.SigningDID.DID, s.redirectURL),
		ClientIDScheme: string(scheme),
		RedirectURI:    s.redirectURL,
		State:          string(tx.ID),
		Exp:            now.Add(tokenLifetime).Unix(),
		Registration: RequestObjectRegistration{
			ClientName:                  profile.Name,
			SubjectSyntaxTypesSupported: []string{"did:ion"},
			VPFormats:                   vpFormats,
			ClientPurpose:               purpose,
		},
		ClientMetadata: &ClientMetadata{
			ClientName:                  profile.Name,
			SubjectSyntaxTypesSupported: []string{"did:ion"},
			VPFormats:                   vpFormats,
			ClientPurpose:               purpose,
			TrustedCAs:                  profile.OIDCConfig.TrustedCAs,
		},
		Claims: RequestObjectClaims{VPToken: VPToken{
			PresentationDefinition: presentationDefinition,
		}},
		PresentationDefinition: presentationDefinition,
	}
}

// clientIDForScheme derives client_id per client_id_scheme's binding rule: the signing DID
// for did/pre-registered/verifier_attestation, and the Verifier's own response endpoint
// (or its hostname, for x509_san_dns) for the two schemes that bind client_id to a URI.
func clientIDForScheme(scheme profileapi.ClientIDScheme, did, redirectURL string) string {
	switch scheme {
	case profileapi.RedirectURIScheme:
		return redirectURL
	case profileapi.X509SANDNSScheme:
		if u, err := url.Parse(redirectURL); err == nil && u.Hostname() != "" {
			return u.Hostname()
		}

		return redirectURL
	default:
		return did
	}
}

type JWSSigner struct {
	keyID  string
	signer vcskms.Signer
}

func NewJWSSigner(keyID string, signer vcskms.Signer) *JWSSigner {
	return &JWSSigner{
		keyID:  keyID,
		signer: signer,
	}
}

// Sign signs.
func (s *JWSSigner) Sign(data []byte) ([]byte, error) {
	return s.signer.Sign(data)
}

// Headers provides JWS headers. "alg" header must be provided (see https://tools.ietf.org/html/rfc7515#section-4.1)
func (s *JWSSigner) Headers() jose.Headers {
	return jose.Headers{
		jose.HeaderKeyID:     s.keyID,
		jose.HeaderAlgorithm: s.signer.Alg(),
	}
}

