/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	"github.com/trustbloc/oidc4vp/pkg/event/spi"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	"github.com/trustbloc/oidc4vp/pkg/service/oidc4vp"
	"github.com/trustbloc/oidc4vp/pkg/service/verifypresentation"
)

// fakeSigner is a minimal vcskms.Signer, standing in for a real KMS-backed signer since
// these tests never inspect the resulting JWS's signature bytes.
type fakeSigner struct {
	alg string
}

func (f *fakeSigner) Sign(data []byte) ([]byte, error) {
	return []byte("sig"), nil
}

func (f *fakeSigner) Alg() string {
	return f.alg
}

// fakeKeyManager is a minimal vcskms.VCSKeyManager, exercised in place of a real KMS so
// signing tests don't depend on tinkcrypto key generation.
type fakeKeyManager struct {
	supported []arieskms.KeyType
	signerErr error
}

func (f *fakeKeyManager) SupportedKeyTypes() []arieskms.KeyType {
	return f.supported
}

func (f *fakeKeyManager) Create(keyType arieskms.KeyType) (string, []byte, error) {
	return "key-1", []byte("pub-key"), nil
}

func (f *fakeKeyManager) NewSigner(keyID string, signatureType vcsverifiable.SignatureType) (vcskms.Signer, error) {
	if f.signerErr != nil {
		return nil, f.signerErr
	}

	return &fakeSigner{alg: signatureType.Name()}, nil
}

func testProfile() *profileapi.Verifier {
	return &profileapi.Verifier{
		Name: profileID,
		Checks: &profileapi.VerificationChecks{
			Credential: profileapi.CredentialChecks{
				Format: []vcsverifiable.Format{vcsverifiable.JwtVC},
			},
			Presentation: &profileapi.PresentationChecks{
				Format: []vcsverifiable.Format{vcsverifiable.JwtVP},
			},
		},
		OIDCConfig: &profileapi.OIDC4VPConfig{
			KeyType: arieskms.ED25519Type,
		},
		KMSConfig: &vcskms.Config{KMSType: vcskms.Local},
		SigningDID: &profileapi.SigningDID{
			DID:     "did:example:verifier",
			Creator: "did:example:verifier#key-1",
		},
	}
}

func testPresentationDefinition() *presexch.PresentationDefinition {
	return &presexch.PresentationDefinition{
		ID: "pd-1",
		InputDescriptors: []*presexch.InputDescriptor{
			{ID: "descriptor1"},
		},
	}
}

// unverifiedJWT builds a syntactically valid, unsigned compact JWS: header.payload.signature,
// each segment base64url-encoded. ParseJWTVC/ParseJWTVP never check the signature, only
// that the token is well-formed.
func unverifiedJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()

	header, err := json.Marshal(map[string]interface{}{"alg": "EdDSA", "typ": "JWT"})
	require.NoError(t, err)

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding

	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

// testJWTVC returns a compact jwt_vc whose payload carries credentialSubject/type/issuer
// at the top level, matching how RetrieveClaims and checkVCSubject address ClaimSource claims.
func testJWTVC(t *testing.T, subjectID string) string {
	t.Helper()

	return unverifiedJWT(t, map[string]interface{}{
		"type": []interface{}{"VerifiableCredential", "UniversityDegreeCredential"},
		"credentialSubject": map[string]interface{}{
			"id": subjectID,
		},
		"issuer":         "did:example:issuer",
		"issuanceDate":   "2020-01-01T00:00:00Z",
		"expirationDate": "2030-01-01T00:00:00Z",
	})
}

func testJWTVP(t *testing.T, nonce, clientID string, vcJWTs ...string) *vcsverifiable.ClaimSource {
	t.Helper()

	compact := unverifiedJWT(t, map[string]interface{}{
		"iss":   "did:example:holder",
		"nonce": nonce,
		"aud":   clientID,
		"vp": map[string]interface{}{
			"verifiableCredential": toInterfaceSlice(vcJWTs),
		},
	})

	cs, err := vcsverifiable.ParseJWTVP(compact)
	require.NoError(t, err)

	return cs
}

func toInterfaceSlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = v
	}

	return out
}

func TestService_InitiateOidcInteraction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		reqStore := NewMockRequestObjectPublicStore(gomock.NewController(t))
		kmsRegistry := NewMockKMSRegistry(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := &oidc4vp.Transaction{ID: "tx1", ProfileID: profileID, ProfileVersion: profileVersion}

		txManager.EXPECT().CreateTx(gomock.Any(), profileID, "", gomock.Any()).Return(tx, "nonce1", nil)
		kmsRegistry.EXPECT().GetKeyManager(gomock.Any()).Return(
			&fakeKeyManager{supported: []arieskms.KeyType{arieskms.ED25519Type}}, nil)
		reqStore.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://verifier.example/request/1", nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:       txManager,
			RequestObjectPublicStore: reqStore,
			KMSRegistry:              kmsRegistry,
			EventSvc:                 eventSvc,
			EventTopic:               spi.VerifierEventTopic,
		})

		info, err := s.InitiateOidcInteraction(
			context.Background(), testPresentationDefinition(), "test purpose", nil, "", testProfile())

		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, tx.ID, info.TxID)
		assert.Contains(t, info.AuthorizationRequest, "openid-vc://?request_uri=")
	})

	t.Run("Fail: profile has no signing DID", func(t *testing.T) {
		s := oidc4vp.NewService(&oidc4vp.Config{})

		profile := testProfile()
		profile.SigningDID = nil

		_, err := s.InitiateOidcInteraction(context.Background(), testPresentationDefinition(), "", nil, "", profile)
		require.ErrorContains(t, err, "profile signing did can't be nil")
	})

	t.Run("Fail: create tx error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		txManager.EXPECT().CreateTx(gomock.Any(), profileID, "", gomock.Any()).
			Return(nil, "", errors.New("store unavailable"))

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager})

		_, err := s.InitiateOidcInteraction(
			context.Background(), testPresentationDefinition(), "", nil, "", testProfile())
		require.ErrorContains(t, err, "store unavailable")
	})

	t.Run("Fail: kms registry error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		kmsRegistry := NewMockKMSRegistry(gomock.NewController(t))

		tx := &oidc4vp.Transaction{ID: "tx1", ProfileID: profileID}
		txManager.EXPECT().CreateTx(gomock.Any(), profileID, "", gomock.Any()).Return(tx, "nonce1", nil)
		kmsRegistry.EXPECT().GetKeyManager(gomock.Any()).Return(nil, errors.New("kms down"))

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager, KMSRegistry: kmsRegistry})

		_, err := s.InitiateOidcInteraction(
			context.Background(), testPresentationDefinition(), "", nil, "", testProfile())
		require.ErrorContains(t, err, "kms down")
	})

	t.Run("Fail: unsupported key type", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		kmsRegistry := NewMockKMSRegistry(gomock.NewController(t))

		tx := &oidc4vp.Transaction{ID: "tx1", ProfileID: profileID}
		txManager.EXPECT().CreateTx(gomock.Any(), profileID, "", gomock.Any()).Return(tx, "nonce1", nil)
		kmsRegistry.EXPECT().GetKeyManager(gomock.Any()).Return(&fakeKeyManager{}, nil)

		profile := testProfile()
		profile.OIDCConfig.KeyType = ""

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager, KMSRegistry: kmsRegistry})

		_, err := s.InitiateOidcInteraction(
			context.Background(), testPresentationDefinition(), "", nil, "", profile)
		require.ErrorContains(t, err, "unsupported jwt key type")
	})

	t.Run("Fail: publish request object error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		reqStore := NewMockRequestObjectPublicStore(gomock.NewController(t))
		kmsRegistry := NewMockKMSRegistry(gomock.NewController(t))

		tx := &oidc4vp.Transaction{ID: "tx1", ProfileID: profileID}
		txManager.EXPECT().CreateTx(gomock.Any(), profileID, "", gomock.Any()).Return(tx, "nonce1", nil)
		kmsRegistry.EXPECT().GetKeyManager(gomock.Any()).Return(
			&fakeKeyManager{supported: []arieskms.KeyType{arieskms.ED25519Type}}, nil)
		reqStore.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("publish failed"))

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager: txManager, RequestObjectPublicStore: reqStore, KMSRegistry: kmsRegistry,
		})

		_, err := s.InitiateOidcInteraction(
			context.Background(), testPresentationDefinition(), "", nil, "", testProfile())
		require.ErrorContains(t, err, "publish failed")
	})
}

func TestService_VerifyOIDCVerifiablePresentation(t *testing.T) {
	newTx := func() *oidc4vp.Transaction {
		return &oidc4vp.Transaction{
			ID:                     "tx1",
			ProfileID:              profileID,
			ProfileVersion:         profileVersion,
			PresentationDefinition: testPresentationDefinition(),
		}
	}

	t.Run("Success", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		presVerifier := NewMockPresentationVerifier(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := newTx()
		vc := testJWTVC(t, "did:example:holder")
		vp := testJWTVP(t, "nonce1", "did:example:verifier", vc)

		token := &oidc4vp.ProcessedVPToken{
			Nonce:         "nonce1",
			ClientID:      "did:example:verifier",
			SignerDIDID:   "did:example:holder",
			VpTokenFormat: vcsverifiable.JwtVP,
			Presentation:  vp,
		}

		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(testProfile(), nil)
		presVerifier.EXPECT().VerifyPresentation(gomock.Any(), vp, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		txManager.EXPECT().StoreReceivedClaims(oidc4vp.TxID("tx1"), gomock.Any()).Return(nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:   txManager,
			ProfileService:       profileService,
			PresentationVerifier: presVerifier,
			EventSvc:             eventSvc,
			EventTopic:           spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{token},
			PresentationSubmission: &presexch.PresentationSubmission{
				ID:           "submission-1",
				DefinitionID: "pd-1",
				DescriptorMap: []*presexch.InputDescriptorMapping{
					{ID: "descriptor1", Format: "jwt_vc", Path: "$"},
				},
			},
		})

		require.NoError(t, err)
	})

	t.Run("Fail: no tokens", func(t *testing.T) {
		s := oidc4vp.NewService(&oidc4vp.Config{})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{})
		require.ErrorContains(t, err, "must have at least one token")
	})

	t.Run("Fail: invalid nonce", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(&oidc4vp.Transaction{ID: "other-tx"}, true, nil)

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{Nonce: "nonce1"}},
		})
		require.ErrorContains(t, err, "invalid nonce")
	})

	t.Run("Fail: nonce lookup error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(nil, false, errors.New("nonce store down"))

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{Nonce: "nonce1"}},
		})
		require.ErrorContains(t, err, "nonce store down")
	})

	t.Run("Fail: profile lookup error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))

		tx := newTx()
		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(nil, errors.New("not found"))

		s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager, ProfileService: profileService})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{Nonce: "nonce1"}},
		})
		require.ErrorContains(t, err, "inconsistent transaction state")
	})

	t.Run("Fail: unsupported vp_token format", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := newTx()
		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(testProfile(), nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager: txManager,
			ProfileService:     profileService,
			EventSvc:           eventSvc,
			EventTopic:         spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{
				Nonce:         "nonce1",
				VpTokenFormat: vcsverifiable.LdpVP,
				Presentation:  &vcsverifiable.ClaimSource{Format: vcsverifiable.LdpVP},
			}},
		})
		require.ErrorContains(t, err, "does not support")
	})

	t.Run("Fail: presentation verification error", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		presVerifier := NewMockPresentationVerifier(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := newTx()
		vp := testJWTVP(t, "nonce1", "did:example:verifier")

		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(testProfile(), nil)
		presVerifier.EXPECT().VerifyPresentation(gomock.Any(), vp, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("bad proof"))
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:   txManager,
			ProfileService:       profileService,
			PresentationVerifier: presVerifier,
			EventSvc:             eventSvc,
			EventTopic:           spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{
				Nonce: "nonce1", VpTokenFormat: vcsverifiable.JwtVP, Presentation: vp,
			}},
		})
		require.ErrorContains(t, err, "bad proof")
	})

	t.Run("Fail: presentation verification checks failed", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		presVerifier := NewMockPresentationVerifier(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := newTx()
		vp := testJWTVP(t, "nonce1", "did:example:verifier")

		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(testProfile(), nil)
		presVerifier.EXPECT().VerifyPresentation(gomock.Any(), vp, gomock.Any(), gomock.Any()).
			Return([]verifypresentation.PresentationVerificationCheckResult{
				{Check: "proof", Error: "signature invalid"},
			}, nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:   txManager,
			ProfileService:       profileService,
			PresentationVerifier: presVerifier,
			EventSvc:             eventSvc,
			EventTopic:           spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{
				Nonce: "nonce1", VpTokenFormat: vcsverifiable.JwtVP, Presentation: vp,
			}},
		})
		require.ErrorContains(t, err, "signature invalid")
	})

	t.Run("Fail: missing presentation submission", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		presVerifier := NewMockPresentationVerifier(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := &oidc4vp.Transaction{
			ID:             "tx1",
			ProfileID:      profileID,
			ProfileVersion: profileVersion,
			PresentationDefinition: &presexch.PresentationDefinition{
				ID: "pd-1",
				InputDescriptors: []*presexch.InputDescriptor{
					{ID: "descriptor1"},
					{ID: "descriptor2"},
				},
			},
		}

		// the wallet's presentation_submission is missing entirely, so replay fails outright.
		vp := testJWTVP(t, "nonce1", "did:example:verifier")

		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(testProfile(), nil)
		presVerifier.EXPECT().VerifyPresentation(gomock.Any(), vp, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:   txManager,
			ProfileService:       profileService,
			PresentationVerifier: presVerifier,
			EventSvc:             eventSvc,
			EventTopic:           spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{
				Nonce: "nonce1", VpTokenFormat: vcsverifiable.JwtVP, Presentation: vp,
			}},
		})
		require.ErrorContains(t, err, "presentation submission validation")
	})

	t.Run("Fail: vc subject mismatch", func(t *testing.T) {
		txManager := NewMockTransactionManager(gomock.NewController(t))
		profileService := NewMockProfileService(gomock.NewController(t))
		presVerifier := NewMockPresentationVerifier(gomock.NewController(t))
		eventSvc := NewMockeventService(gomock.NewController(t))

		tx := newTx()
		vc := testJWTVC(t, "did:example:someone-else")
		vp := testJWTVP(t, "nonce1", "did:example:verifier", vc)

		profile := testProfile()
		profile.Checks.Presentation.VCSubject = true

		txManager.EXPECT().GetByOneTimeToken("nonce1").Return(tx, true, nil)
		profileService.EXPECT().GetProfile(profileID, profileVersion).Return(profile, nil)
		presVerifier.EXPECT().VerifyPresentation(gomock.Any(), vp, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		eventSvc.EXPECT().Publish(gomock.Any(), spi.VerifierEventTopic, gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{
			TransactionManager:   txManager,
			ProfileService:       profileService,
			PresentationVerifier: presVerifier,
			EventSvc:             eventSvc,
			EventTopic:           spi.VerifierEventTopic,
		})

		err := s.VerifyOIDCVerifiablePresentation(context.Background(), "tx1", &oidc4vp.AuthorizationResponseParsed{
			VPTokens: []*oidc4vp.ProcessedVPToken{{
				Nonce:         "nonce1",
				VpTokenFormat: vcsverifiable.JwtVP,
				Presentation:  vp,
				SignerDIDID:   "did:example:holder",
			}},
			PresentationSubmission: &presexch.PresentationSubmission{
				ID:           "submission-1",
				DefinitionID: "pd-1",
				DescriptorMap: []*presexch.InputDescriptorMapping{
					{ID: "descriptor1", Format: "jwt_vc", Path: "$"},
				},
			},
		})
		require.ErrorContains(t, err, "vc subject")
	})
}

func TestService_RetrieveClaims(t *testing.T) {
	t.Run("no claims yet", func(t *testing.T) {
		s := oidc4vp.NewService(&oidc4vp.Config{})

		result := s.RetrieveClaims(context.Background(), &oidc4vp.Transaction{}, testProfile())
		assert.Empty(t, result)
	})

	t.Run("with claims", func(t *testing.T) {
		attachments := NewMockAttachmentService(gomock.NewController(t))
		attachments.EXPECT().PrepareAttachments(gomock.Any(), gomock.Any()).Return(nil)

		s := oidc4vp.NewService(&oidc4vp.Config{AttachmentService: attachments})

		tx := &oidc4vp.Transaction{
			ReceivedClaims: &oidc4vp.ReceivedClaims{
				Credentials: map[string]*vcsverifiable.ClaimSource{
					"descriptor1": {
						Format: vcsverifiable.JwtVC,
						Claims: map[string]interface{}{
							"type": []interface{}{"VerifiableCredential", "UniversityDegreeCredential"},
							"credentialSubject": map[string]interface{}{
								"id": "did:example:holder",
							},
							"issuer":         "did:example:issuer",
							"issuanceDate":   "2020-01-01T00:00:00Z",
							"expirationDate": "2030-01-01T00:00:00Z",
						},
					},
				},
			},
		}

		result := s.RetrieveClaims(context.Background(), tx, testProfile())

		require.Contains(t, result, "descriptor1")
		metadata := result["descriptor1"]
		assert.Equal(t, vcsverifiable.JwtVC, metadata.Format)
		assert.Equal(t, []string{"VerifiableCredential", "UniversityDegreeCredential"}, metadata.Type)
		assert.Equal(t, "did:example:issuer", metadata.Issuer)
		assert.NotNil(t, metadata.IssuanceDate)
		assert.NotNil(t, metadata.ExpirationDate)
	})
}

func TestService_GetTx(t *testing.T) {
	txManager := NewMockTransactionManager(gomock.NewController(t))
	txManager.EXPECT().Get(oidc4vp.TxID("tx1")).Return(&oidc4vp.Transaction{ID: "tx1"}, nil)

	s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager})

	tx, err := s.GetTx(context.Background(), "tx1")
	require.NoError(t, err)
	assert.Equal(t, oidc4vp.TxID("tx1"), tx.ID)
}

func TestService_DeleteClaims(t *testing.T) {
	txManager := NewMockTransactionManager(gomock.NewController(t))
	txManager.EXPECT().DeleteReceivedClaims("claims1").Return(nil)

	s := oidc4vp.NewService(&oidc4vp.Config{TransactionManager: txManager})

	err := s.DeleteClaims(context.Background(), "claims1")
	require.NoError(t, err)
}

func TestGetSupportedVPFormats(t *testing.T) {
	formats := oidc4vp.GetSupportedVPFormats(
		[]arieskms.KeyType{arieskms.ED25519Type, arieskms.ECDSAP256TypeDER},
		[]vcsverifiable.Format{vcsverifiable.JwtVP, vcsverifiable.LdpVP},
		[]vcsverifiable.Format{vcsverifiable.JwtVC})

	require.NotNil(t, formats.JwtVP)
	require.NotNil(t, formats.LdpVP)
	require.NotNil(t, formats.JwtVC)
	assert.Nil(t, formats.LdpVC)
	assert.Contains(t, formats.JwtVP.Alg, "EdDSA")
	assert.Contains(t, formats.LdpVP.ProofType, "JsonWebSignature2020")
}
