/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifypresentation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trustbloc/oidc4vp/pkg/doc/vc"
	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
)

type Config struct {
	DIDResolver       vc.DIDResolver
	StatusListFetcher vc.StatusListFetcher
}

type Service struct {
	didResolver       vc.DIDResolver
	statusListFetcher vc.StatusListFetcher
}

func New(config *Config) *Service {
	return &Service{
		didResolver:       config.DIDResolver,
		statusListFetcher: config.StatusListFetcher,
	}
}

// VerifyPresentation runs every check the profile enables against presentation: its own
// proof, the proof and status of every credential it embeds, and holder binding between
// them. Every failing check is reported, none of them abort the others.
func (s *Service) VerifyPresentation(
	ctx context.Context,
	presentation *vcsverifiable.ClaimSource,
	opts *Options,
	profile *profileapi.Verifier,
) ([]PresentationVerificationCheckResult, error) {
	var result []PresentationVerificationCheckResult

	if profile.Checks != nil && profile.Checks.Presentation != nil && profile.Checks.Presentation.Proof {
		if err := s.verifyPresentationProof(presentation, opts); err != nil {
			result = append(result, PresentationVerificationCheckResult{Check: "proof", Error: err.Error()})
		}
	}

	credentials, err := vcsverifiable.ExtractCredentials(presentation)
	if err != nil {
		return nil, fmt.Errorf("extract credentials from presentation: %w", err)
	}

	if profile.Checks != nil && profile.Checks.Credential.Proof {
		for _, cred := range credentials {
			if err := s.verifyCredentialProof(cred); err != nil {
				result = append(result, PresentationVerificationCheckResult{Check: "credentialProof", Error: err.Error()})
			}
		}
	}

	if profile.Checks != nil && profile.Checks.Credential.Status {
		for _, cred := range credentials {
			if err := s.checkCredentialStatus(ctx, cred); err != nil {
				result = append(result, PresentationVerificationCheckResult{Check: "credentialStatus", Error: err.Error()})
			}
		}
	}

	if err := checkHolderBinding(presentation, credentials); err != nil {
		result = append(result, PresentationVerificationCheckResult{Check: "credentialHolderBinding", Error: err.Error()})
	}

	return result, nil
}

func (s *Service) verifyPresentationProof(presentation *vcsverifiable.ClaimSource, opts *Options) error {
	if err := checkProofBinding(presentation, opts); err != nil {
		return err
	}

	return s.verifyProof(presentation)
}

func (s *Service) verifyCredentialProof(cred *vcsverifiable.ClaimSource) error {
	return s.verifyProof(cred)
}

func (s *Service) verifyProof(cs *vcsverifiable.ClaimSource) error {
	switch {
	case cs.Format.IsJWT():
		return vcsverifiable.VerifyJWT(cs, vc.NewJWTKeyResolver(s.didResolver))
	case cs.Format.IsLDP():
		return vcsverifiable.VerifyLDP(cs, vc.NewLDPKeyResolver(s.didResolver))
	default:
		return fmt.Errorf("unsupported claim format: %s", cs.Format)
	}
}

// checkProofBinding confirms a jwt_vp/ldp_vp's proof was made for this exact interaction:
// its aud/nonce (JWT) or proof.domain/proof.challenge (LDP) match what was requested.
func checkProofBinding(presentation *vcsverifiable.ClaimSource, opts *Options) error {
	if opts == nil {
		return nil
	}

	switch {
	case presentation.Format.IsJWT():
		if opts.Domain != "" {
			if aud, _ := presentation.ClaimAt("aud"); fmt.Sprint(aud) != opts.Domain {
				return fmt.Errorf("aud claim %v does not match domain %s", aud, opts.Domain)
			}
		}

		if opts.Challenge != "" {
			if nonce, _ := presentation.ClaimAt("nonce"); fmt.Sprint(nonce) != opts.Challenge {
				return fmt.Errorf("nonce claim %v does not match challenge %s", nonce, opts.Challenge)
			}
		}
	case presentation.Format.IsLDP():
		proof, _ := presentation.ClaimAt("proof")

		proofMap, _ := proof.(map[string]interface{})

		if opts.Domain != "" && fmt.Sprint(proofMap["domain"]) != opts.Domain {
			return fmt.Errorf("proof domain %v does not match %s", proofMap["domain"], opts.Domain)
		}

		if opts.Challenge != "" && fmt.Sprint(proofMap["challenge"]) != opts.Challenge {
			return fmt.Errorf("proof challenge %v does not match %s", proofMap["challenge"], opts.Challenge)
		}
	}

	return nil
}

func (s *Service) checkCredentialStatus(ctx context.Context, cred *vcsverifiable.ClaimSource) error {
	statusClaim, ok := cred.ClaimAt("credentialStatus")
	if !ok {
		return nil
	}

	statusBytes, err := json.Marshal(statusClaim)
	if err != nil {
		return fmt.Errorf("marshal credentialStatus: %w", err)
	}

	var status vc.CredentialStatus
	if err := json.Unmarshal(statusBytes, &status); err != nil {
		return fmt.Errorf("unmarshal credentialStatus: %w", err)
	}

	if s.statusListFetcher == nil {
		return fmt.Errorf("status check requested but no status list fetcher is configured")
	}

	revoked, err := vc.CheckRevocation(ctx, &status, s.statusListFetcher)
	if err != nil {
		return err
	}

	if revoked {
		id, _ := cred.ClaimAt("id")
		return fmt.Errorf("credential %v is revoked", id)
	}

	return nil
}

func vpHolder(presentation *vcsverifiable.ClaimSource) (string, bool) {
	if holder, ok := presentation.ClaimAt("holder"); ok {
		if s, ok := holder.(string); ok && s != "" {
			return s, true
		}
	}

	if iss, ok := presentation.ClaimAt("iss"); ok {
		if s, ok := iss.(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
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

// checkHolderBinding confirms every embedded credential's subject matches the presentation's
// holder, so a Wallet cannot present someone else's credential as its own.
func checkHolderBinding(presentation *vcsverifiable.ClaimSource, credentials []*vcsverifiable.ClaimSource) error {
	holder, ok := vpHolder(presentation)
	if !ok {
		return nil
	}

	for _, cred := range credentials {
		subjectID, ok := credentialSubjectID(cred)
		if !ok {
			continue
		}

		if subjectID != holder {
			return fmt.Errorf("credential subject %s does not match presentation holder %s", subjectID, holder)
		}
	}

	return nil
}
