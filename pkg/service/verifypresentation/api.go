/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifypresentation

import (
	"context"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
)

// Options carries the values a verified presentation's proof must be bound to.
type Options struct {
	Domain    string
	Challenge string
}

// PresentationVerificationCheckResult is a single failed check, named the way the profile's
// VerificationChecks names it ("proof", "credentialProof", "credentialStatus", ...).
type PresentationVerificationCheckResult struct {
	Check string
	Error string
}

type ServiceInterface interface {
	VerifyPresentation(
		ctx context.Context,
		presentation *vcsverifiable.ClaimSource,
		opts *Options,
		profile *profileapi.Verifier,
	) ([]PresentationVerificationCheckResult, error)
}
