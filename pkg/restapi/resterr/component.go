/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

//nolint:gosec
const (
	VerifierOIDC4vpSvcComponent           Component = "verifier.oidc4vp-service"
	VerifierProfileSvcComponent           Component = "verifier.profile-service"
	VerifierTxnMgrComponent               Component = "verifier.txn-mgr"
	VerifierPresentationVerifierComponent Component = "verifier.presentation-verifier"
	VerifierDataIntegrityVerifier         Component = "verifier.data-integrity-verifier"
	IssuerProfileSvcComponent             Component = "issuer.profile-service"

	DataProtectorComponent    Component = "data-protector"
	ClaimDataStoreComponent   Component = "claim-data-store"
	TransactionStoreComponent Component = "transaction-store"
	RedisComponent            Component = "redis-service"
)
