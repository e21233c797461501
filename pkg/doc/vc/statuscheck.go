/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trustbloc/oidc4vp/pkg/doc/vc/bitstring"
)

// CredentialStatus is the credentialStatus entry of a verifiable credential, naming the
// status list credential and this credential's index within it.
type CredentialStatus struct {
	Type                 string `json:"type"`
	StatusListIndex      string `json:"statusListIndex,omitempty"`
	StatusListCredential string `json:"statusListCredential,omitempty"`
}

// StatusListFetcher retrieves the raw bytes of the status list credential named by a
// credentialStatus entry's StatusListCredential URL.
type StatusListFetcher func(ctx context.Context, url string) ([]byte, error)

type statusListCredentialSubject struct {
	EncodedList string `json:"encodedList"`
}

type statusListCredential struct {
	CredentialSubject statusListCredentialSubject `json:"credentialSubject"`
}

// CheckRevocation reports whether the credential identified by status is revoked, by
// fetching its status list credential and testing the bit at StatusListIndex.
func CheckRevocation(ctx context.Context, status *CredentialStatus, fetch StatusListFetcher) (bool, error) {
	switch StatusVersion(status.Type) {
	case StatusList2021VCStatus, RevocationList2021VCStatus, RevocationList2020VCStatus:
	default:
		return false, fmt.Errorf("unsupported status list type %q", status.Type)
	}

	raw, err := fetch(ctx, status.StatusListCredential)
	if err != nil {
		return false, fmt.Errorf("fetch status list credential: %w", err)
	}

	var slc statusListCredential
	if err := json.Unmarshal(raw, &slc); err != nil {
		return false, fmt.Errorf("parse status list credential: %w", err)
	}

	bits, err := bitstring.DecodeBits(slc.CredentialSubject.EncodedList)
	if err != nil {
		return false, fmt.Errorf("decode status list: %w", err)
	}

	var index int
	if _, err := fmt.Sscanf(status.StatusListIndex, "%d", &index); err != nil {
		return false, fmt.Errorf("parse statusListIndex %q: %w", status.StatusListIndex, err)
	}

	return bits.Get(index)
}
