/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// EncryptClaims serializes and encrypts the credentials/custom-scope claims a Wallet
// submitted, so the transaction store never holds cleartext personal data at rest.
func (tm *TxManager) EncryptClaims(ctx context.Context, data *ReceivedClaims) (*ClaimData, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := tm.claimsToClaimsRaw(data)
	if err != nil {
		return nil, err
	}

	bytesData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal received claims: %w", err)
	}

	encrypted, err := tm.dataProtector.Encrypt(ctx, bytesData)
	if err != nil {
		return nil, fmt.Errorf("encrypt received claims: %w", err)
	}

	return &ClaimData{EncryptedData: encrypted}, nil
}

func (tm *TxManager) claimsToClaimsRaw(data *ReceivedClaims) (*ReceivedClaimsRaw, error) {
	raw := &ReceivedClaimsRaw{
		Credentials:       map[string][]byte{},
		CustomScopeClaims: map[string][]byte{},
	}

	for key, cred := range data.Credentials {
		cl, err := json.Marshal(cred.Claims)
		if err != nil {
			return nil, fmt.Errorf("serialize received claims: %w", err)
		}

		raw.Credentials[key] = cl
	}

	for key, claims := range data.CustomScopeClaims {
		cl, err := json.Marshal(claims)
		if err != nil {
			return nil, fmt.Errorf("serialize custom scope claims: %w", err)
		}

		raw.CustomScopeClaims[key] = cl
	}

	return raw, nil
}

// DecryptClaims reverses EncryptClaims. Credentials are restored as ClaimSources holding
// the claim document only, without a verification handle: the proof was already checked
// once (see verifypresentation) before the claims were stored, and this path never
// re-verifies stored data.
func (tm *TxManager) DecryptClaims(ctx context.Context, data *ClaimData) (*ReceivedClaims, error) {
	if data == nil { // can happen for vp
		return nil, nil
	}

	resp, err := tm.dataProtector.Decrypt(ctx, data.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("decrypt received claims: %w", err)
	}

	var raw ReceivedClaimsRaw
	if err := json.Unmarshal(resp, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal ReceivedClaimsRaw: %w", err)
	}

	final := &ReceivedClaims{
		Credentials:       map[string]*verifiable.ClaimSource{},
		CustomScopeClaims: map[string]Claims{},
	}

	for k, v := range raw.Credentials {
		var claims interface{}
		if err := json.Unmarshal(v, &claims); err != nil {
			return nil, fmt.Errorf("unmarshal received credential claims %q: %w", k, err)
		}

		final.Credentials[k] = &verifiable.ClaimSource{Claims: claims}
	}

	for k, v := range raw.CustomScopeClaims {
		var claims Claims
		if err := json.Unmarshal(v, &claims); err != nil {
			return nil, fmt.Errorf("unmarshal custom scope claims %q: %w", k, err)
		}

		final.CustomScopeClaims[k] = claims
	}

	return final, nil
}
