/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"encoding/json"
	"fmt"
)

// ExtractCredentials pulls the embedded Verifiable Credentials out of an ldp_vp/jwt_vp
// ClaimSource and re-parses each into its own ClaimSource, ready for matching against a
// Presentation Definition or for proof/status checks.
func ExtractCredentials(presentation *ClaimSource) ([]*ClaimSource, error) {
	switch presentation.Format {
	case LdpVP:
		return extractLDPCredentials(presentation)
	case JwtVP:
		return extractJWTCredentials(presentation)
	default:
		return nil, fmt.Errorf("unsupported presentation format: %s", presentation.Format)
	}
}

func extractLDPCredentials(presentation *ClaimSource) ([]*ClaimSource, error) {
	raw, ok := presentation.ClaimAt("verifiableCredential")
	if !ok {
		return nil, nil
	}

	var docs []interface{}

	switch v := raw.(type) {
	case []interface{}:
		docs = v
	case map[string]interface{}:
		docs = []interface{}{v}
	default:
		return nil, fmt.Errorf("unexpected verifiableCredential shape %T", raw)
	}

	credentials := make([]*ClaimSource, 0, len(docs))

	for _, doc := range docs {
		credMap, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("embedded credential is not a JSON object")
		}

		credBytes, err := json.Marshal(credMap)
		if err != nil {
			return nil, fmt.Errorf("marshal embedded credential: %w", err)
		}

		cred, err := ParseLDPVC(credBytes)
		if err != nil {
			return nil, fmt.Errorf("parse embedded credential: %w", err)
		}

		credentials = append(credentials, cred)
	}

	return credentials, nil
}

func extractJWTCredentials(presentation *ClaimSource) ([]*ClaimSource, error) {
	vpClaim, ok := presentation.ClaimAt("vp")
	if !ok {
		return nil, nil
	}

	vpMap, ok := vpClaim.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected vp claim shape %T", vpClaim)
	}

	raw, ok := vpMap["verifiableCredential"]
	if !ok {
		return nil, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected verifiableCredential shape %T", raw)
	}

	credentials := make([]*ClaimSource, 0, len(list))

	for _, item := range list {
		compact, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("jwt_vp verifiableCredential entry is not a compact JWS")
		}

		cred, err := ParseJWTVC(compact)
		if err != nil {
			return nil, fmt.Errorf("parse embedded credential: %w", err)
		}

		credentials = append(credentials, cred)
	}

	return credentials, nil
}
