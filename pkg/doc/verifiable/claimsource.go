/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import "encoding/json"

// ClaimSource is the normalized view of a credential the presentation-exchange
// evaluator operates on, regardless of which wire format produced it.
type ClaimSource struct {
	// Format is the Claim Format Designation the bytes were parsed from.
	Format Format
	// RawBytes is the original, unmodified credential bytes (compact JWS, JSON-LD doc, CBOR).
	RawBytes []byte
	// Claims is the claim document as a JSON-shaped tree: map[string]interface{}, []interface{},
	// or a scalar. JSONPath evaluation walks this tree directly; nothing here is over-typed
	// until a Field filter has matched (see pkg/doc/presexch).
	Claims interface{}
	// VerificationHandle is opaque outside the Format Adapter that produced it; it is passed
	// back into that adapter's Verify to check the credential's signature.
	VerificationHandle interface{}
}

// ClaimsJSON re-marshals Claims back to canonical JSON, e.g. to feed a JSON Schema validator
// or to embed the claim document verbatim in a descriptor_map path target.
func (c *ClaimSource) ClaimsJSON() ([]byte, error) {
	return json.Marshal(c.Claims)
}

// ClaimAt returns the value found at a dotted-map lookup key inside Claims, used by adapters
// that need to peek at a well-known top-level property (e.g. "iss", "vc", "type").
func (c *ClaimSource) ClaimAt(key string) (interface{}, bool) {
	m, ok := c.Claims.(map[string]interface{})
	if !ok {
		return nil, false
	}

	v, ok := m[key]

	return v, ok
}
