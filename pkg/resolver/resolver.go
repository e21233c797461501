/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package resolver implements the key-resolution graph described in
// spec §9: a single Resolve(identifier, kid) entry point returning
// candidate JWKs, fronted by a bounded-TTL, single-flight cache shared
// read-mostly across concurrent exchanges.
package resolver

import (
	"context"
	"crypto"
)

// JWK is the minimal public-key material the Format Adapters and Request/Response
// protocol need to verify a signature. Parsing the wire JSON Web Key document itself
// is delegated to whichever DID/JWKS client backs a Resolver implementation; this
// system only consumes the already-decoded public key.
type JWK struct {
	Kid string
	Alg string
	Use string
	Pub crypto.PublicKey
}

// Resolver resolves verification keys for a credential or request-object signer.
// identifier is a DID, an issuer URL, or an x5c leaf subject depending on the caller;
// kid narrows the result when the identifier owns more than one key. Implementations
// return every candidate under that (identifier, kid) pair; callers try each until one
// verifies, per spec §4.A.
type Resolver interface {
	Resolve(ctx context.Context, identifier, kid string) ([]JWK, error)
}

// Func adapts a plain function to Resolver.
type Func func(ctx context.Context, identifier, kid string) ([]JWK, error)

// Resolve implements Resolver.
func (f Func) Resolve(ctx context.Context, identifier, kid string) ([]JWK, error) {
	return f(ctx, identifier, kid)
}

// Composite tries each Resolver in order, returning the first non-empty result.
// Used to compose e.g. a DID resolver with a client_id_scheme pre-registered lookup.
type Composite []Resolver

// Resolve implements Resolver.
func (c Composite) Resolve(ctx context.Context, identifier, kid string) ([]JWK, error) {
	var lastErr error

	for _, r := range c {
		keys, err := r.Resolve(ctx, identifier, kid)
		if err != nil {
			lastErr = err
			continue
		}

		if len(keys) > 0 {
			return keys, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	return nil, nil
}
