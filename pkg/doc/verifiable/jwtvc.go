/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"crypto"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// jwtHandle is the VerificationHandle a ParseJWTVC/ParseJWTVP call attaches to a
// ClaimSource, carrying the compact JWS so a later VerifyJWT call can check its signature
// without re-splitting the token.
type jwtHandle struct {
	token *jwt.Token
}

// KeyResolver resolves the public key a JWT's "kid" (or, absent one, its "iss") header
// names, for the alg the token declares.
type KeyResolver func(alg, kid, iss string) (crypto.PublicKey, error)

// ParseJWTVC decodes a jwt_vc compact JWS into a ClaimSource without verifying its
// signature. The "vc" claim, if present, is promoted so descriptor paths can address either
// the JWT's registered claims (iss, sub, ...) or the nested credential document uniformly.
func ParseJWTVC(compact string) (*ClaimSource, error) {
	return parseJWTClaims(compact, JwtVC)
}

// ParseJWTVP decodes a jwt_vp compact JWS into a ClaimSource without verifying its signature.
func ParseJWTVP(compact string) (*ClaimSource, error) {
	return parseJWTClaims(compact, JwtVP)
}

func parseJWTClaims(compact string, format Format) (*ClaimSource, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}

	token, _, err := parser.ParseUnverified(compact, claims)
	if err != nil {
		return nil, fmt.Errorf("parse %s JWS: %w", format, err)
	}

	return &ClaimSource{
		Format:             format,
		RawBytes:           []byte(compact),
		Claims:             map[string]interface{}(claims),
		VerificationHandle: &jwtHandle{token: token},
	}, nil
}

// JWTHeaderAt returns the value found at key in cs's JWS protected header (e.g. "kid", "alg"),
// or false if cs has no JWT verification handle or the header has no such member.
func JWTHeaderAt(cs *ClaimSource, key string) (interface{}, bool) {
	handle, ok := cs.VerificationHandle.(*jwtHandle)
	if !ok {
		return nil, false
	}

	v, ok := handle.token.Header[key]

	return v, ok
}

// VerifyJWT resolves the signing key via resolve and checks cs's JWS signature.
func VerifyJWT(cs *ClaimSource, resolve KeyResolver) error {
	if !cs.Format.IsJWT() {
		return fmt.Errorf("claim source format %s is not a JWT envelope", cs.Format)
	}

	handle, ok := cs.VerificationHandle.(*jwtHandle)
	if !ok {
		return fmt.Errorf("claim source has no JWT verification handle")
	}

	alg, _ := handle.token.Header["alg"].(string)
	kid, _ := handle.token.Header["kid"].(string)
	iss, _ := cs.ClaimAt("iss")
	issStr, _ := iss.(string)

	pubKey, err := resolve(alg, kid, issStr)
	if err != nil {
		return fmt.Errorf("resolve signing key for kid %q: %w", kid, err)
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{alg}))

	if _, err := parser.Parse(string(cs.RawBytes), func(*jwt.Token) (interface{}, error) {
		return pubKey, nil
	}); err != nil {
		return fmt.Errorf("verify %s signature: %w", cs.Format, err)
	}

	return nil
}
