/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifiable normalizes the credential formats OID4VP exchanges
// (jwt_vc, jwt_vp, ldp_vc, ldp_vp, mso_mdoc) into a single ClaimSource
// shape that the presentation-exchange evaluator can operate on without
// caring how the bytes were encoded.
package verifiable

import "fmt"

// Format is a registered Claim Format Designation
// (https://identity.foundation/claim-format-registry/).
type Format string

const (
	// JwtVC is a Verifiable Credential encoded as a compact JWS.
	JwtVC Format = "jwt_vc"
	// JwtVP is a Verifiable Presentation encoded as a compact JWS.
	JwtVP Format = "jwt_vp"
	// LdpVC is a Verifiable Credential encoded as a JSON-LD document with a Data Integrity proof.
	LdpVC Format = "ldp_vc"
	// LdpVP is a Verifiable Presentation encoded as a JSON-LD document with a Data Integrity proof.
	LdpVP Format = "ldp_vp"
	// MsoMdoc is a mobile document per ISO/IEC 18013-5, CBOR-encoded.
	MsoMdoc Format = "mso_mdoc"
)

// IsJWT reports whether the format's proof envelope is a compact JWS.
func (f Format) IsJWT() bool {
	return f == JwtVC || f == JwtVP
}

// IsLDP reports whether the format's proof envelope is a JSON-LD Data Integrity proof.
func (f Format) IsLDP() bool {
	return f == LdpVC || f == LdpVP
}

// Valid reports whether f is one of the formats this system understands.
func (f Format) Valid() bool {
	switch f {
	case JwtVC, JwtVP, LdpVC, LdpVP, MsoMdoc:
		return true
	default:
		return false
	}
}

// Parse dispatches raw credential/presentation bytes to the Format Adapter registered for
// format, returning a normalized ClaimSource. mdocBase64 selects whether raw is treated as
// already-decoded CBOR bytes or as the base64url string mso_mdoc is transmitted as; it is
// ignored for every other format.
func Parse(format Format, raw []byte) (*ClaimSource, error) {
	switch format {
	case JwtVC:
		return ParseJWTVC(string(raw))
	case JwtVP:
		return ParseJWTVP(string(raw))
	case LdpVC:
		return ParseLDPVC(raw)
	case LdpVP:
		return ParseLDPVP(raw)
	case MsoMdoc:
		return ParseMdoc(string(raw))
	default:
		return nil, unsupportedFormatErr(format)
	}
}

func unsupportedFormatErr(f Format) error {
	return fmt.Errorf("unsupported credential format: %s", f)
}
