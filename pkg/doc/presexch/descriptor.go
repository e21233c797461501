/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import (
	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// satisfies reports whether source satisfies descriptor's format, schema, and field
// constraints (spec §4.B "Descriptor matching").
func (pd *PresentationDefinition) satisfies(descriptor *InputDescriptor, source *verifiable.ClaimSource) (bool, error) {
	if pd.Format != nil || descriptor.Constraints != nil {
		if !formatAllowed(pd.Format, descriptor, source.Format) {
			return false, nil
		}
	}

	if !schemaSatisfied(descriptor.Schema, source) {
		return false, nil
	}

	return matchConstraints(source.Claims, descriptor.Constraints)
}

// formatAllowed intersects the definition-level and descriptor-level format constraints
// (if any are declared at all) against the candidate's actual format.
func formatAllowed(definitionFormat *Format, descriptor *InputDescriptor, format verifiable.Format) bool {
	if definitionFormat == nil {
		return true
	}

	_, ok := definitionFormat.allowed(string(format))

	return ok
}

// schemaSatisfied checks the legacy PE v1 schema[] URIs against the candidate's
// @context/type, per spec §9 ("additive and deprecated"). An empty schema list is
// vacuously satisfied.
func schemaSatisfied(schemas []*Schema, source *verifiable.ClaimSource) bool {
	if len(schemas) == 0 {
		return true
	}

	uris := contextAndTypeURIs(source.Claims)

	for _, s := range schemas {
		found := false

		for _, u := range uris {
			if u == s.URI {
				found = true
				break
			}
		}

		if !found && s.Required {
			return false
		}

		if !found {
			continue
		}
	}

	// PE v1 semantics: at least one declared schema URI (required or not) must be present
	// somewhere in the credential's @context/type set.
	for _, s := range schemas {
		for _, u := range uris {
			if u == s.URI {
				return true
			}
		}
	}

	return false
}

func contextAndTypeURIs(claims interface{}) []string {
	m, ok := claims.(map[string]interface{})
	if !ok {
		return nil
	}

	var out []string

	out = append(out, stringsOf(m["@context"])...)
	out = append(out, stringsOf(m["type"])...)

	if vc, ok := m["vc"].(map[string]interface{}); ok {
		out = append(out, stringsOf(vc["@context"])...)
		out = append(out, stringsOf(vc["type"])...)
	}

	return out
}

func stringsOf(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		out := make([]string, 0, len(t))

		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}
