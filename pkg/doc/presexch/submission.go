/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// buildSubmission renders the chosen descriptor->source assignment as a Presentation
// Submission, per spec §4.B "Submission emission": a bare credential is addressed with
// "$", the Nth credential of a VP Token array with "$[N]", and an enveloped credential
// (a jwt_vc inside an ldp_vp/jwt_vp) with a path_nested mapping.
func buildSubmission(pd *PresentationDefinition, assignment map[string]int, sources []*verifiable.ClaimSource) *PresentationSubmission {
	ids := make([]string, 0, len(assignment))
	for id := range assignment {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	descriptorMap := make([]*InputDescriptorMapping, 0, len(ids))

	single := len(sources) == 1

	for _, id := range ids {
		idx := assignment[id]
		source := sources[idx]

		mapping := &InputDescriptorMapping{
			ID:     id,
			Format: string(source.Format),
			Path:   vpTokenPath(idx, single),
		}

		if source.VerificationHandle != nil {
			if envelopeFormat, ok := source.VerificationHandle.(verifiable.Format); ok {
				mapping.PathNested = &InputDescriptorMapping{
					ID:     id,
					Format: string(envelopeFormat),
					Path:   "$.vc",
				}
			}
		}

		descriptorMap = append(descriptorMap, mapping)
	}

	return &PresentationSubmission{
		ID:            uuid.NewString(),
		DefinitionID:  pd.ID,
		DescriptorMap: descriptorMap,
	}
}

func vpTokenPath(idx int, single bool) string {
	if single {
		return "$"
	}

	return fmt.Sprintf("$[%d]", idx)
}
