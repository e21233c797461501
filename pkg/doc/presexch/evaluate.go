/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import (
	"sort"

	"github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

// Selection is the result of evaluating a PresentationDefinition against a set of
// candidate ClaimSources: which credential answers which Input Descriptor, and the
// Presentation Submission that records it.
type Selection struct {
	// Assignment maps Input Descriptor id to the index of the ClaimSource in the slice
	// passed to Evaluate that was chosen to satisfy it.
	Assignment map[string]int
	Submission *PresentationSubmission
}

// Evaluate matches sources against pd's input_descriptors and submission_requirements,
// choosing one ClaimSource per selected descriptor and emitting the resulting
// Presentation Submission.
//
// Evaluate is deterministic: among multiple satisfying sources for a descriptor, the
// lowest source index wins; when limit_disclosure=required forbids reusing a source
// across descriptors, later descriptors fall back to their next-best candidate in
// source-index order.
func Evaluate(pd *PresentationDefinition, sources []*verifiable.ClaimSource) (*Selection, error) {
	if pd == nil {
		return nil, NoMatch("")
	}

	candidates := make(candidateSet, len(pd.InputDescriptors))

	exclusive := make(map[string]bool, len(pd.InputDescriptors))

	for _, d := range pd.InputDescriptors {
		exclusive[d.ID] = d.Constraints.disclosureRequired()

		for i, source := range sources {
			ok, err := pd.satisfies(d, source)
			if err != nil {
				return nil, err
			}

			if ok {
				candidates[d.ID] = append(candidates[d.ID], i)
			}
		}
	}

	selectedIDs, err := resolveRequirements(pd, candidates)
	if err != nil {
		return nil, err
	}

	assignment, err := assignSources(selectedIDs, candidates, exclusive)
	if err != nil {
		return nil, err
	}

	submission := buildSubmission(pd, assignment, sources)

	return &Selection{Assignment: assignment, Submission: submission}, nil
}

// assignSources picks one source per selected descriptor, in ascending descriptor-id
// order, preferring the lowest source index and skipping sources already claimed
// exclusively by a prior descriptor.
func assignSources(ids []string, candidates candidateSet, exclusive map[string]bool) (map[string]int, error) {
	assignment := make(map[string]int, len(ids))
	claimed := make(map[int]bool)

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	for _, id := range sorted {
		chosen := -1

		for _, idx := range candidates[id] {
			if claimed[idx] && exclusive[id] {
				continue
			}

			chosen = idx

			break
		}

		if chosen < 0 {
			return nil, NoMatch(id)
		}

		assignment[id] = chosen

		if exclusive[id] {
			claimed[chosen] = true
		}
	}

	return assignment, nil
}

// Validate replays a Holder-authored Presentation Submission against pd and the
// resolved ClaimSources it points to, confirming every selected descriptor's
// constraints still hold.
func Validate(pd *PresentationDefinition, submission *PresentationSubmission, resolve func(path string) (*verifiable.ClaimSource, error)) error {
	if submission == nil {
		return NoMatch(pd.ID)
	}

	seen := make(map[string]bool, len(submission.DescriptorMap))

	for _, mapping := range submission.DescriptorMap {
		descriptor := pd.inputDescriptor(mapping.ID)
		if descriptor == nil {
			return NoMatch(mapping.ID)
		}

		source, err := resolve(mapping.Path)
		if err != nil {
			return JSONPathError(mapping.Path, err)
		}

		if mapping.PathNested != nil {
			source, err = resolveNested(source, mapping.PathNested)
			if err != nil {
				return err
			}
		}

		if string(source.Format) != mapping.Format {
			return FormatMismatch(mapping.ID, mapping.Format)
		}

		ok, err := pd.satisfies(descriptor, source)
		if err != nil {
			return err
		}

		if !ok {
			return NoMatch(mapping.ID)
		}

		seen[mapping.ID] = true
	}

	candidates := make(candidateSet, len(pd.InputDescriptors))

	for _, d := range pd.InputDescriptors {
		if seen[d.ID] {
			candidates[d.ID] = []int{0}
		}
	}

	selectedIDs, err := resolveRequirements(pd, candidates)
	if err != nil {
		return err
	}

	for _, id := range selectedIDs {
		if !seen[id] {
			return NoMatch(id)
		}
	}

	return nil
}

// resolveNested reindexes an envelope ClaimSource (e.g. an ldp_vp wrapping a jwt_vc) by
// its path_nested mapping, whose Path is evaluated against the outer source's own claims.
func resolveNested(outer *verifiable.ClaimSource, nested *InputDescriptorMapping) (*verifiable.ClaimSource, error) {
	node, err := selectByPath(outer.Claims, nested.Path)
	if err != nil {
		return nil, err
	}

	return &verifiable.ClaimSource{
		Format:             verifiable.Format(nested.Format),
		Claims:             node,
		VerificationHandle: outer.VerificationHandle,
	}, nil
}
