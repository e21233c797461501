/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import "sort"

// candidateSet maps an Input Descriptor id to every ClaimSource index that satisfies it.
type candidateSet map[string][]int

// requirementResult is the outcome of evaluating one SubmissionRequirement: the set of
// descriptor ids it selected, or an error if it could not be satisfied.
type requirementResult struct {
	descriptorIDs []string
	err           error
}

// resolveRequirements walks the submission_requirements tree post-order (spec §9:
// "a post-order evaluation returning the set of selected descriptor ids"), returning the
// union of ids selected by every top-level requirement.
func resolveRequirements(pd *PresentationDefinition, candidates candidateSet) ([]string, error) {
	if len(pd.SubmissionRequirements) == 0 {
		return allDescriptorsRequirement(pd, candidates)
	}

	groups := pd.descriptorsByGroup()

	selected := make(map[string]bool)

	for _, req := range pd.SubmissionRequirements {
		res := evalRequirement(req, groups, candidates)
		if res.err != nil {
			return nil, res.err
		}

		for _, id := range res.descriptorIDs {
			selected[id] = true
		}
	}

	return sortedKeys(selected), nil
}

// allDescriptorsRequirement implements the no-submission_requirements case: every
// Input Descriptor must be covered by at least one candidate.
func allDescriptorsRequirement(pd *PresentationDefinition, candidates candidateSet) ([]string, error) {
	ids := pd.descriptorIDs()

	for _, id := range ids {
		if len(candidates[id]) == 0 {
			return nil, NoMatch(id)
		}
	}

	return ids, nil
}

func evalRequirement(req *SubmissionRequirement, groups map[string][]string, candidates candidateSet) requirementResult {
	if req.isNested() {
		return evalNestedRequirement(req, groups, candidates)
	}

	return evalLeafRequirement(req, groups, candidates)
}

func evalLeafRequirement(req *SubmissionRequirement, groups map[string][]string, candidates candidateSet) requirementResult {
	members := groups[req.From]

	// Only descriptors with at least one satisfying candidate are eligible; deterministic
	// tie-break per spec §4.B is lexicographic descriptor-id order.
	eligible := make([]string, 0, len(members))

	for _, id := range members {
		if len(candidates[id]) > 0 {
			eligible = append(eligible, id)
		}
	}

	sort.Strings(eligible)

	switch req.Rule {
	case All:
		if len(eligible) != len(members) {
			missing := setDiff(members, eligible)
			return requirementResult{err: NoMatch(missing[0])}
		}

		return requirementResult{descriptorIDs: eligible}
	case Pick:
		lo, hi := pickBounds(req)

		if len(eligible) < lo {
			return requirementResult{err: InsufficientPick(req.From, lo, len(eligible))}
		}

		n := len(eligible)
		if hi < n {
			n = hi
		}

		return requirementResult{descriptorIDs: eligible[:n]}
	default:
		return requirementResult{err: NoMatch(req.From)}
	}
}

func evalNestedRequirement(req *SubmissionRequirement, groups map[string][]string, candidates candidateSet) requirementResult {
	type childOutcome struct {
		ids []string
		ok  bool
	}

	outcomes := make([]childOutcome, len(req.FromNested))

	for i, child := range req.FromNested {
		res := evalRequirement(child, groups, candidates)
		outcomes[i] = childOutcome{ids: res.descriptorIDs, ok: res.err == nil}
	}

	switch req.Rule {
	case All:
		var union []string

		for i, o := range outcomes {
			if !o.ok {
				return requirementResult{err: evalRequirement(req.FromNested[i], groups, candidates).err}
			}

			union = append(union, o.ids...)
		}

		return requirementResult{descriptorIDs: dedupe(union)}
	case Pick:
		satisfiable := 0

		var union []string

		for _, o := range outcomes {
			if o.ok {
				satisfiable++

				union = append(union, o.ids...)
			}
		}

		lo, _ := pickBounds(req)
		if satisfiable < lo {
			return requirementResult{err: InsufficientPick(req.Name, lo, satisfiable)}
		}

		return requirementResult{descriptorIDs: dedupe(union)}
	default:
		return requirementResult{err: NoMatch(req.Name)}
	}
}

// pickBounds normalizes count/min/max into an inclusive [lo, hi] range.
func pickBounds(req *SubmissionRequirement) (lo, hi int) {
	if req.Count != nil {
		return *req.Count, *req.Count
	}

	lo = req.Min

	hi = req.Max
	if hi == 0 {
		hi = 1 << 30
	}

	return lo, hi
}

func setDiff(all, present []string) []string {
	seen := make(map[string]bool, len(present))
	for _, p := range present {
		seen[p] = true
	}

	var out []string

	for _, a := range all {
		if !seen[a] {
			out = append(out, a)
		}
	}

	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))

	out := make([]string, 0, len(in))

	for _, v := range in {
		if !seen[v] {
			seen[v] = true

			out = append(out, v)
		}
	}

	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
