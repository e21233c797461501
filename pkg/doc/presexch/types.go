/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presexch implements DIF Presentation Exchange v2.0.0: matching
// Input Descriptors against candidate credentials, resolving
// submission_requirements, and emitting or replaying a Presentation
// Submission.
package presexch

const (
	// All rule's value: every Input Descriptor in the group is selected.
	All SelectionRule = "all"
	// Pick rule's value: a subset of the group is selected.
	Pick SelectionRule = "pick"

	// Required predicate/limit_disclosure value.
	Required Preference = "required"
	// Preferred predicate/limit_disclosure value.
	Preferred Preference = "preferred"
	// Absent limit_disclosure value: no disclosure restriction.
	Absent Preference = "absent"
)

type (
	// SelectionRule is the rule of a SubmissionRequirement: "all" or "pick".
	SelectionRule string
	// Preference is a soft/hard directive: "required" or "preferred" (or, for
	// limit_disclosure, "absent").
	Preference string
	// StrOrInt is a JSON value that may be encoded as either a string or a number,
	// per the Presentation Exchange Filter schema (e.g. "minimum": "10" or 10).
	StrOrInt interface{}
)

// Format describes a PresentationDefinition's or InputDescriptor's format constraint:
// a map of Claim Format Designation to the algorithms/proof types the Verifier accepts.
type Format struct {
	Jwt     *JwtType `json:"jwt,omitempty"`
	JwtVC   *JwtType `json:"jwt_vc,omitempty"`
	JwtVP   *JwtType `json:"jwt_vp,omitempty"`
	Ldp     *LdpType `json:"ldp,omitempty"`
	LdpVC   *LdpType `json:"ldp_vc,omitempty"`
	LdpVP   *LdpType `json:"ldp_vp,omitempty"`
	MsoMdoc *AlgType `json:"mso_mdoc,omitempty"`
}

// JwtType contains alg.
type JwtType struct {
	Alg []string `json:"alg,omitempty"`
}

// AlgType contains alg, for formats (mso_mdoc) that name it directly rather than under "jwt".
type AlgType struct {
	Alg []string `json:"alg,omitempty"`
}

// LdpType contains proof_type.
type LdpType struct {
	ProofType []string `json:"proof_type,omitempty"`
}

// allowed returns, for a given credential format, the set of algorithms/proof types the
// Format permits, and whether that format is mentioned at all.
func (f *Format) allowed(format string) ([]string, bool) {
	if f == nil {
		return nil, false
	}

	var t *JwtType

	var l *LdpType

	var a *AlgType

	switch format {
	case "jwt":
		t = f.Jwt
	case "jwt_vc":
		t = f.JwtVC
	case "jwt_vp":
		t = f.JwtVP
	case "ldp":
		l = f.Ldp
	case "ldp_vc":
		l = f.LdpVC
	case "ldp_vp":
		l = f.LdpVP
	case "mso_mdoc":
		a = f.MsoMdoc
	}

	switch {
	case t != nil:
		return t.Alg, true
	case l != nil:
		return l.ProofType, true
	case a != nil:
		return a.Alg, true
	default:
		return nil, false
	}
}

// PresentationDefinition is the Verifier's declarative request for one or more credentials
// (https://identity.foundation/presentation-exchange/spec/v2.0.0/).
type PresentationDefinition struct {
	// ID unique resource identifier.
	ID string `json:"id,omitempty"`
	// Name human-friendly name that describes what the Presentation Definition pertains to.
	Name string `json:"name,omitempty"`
	// Purpose describes the purpose for which the Presentation Definition's inputs are being requested.
	Purpose string `json:"purpose,omitempty"`
	Locale  string `json:"locale,omitempty"`
	// Format informs the Holder of the claim format configurations the Verifier can process.
	Format *Format `json:"format,omitempty"`
	// SubmissionRequirements, if present, govern which Input Descriptors must be satisfied.
	// If absent, every entry in InputDescriptors is required.
	SubmissionRequirements []*SubmissionRequirement `json:"submission_requirements,omitempty"`
	InputDescriptors       []*InputDescriptor       `json:"input_descriptors,omitempty"`
}

// SubmissionRequirement describes a selection rule over a named group of Input Descriptors,
// or over a nested set of SubmissionRequirements.
type SubmissionRequirement struct {
	Name       string                   `json:"name,omitempty"`
	Purpose    string                   `json:"purpose,omitempty"`
	Rule       SelectionRule            `json:"rule,omitempty"`
	Count      *int                     `json:"count,omitempty"`
	Min        int                      `json:"min,omitempty"`
	Max        int                      `json:"max,omitempty"`
	From       string                   `json:"from,omitempty"`
	FromNested []*SubmissionRequirement `json:"from_nested,omitempty"`
}

// isNested reports whether this requirement recurses over nested requirements rather than
// naming a leaf group directly.
func (s *SubmissionRequirement) isNested() bool {
	return len(s.FromNested) > 0
}

// InputDescriptor names one credential the Verifier needs and the constraints it must satisfy.
type InputDescriptor struct {
	ID          string                 `json:"id,omitempty"`
	Group       []string               `json:"group,omitempty"`
	Name        string                 `json:"name,omitempty"`
	Purpose     string                 `json:"purpose,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Schema      []*Schema              `json:"schema,omitempty"`
	Constraints *Constraints           `json:"constraints,omitempty"`
}

// Schema is a legacy (PE v1) credential-type URI constraint, superseded by constraints.fields
// but kept as an additive, deprecated check (spec §9 Open Questions).
type Schema struct {
	URI      string `json:"uri,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// Holder describes Constraints' holder-binding directive.
type Holder struct {
	FieldID   []string    `json:"field_id,omitempty"`
	Directive *Preference `json:"directive,omitempty"`
}

// Constraints narrows which credentials satisfy an InputDescriptor.
type Constraints struct {
	LimitDisclosure *Preference `json:"limit_disclosure,omitempty"`
	SubjectIsIssuer *Preference `json:"subject_is_issuer,omitempty"`
	IsHolder        []*Holder   `json:"is_holder,omitempty"`
	Fields          []*Field    `json:"fields,omitempty"`
}

// disclosureRequired reports whether this InputDescriptor demands a distinct credential
// per spec §4.B's conflict policy (limit_disclosure = required forbids credential reuse).
func (c *Constraints) disclosureRequired() bool {
	return c != nil && c.LimitDisclosure != nil && *c.LimitDisclosure == Required
}

// Field is a single constraint: the credential must have a value, at one of Path, that
// matches Filter.
type Field struct {
	Path      []string    `json:"path,omitempty"`
	ID        string      `json:"id,omitempty"`
	Purpose   string      `json:"purpose,omitempty"`
	Filter    *Filter     `json:"filter,omitempty"`
	Predicate *Preference `json:"predicate,omitempty"`
	Optional  bool        `json:"optional,omitempty"`
}

// Filter is a JSON Schema draft-7 subset used to test a matched value.
type Filter struct {
	Type             *string                `json:"type,omitempty"`
	Format           string                 `json:"format,omitempty"`
	Pattern          string                 `json:"pattern,omitempty"`
	Minimum          StrOrInt               `json:"minimum,omitempty"`
	Maximum          StrOrInt               `json:"maximum,omitempty"`
	MinLength        int                    `json:"minLength,omitempty"`
	MaxLength        int                    `json:"maxLength,omitempty"`
	ExclusiveMinimum StrOrInt               `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum StrOrInt               `json:"exclusiveMaximum,omitempty"`
	Const            StrOrInt               `json:"const,omitempty"`
	Enum             []StrOrInt             `json:"enum,omitempty"`
	Not              map[string]interface{} `json:"not,omitempty"`
}

// PresentationSubmission is the Holder-authored artifact mapping Input Descriptors to
// locations within a VP Token (https://identity.foundation/presentation-exchange/#presentation-submission).
type PresentationSubmission struct {
	ID            string                    `json:"id,omitempty"`
	Locale        string                    `json:"locale,omitempty"`
	DefinitionID  string                    `json:"definition_id,omitempty"`
	DescriptorMap []*InputDescriptorMapping `json:"descriptor_map"`
}

// InputDescriptorMapping maps an InputDescriptor to a credential located by a JSONPath.
type InputDescriptorMapping struct {
	ID         string                  `json:"id,omitempty"`
	Format     string                  `json:"format,omitempty"`
	Path       string                  `json:"path,omitempty"`
	PathNested *InputDescriptorMapping `json:"path_nested,omitempty"`
}

func (pd *PresentationDefinition) inputDescriptor(id string) *InputDescriptor {
	for _, d := range pd.InputDescriptors {
		if d.ID == id {
			return d
		}
	}

	return nil
}

func (pd *PresentationDefinition) descriptorIDs() []string {
	ids := make([]string, len(pd.InputDescriptors))
	for i, d := range pd.InputDescriptors {
		ids[i] = d.ID
	}

	return ids
}

// descriptorsByGroup indexes Input Descriptor ids by the group names they declare.
func (pd *PresentationDefinition) descriptorsByGroup() map[string][]string {
	out := make(map[string][]string)

	for _, d := range pd.InputDescriptors {
		for _, g := range d.Group {
			out[g] = append(out[g], d.ID)
		}
	}

	return out
}
