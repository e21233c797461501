/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

var errNotFound = errors.New("jsonpath: no matching node")

// matchFilter tests a single resolved JSON value against a Field's JSON Schema
// draft-7 subset filter. A nil filter matches any value (presence is enough).
func matchFilter(value interface{}, filter *Filter) (bool, error) {
	if filter == nil {
		return true, nil
	}

	schemaDoc, err := filterToSchema(filter)
	if err != nil {
		return false, SchemaViolation(err.Error())
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schemaDoc),
		gojsonschema.NewGoLoader(value),
	)
	if err != nil {
		return false, SchemaViolation(err.Error())
	}

	return result.Valid(), nil
}

// filterToSchema renders a Filter as the equivalent JSON Schema document, since
// gojsonschema validates against a schema rather than a field-by-field struct.
func filterToSchema(f *Filter) (map[string]interface{}, error) {
	doc := map[string]interface{}{}

	if f.Type != nil {
		doc["type"] = *f.Type
	}

	if f.Format != "" {
		doc["format"] = f.Format
	}

	if f.Pattern != "" {
		doc["pattern"] = f.Pattern
	}

	if f.Minimum != nil {
		doc["minimum"] = f.Minimum
	}

	if f.Maximum != nil {
		doc["maximum"] = f.Maximum
	}

	if f.ExclusiveMinimum != nil {
		doc["exclusiveMinimum"] = f.ExclusiveMinimum
	}

	if f.ExclusiveMaximum != nil {
		doc["exclusiveMaximum"] = f.ExclusiveMaximum
	}

	if f.MinLength > 0 {
		doc["minLength"] = f.MinLength
	}

	if f.MaxLength > 0 {
		doc["maxLength"] = f.MaxLength
	}

	if f.Const != nil {
		doc["const"] = f.Const
	}

	if len(f.Enum) > 0 {
		doc["enum"] = f.Enum
	}

	if len(f.Not) > 0 {
		doc["not"] = f.Not
	}

	// round-trip through JSON so StrOrInt values decoded from wire JSON (float64/string)
	// compare correctly against gojsonschema's own JSON-decoded document values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode filter as schema: %w", err)
	}

	var normalized map[string]interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("decode filter schema: %w", err)
	}

	return normalized, nil
}
