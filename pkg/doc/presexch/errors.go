/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import "fmt"

// Error is the PE evaluator's structured error taxonomy (spec §4.B "Errors:").
type Error struct {
	Kind string
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// NoMatch means no candidate credential satisfies descriptorID's constraints.
func NoMatch(descriptorID string) *Error {
	return &Error{Kind: "NoMatch", msg: fmt.Sprintf("no credential satisfies input descriptor %q", descriptorID)}
}

// InsufficientPick means a pick{count|min|max} rule over group could not be filled.
func InsufficientPick(group string, required, found int) *Error {
	return &Error{
		Kind: "InsufficientPick",
		msg:  fmt.Sprintf("submission requirement over group %q needs %d, found %d", group, required, found),
	}
}

// FormatMismatch means a credential's format is not an allowed algorithm/proof type for its descriptor.
func FormatMismatch(descriptorID, format string) *Error {
	return &Error{
		Kind: "FormatMismatch",
		msg:  fmt.Sprintf("format %q not permitted for input descriptor %q", format, descriptorID),
	}
}

// SchemaViolation means a Field's filter rejected every candidate value.
func SchemaViolation(reason string) *Error {
	return &Error{Kind: "SchemaViolation", msg: "schema violation: " + reason}
}

// JSONPathError means a JSONPath expression failed to evaluate (malformed path, not "no match").
func JSONPathError(path string, cause error) *Error {
	return &Error{Kind: "JsonPathError", msg: fmt.Sprintf("evaluating path %q: %v", path, cause)}
}
