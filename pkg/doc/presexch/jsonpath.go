/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

import (
	"context"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

var pathLang = gval.Full(jsonpath.PlaceholderExtension()) //nolint:gochecknoglobals

// resolvePath evaluates a single JSONPath expression against doc. resolved is false
// when the path is syntactically valid but nothing in doc matches it (a normal,
// expected outcome for optional/alternate paths); err is non-nil only for a
// malformed JSONPath expression, which is always a hard failure.
func resolvePath(doc interface{}, path string) (nodes []interface{}, resolved bool, err error) {
	eval, err := pathLang.NewEvaluable(path)
	if err != nil {
		return nil, false, JSONPathError(path, err)
	}

	result, err := eval(context.Background(), doc)
	if err != nil {
		// PaesslerAG/jsonpath reports "unknown key"/index-out-of-range style errors for
		// paths that simply don't resolve against this particular document.
		return nil, false, nil
	}

	switch v := result.(type) {
	case []interface{}:
		if len(v) == 0 {
			return nil, false, nil
		}

		return v, true, nil
	case nil:
		return nil, false, nil
	default:
		return []interface{}{v}, true, nil
	}
}

// firstResolved walks paths in order and returns the nodes of the first one that
// resolves against doc, per spec §4.B ("first resolved path's first node is tested").
func firstResolved(doc interface{}, paths []string) (nodes []interface{}, resolved bool, err error) {
	for _, p := range paths {
		nodes, resolved, err = resolvePath(doc, p)
		if err != nil {
			return nil, false, err
		}

		if resolved {
			return nodes, true, nil
		}
	}

	return nil, false, nil
}

// selectByPath evaluates a JSONPath expected to locate a single credential (e.g. a
// descriptor_map path) and returns its raw node, unwrapped from any single-element
// slice PaesslerAG/jsonpath produces for bracket/array access.
func selectByPath(doc interface{}, path string) (interface{}, error) {
	nodes, resolved, err := resolvePath(doc, path)
	if err != nil {
		return nil, err
	}

	if !resolved || len(nodes) == 0 {
		return nil, JSONPathError(path, errNotFound)
	}

	return nodes[0], nil
}
