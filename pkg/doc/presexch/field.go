/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presexch

// matchField reports whether claims satisfies field, per spec §4.B "Field matching":
// the first path in field.Path that resolves against claims is tested against
// field.Filter; if none resolves, the field is satisfied only when Optional.
func matchField(claims interface{}, field *Field) (bool, error) {
	nodes, resolved, err := firstResolved(claims, field.Path)
	if err != nil {
		return false, err
	}

	if !resolved {
		return field.Optional, nil
	}

	if field.Filter == nil {
		return true, nil
	}

	for _, n := range nodes {
		ok, err := matchFilter(n, field.Filter)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// matchConstraints reports whether claims satisfies every non-optional field of c.
// A nil Constraints is trivially satisfied (no fields to check).
func matchConstraints(claims interface{}, c *Constraints) (bool, error) {
	if c == nil {
		return true, nil
	}

	for _, f := range c.Fields {
		ok, err := matchField(claims, f)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}
