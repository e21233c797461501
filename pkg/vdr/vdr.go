/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vdr resolves DIDs by method, dispatching to whichever aries-framework-go VDR
// implementation (did:key, did:web, ...) this process was configured with. It exists
// because this module's own vc.DIDResolver only ever needs Resolve, while
// aries-framework-go ships one VDR implementation per method rather than a ready-made
// multi-method registry compatible with that narrower interface.
package vdr

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
)

// MultiVDR resolves a DID by picking, among the VDRs it was built with, the one that
// accepts the DID's method.
type MultiVDR struct {
	vdrs []vdrapi.VDR
}

// New returns a MultiVDR that tries each of vdrs, in order, for a DID's method.
func New(vdrs ...vdrapi.VDR) *MultiVDR {
	return &MultiVDR{vdrs: vdrs}
}

// Resolve resolves did using whichever registered VDR accepts its method.
func (m *MultiVDR) Resolve(didID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
	method, err := method(didID)
	if err != nil {
		return nil, err
	}

	for _, v := range m.vdrs {
		if v.Accept(method) {
			return v.Read(didID, opts...)
		}
	}

	return nil, fmt.Errorf("no vdr registered for did method %q", method)
}

func method(didID string) (string, error) {
	parsed, err := did.Parse(didID)
	if err != nil {
		return "", fmt.Errorf("parse did %q: %w", didID, err)
	}

	return parsed.Method, nil
}
