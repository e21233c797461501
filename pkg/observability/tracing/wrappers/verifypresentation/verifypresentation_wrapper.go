/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verifypresentation . Service

package verifypresentation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	"github.com/trustbloc/oidc4vp/pkg/observability/tracing/attributeutil"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	"github.com/trustbloc/oidc4vp/pkg/service/verifypresentation"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements verifypresentation.ServiceInterface

type Service verifypresentation.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) VerifyPresentation(
	ctx context.Context,
	presentation *vcsverifiable.ClaimSource,
	opts *verifypresentation.Options,
	profile *profileapi.Verifier,
) ([]verifypresentation.PresentationVerificationCheckResult, error) {
	ctx, span := w.tracer.Start(ctx, "verifypresentation.VerifyPresentation")
	defer span.End()

	span.SetAttributes(attribute.String("profile_name", profile.Name))
	span.SetAttributes(attribute.String("format", string(presentation.Format)))

	if opts != nil {
		span.SetAttributes(attributeutil.JSON("opts", opts))
	}

	res, err := w.svc.VerifyPresentation(ctx, presentation, opts, profile)
	if err != nil {
		return nil, err
	}

	return res, nil
}
