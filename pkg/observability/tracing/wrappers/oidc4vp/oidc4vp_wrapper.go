/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package oidc4vp . Service

//nolint:lll
package oidc4vp

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	"github.com/trustbloc/oidc4vp/pkg/observability/tracing/attributeutil"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	"github.com/trustbloc/oidc4vp/pkg/service/oidc4vp"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements oidc4vp.ServiceInterface

type Service oidc4vp.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) InitiateOidcInteraction(
	ctx context.Context,
	presentationDefinition *presexch.PresentationDefinition,
	purpose string,
	customScopes []string,
	customURLScheme string,
	profile *profileapi.Verifier,
) (*oidc4vp.InteractionInfo, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.InitiateOidcInteraction")
	defer span.End()

	span.SetAttributes(attribute.String("profile_name", profile.Name))
	span.SetAttributes(attribute.String("purpose", purpose))
	span.SetAttributes(attributeutil.JSON("presentation_definition", presentationDefinition))

	resp, err := w.svc.InitiateOidcInteraction(ctx, presentationDefinition, purpose, customScopes, customURLScheme, profile)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (w *Wrapper) VerifyOIDCVerifiablePresentation(
	ctx context.Context, txID oidc4vp.TxID, authResponse *oidc4vp.AuthorizationResponseParsed,
) error {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.VerifyOIDCVerifiablePresentation")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(txID)))

	if err := w.svc.VerifyOIDCVerifiablePresentation(ctx, txID, authResponse); err != nil {
		return err
	}

	return nil
}

func (w *Wrapper) GetTx(ctx context.Context, id oidc4vp.TxID) (*oidc4vp.Transaction, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.GetTx")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(id)))

	tx, err := w.svc.GetTx(ctx, id)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (w *Wrapper) RetrieveClaims(
	ctx context.Context, tx *oidc4vp.Transaction, profile *profileapi.Verifier,
) map[string]oidc4vp.CredentialMetadata {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.RetrieveClaims")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(tx.ID)))

	return w.svc.RetrieveClaims(ctx, tx, profile)
}

func (w *Wrapper) DeleteClaims(ctx context.Context, receivedClaimsID string) error {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.DeleteClaims")
	defer span.End()

	span.SetAttributes(attribute.String("claims_id", receivedClaimsID))

	return w.svc.DeleteClaims(ctx, receivedClaimsID)
}

func (w *Wrapper) HandleWalletNotification(ctx context.Context, req *oidc4vp.WalletNotification) error {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.HandleWalletNotification")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(req.TxID)))

	return w.svc.HandleWalletNotification(ctx, req)
}
