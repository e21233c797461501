/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	"github.com/trustbloc/oidc4vp/pkg/event/spi"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	oidc4vperr "github.com/trustbloc/oidc4vp/pkg/restapi/resterr/oidc4vp"
)

//nolint:funlen
func (s *Service) SendTransactionEvent(
	ctx context.Context,
	txID TxID,
	eventType spi.EventType,
) error {
	tx, err := s.transactionManager.Get(txID)
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	profile, err := s.profileService.GetProfile(tx.ProfileID, tx.ProfileVersion)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if err = s.sendTxEvent(ctx, eventType, tx, profile); err != nil {
		return fmt.Errorf("send tx event: %w", err)
	}

	return nil
}

func (s *Service) sendOIDCInteractionInitiatedEvent(
	ctx context.Context,
	tx *Transaction,
	profile *profileapi.Verifier,
	authorizationRequest string,
) error {
	return s.sendTxEvent(ctx, spi.VerifierOIDCInteractionInitiated, tx, profile, func(ep *EventPayload) {
		ep.AuthorizationRequest = authorizationRequest
		ep.Filter = getFilter(tx.PresentationDefinition)
	})
}

func (s *Service) sendFailedTransactionEvent(
	ctx context.Context,
	tx *Transaction,
	profile *profileapi.Verifier,
	e error,
) {
	err := s.sendTxEvent(ctx, spi.VerifierOIDCInteractionFailed, tx, profile, func(ep *EventPayload) {
		var oidc4vpErr *oidc4vperr.Error

		if errors.As(e, &oidc4vpErr) {
			ep.Error = oidc4vpErr.Error()
			ep.ErrorCode = oidc4vpErr.Code()
			ep.ErrorComponent = oidc4vpErr.Component()
		} else {
			ep.Error = e.Error()
		}
	})

	if err != nil {
		logger.Warnc(ctx, "Failed to send OIDC verifier event. Ignoring..", log.WithError(err))
	}
}

func (s *Service) sendOIDCInteractionSucceededEvent(
	ctx context.Context,
	tx *Transaction,
	profile *profileapi.Verifier,
	receivedClaims *ReceivedClaims,
	interactionDetails map[string]interface{},
) error {
	return s.sendOIDCInteractionEvent(
		ctx, tx, spi.VerifierOIDCInteractionSucceeded, profile, receivedClaims, interactionDetails)
}

func (s *Service) sendOIDCInteractionClaimsRetrievedEvent(
	ctx context.Context,
	tx *Transaction,
	profile *profileapi.Verifier,
	receivedClaims *ReceivedClaims,
) error {
	return s.sendOIDCInteractionEvent(
		ctx, tx, spi.VerifierOIDCInteractionClaimsRetrieved, profile, receivedClaims, nil)
}

func (s *Service) sendOIDCInteractionEvent(
	ctx context.Context,
	tx *Transaction,
	eventType spi.EventType,
	profile *profileapi.Verifier,
	receivedClaims *ReceivedClaims,
	interactionDetails map[string]interface{},
) error {
	return s.sendTxEvent(ctx, eventType, tx, profile, func(ep *EventPayload) {
		ep.InteractionDetails = interactionDetails

		for _, cred := range receivedClaims.Credentials {
			subjectID, _ := credentialSubjectID(cred)

			var issuerID string
			if issuer, ok := cred.ClaimAt("issuer"); ok {
				issuerID = issuerIDString(issuer)
			}

			id, _ := cred.ClaimAt("id")

			ep.Credentials = append(ep.Credentials, &CredentialEventPayload{
				ID:        fmt.Sprint(id),
				Types:     claimStringSlice(cred, "type"),
				IssuerID:  issuerID,
				SubjectID: subjectID,
			})
		}

		logger.Debugc(ctx, fmt.Sprintf("recorded %d credential event payload(s)", len(receivedClaims.Credentials)))
	})
}

// issuerIDString normalizes the "issuer" claim, which is either a bare DID string or an
// object with an "id" field, to its identifier.
func issuerIDString(issuer interface{}) string {
	switch v := issuer.(type) {
	case string:
		return v
	case map[string]interface{}:
		id, _ := v["id"].(string)
		return id
	default:
		return ""
	}
}

func (s *Service) sendTxEvent(
	ctx context.Context,
	eventType spi.EventType,
	tx *Transaction,
	profile *profileapi.Verifier,
	modifiers ...func(ep *EventPayload),
) error {
	ep := createBaseTxEventPayload(tx, profile)

	for _, modifier := range modifiers {
		modifier(ep)
	}

	event, err := CreateEvent(eventType, tx.ID, ep)
	if err != nil {
		return err
	}

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}

func CreateEvent(
	eventType spi.EventType,
	transactionID TxID,
	ep *EventPayload,
) (*spi.Event, error) {
	payload, err := json.Marshal(ep)
	if err != nil {
		return nil, err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), "source://vcs/verifier", eventType, payload)
	event.TransactionID = string(transactionID)

	return event, nil
}

// getFilter lists the JSONPaths a Presentation Definition's input descriptors request,
// for an at-a-glance record of what a completed interaction actually asked for.
func getFilter(pd *presexch.PresentationDefinition) *Filter {
	if pd == nil {
		return nil
	}

	var fields []string

	for _, descriptor := range pd.InputDescriptors {
		if descriptor.Constraints == nil {
			continue
		}

		for _, field := range descriptor.Constraints.Fields {
			fields = append(fields, field.Path...)
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return &Filter{Fields: fields}
}

func createBaseTxEventPayload(tx *Transaction, profile *profileapi.Verifier) *EventPayload {
	var presentationDefID string

	if tx.PresentationDefinition != nil {
		presentationDefID = tx.PresentationDefinition.ID
	}

	return &EventPayload{
		ProfileID:                tx.ProfileID,
		ProfileVersion:           tx.ProfileVersion,
		PresentationDefinitionID: presentationDefID,
	}
}
