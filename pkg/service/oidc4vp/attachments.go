/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination attachments_mocks_test.go -self_package mocks -package oidc4vp_test -source=attachments.go -mock_names httpClient=MockHttpClient

package oidc4vp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/lo"

	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
)

const (
	AttachmentTypeRemote   = "RemoteAttachment"
	AttachmentTypeEmbedded = "EmbeddedAttachment"
	AttachmentDataField    = "uri"
)

var knownAttachmentTypes = []string{AttachmentTypeRemote, AttachmentTypeEmbedded}

type AttachmentService struct {
	httpClient httpClient
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewAttachmentService(
	httpClient httpClient,
) *AttachmentService {
	return &AttachmentService{
		httpClient: httpClient,
	}
}

// PrepareAttachments scans a credential's credentialSubject documents for embedded/remote
// attachment claims and resolves each one to an Attachment, fetching remote ones inline.
func (s *AttachmentService) PrepareAttachments(
	ctx context.Context,
	credential *vcsverifiable.ClaimSource,
) []*Attachment {
	subject, ok := credential.ClaimAt("credentialSubject")
	if !ok {
		return nil
	}

	var subjects []map[string]interface{}

	switch v := subject.(type) {
	case map[string]interface{}:
		subjects = []map[string]interface{}{v}
	case []interface{}:
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				subjects = append(subjects, m)
			}
		}
	}

	var found []*attachmentData

	for _, subj := range subjects {
		found = append(found, findAttachments(subj, nil)...)
	}

	attachments := make([]*Attachment, 0, len(found))

	for _, a := range found {
		cloned := shallowCopyMap(a.Claim)

		attachment := &Attachment{
			ID:          fmt.Sprint(cloned["id"]),
			DataURI:     fmt.Sprint(cloned[AttachmentDataField]),
			Description: fmt.Sprint(cloned["description"]),
		}

		if a.Type == AttachmentTypeRemote {
			if err := s.handleRemoteAttachment(ctx, cloned); err != nil {
				attachment.Error = fmt.Sprintf("failed to handle remote attachment: %s", err)
			} else {
				attachment.DataURI = fmt.Sprint(cloned[AttachmentDataField])
			}
		}

		attachments = append(attachments, attachment)
	}

	return attachments
}

func (s *AttachmentService) handleRemoteAttachment(
	ctx context.Context,
	attachment map[string]interface{},
) error {
	targetUrl := fmt.Sprint(attachment[AttachmentDataField])
	if targetUrl == "" {
		return errors.New("url is required")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, targetUrl, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to fetch url: %w", err)
	}

	var body []byte
	if resp.Body != nil {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d and body %v", resp.StatusCode, string(body))
	}

	attachment[AttachmentDataField] = base64.StdEncoding.EncodeToString(body) // todo prefix type

	return nil
}

func findAttachments(
	targetMap map[string]interface{},
	attachments []*attachmentData,
) []*attachmentData {
	hasAttachment := false
	for k, v := range targetMap {
		if nested, ok := v.(map[string]interface{}); ok {
			attachments = append(attachments, findAttachments(nested, attachments)...)
		}

		if hasAttachment {
			continue
		}

		if k != "type" && k != "@type" {
			continue
		}

		switch typed := v.(type) {
		case string:
			if lo.Contains(knownAttachmentTypes, typed) {
				attachments = append(attachments, &attachmentData{
					Type:  typed,
					Claim: targetMap,
				})

				hasAttachment = true
			}
		case []interface{}:
			newSlice := make([]string, 0, len(typed))
			for _, item := range typed {
				newSlice = append(newSlice, fmt.Sprint(item))
			}

			for _, item := range newSlice {
				if lo.Contains(knownAttachmentTypes, item) {
					attachments = append(attachments, &attachmentData{
						Type:  item,
						Claim: targetMap,
					})

					hasAttachment = true
				}
			}
		case []string:
			for _, item := range typed {
				if lo.Contains(knownAttachmentTypes, item) {
					attachments = append(attachments, &attachmentData{
						Type:  item,
						Claim: targetMap,
					})

					hasAttachment = true
				}
			}
		}
	}

	return attachments
}

func shallowCopyMap(m map[string]interface{}) map[string]interface{} {
	cloned := make(map[string]interface{}, len(m))
	for k, v := range m {
		cloned[k] = v
	}

	return cloned
}
