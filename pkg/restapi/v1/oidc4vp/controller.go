/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package oidc4vp_test -source=controller.go -mock_names profileService=MockProfileService,requestObjectStore=MockRequestObjectStore,oidc4VPService=MockOIDC4VPService

// Package oidc4vp is the HTTP surface of the Verifier: it turns the wire-level
// OID4VP authorization request/response exchange into calls against
// pkg/service/oidc4vp.ServiceInterface, and serves published Request Object
// JWTs by reference.
package oidc4vp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/valyala/fastjson"

	"github.com/trustbloc/oidc4vp/internal/logfields"
	"github.com/trustbloc/oidc4vp/pkg/doc/presexch"
	vcsverifiable "github.com/trustbloc/oidc4vp/pkg/doc/verifiable"
	"github.com/trustbloc/oidc4vp/pkg/doc/vc"
	"github.com/trustbloc/oidc4vp/pkg/observability/metrics"
	noopMetricsProvider "github.com/trustbloc/oidc4vp/pkg/observability/metrics/noop"
	profileapi "github.com/trustbloc/oidc4vp/pkg/profile"
	"github.com/trustbloc/oidc4vp/pkg/profile/store"
	"github.com/trustbloc/oidc4vp/pkg/restapi/resterr"
	"github.com/trustbloc/oidc4vp/pkg/service/oidc4vp"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis/requestobjectstore"
)

const (
	requestObjectStoreComponent = resterr.Component("oidc4vp.RequestObjectStore")
	defaultProfileVersion       = "v1"
)

var logger = log.New("oidc4vp")

// authorizationResponse is the parsed `direct_post` body a Wallet submits back to the
// Verifier: an id_token carrying the presentation_submission envelope, one or more vp_tokens
// (JSON array or bare string), and the state that correlates the exchange to a Transaction.
type authorizationResponse struct {
	IDToken string
	VPToken []string
	State   string
}

// idTokenVPToken is the `_vp_token` claim nested inside the id_token JWT.
type idTokenVPToken struct {
	PresentationSubmission *presexch.PresentationSubmission `json:"presentation_submission"`
}

// idTokenClaims are the registered claims of the id_token JWT a Wallet returns.
type idTokenClaims struct {
	VPToken idTokenVPToken `json:"_vp_token"`
	Nonce   string         `json:"nonce"`
	Exp     int64          `json:"exp"`
}

// vpTokenClaims are the registered claims of each vp_token JWT a Wallet returns.
type vpTokenClaims struct {
	VP    json.RawMessage `json:"vp"`
	Nonce string          `json:"nonce"`
	Exp   int64           `json:"exp"`
}

// InitiateOIDC4VPRequest is the body of the initiate-interaction endpoint.
type InitiateOIDC4VPRequest struct {
	PresentationDefinition *presexch.PresentationDefinition `json:"presentationDefinition"`
	Purpose                string                            `json:"purpose,omitempty"`
	CustomScopes           []string                          `json:"customScopes,omitempty"`
	CustomURLScheme        string                            `json:"customURLScheme,omitempty"`
}

// InitiateOIDC4VPResponse is the response of the initiate-interaction endpoint.
type InitiateOIDC4VPResponse struct {
	AuthorizationRequest string `json:"authorizationRequest"`
	TxID                 string `json:"txID"`
}

// WalletNotificationRequest is the body of the wallet-notification endpoint.
type WalletNotificationRequest struct {
	TxID               string                 `json:"txID"`
	Error              string                 `json:"error,omitempty"`
	ErrorDescription   string                 `json:"errorDescription,omitempty"`
	InteractionDetails map[string]interface{} `json:"interactionDetails,omitempty"`
}

type profileService interface {
	GetProfile(profileID, profileVersion string) (*profileapi.Verifier, error)
}

type requestObjectStore interface {
	Get(id string) (string, error)
}

// Config holds Controller's dependencies.
type Config struct {
	OIDC4VPService     oidc4vp.ServiceInterface
	ProfileService     profileService
	RequestObjectStore requestObjectStore
	DIDResolver        vc.DIDResolver
	Metrics            metrics.Metrics
}

// Controller for the OID4VP REST surface.
type Controller struct {
	oidc4VPService     oidc4vp.ServiceInterface
	profileService     profileService
	requestObjectStore requestObjectStore
	jwtKeyResolver     vcsverifiable.KeyResolver
	metrics            metrics.Metrics
}

// NewController creates a new Controller instance.
func NewController(config *Config) *Controller {
	m := config.Metrics
	if m == nil {
		m = &noopMetricsProvider.NoMetrics{}
	}

	return &Controller{
		oidc4VPService:     config.OIDC4VPService,
		profileService:     config.ProfileService,
		requestObjectStore: config.RequestObjectStore,
		jwtKeyResolver:     vc.NewJWTKeyResolver(config.DIDResolver),
		metrics:            m,
	}
}

// RegisterHandlers mounts the Verifier's REST surface on e.
func (c *Controller) RegisterHandlers(e *echo.Echo) {
	e.POST("/verifier/profiles/:profileID/interactions/initiate-oidc-interaction", c.InitiateOidcInteraction)
	e.POST("/verifier/interactions/authorization-response", c.CheckAuthorizationResponse)
	e.GET("/verifier/interactions/:txID/claims", c.RetrieveInteractionsClaim)
	e.DELETE("/verifier/interactions/claims/:claimsID", c.DeleteClaims)
	e.POST("/verifier/wallet/notification", c.WalletNotification)
	e.GET("/request-object/:id", c.RequestObject)
}

// InitiateOidcInteraction starts a new OID4VP exchange for the named profile
// (POST /verifier/profiles/:profileID/interactions/initiate-oidc-interaction).
func (c *Controller) InitiateOidcInteraction(ctx echo.Context) error {
	logger.Debug("InitiateOidcInteraction begin")

	profileID := ctx.Param("profileID")

	profile, err := c.accessProfile(profileID)
	if err != nil {
		return err
	}

	var body InitiateOIDC4VPRequest

	if err = ctx.Bind(&body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	if body.PresentationDefinition == nil {
		return resterr.NewValidationError(resterr.InvalidValue, "presentationDefinition",
			errors.New("presentationDefinition is required"))
	}

	if profile.OIDCConfig == nil {
		return resterr.NewValidationError(resterr.ConditionNotMet, "profile.OIDCConfig",
			errors.New("OIDC4VP not configured for this profile"))
	}

	logger.Debugc(ctx.Request().Context(), "InitiateOidcInteraction pd found",
		logfields.WithPresDefID(body.PresentationDefinition.ID))

	result, err := c.oidc4VPService.InitiateOidcInteraction(ctx.Request().Context(), body.PresentationDefinition,
		body.Purpose, body.CustomScopes, body.CustomURLScheme, profile)
	if err != nil {
		return resterr.NewSystemError(resterr.VerifierOIDC4vpSvcComponent, "InitiateOidcInteraction", err)
	}

	logger.Debugc(ctx.Request().Context(), "InitiateOidcInteraction success", log.WithTxID(string(result.TxID)))

	return ctx.JSON(200, &InitiateOIDC4VPResponse{
		AuthorizationRequest: result.AuthorizationRequest,
		TxID:                 string(result.TxID),
	})
}

// CheckAuthorizationResponse verifies a Wallet's `direct_post` authorization response
// (POST /verifier/interactions/authorization-response).
func (c *Controller) CheckAuthorizationResponse(ctx echo.Context) error {
	logger.Debug("CheckAuthorizationResponse begin")
	startTime := time.Now()

	defer func() {
		c.metrics.CheckAuthorizationResponseTime(time.Since(startTime))
		logger.Debugc(ctx.Request().Context(), "CheckAuthorizationResponse end", log.WithDuration(time.Since(startTime)))
	}()

	authResp, err := validateAuthorizationResponse(ctx)
	if err != nil {
		return err
	}

	authResponseParsed, err := c.verifyAuthorizationResponseTokens(authResp)
	if err != nil {
		return err
	}

	if err = c.oidc4VPService.VerifyOIDCVerifiablePresentation(
		ctx.Request().Context(), oidc4vp.TxID(authResp.State), authResponseParsed); err != nil {
		return err
	}

	logger.Debug("CheckAuthorizationResponse succeed")

	return ctx.NoContent(200)
}

// RetrieveInteractionsClaim returns the credential claims a completed transaction collected
// (GET /verifier/interactions/:txID/claims).
func (c *Controller) RetrieveInteractionsClaim(ctx echo.Context) error {
	logger.Debug("RetrieveInteractionsClaim begin")

	txID := ctx.Param("txID")

	tx, err := c.accessOIDC4VPTx(ctx, txID)
	if err != nil {
		return err
	}

	profile, err := c.accessProfile(tx.ProfileID)
	if err != nil {
		return err
	}

	if tx.ReceivedClaimsID == "" {
		return resterr.NewValidationError(resterr.ConditionNotMet, "txID",
			fmt.Errorf("claims were not received for transaction '%s'", txID))
	}

	if tx.ReceivedClaims == nil {
		return resterr.NewValidationError(resterr.ConditionNotMet, "txID",
			fmt.Errorf("claims expired for transaction '%s'", txID))
	}

	claims := c.oidc4VPService.RetrieveClaims(ctx.Request().Context(), tx, profile)

	logger.Debug("RetrieveInteractionsClaim succeed")

	return ctx.JSON(200, claims)
}

// DeleteClaims removes a completed transaction's received claims from storage ahead of their
// natural TTL expiry (DELETE /verifier/interactions/claims/:claimsID).
func (c *Controller) DeleteClaims(ctx echo.Context) error {
	claimsID := ctx.Param("claimsID")

	if err := c.oidc4VPService.DeleteClaims(ctx.Request().Context(), claimsID); err != nil {
		return resterr.NewSystemError(resterr.VerifierOIDC4vpSvcComponent, "DeleteClaims", err)
	}

	return ctx.NoContent(200)
}

// WalletNotification relays a Wallet's post-verification notification (`ack_id`,
// `error`/`error_description`) to the orchestrator (POST /verifier/wallet/notification).
func (c *Controller) WalletNotification(ctx echo.Context) error {
	var body WalletNotificationRequest

	if err := ctx.Bind(&body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "requestBody", err)
	}

	err := c.oidc4VPService.HandleWalletNotification(ctx.Request().Context(), &oidc4vp.WalletNotification{
		TxID:               oidc4vp.TxID(body.TxID),
		Error:              body.Error,
		ErrorDescription:   body.ErrorDescription,
		InteractionDetails: body.InteractionDetails,
	})
	if err != nil {
		return resterr.NewSystemError(resterr.VerifierOIDC4vpSvcComponent, "HandleWalletNotification", err)
	}

	return ctx.NoContent(200)
}

// RequestObject serves a previously published Request Object JWT by ID
// (GET /request-object/:id), the target of the `request_uri` a Wallet dereferences.
func (c *Controller) RequestObject(ctx echo.Context) error {
	id := ctx.Param("id")

	content, err := c.requestObjectStore.Get(id)
	if err != nil {
		if errors.Is(err, requestobjectstore.ErrDataNotFound) {
			return resterr.NewValidationError(resterr.DoesntExist, "id",
				fmt.Errorf("request object %s doesn't exist or has expired", id))
		}

		return resterr.NewSystemError(requestObjectStoreComponent, "Get", err)
	}

	return ctx.Blob(200, "application/oauth-authz-req+jwt", []byte(content))
}

func (c *Controller) accessProfile(profileID string) (*profileapi.Verifier, error) {
	profile, err := c.profileService.GetProfile(profileID, defaultProfileVersion)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, resterr.NewValidationError(resterr.DoesntExist, "profile",
				fmt.Errorf("profile with given id %s, doesn't exist", profileID))
		}

		return nil, resterr.NewSystemError(resterr.VerifierProfileSvcComponent, "GetProfile", err)
	}

	return profile, nil
}

func (c *Controller) accessOIDC4VPTx(ctx echo.Context, txID string) (*oidc4vp.Transaction, error) {
	tx, err := c.oidc4VPService.GetTx(ctx.Request().Context(), oidc4vp.TxID(txID))
	if err != nil {
		if errors.Is(err, oidc4vp.ErrDataNotFound) {
			return nil, resterr.NewValidationError(resterr.DoesntExist, "txID",
				fmt.Errorf("transaction with given id %s, doesn't exist", txID))
		}

		return nil, resterr.NewSystemError(resterr.VerifierOIDC4vpSvcComponent, "GetTx", err)
	}

	logger.Debugc(ctx.Request().Context(), "RetrieveInteractionsClaim tx found", log.WithTxID(string(tx.ID)))

	return tx, nil
}

func (c *Controller) verifyAuthorizationResponseTokens(
	authResp *authorizationResponse,
) (*oidc4vp.AuthorizationResponseParsed, error) {
	startTime := time.Now()
	defer func() {
		logger.Debug("verifyAuthorizationResponseTokens", log.WithDuration(time.Since(startTime)))
	}()

	idClaims, err := c.validateIDToken(authResp.IDToken)
	if err != nil {
		return nil, err
	}

	logger.Debug("CheckAuthorizationResponse id_token verified")

	var processedVPTokens []*oidc4vp.ProcessedVPToken

	for _, vpt := range authResp.VPToken {
		vpClaims, signerDID, err := c.validateVPToken(vpt)
		if err != nil {
			return nil, err
		}

		logger.Debug("CheckAuthorizationResponse vp_token verified")

		if vpClaims.Nonce != idClaims.Nonce {
			return nil, resterr.NewValidationError(resterr.InvalidValue, "nonce",
				errors.New("nonce should be the same for both id_token and vp_token"))
		}

		presentation, err := vcsverifiable.ParseJWTVP(vpt)
		if err != nil {
			return nil, resterr.NewValidationError(resterr.InvalidValue, "vp_token.vp", err)
		}

		processedVPTokens = append(processedVPTokens, &oidc4vp.ProcessedVPToken{
			Nonce:         idClaims.Nonce,
			SignerDIDID:   signerDID,
			VpTokenFormat: vcsverifiable.JwtVP,
			Presentation:  presentation,
		})
	}

	return &oidc4vp.AuthorizationResponseParsed{
		VPTokens:               processedVPTokens,
		PresentationSubmission: idClaims.VPToken.PresentationSubmission,
	}, nil
}

func (c *Controller) validateIDToken(rawJWT string) (*idTokenClaims, error) {
	cs, err := vcsverifiable.ParseJWTVP(rawJWT)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "id_token", err)
	}

	if err = vcsverifiable.VerifyJWT(cs, c.jwtKeyResolver); err != nil {
		return nil, resterr.NewValidationError(resterr.Unauthorized, "id_token", err)
	}

	claims := &idTokenClaims{}
	if err = decodeClaims(cs, claims); err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "id_token", err)
	}

	if claims.Exp < time.Now().Unix() {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "id_token.exp", errors.New("token expired"))
	}

	if claims.VPToken.PresentationSubmission == nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "id_token._vp_token.presentation_submission",
			errors.New("$_vp_token.presentation_submission is missed"))
	}

	return claims, nil
}

func (c *Controller) validateVPToken(rawJWT string) (*vpTokenClaims, string, error) {
	cs, err := vcsverifiable.ParseJWTVP(rawJWT)
	if err != nil {
		return nil, "", resterr.NewValidationError(resterr.InvalidValue, "vp_token", err)
	}

	if err = vcsverifiable.VerifyJWT(cs, c.jwtKeyResolver); err != nil {
		return nil, "", resterr.NewValidationError(resterr.Unauthorized, "vp_token", err)
	}

	claims := &vpTokenClaims{}
	if err = decodeClaims(cs, claims); err != nil {
		return nil, "", resterr.NewValidationError(resterr.InvalidValue, "vp_token", err)
	}

	if claims.Exp < time.Now().Unix() {
		return nil, "", resterr.NewValidationError(resterr.InvalidValue, "vp_token.exp", errors.New("token expired"))
	}

	if len(claims.VP) == 0 {
		return nil, "", resterr.NewValidationError(resterr.InvalidValue, "vp_token.vp", errors.New("$vp is missed"))
	}

	kid, _ := vcsverifiable.JWTHeaderAt(cs, "kid")
	kidStr, _ := kid.(string)

	signerDID := strings.Split(kidStr, "#")[0]

	return claims, signerDID, nil
}

// decodeClaims re-marshals a parsed JWT's claim map back into a typed struct.
func decodeClaims(cs *vcsverifiable.ClaimSource, out interface{}) error {
	raw, err := cs.ClaimsJSON()
	if err != nil {
		return fmt.Errorf("marshal claims: %w", err)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode claims: %w", err)
	}

	return nil
}

func validateAuthorizationResponse(ctx echo.Context) (*authorizationResponse, error) {
	startTime := time.Now().UTC()
	defer func() {
		logger.Debug("validateAuthorizationResponse", log.WithDuration(time.Since(startTime)))
	}()

	req := ctx.Request()

	if req.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "Content-Type",
			errors.New("content type is not application/x-www-form-urlencoded"))
	}

	if err := req.ParseForm(); err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "body", err)
	}

	res := &authorizationResponse{}

	if err := decodeFormValue(&res.IDToken, "id_token", req.PostForm); err != nil {
		return nil, err
	}

	logger.Infoc(ctx.Request().Context(), "AuthorizationResponse id_token decoded")

	var vpTokenStr string

	if err := decodeFormValue(&vpTokenStr, "vp_token", req.PostForm); err != nil {
		return nil, err
	}

	res.VPToken = getVPTokens(vpTokenStr)

	if err := decodeFormValue(&res.State, "state", req.PostForm); err != nil {
		return nil, err
	}

	logger.Debugc(ctx.Request().Context(), "AuthorizationResponse state decoded", log.WithState(res.State))

	return res, nil
}

// getVPTokens scans the raw vp_token form value with fastjson to tell a JSON array of
// tokens (multi-credential presentation) apart from a bare JWT/JSON-LD string, without
// paying for a full encoding/json unmarshal into a typed slice on every request.
func getVPTokens(tokenStr string) []string {
	parsed, err := fastjson.Parse(tokenStr)
	if err != nil || parsed.Type() != fastjson.TypeArray {
		return []string{tokenStr}
	}

	items, err := parsed.Array()
	if err != nil {
		return []string{tokenStr}
	}

	tokens := make([]string, 0, len(items))

	for _, item := range items {
		sb, err := item.StringBytes()
		if err != nil {
			return []string{tokenStr}
		}

		tokens = append(tokens, string(sb))
	}

	return tokens
}

func decodeFormValue(output *string, valName string, values url.Values) error {
	val := values[valName]
	if len(val) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, valName, errors.New("value is missed"))
	}

	if len(val) > 1 {
		return resterr.NewValidationError(resterr.InvalidValue, valName, errors.New("value is duplicated"))
	}

	*output = val[0]

	return nil
}
