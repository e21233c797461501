/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	ariesmem "github.com/hyperledger/aries-framework-go/component/storageutil/mem"
	ariesjsonld "github.com/hyperledger/aries-framework-go/pkg/doc/jsonld"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/cmd/common"
	"github.com/trustbloc/oidc4vp/internal/logfields"
	"github.com/trustbloc/oidc4vp/pkg/dataprotect"
	"github.com/trustbloc/oidc4vp/pkg/event/bus"
	vcskms "github.com/trustbloc/oidc4vp/pkg/kms"
	"github.com/trustbloc/oidc4vp/pkg/observability/metrics/noop"
	profilestore "github.com/trustbloc/oidc4vp/pkg/profile/store"
	"github.com/trustbloc/oidc4vp/pkg/restapi/v1/oidc4vp"
	oidc4vpsvc "github.com/trustbloc/oidc4vp/pkg/service/oidc4vp"
	"github.com/trustbloc/oidc4vp/pkg/service/verifypresentation"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis/oidc4vpclaimsstore"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis/oidc4vpnoncestore"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis/oidc4vptxstore"
	"github.com/trustbloc/oidc4vp/pkg/storage/redis/requestobjectstore"
	verifiervdr "github.com/trustbloc/oidc4vp/pkg/vdr"

	keyvdr "github.com/hyperledger/aries-framework-go/pkg/vdr/key"
	webvdr "github.com/hyperledger/aries-framework-go/pkg/vdr/web"
)

var logger = log.New("oidc4vp-verifier")

// server abstracts the running HTTP listener, the way the teacher's own start command does,
// so tests can substitute a fake and assert on the parameters the real one would have gotten.
type server interface {
	ListenAndServe(host string, handler http.Handler) error
}

// HTTPServer starts the process's HTTP listener using the standard library.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, handler http.Handler) error {
	return http.ListenAndServe(host, handler) //nolint: gosec
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server) *cobra.Command {
	startCmd := createStartCmd(srv)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start oidc4vp-verifier",
		Long:  "Start the OpenID for Verifiable Presentations verifier service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := getParameters(cmd)
			if err != nil {
				return err
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			return run(params, srv)
		},
	}
}

func run(params *parameters, srv server) error {
	profiles, err := profilestore.LoadFromFile(params.profileFilePath)
	if err != nil {
		return fmt.Errorf("load verifier profiles: %w", err)
	}

	docLoader, err := ariesjsonld.NewDocumentLoader(ariesmem.NewProvider())
	if err != nil {
		return fmt.Errorf("create jsonld document loader: %w", err)
	}

	redisClient, err := redis.New(params.redisAddrs,
		redis.WithPassword(params.redisPassword),
		redis.WithMasterName(params.redisMasterName),
	)
	if err != nil {
		return fmt.Errorf("create redis client: %w", err)
	}

	txManager := oidc4vpsvc.NewTxManager(
		oidc4vpnoncestore.New(redisClient, params.txStoreTTLSec),
		oidc4vptxstore.NewTxStore(redisClient, docLoader, params.txStoreTTLSec),
		oidc4vpclaimsstore.New(redisClient, params.txStoreTTLSec),
		dataprotect.NewNilDataProtector(),
		docLoader,
	)

	requestObjectStore := requestobjectstore.New(redisClient, params.requestObjectTTLSec,
		params.requestObjectBaseURL)

	multiVDR := verifiervdr.New(keyvdr.New(), webvdr.New())

	verifyPresentationSvc := verifypresentation.New(&verifypresentation.Config{
		DIDResolver:       multiVDR,
		StatusListFetcher: fetchStatusList,
	})

	eventBus := bus.New()

	oidc4vpService := oidc4vpsvc.NewService(&oidc4vpsvc.Config{
		TransactionManager:       txManager,
		RequestObjectPublicStore: requestObjectStore,
		KMSRegistry:              vcskms.NewRegistry(&vcskms.Config{KMSType: vcskms.Local}),
		ProfileService:           profiles,
		EventSvc:                 eventBus,
		EventTopic:               params.eventTopic,
		PresentationVerifier:     verifyPresentationSvc,
		AttachmentService:        oidc4vpsvc.NewAttachmentService(http.DefaultClient),
		RedirectURL:              params.redirectURL,
		TokenLifetime:            secondsToDuration(params.tokenLifetimeSec),
		Metrics:                  noop.GetMetrics(),
	})

	controller := oidc4vp.NewController(&oidc4vp.Config{
		OIDC4VPService:     oidc4vpService,
		ProfileService:     profiles,
		RequestObjectStore: requestObjectStore,
		DIDResolver:        multiVDR,
		Metrics:            noop.GetMetrics(),
	})

	e := echo.New()
	controller.RegisterHandlers(e)

	logger.Info("Starting oidc4vp-verifier", logfields.WithAdditionalMessage("listening on "+params.hostURL))

	return srv.ListenAndServe(params.hostURL, e)
}

func secondsToDuration(seconds int32) time.Duration {
	return time.Duration(seconds) * time.Second
}

// fetchStatusList retrieves a status list credential's raw bytes over plain HTTP, the
// collaborator verifypresentation.Config.StatusListFetcher needs to check revocation.
func fetchStatusList(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build status list request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch status list %q: %w", url, err)
	}
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch status list %q: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status list %q: %w", url, err)
	}

	return body, nil
}
