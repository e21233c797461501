/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strconv"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/oidc4vp/cmd/common"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLEnvKey        = "OIDC4VP_HOST_URL"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the oidc4vp-verifier instance on. Format: HostName:Port." +
		commonEnvVarUsageText + hostURLEnvKey

	profileFilePathFlagName      = "profile-file-path"
	profileFilePathEnvKey        = "OIDC4VP_PROFILE_FILE_PATH"
	profileFilePathFlagShorthand = "p"
	profileFilePathFlagUsage     = "Path to the JSON file listing the Verifier profile(s) this instance serves." +
		commonEnvVarUsageText + profileFilePathEnvKey

	redisAddrsFlagName      = "redis-addrs"
	redisAddrsEnvKey        = "OIDC4VP_REDIS_ADDRS"
	redisAddrsFlagShorthand = "r"
	redisAddrsFlagUsage     = "Comma-separated list of redis addresses. Two or more enables cluster mode." +
		commonEnvVarUsageText + redisAddrsEnvKey

	redisPasswordFlagName  = "redis-password" //nolint: gosec
	redisPasswordEnvKey    = "OIDC4VP_REDIS_PASSWORD"
	redisPasswordFlagUsage = "Password for the redis server(s), if any." +
		commonEnvVarUsageText + redisPasswordEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "OIDC4VP_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Sentinel master name. Set only when redis-addrs points at sentinel nodes." +
		commonEnvVarUsageText + redisMasterNameEnvKey

	redirectURLFlagName      = "redirect-url"
	redirectURLEnvKey        = "OIDC4VP_REDIRECT_URL"
	redirectURLFlagShorthand = "e"
	redirectURLFlagUsage     = "URL the wallet is sent to once an authorization response has been processed." +
		commonEnvVarUsageText + redirectURLEnvKey

	tokenLifetimeFlagName  = "token-lifetime-seconds"
	tokenLifetimeEnvKey    = "OIDC4VP_TOKEN_LIFETIME_SECONDS"
	tokenLifetimeFlagUsage = "Lifetime, in seconds, of a transaction's one-time access token. Defaults to 600." +
		commonEnvVarUsageText + tokenLifetimeEnvKey

	txStoreTTLFlagName  = "tx-ttl-seconds"
	txStoreTTLEnvKey    = "OIDC4VP_TX_TTL_SECONDS"
	txStoreTTLFlagUsage = "Lifetime, in seconds, of transaction, claims and nonce redis records. Defaults to 3600." +
		commonEnvVarUsageText + txStoreTTLEnvKey

	requestObjectTTLFlagName  = "request-object-ttl-seconds"
	requestObjectTTLEnvKey    = "OIDC4VP_REQUEST_OBJECT_TTL_SECONDS"
	requestObjectTTLFlagUsage = "Lifetime, in seconds, of a published request object. Defaults to 600." +
		commonEnvVarUsageText + requestObjectTTLEnvKey

	requestObjectBaseURLFlagName  = "request-object-base-url"
	requestObjectBaseURLEnvKey    = "OIDC4VP_REQUEST_OBJECT_BASE_URL"
	requestObjectBaseURLFlagUsage = "Base URL a wallet fetches published request objects from." +
		commonEnvVarUsageText + requestObjectBaseURLEnvKey

	eventTopicFlagName  = "event-topic"
	eventTopicEnvKey    = "OIDC4VP_EVENT_TOPIC"
	eventTopicFlagUsage = "Topic transaction lifecycle events are published to. Defaults to verifier-event." +
		commonEnvVarUsageText + eventTopicEnvKey
)

// parameters gathers everything GetStartCmd needs to compose a running instance.
type parameters struct {
	hostURL              string
	profileFilePath      string
	redisAddrs           []string
	redisPassword        string
	redisMasterName      string
	redirectURL          string
	tokenLifetimeSec     int32
	txStoreTTLSec        int32
	requestObjectTTLSec  int32
	requestObjectBaseURL string
	eventTopic           string
	logLevel             string
}

func getParameters(cmd *cobra.Command) (*parameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	profileFilePath, err := cmdutils.GetUserSetVarFromString(cmd, profileFilePathFlagName,
		profileFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisAddrs := cmdutils.GetUserSetOptionalCSVVar(cmd, redisAddrsFlagName, redisAddrsEnvKey)
	if len(redisAddrs) == 0 {
		redisAddrs = []string{"localhost:6379"}
	}

	redisPassword := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)
	redisMasterName := cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey)

	redirectURL, err := cmdutils.GetUserSetVarFromString(cmd, redirectURLFlagName, redirectURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tokenLifetimeSec, err := getOptionalInt32(cmd, tokenLifetimeFlagName, tokenLifetimeEnvKey, 600)
	if err != nil {
		return nil, err
	}

	txStoreTTLSec, err := getOptionalInt32(cmd, txStoreTTLFlagName, txStoreTTLEnvKey, 3600)
	if err != nil {
		return nil, err
	}

	requestObjectTTLSec, err := getOptionalInt32(cmd, requestObjectTTLFlagName, requestObjectTTLEnvKey, 600)
	if err != nil {
		return nil, err
	}

	requestObjectBaseURL, err := cmdutils.GetUserSetVarFromString(cmd, requestObjectBaseURLFlagName,
		requestObjectBaseURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	eventTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, eventTopicFlagName, eventTopicEnvKey)
	if eventTopic == "" {
		eventTopic = "verifier-event"
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &parameters{
		hostURL:              hostURL,
		profileFilePath:      profileFilePath,
		redisAddrs:           redisAddrs,
		redisPassword:        redisPassword,
		redisMasterName:      redisMasterName,
		redirectURL:          redirectURL,
		tokenLifetimeSec:     tokenLifetimeSec,
		txStoreTTLSec:        txStoreTTLSec,
		requestObjectTTLSec:  requestObjectTTLSec,
		requestObjectBaseURL: requestObjectBaseURL,
		eventTopic:           eventTopic,
		logLevel:             logLevel,
	}, nil
}

func getOptionalInt32(cmd *cobra.Command, flagName, envKey string, defaultValue int32) (int32, error) {
	raw := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(profileFilePathFlagName, profileFilePathFlagShorthand, "", profileFilePathFlagUsage)
	startCmd.Flags().StringP(redisAddrsFlagName, redisAddrsFlagShorthand, "", redisAddrsFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(redirectURLFlagName, redirectURLFlagShorthand, "", redirectURLFlagUsage)
	startCmd.Flags().StringP(tokenLifetimeFlagName, "", "", tokenLifetimeFlagUsage)
	startCmd.Flags().StringP(txStoreTTLFlagName, "", "", txStoreTTLFlagUsage)
	startCmd.Flags().StringP(requestObjectTTLFlagName, "", "", requestObjectTTLFlagUsage)
	startCmd.Flags().StringP(requestObjectBaseURLFlagName, "", "", requestObjectBaseURLFlagUsage)
	startCmd.Flags().StringP(eventTopicFlagName, "", "", eventTopicFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
}
