/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package common holds flag/env conventions shared across this module's commands.
package common

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "OIDC4VP_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Logging level: CRITICAL, ERROR, WARNING, INFO, DEBUG. Defaults to info. " +
		"Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey
)

// SetDefaultLogLevel sets the default log level, falling back to info and logging a warning
// if userLogLevel isn't one of the levels logutil-go recognizes.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	if userLogLevel == "" {
		return
	}

	logLevel, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn(`User log level is not valid. It must be one of the following: `+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to info.", logfields.WithUserLogLevel(userLogLevel))

		logLevel = log.INFO
	} else if logLevel == log.DEBUG {
		logger.Info(`Log level set to "debug". Performance may be adversely impacted.`)
	}

	log.SetLevel("", logLevel)
}
