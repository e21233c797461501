/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the OpenID for Verifiable Presentations verifier service.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/cmd/oidc4vp-verifier/startcmd"
)

var logger = log.New("oidc4vp-verifier")

func main() {
	rootCmd := &cobra.Command{
		Use: "oidc4vp-verifier",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(&startcmd.HTTPServer{}))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run oidc4vp-verifier", log.WithError(err))
	}
}
