// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package main provides the local IP HTTP server binary
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/DataDog/datadog-localip/common"
	ddlog "github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/server"
)

var (
	addr     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "datadog-localip-server",
	Short: "Local IP HTTP server",
	Long:  `HTTP server reporting the local IPv4 address this machine uses to reach a host`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := ddlog.ParseLogLevel(logLevel)
		if err != nil {
			return err
		}
		ddlog.SetLogLevel(level)

		srv := server.NewServer()

		log.Printf("Starting local IP HTTP server on %s", addr)
		log.Printf("Log level set to: %s", level)
		log.Printf("Example usage: curl 'http://localhost%s/localip?host=example.com'", common.DefaultServerAddr)

		return srv.Start(addr)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&addr, "addr", "a", common.DefaultServerAddr, "HTTP server address to listen on")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (error, warn, info, debug, trace)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
