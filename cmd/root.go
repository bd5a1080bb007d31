// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DataDog/datadog-localip/common"
	"github.com/DataDog/datadog-localip/localip"
	"github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/result"
	"github.com/DataDog/datadog-localip/runner"
)

type args struct {
	method     string
	timeout    int
	jsonOutput bool
	reverseDns bool
	verbose    bool
}

var Args args

var rootCmd = &cobra.Command{
	Use:   "datadog-localip [flags] host [host...]",
	Short: "Print the local IPv4 address used to reach a host",
	Long: `Asks the operating system which local IPv4 address it would use as the
source address for traffic to each host.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetVerbose(Args.verbose)

		params := runner.LookupParams{
			Method:     localip.Method(Args.method),
			Timeout:    time.Duration(Args.timeout) * time.Millisecond,
			ReverseDns: Args.reverseDns,
		}
		reports, err := runner.RunLookups(cmd.Context(), params, args)
		if err != nil {
			return err
		}
		return printReports(cmd.OutOrStdout(), reports, Args.jsonOutput)
	},
}

func printReports(w io.Writer, reports []*result.Report, asJSON bool) error {
	if asJSON {
		jsonStr, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON marshalling failed: %v", err)
		}
		_, err = fmt.Fprintln(w, string(jsonStr))
		return err
	}

	for _, r := range reports {
		line := r.LocalIP.String()
		if len(reports) > 1 {
			line = r.Host + " " + line
		}
		if len(r.LocalHostnames) > 0 {
			line += " (" + strings.Join(r.LocalHostnames, ", ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	methods := make([]string, 0, len(localip.Methods))
	for _, m := range localip.Methods {
		methods = append(methods, string(m))
	}

	rootCmd.Flags().BoolVarP(&Args.verbose, "verbose", "v", false, "verbose")
	rootCmd.Flags().StringVarP(&Args.method, "method", "", common.DefaultMethod, "Route lookup method ("+strings.Join(methods, ", ")+")")
	rootCmd.Flags().IntVarP(&Args.timeout, "timeout", "", common.DefaultTimeout, "Timeout (ms), 0 for none")
	rootCmd.Flags().BoolVarP(&Args.jsonOutput, "json", "", common.DefaultJSONOutput, "Print results as JSON")
	rootCmd.Flags().BoolVarP(&Args.reverseDns, "reverse-dns", "", common.DefaultReverseDns, "Enrich the local IP with reverse DNS names")
}
