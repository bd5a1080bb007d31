// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package result

import (
	"context"
	"net/netip"

	"github.com/DataDog/datadog-localip/localip"
	"github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/reversedns"
)

// Report is the outcome of one lookup as printed by the CLI and served by the
// HTTP API.
type Report struct {
	RequestID      string     `json:"request_id"`
	Host           string     `json:"host"`
	Destination    netip.Addr `json:"destination"`
	LocalIP        netip.Addr `json:"local_ip"`
	LocalHostnames []string   `json:"local_hostnames,omitempty"`
}

// NewReport wraps a lookup result with a fresh request id.
func NewReport(res localip.Result) *Report {
	return &Report{
		RequestID:   newBase64UUID(),
		Host:        res.Host,
		Destination: res.Destination,
		LocalIP:     res.LocalIP,
	}
}

// EnrichWithReverseDns fills LocalHostnames. A failed lookup is logged and
// leaves the report unchanged.
func (r *Report) EnrichWithReverseDns(ctx context.Context) {
	names, err := reversedns.GetReverseDnsForAddr(ctx, r.LocalIP)
	if err != nil {
		log.Debugf("reverse dns for %s: %s", r.LocalIP, err)
		return
	}
	if len(names) > 0 {
		r.LocalHostnames = names
	}
}
