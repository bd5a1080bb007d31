// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package common holds defaults and address helpers shared by the CLI, the
// HTTP server and the lookup strategies.
package common

import (
	"net/netip"
)

const (
	// DefaultTimeout of 0 leaves lookups unbounded; callers opt in to a deadline.
	DefaultTimeout    = 0
	DefaultServerAddr = ":3766"
	DefaultMethod     = "auto"
	DefaultReverseDns = false
	DefaultJSONOutput = false
	// PlaceholderPort is joined to the host during resolution and never used.
	PlaceholderPort = "0"
)

// UnmappedAddrFromSlice is the same as netip.AddrFromSlice but it also gets rid of mapped ipv6 addresses.
func UnmappedAddrFromSlice(slice []byte) (netip.Addr, bool) {
	addr, ok := netip.AddrFromSlice(slice)
	return addr.Unmap(), ok
}
