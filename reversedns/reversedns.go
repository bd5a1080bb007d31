// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package reversedns looks up the host names registered for an address.
package reversedns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"
)

const reverseDnsDefaultTimeout = 5 * time.Second

// LookupAddrFn is defined as variable to ease testing
var LookupAddrFn = net.DefaultResolver.LookupAddr

// GetReverseDnsForAddr returns the names for addr, without trailing dots.
// The lookup is bounded by ctx and by a default timeout of five seconds.
func GetReverseDnsForAddr(ctx context.Context, addr netip.Addr) ([]string, error) {
	if !addr.IsValid() {
		return nil, errors.New("invalid IP address")
	}
	return GetReverseDns(ctx, addr.String())
}

// GetReverseDns returns the names for the given IP address string.
func GetReverseDns(ctx context.Context, ipAddr string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, reverseDnsDefaultTimeout)
	defer cancel()
	rawReverseDnsNames, err := LookupAddrFn(ctx, ipAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get reverse dns: %w", err)
	}

	reverseDnsNames := []string{}
	for _, name := range rawReverseDnsNames {
		reverseDnsNames = append(reverseDnsNames, strings.TrimRight(name, "."))
	}
	return reverseDnsNames, nil
}
