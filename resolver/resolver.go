// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package resolver turns a hostname or IP literal into the destination address
// handed to the route lookup.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/DataDog/datadog-localip/common"
	"github.com/DataDog/datadog-localip/log"
)

// LookupNetIPFn is defined as variable to ease testing
var LookupNetIPFn = net.DefaultResolver.LookupNetIP

var errNoAddresses = errors.New("no addresses found")

// ResolutionError is returned when a host cannot be resolved to any address.
type ResolutionError struct {
	Host string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve host %q: %s", e.Host, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolve returns the first address the platform resolver yields for host.
// Literals are returned without a DNS query; that decision is left to the
// resolver. IPv4-mapped IPv6 results are unmapped.
func Resolve(ctx context.Context, host string) (netip.Addr, error) {
	unwrappedHost := strings.Trim(host, "[]")
	hostPort := net.JoinHostPort(unwrappedHost, common.PlaceholderPort)

	name, _, err := net.SplitHostPort(hostPort)
	if err != nil {
		return netip.Addr{}, &ResolutionError{Host: host, Err: err}
	}
	if name == "" {
		return netip.Addr{}, &ResolutionError{Host: host, Err: errors.New("empty host")}
	}

	addrs, err := LookupNetIPFn(ctx, "ip", name)
	if err != nil {
		return netip.Addr{}, &ResolutionError{Host: host, Err: err}
	}
	if len(addrs) == 0 {
		return netip.Addr{}, &ResolutionError{Host: host, Err: errNoAddresses}
	}

	addr := addrs[0].Unmap()
	log.Debugf("resolved %q to %s (%d candidates)", host, addr, len(addrs))
	return addr, nil
}
