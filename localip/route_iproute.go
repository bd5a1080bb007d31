// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"context"
	"net/netip"
)

// ipRouteResolver reads the preferred source straight from `ip route get`,
// which reports it as a route attribute.
type ipRouteResolver struct {
	runner CommandRunner
}

func (r *ipRouteResolver) ResolveLocalIP(ctx context.Context, dest netip.Addr) (netip.Addr, error) {
	out, err := r.runner.Run(ctx, "ip", "route", "get", dest.String())
	if err != nil {
		return netip.Addr{}, err
	}
	return parseIPRouteSrc(out)
}
