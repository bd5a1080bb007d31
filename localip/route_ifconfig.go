// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"context"
	"net/netip"

	"github.com/DataDog/datadog-localip/log"
)

// routeIfconfigResolver asks `route get` for the outbound interface, then
// reads that interface's IPv4 address from `ifconfig`. BSD and macOS expose
// routing state only through these tools' text output.
type routeIfconfigResolver struct {
	runner CommandRunner
}

func (r *routeIfconfigResolver) ResolveLocalIP(ctx context.Context, dest netip.Addr) (netip.Addr, error) {
	routeOut, err := r.runner.Run(ctx, "route", "-n", "get", dest.String())
	if err != nil {
		return netip.Addr{}, err
	}

	iface, err := parseRouteInterface(routeOut)
	if err != nil {
		return netip.Addr{}, err
	}
	log.Debugf("route to %s goes through interface %s", dest, iface)

	ifconfigOut, err := r.runner.Run(ctx, "ifconfig", iface)
	if err != nil {
		return netip.Addr{}, err
	}

	return parseIfconfigInet(ifconfigOut, iface)
}
