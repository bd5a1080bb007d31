// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build linux

package localip

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/vishvananda/netlink"

	"github.com/DataDog/datadog-localip/common"
	"github.com/DataDog/datadog-localip/log"
)

var (
	routeGet    = netlink.RouteGet
	linkByIndex = netlink.LinkByIndex
	addrList    = netlink.AddrList
)

// netlinkRouteResolver asks the kernel for the route with RTM_GETROUTE
// instead of running `ip`. When the kernel leaves the preferred source unset,
// the first IPv4 address of the route's output link is used, which is the
// address the kernel itself would select.
type netlinkRouteResolver struct{}

func (netlinkRouteResolver) ResolveLocalIP(ctx context.Context, dest netip.Addr) (netip.Addr, error) {
	if err := ctx.Err(); err != nil {
		return netip.Addr{}, err
	}

	routes, err := routeGet(net.IP(dest.AsSlice()))
	if err != nil {
		return netip.Addr{}, &SystemCallError{Call: "netlink RouteGet", Err: err}
	}
	if len(routes) == 0 {
		return netip.Addr{}, &ParseError{Reason: ReasonNoRouteInfo, Detail: "kernel returned no route"}
	}

	route := routes[0]
	if src, ok := common.UnmappedAddrFromSlice(route.Src); ok {
		if !src.Is4() {
			return netip.Addr{}, &ParseError{Reason: ReasonNoRouteInfo, Detail: fmt.Sprintf("src %s is not IPv4", src)}
		}
		return src, nil
	}

	if route.LinkIndex == 0 {
		return netip.Addr{}, &ParseError{Reason: ReasonNoRouteInfo, Detail: "route has neither source nor link"}
	}
	log.Debugf("route to %s has no preferred source, reading addresses of link #%d", dest, route.LinkIndex)

	link, err := linkByIndex(route.LinkIndex)
	if err != nil {
		return netip.Addr{}, &SystemCallError{Call: fmt.Sprintf("netlink LinkByIndex(%d)", route.LinkIndex), Err: err}
	}
	name := link.Attrs().Name

	addrs, err := addrList(link, netlink.FAMILY_V4)
	if err != nil {
		return netip.Addr{}, &SystemCallError{Call: fmt.Sprintf("netlink AddrList(%s)", name), Err: err}
	}
	for _, a := range addrs {
		if a.IPNet == nil {
			continue
		}
		if addr, ok := common.UnmappedAddrFromSlice(a.IP); ok && addr.Is4() {
			return addr, nil
		}
	}
	return netip.Addr{}, &ParseError{Reason: ReasonNoIPv4, Detail: "interface " + name}
}
