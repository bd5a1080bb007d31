// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"bufio"
	"fmt"
	"net/netip"
	"strings"
)

const (
	routeInterfacePrefix = "interface:"
	// the trailing space keeps inet6 lines out
	ifconfigInetPrefix = "inet "
	ipRouteSrcToken    = "src"
)

// firstLineWithPrefix returns the first line of output that, once trimmed,
// starts with prefix.
func firstLineWithPrefix(output, prefix string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

// parseRouteInterface extracts the outbound interface name from `route get`
// output, e.g. "   interface: en0".
func parseRouteInterface(output string) (string, error) {
	line, ok := firstLineWithPrefix(output, routeInterfacePrefix)
	if !ok {
		return "", &ParseError{Reason: ReasonNoRoute}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", &ParseError{Reason: ReasonNoInterfaceName, Detail: fmt.Sprintf("line %q", line)}
	}
	return fields[1], nil
}

// parseIfconfigInet extracts the first IPv4 address from `ifconfig <iface>`
// output, e.g. "\tinet 192.168.1.42 netmask 0xffffff00".
func parseIfconfigInet(output, iface string) (netip.Addr, error) {
	detail := "interface " + iface
	line, ok := firstLineWithPrefix(output, ifconfigInetPrefix)
	if !ok {
		return netip.Addr{}, &ParseError{Reason: ReasonNoIPv4, Detail: detail}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return netip.Addr{}, &ParseError{Reason: ReasonNoIPv4, Detail: detail}
	}
	return parseIPv4Token(fields[1], ReasonNoIPv4, detail)
}

// parseIPRouteSrc returns the token following "src" in `ip route get` output.
// Newlines are not significant.
func parseIPRouteSrc(output string) (netip.Addr, error) {
	fields := strings.Fields(output)
	for i, field := range fields {
		if field != ipRouteSrcToken {
			continue
		}
		if i+1 >= len(fields) {
			break
		}
		return parseIPv4Token(fields[i+1], ReasonNoRouteInfo, "src "+fields[i+1])
	}
	return netip.Addr{}, &ParseError{Reason: ReasonNoRouteInfo}
}

func parseIPv4Token(token, reason, detail string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(token)
	if err != nil {
		return netip.Addr{}, &ParseError{Reason: reason, Detail: fmt.Sprintf("%s: %s", detail, err)}
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, &ParseError{Reason: reason, Detail: fmt.Sprintf("%s: %s is not IPv4", detail, addr)}
	}
	return addr, nil
}
