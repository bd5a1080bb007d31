// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package localip finds the local IPv4 address this machine would use to
// reach a remote host, by asking the operating system for its outbound route
// rather than guessing from the configured interfaces.
//
// Every call resolves the host and queries the OS again; nothing is cached.
// Calls block on DNS, child processes or native calls, so callers wanting a
// bound on latency should pass a context with a deadline.
package localip

import (
	"context"
	"fmt"
	"net/netip"
	"runtime"

	"github.com/pkg/errors"

	"github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/resolver"
)

// Method names a route lookup strategy.
type Method string

const (
	// MethodAuto picks the platform default.
	MethodAuto Method = "auto"
	// MethodRoute runs `route get` then `ifconfig` (BSD, macOS).
	MethodRoute Method = "route"
	// MethodIPRoute runs `ip route get` (Linux).
	MethodIPRoute Method = "iproute"
	// MethodNetlink queries the kernel over netlink (Linux).
	MethodNetlink Method = "netlink"
	// MethodIPHelper calls GetBestInterface and GetAdaptersAddresses (Windows).
	MethodIPHelper Method = "iphlpapi"
)

// Methods lists every method name accepted by New.
var Methods = []Method{MethodAuto, MethodRoute, MethodIPRoute, MethodNetlink, MethodIPHelper}

// RouteResolver returns the local address the OS would use as source for
// traffic to dest.
type RouteResolver interface {
	ResolveLocalIP(ctx context.Context, dest netip.Addr) (netip.Addr, error)
}

// Config selects how lookups are performed.
type Config struct {
	Method Method
}

// Result is the outcome of one lookup.
type Result struct {
	Host        string     `json:"host"`
	Destination netip.Addr `json:"destination"`
	LocalIP     netip.Addr `json:"local_ip"`
}

// Resolver performs lookups with one route strategy. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	method Method
	route  RouteResolver
}

// resolveHostFn is defined as variable to ease testing
var resolveHostFn = resolver.Resolve

// New returns a Resolver using the method named in cfg.
func New(cfg Config) (*Resolver, error) {
	method := cfg.Method
	if method == "" || method == MethodAuto {
		method = defaultMethod
	}
	if !isKnownMethod(method) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}

	newRoute, ok := platformMethods[method]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedMethod, "method %q on %s", method, runtime.GOOS)
	}
	return &Resolver{method: method, route: newRoute()}, nil
}

// NewWithRouteResolver returns a Resolver backed by a caller supplied strategy.
func NewWithRouteResolver(route RouteResolver) *Resolver {
	return &Resolver{method: "custom", route: route}
}

// Method returns the strategy in use.
func (r *Resolver) Method() Method {
	return r.method
}

// Lookup resolves host and returns it together with the local address of the
// outbound route to it.
func (r *Resolver) Lookup(ctx context.Context, host string) (Result, error) {
	dest, err := resolveHostFn(ctx, host)
	if err != nil {
		return Result{}, err
	}

	local, err := r.route.ResolveLocalIP(ctx, dest)
	if err != nil {
		return Result{}, fmt.Errorf("%s route lookup for %s: %w", r.method, dest, err)
	}
	if !local.Is4() {
		return Result{}, &ParseError{Reason: ReasonNoIPv4, Detail: fmt.Sprintf("route source %s", local)}
	}

	log.Debugf("local address for %s (%s) is %s", host, dest, local)
	return Result{Host: host, Destination: dest, LocalIP: local}, nil
}

// ForHost returns the dotted-decimal local IPv4 address used to reach host.
func (r *Resolver) ForHost(ctx context.Context, host string) (string, error) {
	res, err := r.Lookup(ctx, host)
	if err != nil {
		return "", err
	}
	return res.LocalIP.String(), nil
}

// ForHost returns the dotted-decimal local IPv4 address used to reach host,
// using the platform's default method.
func ForHost(ctx context.Context, host string) (string, error) {
	r, err := New(Config{})
	if err != nil {
		return "", err
	}
	return r.ForHost(ctx, host)
}

func isKnownMethod(m Method) bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}
