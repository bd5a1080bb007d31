// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd || linux || windows)

package localip

// no lookup method on this platform; New reports ErrUnsupportedMethod
const defaultMethod = MethodAuto

var platformMethods = map[Method]func() RouteResolver{}
