// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package e2etests contains end-to-end tests for datadog-localip. They build
// the CLI and the HTTP server binaries and run lookups against loopback, a
// documentation-range address and a public host.
//
// Run with: go test -tags e2etest ./e2etests/...
package e2etests
