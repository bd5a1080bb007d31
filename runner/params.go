// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package runner

import (
	"time"

	"github.com/DataDog/datadog-localip/localip"
)

// LookupParams holds the options shared by the CLI and the HTTP server.
type LookupParams struct {
	Hostname   string
	Method     localip.Method
	Timeout    time.Duration // zero means no deadline
	ReverseDns bool
}
