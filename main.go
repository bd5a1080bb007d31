// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Command datadog-localip prints the local IPv4 address used to reach a host.
package main

import (
	"github.com/DataDog/datadog-localip/cmd"
)

func main() {
	cmd.Execute()
}
