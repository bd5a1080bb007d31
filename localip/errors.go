// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/pkg/errors"

	"github.com/DataDog/datadog-localip/resolver"
)

// ErrorCode is a classifiable error code reported by the CLI and the HTTP API.
type ErrorCode string

const (
	// ErrCodeDNS indicates the host could not be resolved.
	ErrCodeDNS ErrorCode = "DNS"
	// ErrCodeProcess indicates a route or interface tool could not be run.
	ErrCodeProcess ErrorCode = "PROCESS"
	// ErrCodeParse indicates the OS answered without the expected route data.
	ErrCodeParse ErrorCode = "PARSE"
	// ErrCodeSyscall indicates a native routing or adapter call failed.
	ErrCodeSyscall ErrorCode = "SYSCALL"
	// ErrCodeTimeout indicates the caller's deadline expired or the call was canceled.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnsupported indicates the lookup method is unavailable on this platform.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"
	// ErrCodeInvalidRequest indicates bad parameters from the caller.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeUnknown is the catch-all for unclassified errors.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// Parse failure reasons.
const (
	ReasonNoRoute         = "no route for host"
	ReasonNoInterfaceName = "no interface name"
	ReasonNoIPv4          = "no ipv4 address"
	ReasonNoRouteInfo     = "no route information"
	ReasonInvalidIPv4     = "invalid IPv4"
)

var (
	// ErrNonUTF8Output is wrapped by a ProcessError when a tool prints bytes
	// that are not valid UTF-8.
	ErrNonUTF8Output = errors.New("output is not valid UTF-8")
	// ErrUnknownMethod is returned by New for a method name it does not know.
	ErrUnknownMethod = errors.New("unknown lookup method")
	// ErrUnsupportedMethod is returned by New when a known method cannot run
	// on the current platform.
	ErrUnsupportedMethod = errors.New("lookup method not supported")
)

// ResolutionError is returned when the host cannot be resolved to any address.
type ResolutionError = resolver.ResolutionError

// ProcessError reports a route or interface tool that failed to start, was
// killed, or produced output that is not text.
type ProcessError struct {
	Command string
	Args    []string
	Err     error
}

func (e *ProcessError) Error() string {
	cmdline := strings.Join(append([]string{e.Command}, e.Args...), " ")
	return fmt.Sprintf("running %q: %s", cmdline, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ParseError reports an expected marker, line or field missing from an
// otherwise successful answer.
type ParseError struct {
	Reason string
	// Detail names what was being inspected, e.g. "interface en0".
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

// SystemCallError reports a failed native routing or adapter call. The status
// is kept as is and not interpreted further.
type SystemCallError struct {
	Call string
	Err  error
}

func (e *SystemCallError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Call, e.Err)
}

func (e *SystemCallError) Unwrap() error {
	return e.Err
}

// LookupError is a classified error from a lookup.
type LookupError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the JSON body returned on error from the HTTP API.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ClassifyError inspects an error chain and returns a LookupError with the appropriate code.
func ClassifyError(err error) *LookupError {
	if err == nil {
		return nil
	}

	classified := func(code ErrorCode) *LookupError {
		return &LookupError{Code: code, Message: err.Error(), Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classified(ErrCodeTimeout)
	}

	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		var netDNSErr *net.DNSError
		if errors.As(err, &netDNSErr) && netDNSErr.IsTimeout {
			return classified(ErrCodeTimeout)
		}
		return classified(ErrCodeDNS)
	}

	var procErr *ProcessError
	if errors.As(err, &procErr) {
		return classified(ErrCodeProcess)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return classified(ErrCodeParse)
	}

	var sysErr *SystemCallError
	if errors.As(err, &sysErr) {
		return classified(ErrCodeSyscall)
	}

	if errors.Is(err, ErrUnknownMethod) {
		return classified(ErrCodeInvalidRequest)
	}
	if errors.Is(err, ErrUnsupportedMethod) {
		return classified(ErrCodeUnsupported)
	}

	return classified(ErrCodeUnknown)
}
