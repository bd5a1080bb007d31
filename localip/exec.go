// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/DataDog/datadog-localip/log"
)

//go:generate mockgen -source=exec.go -destination=mock_command_runner.go -package=localip

// CommandRunner runs an external program and returns its standard output as text.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner runs programs found on PATH with the default environment and no stdin.
type execRunner struct{}

// Run returns stdout even when the program exits with a non-zero status: route
// tools report "no route" that way and the parser turns the missing marker
// into a ParseError.
func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	log.Tracef("running %s %s", name, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &ProcessError{Command: name, Args: args, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &ProcessError{Command: name, Args: args, Err: err}
		}
		log.Debugf("%s exited with status %d: %s", name, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}

	if !utf8.Valid(out) {
		return "", &ProcessError{Command: name, Args: args, Err: ErrNonUTF8Output}
	}

	log.Tracef("%s output: %s", name, out)
	return string(out), nil
}
