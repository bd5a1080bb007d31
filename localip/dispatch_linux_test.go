// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build linux

package localip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxMethods(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, MethodIPRoute, r.Method())
	assert.IsType(t, &ipRouteResolver{}, r.route)

	r, err = New(Config{Method: MethodNetlink})
	require.NoError(t, err)
	assert.IsType(t, netlinkRouteResolver{}, r.route)

	_, err = New(Config{Method: MethodRoute})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}
