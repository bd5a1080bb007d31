// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package runner

import (
	"context"
	"errors"
	"net/netip"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/datadog-localip/localip"
	"github.com/DataDog/datadog-localip/reversedns"
)

type lookupFunc func(ctx context.Context, host string) (localip.Result, error)

func (f lookupFunc) Lookup(ctx context.Context, host string) (localip.Result, error) {
	return f(ctx, host)
}

var hostTable = map[string]localip.Result{
	"a.internal": {Host: "a.internal", Destination: netip.MustParseAddr("10.0.0.1"), LocalIP: netip.MustParseAddr("10.0.0.100")},
	"b.internal": {Host: "b.internal", Destination: netip.MustParseAddr("10.1.0.1"), LocalIP: netip.MustParseAddr("10.1.0.100")},
	"c.internal": {Host: "c.internal", Destination: netip.MustParseAddr("192.0.2.1"), LocalIP: netip.MustParseAddr("192.0.2.200")},
}

func mockLookuper(t *testing.T, fn lookupFunc) *localip.Method {
	original := newLookuperFn
	t.Cleanup(func() { newLookuperFn = original })

	var gotMethod localip.Method
	newLookuperFn = func(method localip.Method) (lookuper, error) {
		gotMethod = method
		return fn, nil
	}
	return &gotMethod
}

func tableLookup(_ context.Context, host string) (localip.Result, error) {
	res, ok := hostTable[host]
	if !ok {
		return localip.Result{}, &localip.ResolutionError{Host: host, Err: errors.New("no such host")}
	}
	return res, nil
}

func TestRunLookup(t *testing.T) {
	gotMethod := mockLookuper(t, tableLookup)

	report, err := RunLookup(context.Background(), LookupParams{Hostname: "b.internal", Method: localip.MethodNetlink})
	require.NoError(t, err)
	assert.Equal(t, localip.MethodNetlink, *gotMethod)
	assert.Equal(t, "b.internal", report.Host)
	assert.Equal(t, netip.MustParseAddr("10.1.0.100"), report.LocalIP)
	assert.NotEmpty(t, report.RequestID)
	assert.Nil(t, report.LocalHostnames)
}

func TestRunLookupTimeout(t *testing.T) {
	mockLookuper(t, func(ctx context.Context, host string) (localip.Result, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
		return localip.Result{}, ctx.Err()
	})

	_, err := RunLookup(context.Background(), LookupParams{Hostname: "a.internal", Timeout: 10 * time.Millisecond})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, localip.ErrCodeTimeout, localip.ClassifyError(err).Code)
}

func TestRunLookupNoTimeout(t *testing.T) {
	mockLookuper(t, func(ctx context.Context, host string) (localip.Result, error) {
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		return tableLookup(ctx, host)
	})

	_, err := RunLookup(context.Background(), LookupParams{Hostname: "a.internal"})
	require.NoError(t, err)
}

func TestRunLookupReverseDns(t *testing.T) {
	mockLookuper(t, tableLookup)
	original := reversedns.LookupAddrFn
	t.Cleanup(func() { reversedns.LookupAddrFn = original })
	reversedns.LookupAddrFn = func(_ context.Context, addr string) ([]string, error) {
		require.Equal(t, "10.0.0.100", addr)
		return []string{"workstation.corp."}, nil
	}

	report, err := RunLookup(context.Background(), LookupParams{Hostname: "a.internal", ReverseDns: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"workstation.corp"}, report.LocalHostnames)
}

func TestRunLookupBadMethod(t *testing.T) {
	_, err := RunLookup(context.Background(), LookupParams{Hostname: "a.internal", Method: "carrier-pigeon"})
	require.ErrorIs(t, err, localip.ErrUnknownMethod)
	assert.Equal(t, localip.ErrCodeInvalidRequest, localip.ClassifyError(err).Code)
}

func TestRunLookupsKeepsOrder(t *testing.T) {
	var calls atomic.Int32
	mockLookuper(t, func(ctx context.Context, host string) (localip.Result, error) {
		calls.Add(1)
		// finish in reverse order
		if host == "a.internal" {
			time.Sleep(20 * time.Millisecond)
		}
		return tableLookup(ctx, host)
	})

	hosts := []string{"a.internal", "b.internal", "c.internal"}
	reports, err := RunLookups(context.Background(), LookupParams{}, hosts)
	require.NoError(t, err)
	require.Len(t, reports, len(hosts))
	for i, host := range hosts {
		assert.Equal(t, host, reports[i].Host)
		assert.Equal(t, hostTable[host].LocalIP, reports[i].LocalIP)
	}
	assert.EqualValues(t, 3, calls.Load())
}

func TestRunLookupsFailure(t *testing.T) {
	mockLookuper(t, tableLookup)

	reports, err := RunLookups(context.Background(), LookupParams{}, []string{"a.internal", "missing.internal"})
	require.Error(t, err)
	assert.Nil(t, reports)
	var resErr *localip.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "missing.internal", resErr.Host)
}
