// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package resolver

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLookup(t *testing.T, fn func(ctx context.Context, network, host string) ([]netip.Addr, error)) {
	original := LookupNetIPFn
	t.Cleanup(func() { LookupNetIPFn = original })
	LookupNetIPFn = fn
}

func TestResolveLiterals(t *testing.T) {
	tests := []struct {
		name string
		host string
		want netip.Addr
	}{
		{
			name: "ipv4 literal",
			host: "204.17.220.5",
			want: netip.MustParseAddr("204.17.220.5"),
		},
		{
			name: "loopback",
			host: "127.0.0.1",
			want: netip.MustParseAddr("127.0.0.1"),
		},
		{
			name: "bracketed ipv6 literal",
			host: "[::1]",
			want: netip.MustParseAddr("::1"),
		},
		{
			name: "mapped ipv4 literal is unmapped",
			host: "::ffff:10.0.0.5",
			want: netip.MustParseAddr("10.0.0.5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(context.Background(), tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTakesFirstAddress(t *testing.T) {
	var gotNetwork, gotHost string
	mockLookup(t, func(ctx context.Context, network, host string) ([]netip.Addr, error) {
		gotNetwork, gotHost = network, host
		return []netip.Addr{
			netip.MustParseAddr("93.184.216.34"),
			netip.MustParseAddr("2606:2800:220:1:248:1893:25c8:1946"),
		}, nil
	})

	got, err := Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("93.184.216.34"), got)
	assert.Equal(t, "ip", gotNetwork)
	assert.Equal(t, "example.com", gotHost)
}

func TestResolveErrors(t *testing.T) {
	t.Run("resolver error", func(t *testing.T) {
		dnsErr := &net.DNSError{Err: "no such host", Name: "nx.example", IsNotFound: true}
		mockLookup(t, func(ctx context.Context, network, host string) ([]netip.Addr, error) {
			return nil, dnsErr
		})

		_, err := Resolve(context.Background(), "nx.example")
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "nx.example", resErr.Host)
		assert.ErrorIs(t, err, dnsErr)
	})

	t.Run("zero addresses", func(t *testing.T) {
		mockLookup(t, func(ctx context.Context, network, host string) ([]netip.Addr, error) {
			return nil, nil
		})

		_, err := Resolve(context.Background(), "empty.example")
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.ErrorIs(t, err, errNoAddresses)
	})

	t.Run("empty host", func(t *testing.T) {
		_, err := Resolve(context.Background(), "")
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
	})

	t.Run("malformed host", func(t *testing.T) {
		_, err := Resolve(context.Background(), "not a host###")
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Contains(t, err.Error(), "not a host###")
	})

	t.Run("canceled context", func(t *testing.T) {
		mockLookup(t, func(ctx context.Context, network, host string) ([]netip.Addr, error) {
			return nil, ctx.Err()
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Resolve(ctx, "example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
