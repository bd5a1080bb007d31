// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package reversedns

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLookupAddr(t *testing.T, fn func(ctx context.Context, addr string) ([]string, error)) {
	original := LookupAddrFn
	LookupAddrFn = fn
	t.Cleanup(func() { LookupAddrFn = original })
}

func TestGetReverseDns(t *testing.T) {
	tests := []struct {
		name              string
		ipAddress         string
		fakeRDns          []string
		fakeErr           error
		expectedRDnsNames []string
		expectedErr       string
	}{
		{
			name:              "one valid rDNS name in response",
			ipAddress:         "10.1.1.9",
			fakeRDns:          []string{"build-01.corp."},
			expectedRDnsNames: []string{"build-01.corp"},
		},
		{
			name:              "multiple valid rDNS name in response",
			ipAddress:         "10.1.1.9",
			fakeRDns:          []string{"foo.com", "bar.com."},
			expectedRDnsNames: []string{"foo.com", "bar.com"},
		},
		{
			name:              "no names",
			ipAddress:         "10.1.1.9",
			fakeRDns:          nil,
			expectedRDnsNames: []string{},
		},
		{
			name:        "error case",
			ipAddress:   "10.1.1.9",
			fakeErr:     errors.New("some error"),
			expectedErr: "failed to get reverse dns: some error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLookupAddr(t, func(_ context.Context, addr string) ([]string, error) {
				assert.Equal(t, tt.ipAddress, addr)
				return tt.fakeRDns, tt.fakeErr
			})

			actualRdns, err := GetReverseDns(context.Background(), tt.ipAddress)
			if tt.expectedErr != "" {
				require.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, actualRdns)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRDnsNames, actualRdns)
		})
	}
}

func TestGetReverseDnsForAddr(t *testing.T) {
	mockLookupAddr(t, func(ctx context.Context, addr string) ([]string, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		assert.Equal(t, "192.0.2.4", addr)
		return []string{"host.example."}, nil
	})

	names, err := GetReverseDnsForAddr(context.Background(), netip.MustParseAddr("192.0.2.4"))
	require.NoError(t, err)
	assert.Equal(t, []string{"host.example"}, names)

	_, err = GetReverseDnsForAddr(context.Background(), netip.Addr{})
	assert.EqualError(t, err, "invalid IP address")
}

func TestGetReverseDnsKeepsCallerDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	want, _ := ctx.Deadline()

	mockLookupAddr(t, func(ctx context.Context, _ string) ([]string, error) {
		got, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, want, got)
		return nil, ctx.Err()
	})

	_, err := GetReverseDns(ctx, "192.0.2.4")
	assert.NoError(t, err)
}
