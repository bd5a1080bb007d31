// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DataDog/datadog-localip/localip"
	"github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/result"
)

type lookuper interface {
	Lookup(ctx context.Context, host string) (localip.Result, error)
}

// newLookuperFn is defined as variable to ease testing
var newLookuperFn = func(method localip.Method) (lookuper, error) {
	r, err := localip.New(localip.Config{Method: method})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RunLookup finds the local address used to reach params.Hostname.
func RunLookup(ctx context.Context, params LookupParams) (*result.Report, error) {
	l, err := newLookuperFn(params.Method)
	if err != nil {
		return nil, err
	}
	return runLookup(ctx, l, params)
}

// RunLookups looks up every host concurrently and returns the reports in the
// order of hosts. The first failure cancels the remaining lookups and is
// returned. params.Hostname is ignored.
func RunLookups(ctx context.Context, params LookupParams, hosts []string) ([]*result.Report, error) {
	l, err := newLookuperFn(params.Method)
	if err != nil {
		return nil, err
	}

	reports := make([]*result.Report, len(hosts))
	g, ctx := errgroup.WithContext(ctx)
	for i, host := range hosts {
		p := params
		p.Hostname = host
		g.Go(func() error {
			report, err := runLookup(ctx, l, p)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func runLookup(ctx context.Context, l lookuper, params LookupParams) (*result.Report, error) {
	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	res, err := l.Lookup(ctx, params.Hostname)
	if err != nil {
		return nil, err
	}
	log.Tracef("lookup %q: destination %s local %s", params.Hostname, res.Destination, res.LocalIP)

	report := result.NewReport(res)
	if params.ReverseDns {
		report.EnrichWithReverseDns(ctx)
	}
	return report, nil
}
