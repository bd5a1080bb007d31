// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build linux

// Package testutils holds helpers for tests that need an isolated network stack.
package testutils

import (
	"runtime"

	"github.com/vishvananda/netns"
)

// WithNS executes the given function in the given network namespace, and then
// switches back to the previous namespace.
func WithNS(ns netns.NsHandle, fn func() error) error {
	if ns == netns.None() {
		return fn()
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prevNS, err := netns.Get()
	if err != nil {
		return err
	}
	defer prevNS.Close()

	if ns.Equal(prevNS) {
		return fn()
	}

	if err := netns.Set(ns); err != nil {
		return err
	}

	fnErr := fn()
	nsErr := netns.Set(prevNS)
	if fnErr != nil {
		return fnErr
	}
	return nsErr
}

// WithNewNS executes the given function in a fresh network namespace that only
// has a loopback link. The namespace is released when the function returns.
// Creating a namespace needs CAP_SYS_ADMIN.
func WithNewNS(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prevNS, err := netns.Get()
	if err != nil {
		return err
	}
	defer prevNS.Close()

	// netns.New moves the calling thread into the new namespace
	ns, err := netns.New()
	if err != nil {
		return err
	}
	defer ns.Close()

	if err := netns.Set(prevNS); err != nil {
		return err
	}

	return WithNS(ns, fn)
}
