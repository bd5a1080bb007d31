// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package localip

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/DataDog/datadog-localip/log"
)

// Adapter is one entry of the OS adapter list, decoded from the native
// buffer before any matching happens.
type Adapter struct {
	Index     uint32
	Name      string
	Addresses []netip.Addr
}

// ipHelperResolver asks the IP Helper API for the interface index of the best
// route, then looks that index up in the adapter list. The native calls are
// fields so the matching can run against synthetic adapter lists.
type ipHelperResolver struct {
	bestInterface func(dest netip.Addr) (uint32, error)
	adapters      func() ([]Adapter, error)
	// indexByName re-derives an adapter's index from its name. Optional;
	// only consulted when no adapter record carries the index directly.
	indexByName func(name string) (uint32, error)
}

func (r *ipHelperResolver) ResolveLocalIP(ctx context.Context, dest netip.Addr) (netip.Addr, error) {
	if !dest.Is4() {
		return netip.Addr{}, &ParseError{Reason: ReasonInvalidIPv4, Detail: dest.String()}
	}
	// the syscalls below cannot be interrupted
	if err := ctx.Err(); err != nil {
		return netip.Addr{}, err
	}

	index, err := r.bestInterface(dest)
	if err != nil {
		return netip.Addr{}, err
	}
	log.Debugf("best interface for %s is #%d", dest, index)

	adapters, err := r.adapters()
	if err != nil {
		return netip.Addr{}, err
	}
	log.Tracef("enumerated %d adapters", len(adapters))

	return selectAdapterAddress(adapters, index, r.indexByName)
}

// selectAdapterAddress returns the first IPv4 address bound to the adapter
// with the given interface index.
func selectAdapterAddress(adapters []Adapter, index uint32, indexByName func(string) (uint32, error)) (netip.Addr, error) {
	adapter, ok := findAdapter(adapters, index, indexByName)
	if !ok {
		return netip.Addr{}, &ParseError{Reason: fmt.Sprintf("adapter #%d not found", index)}
	}
	for _, addr := range adapter.Addresses {
		if addr.Is4() {
			return addr, nil
		}
	}
	return netip.Addr{}, &ParseError{Reason: fmt.Sprintf("no IPv4 address for adapter #%d", index), Detail: adapter.Name}
}

func findAdapter(adapters []Adapter, index uint32, indexByName func(string) (uint32, error)) (Adapter, bool) {
	for _, adapter := range adapters {
		if adapter.Index == index {
			return adapter, true
		}
	}
	if indexByName == nil {
		return Adapter{}, false
	}

	log.Debugf("no adapter record carries index #%d, deriving indexes from adapter names", index)
	for _, adapter := range adapters {
		derived, err := indexByName(adapter.Name)
		if err != nil {
			log.Debugf("could not derive index of adapter %s: %s", adapter.Name, err)
			continue
		}
		if derived == index {
			return adapter, true
		}
	}
	return Adapter{}, false
}

// inAddr packs an IPv4 address into the IPAddr DWORD taken by IP Helper
// routines: the first octet lands in the low-order byte so the value sits in
// memory in network order on little-endian Windows.
func inAddr(addr netip.Addr) uint32 {
	octets := addr.As4()
	return binary.LittleEndian.Uint32(octets[:])
}
